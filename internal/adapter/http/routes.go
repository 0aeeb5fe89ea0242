package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/handlers"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/middleware"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Tasks      *handlers.TaskHandler
	Decompose  *handlers.DecomposeHandler
	Categories *handlers.CategoryHandler
	Views      *handlers.ViewHandler
	Sync       *handlers.SyncHandler
	Settings   *handlers.SettingsHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Tasks.ListTasks)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.POST("/tasks/decompose", h.Decompose.Decompose)
		api.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		api.POST("/tasks/:id/toggle", h.Tasks.ToggleTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		api.PUT("/tasks/order", h.Tasks.ReorderTasks)
		api.POST("/tasks/bulk-schedule", h.Tasks.BulkSchedule)
		api.POST("/tasks/drag", h.Tasks.DragEnd)

		api.GET("/categories", h.Categories.ListCategories)
		api.POST("/categories", h.Categories.CreateCategory)
		api.PUT("/categories/order", h.Categories.ReorderCategories)

		api.GET("/views/category", h.Views.CategoryView)
		api.GET("/views/date", h.Views.DateView)
		api.GET("/view-mode", h.Views.GetViewMode)
		api.PUT("/view-mode", h.Views.UpdateViewMode)

		api.POST("/sync", h.Sync.Sync)

		api.GET("/settings", h.Settings.GetSettings)
		api.PUT("/settings", h.Settings.UpdateSettings)
	}
}
