package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/dto"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/middleware"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/pkg/apierrors"
)

type CategoryHandler struct {
	taskService ports.TaskService
}

func NewCategoryHandler(taskService ports.TaskService) *CategoryHandler {
	return &CategoryHandler{taskService: taskService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	lang := middleware.GetLang(c)

	categories, err := h.taskService.Categories(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListCategories, lang),
		)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	if err := h.taskService.AddCategory(c.Request.Context(), req.Name); err != nil {
		zap.L().Error("failed to create category", zap.String("category", req.Name), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateCategory, lang),
		)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *CategoryHandler) ReorderCategories(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CategoryOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	if err := h.taskService.ReorderCategories(c.Request.Context(), req.Names); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
