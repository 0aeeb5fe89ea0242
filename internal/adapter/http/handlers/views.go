package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/dto"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/mapper"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/middleware"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/pkg/apierrors"
)

type ViewHandler struct {
	taskService     ports.TaskService
	settingsService ports.SettingsService
}

func NewViewHandler(taskService ports.TaskService, settingsService ports.SettingsService) *ViewHandler {
	return &ViewHandler{taskService: taskService, settingsService: settingsService}
}

func (h *ViewHandler) CategoryView(c *gin.Context) {
	lang := middleware.GetLang(c)

	groups, err := h.taskService.ByCategory(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to build category view", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailViews, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryGroups(groups))
}

func (h *ViewHandler) DateView(c *gin.Context) {
	lang := middleware.GetLang(c)

	groups, err := h.taskService.ByDate(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to build date view", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailViews, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDateView(groups))
}

func (h *ViewHandler) GetViewMode(c *gin.Context) {
	lang := middleware.GetLang(c)

	mode, err := h.settingsService.ViewMode(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to load view mode", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailViewMode, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.ViewModeItem{Mode: string(mode)})
}

func (h *ViewHandler) UpdateViewMode(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UpdateViewModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	if err := h.settingsService.SetViewMode(c.Request.Context(), domain.ViewMode(req.Mode)); err != nil {
		zap.L().Error("failed to save view mode", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailViewMode, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
