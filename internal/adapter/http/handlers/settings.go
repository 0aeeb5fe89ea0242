package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/dto"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/middleware"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/pkg/apierrors"
)

type SettingsHandler struct {
	settingsService ports.SettingsService
}

func NewSettingsHandler(settingsService ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	lang := middleware.GetLang(c)

	settings, err := h.settingsService.Settings(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to load settings", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSettings, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.SettingsItem{
		GeminiAPIKey:   settings.GeminiAPIKey,
		GoogleClientID: settings.GoogleClientID,
		HasAccessToken: settings.HasAccessToken,
	})
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	update := domain.SettingsUpdate{
		GeminiAPIKey:   req.GeminiAPIKey,
		GoogleClientID: req.GoogleClientID,
		AccessToken:    req.AccessToken,
	}
	if err := h.settingsService.SaveSettings(c.Request.Context(), update); err != nil {
		zap.L().Error("failed to save settings", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSettings, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
