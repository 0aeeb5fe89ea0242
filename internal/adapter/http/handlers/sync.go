package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/mapper"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/middleware"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/pkg/apierrors"
)

type SyncHandler struct {
	syncService ports.SyncService
}

func NewSyncHandler(syncService ports.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

func (h *SyncHandler) Sync(c *gin.Context) {
	lang := middleware.GetLang(c)

	result, err := h.syncService.Sync(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSyncInProgress):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgSyncBusy, lang),
			)
		case errors.Is(err, domain.ErrMissingClientID):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgMissingClientID, lang),
			)
		case errors.Is(err, domain.ErrRemoteAuth):
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgRemoteAuth, lang),
			)
		case errors.Is(err, domain.ErrNoTaskList):
			c.JSON(
				http.StatusBadGateway,
				apierrors.CreateError(http.StatusBadGateway, apierrors.MsgNoTaskList, lang),
			)
		default:
			zap.L().Error("failed to sync tasks", zap.Error(err))
			c.JSON(
				http.StatusBadGateway,
				apierrors.CreateError(http.StatusBadGateway, apierrors.MsgSyncFailed, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToSyncResponse(result))
}
