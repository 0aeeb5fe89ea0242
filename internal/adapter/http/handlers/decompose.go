package handlers

import (
	"errors"
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

type DecomposeHandler struct {
	decomposeService ports.DecomposeService
}

func NewDecomposeHandler(decomposeService ports.DecomposeService) *DecomposeHandler {
	return &DecomposeHandler{decomposeService: decomposeService}
}

func (h *DecomposeHandler) Decompose(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.DecomposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	tasks, err := h.decomposeService.Decompose(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingAPIKey):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgMissingAPIKey, lang),
			)
		case errors.Is(err, domain.ErrDecomposeInProgress):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgDecomposeBusy, lang),
			)
		default:
			zap.L().Error("failed to decompose text", zap.Error(err))
			c.JSON(
				http.StatusBadGateway,
				apierrors.CreateError(http.StatusBadGateway, apierrors.MsgGenerationFailed, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.DecomposeResponse{
		Count: len(tasks),
		Tasks: mapper.ToTaskItems(tasks),
	})
}
