package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/dto"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/handlers"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/middleware"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/pkg/apierrors"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/pkg/translator"
)

func newDecomposeRouter(serviceMock *decomposeServiceMock) *gin.Engine {
	handler := handlers.NewDecomposeHandler(serviceMock)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.POST("/tasks/decompose", handler.Decompose)
	return router
}

func TestDecomposeHandler_Success(t *testing.T) {
	serviceMock := new(decomposeServiceMock)
	serviceMock.On("Decompose", mock.Anything, "明日までに牛乳を買って請求書を送る").Return(
		[]domain.Task{
			{
				ID:        "t2",
				Title:     "牛乳を買う",
				Category:  "買い物",
				Date:      "2026-09-01",
				CreatedAt: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
			},
			{
				ID:        "t3",
				Title:     "請求書を送る",
				Category:  "仕事",
				Date:      "2026-09-01",
				CreatedAt: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
			},
		},
		nil,
	).Once()

	router := newDecomposeRouter(serviceMock)

	body := strings.NewReader(`{"text":"明日までに牛乳を買って請求書を送る"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/decompose", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.DecomposeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 2, got.Count)
	require.Len(t, got.Tasks, 2)
	require.Equal(t, "牛乳を買う", got.Tasks[0].Title)
	require.Equal(t, "請求書を送る", got.Tasks[1].Title)
	serviceMock.AssertExpectations(t)
}

func TestDecomposeHandler_MissingAPIKey(t *testing.T) {
	serviceMock := new(decomposeServiceMock)
	serviceMock.On("Decompose", mock.Anything, "text").Return(nil, domain.ErrMissingAPIKey).Once()

	router := newDecomposeRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/decompose", strings.NewReader(`{"text":"text"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The Gemini API key is not configured. Add it in settings.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestDecomposeHandler_Busy(t *testing.T) {
	serviceMock := new(decomposeServiceMock)
	serviceMock.On("Decompose", mock.Anything, "text").Return(nil, domain.ErrDecomposeInProgress).Once()

	router := newDecomposeRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/decompose", strings.NewReader(`{"text":"text"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "A decomposition is already running. Wait for it to finish.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestDecomposeHandler_GenerationFailed(t *testing.T) {
	serviceMock := new(decomposeServiceMock)
	serviceMock.On("Decompose", mock.Anything, "text").Return(
		nil,
		&domain.GenerationError{Last: errors.New("model quota exhausted")},
	).Once()

	router := newDecomposeRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/decompose", strings.NewReader(`{"text":"text"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusBadGateway, got.ErrDetails.Code)
	serviceMock.AssertExpectations(t)
}

func TestDecomposeHandler_MissingText(t *testing.T) {
	serviceMock := new(decomposeServiceMock)

	router := newDecomposeRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/decompose", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "Decompose")
}
