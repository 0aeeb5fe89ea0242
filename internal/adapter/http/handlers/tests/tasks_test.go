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

func newTaskRouter(serviceMock *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.GET("/tasks", handler.ListTasks)
	api.POST("/tasks", handler.CreateTask)
	api.PATCH("/tasks/:id", handler.UpdateTask)
	api.POST("/tasks/:id/toggle", handler.ToggleTask)
	api.DELETE("/tasks/:id", handler.DeleteTask)
	api.PUT("/tasks/order", handler.ReorderTasks)
	api.POST("/tasks/bulk-schedule", handler.BulkSchedule)
	api.POST("/tasks/drag", handler.DragEnd)
	return router
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	createdAt := time.Date(2026, 8, 30, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything).Return(
		[]domain.Task{
			{
				ID:        "t1",
				Title:     "牛乳を買う",
				Category:  "買い物",
				Date:      "2026-08-31",
				Time:      "09:00",
				CreatedAt: createdAt,
			},
			{
				ID:        "t2",
				Title:     "請求書を送る",
				Category:  "仕事",
				Completed: true,
				RemoteID:  "g-77",
				CreatedAt: createdAt,
			},
		},
		nil,
	).Once()

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)

	require.Equal(t, "t1", got[0].ID)
	require.Equal(t, "牛乳を買う", got[0].Title)
	require.Equal(t, "買い物", got[0].Category)
	require.Equal(t, "2026-08-31", got[0].Date)
	require.Equal(t, "09:00", got[0].Time)
	require.False(t, got[0].Completed)
	require.Equal(t, "2026-08-30T10:20:30Z", got[0].CreatedAt)

	require.Equal(t, "t2", got[1].ID)
	require.True(t, got[1].Completed)
	require.Equal(t, "g-77", got[1].RemoteID)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything).Return(nil, errors.New("db is down")).Once()

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Could not list tasks.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, "牛乳を買う").Return(
		domain.Task{
			ID:        "t1",
			Title:     "牛乳を買う",
			Category:  domain.CategoryUncategorized,
			CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		},
		nil,
	).Once()

	router := newTaskRouter(serviceMock)

	body := strings.NewReader(`{"title":"牛乳を買う"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "t1", got.ID)
	require.Equal(t, domain.CategoryUncategorized, got.Category)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload.", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "Create")
}

func TestTaskHandler_UpdateTask_ClearsDateWithNull(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Update", mock.Anything, "t1", mock.MatchedBy(func(update domain.TaskUpdate) bool {
		return update.Date != nil && *update.Date == "" && update.Title == nil
	})).Return(nil).Once()

	router := newTaskRouter(serviceMock)

	body := strings.NewReader(`{"date":null}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/t1", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_InvalidDate(t *testing.T) {
	serviceMock := new(taskServiceMock)

	router := newTaskRouter(serviceMock)

	body := strings.NewReader(`{"date":"31/08/2026"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/t1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "Update")
}

func TestTaskHandler_ToggleTask(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ToggleCompleted", mock.Anything, "t1").Return(nil).Once()

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/t1/toggle", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, "t1").Return(nil).Once()

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/t1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ReorderTasks(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Reorder", mock.Anything, []string{"t2", "t1"}).Return(nil).Once()

	router := newTaskRouter(serviceMock)

	body := strings.NewReader(`{"ids":["t2","t1"]}`)
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/order", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_BulkSchedule_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("BulkSchedule", mock.Anything, []string{"t1", "t2"}, "2026-09-01", "08:30").
		Return(2, nil).Once()

	router := newTaskRouter(serviceMock)

	body := strings.NewReader(`{"ids":["t1","t2"],"date":"2026-09-01","time":"08:30"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/bulk-schedule", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.BulkScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 2, got.Updated)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_BulkSchedule_BadDate(t *testing.T) {
	serviceMock := new(taskServiceMock)

	router := newTaskRouter(serviceMock)

	body := strings.NewReader(`{"ids":["t1"],"date":"tomorrow"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/bulk-schedule", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "BulkSchedule")
}

func TestTaskHandler_DragEnd(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ApplyDrag", mock.Anything, domain.Drag{
		ActiveType: domain.DragItem,
		ActiveID:   "t1",
		OverType:   domain.DragContainer,
		OverID:     "仕事",
	}).Return(nil).Once()

	router := newTaskRouter(serviceMock)

	body := strings.NewReader(`{"active_type":"item","active_id":"t1","over_type":"container","over_id":"仕事"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/drag", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
