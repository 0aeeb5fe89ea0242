package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/organize"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, title string) (domain.Task, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateMany(ctx context.Context, drafts []domain.TaskDraft) ([]domain.Task, error) {
	args := m.Called(ctx, drafts)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ToggleCompleted(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskServiceMock) Update(ctx context.Context, id string, update domain.TaskUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *taskServiceMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskServiceMock) Reorder(ctx context.Context, orderedIDs []string) error {
	args := m.Called(ctx, orderedIDs)
	return args.Error(0)
}

func (m *taskServiceMock) Move(ctx context.Context, id, category string) error {
	args := m.Called(ctx, id, category)
	return args.Error(0)
}

func (m *taskServiceMock) ApplyDrag(ctx context.Context, drag domain.Drag) error {
	args := m.Called(ctx, drag)
	return args.Error(0)
}

func (m *taskServiceMock) BulkSchedule(ctx context.Context, ids []string, date, timeOfDay string) (int, error) {
	args := m.Called(ctx, ids, date, timeOfDay)
	return args.Int(0), args.Error(1)
}

func (m *taskServiceMock) MergeRemoteIDs(ctx context.Context, remoteIDs map[string]string) ([]domain.Task, error) {
	args := m.Called(ctx, remoteIDs)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	var categories []string
	if value := args.Get(0); value != nil {
		categories = value.([]string)
	}
	return categories, args.Error(1)
}

func (m *taskServiceMock) AddCategory(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *taskServiceMock) ReorderCategories(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

func (m *taskServiceMock) ByCategory(ctx context.Context) ([]organize.CategoryGroup, error) {
	args := m.Called(ctx)

	var groups []organize.CategoryGroup
	if value := args.Get(0); value != nil {
		groups = value.([]organize.CategoryGroup)
	}
	return groups, args.Error(1)
}

func (m *taskServiceMock) ByDate(ctx context.Context) (organize.DateGroups, error) {
	args := m.Called(ctx)
	return args.Get(0).(organize.DateGroups), args.Error(1)
}

type decomposeServiceMock struct {
	mock.Mock
}

func (m *decomposeServiceMock) Decompose(ctx context.Context, text string) ([]domain.Task, error) {
	args := m.Called(ctx, text)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

type syncServiceMock struct {
	mock.Mock
}

func (m *syncServiceMock) Sync(ctx context.Context) (domain.SyncResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SyncResult), args.Error(1)
}

type settingsServiceMock struct {
	mock.Mock
}

func (m *settingsServiceMock) Settings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *settingsServiceMock) SaveSettings(ctx context.Context, s domain.SettingsUpdate) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *settingsServiceMock) ViewMode(ctx context.Context) (domain.ViewMode, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ViewMode), args.Error(1)
}

func (m *settingsServiceMock) SetViewMode(ctx context.Context, mode domain.ViewMode) error {
	args := m.Called(ctx, mode)
	return args.Error(0)
}
