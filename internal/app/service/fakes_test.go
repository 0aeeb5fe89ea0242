package service_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
)

// memoryRepository is an in-memory stand-in for the sqlite-backed state
// repository.
type memoryRepository struct {
	mu         sync.Mutex
	tasks      []domain.Task
	categories []string
	settings   map[string]string

	saveTaskCalls int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{settings: map[string]string{}}
}

func (m *memoryRepository) LoadTasks(context.Context) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Task{}, m.tasks...), nil
}

func (m *memoryRepository) SaveTasks(_ context.Context, tasks []domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append([]domain.Task{}, tasks...)
	m.saveTaskCalls++
	return nil
}

func (m *memoryRepository) LoadCategories(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.categories...), nil
}

func (m *memoryRepository) SaveCategories(_ context.Context, categories []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append([]string{}, categories...)
	return nil
}

func (m *memoryRepository) GetSetting(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings[key], nil
}

func (m *memoryRepository) SetSetting(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[key] = value
	return nil
}

type generatorMock struct {
	mock.Mock
}

func (m *generatorMock) GenerateContent(ctx context.Context, model, apiKey, prompt string) (string, error) {
	args := m.Called(ctx, model, apiKey, prompt)
	return args.String(0), args.Error(1)
}

type remoteTasksMock struct {
	mock.Mock
}

func (m *remoteTasksMock) DefaultListID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *remoteTasksMock) CreateTask(ctx context.Context, listID string, task domain.RemoteCreate) (string, error) {
	args := m.Called(ctx, listID, task)
	return args.String(0), args.Error(1)
}

func (m *remoteTasksMock) PatchTask(ctx context.Context, listID, taskID string, patch domain.RemotePatch) error {
	args := m.Called(ctx, listID, taskID, patch)
	return args.Error(0)
}

func (m *remoteTasksMock) ListTasks(ctx context.Context, listID string) ([]domain.RemoteTask, error) {
	args := m.Called(ctx, listID)

	var tasks []domain.RemoteTask
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.RemoteTask)
	}
	return tasks, args.Error(1)
}
