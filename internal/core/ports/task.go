package ports

import (
	"context"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/organize"
)

// Setting keys persisted through the state repository.
const (
	SettingViewMode      = "view-mode"
	SettingGeminiAPIKey  = "gemini-api-key"
	SettingClientID      = "google-client-id"
	SettingAccessToken   = "google-access-token"
	SettingTokenExpiry   = "google-token-expiry"
)

// StateRepository is the durable key-value storage behind the service
// layer. Loads return zero values (never an error) for keys that were
// never written.
type StateRepository interface {
	LoadTasks(ctx context.Context) ([]domain.Task, error)
	SaveTasks(ctx context.Context, tasks []domain.Task) error
	LoadCategories(ctx context.Context) ([]string, error)
	SaveCategories(ctx context.Context, categories []string) error
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// TextGenerator is a prompt-completion call against one model candidate.
type TextGenerator interface {
	GenerateContent(ctx context.Context, model, apiKey, prompt string) (string, error)
}

// RemoteTasks is the outbound surface of the external task service.
type RemoteTasks interface {
	DefaultListID(ctx context.Context) (string, error)
	CreateTask(ctx context.Context, listID string, task domain.RemoteCreate) (string, error)
	PatchTask(ctx context.Context, listID, taskID string, patch domain.RemotePatch) error
	ListTasks(ctx context.Context, listID string) ([]domain.RemoteTask, error)
}

// TokenSource yields a valid bearer token or domain.ErrRemoteAuth.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, title string) (domain.Task, error)
	CreateMany(ctx context.Context, drafts []domain.TaskDraft) ([]domain.Task, error)
	ToggleCompleted(ctx context.Context, id string) error
	Update(ctx context.Context, id string, update domain.TaskUpdate) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, orderedIDs []string) error
	Move(ctx context.Context, id, category string) error
	ApplyDrag(ctx context.Context, drag domain.Drag) error
	BulkSchedule(ctx context.Context, ids []string, date, timeOfDay string) (int, error)
	MergeRemoteIDs(ctx context.Context, remoteIDs map[string]string) ([]domain.Task, error)
	Categories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) error
	ReorderCategories(ctx context.Context, names []string) error
	ByCategory(ctx context.Context) ([]organize.CategoryGroup, error)
	ByDate(ctx context.Context) (organize.DateGroups, error)
}

type DecomposeService interface {
	Decompose(ctx context.Context, text string) ([]domain.Task, error)
}

type SyncService interface {
	Sync(ctx context.Context) (domain.SyncResult, error)
}

type SettingsService interface {
	Settings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, s domain.SettingsUpdate) error
	ViewMode(ctx context.Context) (domain.ViewMode, error)
	SetViewMode(ctx context.Context, mode domain.ViewMode) error
}
