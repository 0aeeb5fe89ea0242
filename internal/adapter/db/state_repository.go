package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
)

const (
	keyTasks      = "tasks"
	keyCategories = "categories"

	getQuery = `SELECT value FROM kv WHERE key = ?;`
	setQuery = `INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`
)

// StateRepository persists the whole collection and every setting as JSON
// blobs in a kv table. The tasks and categories keys each hold one value
// written as a unit after every mutation.
type StateRepository struct {
	db *sqlx.DB
}

// taskRecord is the stored shape of a task, kept compatible with the
// browser-era localStorage payloads so an exported collection imports
// cleanly.
type taskRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Completed bool   `json:"completed"`
	RemoteID  string `json:"googleTaskId,omitempty"`
	CreatedAt string `json:"createdAt"`
}

var _ ports.StateRepository = (*StateRepository)(nil)

func NewStateRepository(db *sqlx.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	raw, found, err := r.get(ctx, keyTasks)
	if err != nil || !found {
		return nil, err
	}

	var records []taskRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		tasks = append(tasks, mapRecordToDomainTask(record))
	}
	return tasks, nil
}

func (r *StateRepository) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, mapDomainTaskToRecord(task))
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.set(ctx, keyTasks, string(raw))
}

func (r *StateRepository) LoadCategories(ctx context.Context) ([]string, error) {
	raw, found, err := r.get(ctx, keyCategories)
	if err != nil || !found {
		return nil, err
	}

	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *StateRepository) SaveCategories(ctx context.Context, categories []string) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return r.set(ctx, keyCategories, string(raw))
}

func (r *StateRepository) GetSetting(ctx context.Context, key string) (string, error) {
	value, _, err := r.get(ctx, key)
	return value, err
}

func (r *StateRepository) SetSetting(ctx context.Context, key, value string) error {
	return r.set(ctx, key, value)
}

func (r *StateRepository) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value, getQuery, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *StateRepository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, setQuery, key, value)
	return err
}

func mapRecordToDomainTask(record taskRecord) domain.Task {
	task := domain.Task{
		ID:        record.ID,
		Title:     record.Title,
		Category:  record.Category,
		Date:      record.Date,
		Time:      record.Time,
		Completed: record.Completed,
		RemoteID:  record.RemoteID,
	}
	if record.CreatedAt != "" {
		if createdAt, err := time.Parse(time.RFC3339, record.CreatedAt); err == nil {
			task.CreatedAt = createdAt
		}
	}
	return task
}

func mapDomainTaskToRecord(task domain.Task) taskRecord {
	record := taskRecord{
		ID:        task.ID,
		Title:     task.Title,
		Category:  task.Category,
		Date:      task.Date,
		Time:      task.Time,
		Completed: task.Completed,
		RemoteID:  task.RemoteID,
	}
	if !task.CreatedAt.IsZero() {
		record.CreatedAt = task.CreatedAt.UTC().Format(time.RFC3339)
	}
	return record
}
