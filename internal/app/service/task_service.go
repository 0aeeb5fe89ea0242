package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/organize"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
)

// TaskService is the single owner of the task collection and the category
// order. State lives in memory, newest task first, and is written back to
// the repository after every mutation. A mutex serializes writers; the
// browser original relied on a single event loop for the same guarantee.
type TaskService struct {
	repo ports.StateRepository

	mu         sync.Mutex
	tasks      []domain.Task
	categories []string

	newID func() string
	now   func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

// NewTaskService loads persisted state. A store without a category list
// gets the default set.
func NewTaskService(ctx context.Context, repo ports.StateRepository) (*TaskService, error) {
	tasks, err := repo.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := repo.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}

	s := &TaskService{
		repo:       repo,
		tasks:      tasks,
		categories: categories,
		newID:      uuid.NewString,
		now:        time.Now,
	}
	if len(s.categories) == 0 {
		s.categories = append([]string{}, domain.DefaultCategories...)
		if err := repo.SaveCategories(ctx, s.categories); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotTasks(), nil
}

func (s *TaskService) Create(ctx context.Context, title string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.Task{
		ID:        s.newID(),
		Title:     title,
		Category:  domain.CategoryUncategorized,
		CreatedAt: s.now(),
	}
	s.tasks = append([]domain.Task{task}, s.tasks...)

	if err := s.repo.SaveTasks(ctx, s.tasks); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// CreateMany appends a decomposition batch: drafts keep their relative
// order and all land ahead of the existing tasks. Category names not yet
// known are added to the category list in order of first appearance.
func (s *TaskService) CreateMany(ctx context.Context, drafts []domain.TaskDraft) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]bool, len(s.categories))
	for _, name := range s.categories {
		known[name] = true
	}

	categoriesChanged := false
	created := make([]domain.Task, 0, len(drafts))
	for _, draft := range drafts {
		category := draft.Category
		if category == "" {
			category = domain.CategoryUncategorized
		}
		if !known[category] {
			known[category] = true
			s.categories = append(s.categories, category)
			categoriesChanged = true
		}
		created = append(created, domain.Task{
			ID:        s.newID(),
			Title:     draft.Title,
			Category:  category,
			Date:      draft.Date,
			Time:      draft.Time,
			CreatedAt: s.now(),
		})
	}

	s.tasks = append(append([]domain.Task{}, created...), s.tasks...)

	if err := s.repo.SaveTasks(ctx, s.tasks); err != nil {
		return nil, err
	}
	if categoriesChanged {
		if err := s.repo.SaveCategories(ctx, s.categories); err != nil {
			return nil, err
		}
	}
	return created, nil
}

// ToggleCompleted flips the completed flag. An unknown id is a no-op.
func (s *TaskService) ToggleCompleted(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.repo.SaveTasks(ctx, s.tasks)
		}
	}
	return nil
}

// Update merges the non-nil fields into the task. ID and CreatedAt are
// never touched. An unknown id is a no-op.
func (s *TaskService) Update(ctx context.Context, id string, update domain.TaskUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if update.Title != nil {
			s.tasks[i].Title = *update.Title
		}
		if update.Category != nil {
			s.tasks[i].Category = *update.Category
		}
		if update.Date != nil {
			s.tasks[i].Date = *update.Date
		}
		if update.Time != nil {
			s.tasks[i].Time = *update.Time
		}
		if update.RemoteID != nil {
			s.tasks[i].RemoteID = *update.RemoteID
		}
		return s.repo.SaveTasks(ctx, s.tasks)
	}
	return nil
}

// Delete removes the task. Deleting an absent id succeeds.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.repo.SaveTasks(ctx, s.tasks)
		}
	}
	return nil
}

// Reorder replaces the collection sequence with the permutation named by
// orderedIDs. IDs not present in the collection are ignored; tasks not
// named keep their relative order after the named ones.
func (s *TaskService) Reorder(ctx context.Context, orderedIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]domain.Task, len(s.tasks))
	for _, task := range s.tasks {
		byID[task.ID] = task
	}

	next := make([]domain.Task, 0, len(s.tasks))
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		task, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		next = append(next, task)
	}
	for _, task := range s.tasks {
		if !seen[task.ID] {
			next = append(next, task)
		}
	}

	s.tasks = next
	return s.repo.SaveTasks(ctx, s.tasks)
}

// Move changes a task's category. An unknown id is a no-op.
func (s *TaskService) Move(ctx context.Context, id, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Category = category
			return s.repo.SaveTasks(ctx, s.tasks)
		}
	}
	return nil
}

// ApplyDrag resolves a drag gesture against the current state and
// persists whatever it changed.
func (s *TaskService) ApplyDrag(ctx context.Context, drag domain.Drag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, categories, changed := organize.Resolve(drag, s.tasks, s.categories)
	if !changed {
		return nil
	}

	s.tasks = tasks
	s.categories = categories
	if err := s.repo.SaveTasks(ctx, s.tasks); err != nil {
		return err
	}
	return s.repo.SaveCategories(ctx, s.categories)
}

// BulkSchedule assigns a date and/or time to every task in ids, leaving
// whichever of the two was not supplied unchanged. Returns the number of
// tasks touched.
func (s *TaskService) BulkSchedule(ctx context.Context, ids []string, date, timeOfDay string) (int, error) {
	if date == "" && timeOfDay == "" {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	count := 0
	for i := range s.tasks {
		if !wanted[s.tasks[i].ID] {
			continue
		}
		if date != "" {
			s.tasks[i].Date = date
		}
		if timeOfDay != "" {
			s.tasks[i].Time = timeOfDay
		}
		count++
	}
	if count == 0 {
		return 0, nil
	}
	return count, s.repo.SaveTasks(ctx, s.tasks)
}

// MergeRemoteIDs records the remote identifiers assigned during a sync
// run and returns the updated collection.
func (s *TaskService) MergeRemoteIDs(ctx context.Context, remoteIDs map[string]string) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(remoteIDs) > 0 {
		for i := range s.tasks {
			if remoteID, ok := remoteIDs[s.tasks[i].ID]; ok {
				s.tasks[i].RemoteID = remoteID
			}
		}
		if err := s.repo.SaveTasks(ctx, s.tasks); err != nil {
			return nil, err
		}
	}
	return s.snapshotTasks(), nil
}

func (s *TaskService) Categories(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.categories...), nil
}

// AddCategory appends a category. Empty names and duplicates are no-ops.
func (s *TaskService) AddCategory(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing == name {
			return nil
		}
	}
	s.categories = append(s.categories, name)
	return s.repo.SaveCategories(ctx, s.categories)
}

// ReorderCategories replaces the category order with names, which must be
// a permutation of the current list; anything else is rejected by keeping
// the current order.
func (s *TaskService) ReorderCategories(ctx context.Context, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isPermutation(s.categories, names) {
		return nil
	}
	s.categories = append([]string{}, names...)
	return s.repo.SaveCategories(ctx, s.categories)
}

func (s *TaskService) ByCategory(ctx context.Context) ([]organize.CategoryGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return organize.ByCategory(s.snapshotTasks(), s.categories), nil
}

func (s *TaskService) ByDate(ctx context.Context) (organize.DateGroups, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return organize.ByDate(s.snapshotTasks(), s.now()), nil
}

func (s *TaskService) snapshotTasks() []domain.Task {
	return append([]domain.Task{}, s.tasks...)
}

func isPermutation(current, proposed []string) bool {
	if len(current) != len(proposed) {
		return false
	}
	counts := make(map[string]int, len(current))
	for _, name := range current {
		counts[name]++
	}
	for _, name := range proposed {
		counts[name]--
		if counts[name] < 0 {
			return false
		}
	}
	return true
}
