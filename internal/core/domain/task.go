package domain

import "time"

// Category a task falls back to when the model or the user supplies none.
const CategoryUncategorized = "その他"

// Title substituted when the model returns a draft without one.
const UntitledTask = "無題のタスク"

// DefaultCategories seeds the category list on first run.
var DefaultCategories = []string{"仕事", "個人", "買い物", "健康", "その他"}

// Task is a single to-do item. Date and Time are kept as the strings the
// user (or the model) supplied: Date is YYYY-MM-DD or empty for "no due
// date", Time is HH:mm or empty for "all day". Time is meaningless while
// Date is empty and is ignored in that case rather than rejected.
type Task struct {
	ID        string
	Title     string
	Category  string
	Date      string
	Time      string
	Completed bool
	RemoteID  string
	CreatedAt time.Time
}

// HasDate reports whether the task carries a due date.
func (t Task) HasDate() bool {
	return t.Date != ""
}

// TaskDraft is an unpersisted candidate task produced by decomposition.
type TaskDraft struct {
	Title    string
	Category string
	Date     string
	Time     string
}

// TaskUpdate is a partial field set merged into an existing task. A nil
// pointer means "leave unchanged"; a pointer to the empty string clears
// the field. ID and CreatedAt are not updatable.
type TaskUpdate struct {
	Title    *string
	Category *string
	Date     *string
	Time     *string
	RemoteID *string
}

// ViewMode selects how the collection is presented.
type ViewMode string

const (
	ViewModeCategory ViewMode = "category"
	ViewModeDate     ViewMode = "date"
)

// Drag element kinds, matching the two draggable things on screen.
const (
	DragContainer = "container"
	DragItem      = "item"
)

// Drag describes a completed drag-and-drop gesture. An empty OverID means
// the gesture was cancelled (no drop target).
type Drag struct {
	ActiveType string
	ActiveID   string
	OverType   string
	OverID     string
}

// SyncResult aggregates the outcome of a one-way sync run. Counts may
// undercount the input when individual remote writes fail.
type SyncResult struct {
	Created int
	Updated int
	Tasks   []Task
}

// RemoteCreate is the payload for creating a task in the remote service.
// Due carries the date component only (YYYY-MM-DD); time-of-day is not
// transmitted.
type RemoteCreate struct {
	Title string
	Notes string
	Due   string
}

// RemotePatch is the payload for patching a remote task. Due is sent when
// non-empty, explicitly nulled when ClearDue is set, and omitted
// otherwise. An empty Title or Status is omitted.
type RemotePatch struct {
	Title    string
	Due      string
	ClearDue bool
	Status   string
}

// RemoteStatusCompleted marks a remote task done.
const RemoteStatusCompleted = "completed"

// SyncNotes is the annotation attached to every task we create remotely.
const SyncNotes = "Created by AI ToDo App"

// RemoteTask is a record read back from the remote service.
type RemoteTask struct {
	ID     string
	Title  string
	Notes  string
	Due    string
	Status string
}
