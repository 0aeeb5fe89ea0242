// Package organize projects the task collection into the two display
// views and resolves drag-and-drop gestures into new collection states.
// Everything here is pure: inputs are never mutated.
package organize

import (
	"sort"
	"time"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
)

const dateLayout = "2006-01-02"

// CategoryGroup is one category's tasks in collection order.
type CategoryGroup struct {
	Name  string
	Tasks []domain.Task
}

// DateGroups is the five-bucket date view. Every task lands in exactly
// one bucket.
type DateGroups struct {
	Overdue  []domain.Task
	Today    []domain.Task
	Tomorrow []domain.Task
	Later    []domain.Task
	NoDate   []domain.Task
}

// ByCategory groups tasks by category in the category list's display
// order. Category names that appear on tasks but not in the list are
// appended after it, in order of first encounter. Tasks with an empty
// category fall into the uncategorized group.
func ByCategory(tasks []domain.Task, categories []string) []CategoryGroup {
	order := make([]string, 0, len(categories))
	grouped := make(map[string][]domain.Task, len(categories))
	for _, name := range categories {
		order = append(order, name)
		grouped[name] = []domain.Task{}
	}

	for _, task := range tasks {
		name := task.Category
		if name == "" {
			name = domain.CategoryUncategorized
		}
		if _, known := grouped[name]; !known {
			order = append(order, name)
		}
		grouped[name] = append(grouped[name], task)
	}

	groups := make([]CategoryGroup, 0, len(order))
	for _, name := range order {
		groups = append(groups, CategoryGroup{Name: name, Tasks: grouped[name]})
	}
	return groups
}

// ByDate partitions tasks into the five date buckets relative to today.
// The whole set is sorted by (date, time) first, dateless tasks after all
// dated ones and timeless tasks after timed ones on the same date; the
// HH:mm format makes the lexical comparison chronological.
func ByDate(tasks []domain.Task, today time.Time) DateGroups {
	todayStr := today.Format(dateLayout)
	tomorrowStr := today.AddDate(0, 0, 1).Format(dateLayout)

	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Date == "" || b.Date == "" {
			return b.Date == "" && a.Date != ""
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Time == "" || b.Time == "" {
			return b.Time == "" && a.Time != ""
		}
		return a.Time < b.Time
	})

	groups := DateGroups{
		Overdue:  []domain.Task{},
		Today:    []domain.Task{},
		Tomorrow: []domain.Task{},
		Later:    []domain.Task{},
		NoDate:   []domain.Task{},
	}
	for _, task := range sorted {
		switch {
		case task.Date == "":
			groups.NoDate = append(groups.NoDate, task)
		case task.Date < todayStr:
			groups.Overdue = append(groups.Overdue, task)
		case task.Date == todayStr:
			groups.Today = append(groups.Today, task)
		case task.Date == tomorrowStr:
			groups.Tomorrow = append(groups.Tomorrow, task)
		default:
			groups.Later = append(groups.Later, task)
		}
	}
	return groups
}

// Resolve applies a drag gesture to the collection and returns the
// resulting task sequence and category order. The returned bool is false
// when the gesture changes nothing (cancelled drop, unknown ids, drop on
// self, drop on the current category).
func Resolve(drag domain.Drag, tasks []domain.Task, categories []string) ([]domain.Task, []string, bool) {
	if drag.OverID == "" {
		return tasks, categories, false
	}

	if drag.ActiveType == domain.DragContainer && drag.OverType == domain.DragContainer {
		if drag.ActiveID == drag.OverID {
			return tasks, categories, false
		}
		from := indexOf(categories, drag.ActiveID)
		to := indexOf(categories, drag.OverID)
		if from < 0 || to < 0 {
			return tasks, categories, false
		}
		return tasks, moveString(categories, from, to), true
	}

	active := findTask(tasks, drag.ActiveID)
	if active < 0 {
		return tasks, categories, false
	}

	if drag.OverType == domain.DragContainer {
		if tasks[active].Category == drag.OverID {
			return tasks, categories, false
		}
		return recategorize(tasks, active, drag.OverID), categories, true
	}

	over := findTask(tasks, drag.OverID)
	if over < 0 || active == over {
		return tasks, categories, false
	}
	if tasks[active].Category != tasks[over].Category {
		return recategorize(tasks, active, tasks[over].Category), categories, true
	}
	return moveTask(tasks, active, over), categories, true
}

func findTask(tasks []domain.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}

func recategorize(tasks []domain.Task, index int, category string) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	out[index].Category = category
	return out
}

// moveTask splices the element at from out of the sequence and reinserts
// it at to, the same semantics as dnd-kit's arrayMove.
func moveTask(tasks []domain.Task, from, to int) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	out = append(out, tasks...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]domain.Task{moved}, out[to:]...)...)
	return out
}

func moveString(values []string, from, to int) []string {
	out := make([]string, 0, len(values))
	out = append(out, values...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]string{moved}, out[to:]...)...)
	return out
}
