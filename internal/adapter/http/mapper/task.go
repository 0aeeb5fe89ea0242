package mapper

import (
	"time"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/dto"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/organize"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Category:  task.Category,
		Date:      task.Date,
		Time:      task.Time,
		Completed: task.Completed,
		RemoteID:  task.RemoteID,
	}
	if !task.CreatedAt.IsZero() {
		item.CreatedAt = task.CreatedAt.UTC().Format(time.RFC3339)
	}
	return item
}

func ToCategoryGroups(groups []organize.CategoryGroup) []dto.CategoryGroup {
	items := make([]dto.CategoryGroup, 0, len(groups))
	for _, group := range groups {
		items = append(items, dto.CategoryGroup{
			Name:  group.Name,
			Tasks: ToTaskItems(group.Tasks),
		})
	}
	return items
}

func ToDateView(groups organize.DateGroups) dto.DateView {
	return dto.DateView{
		Overdue:  ToTaskItems(groups.Overdue),
		Today:    ToTaskItems(groups.Today),
		Tomorrow: ToTaskItems(groups.Tomorrow),
		Later:    ToTaskItems(groups.Later),
		NoDate:   ToTaskItems(groups.NoDate),
	}
}

func ToSyncResponse(result domain.SyncResult) dto.SyncResponse {
	return dto.SyncResponse{
		Created: result.Created,
		Updated: result.Updated,
		Tasks:   ToTaskItems(result.Tasks),
	}
}
