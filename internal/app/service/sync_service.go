package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
)

// SyncService pushes local state into the remote task service, one way.
// Remote-side edits and deletions are never pulled back; the only remote
// data recorded locally is the identifier assigned at creation.
type SyncService struct {
	tasks  ports.TaskService
	remote ports.RemoteTasks

	busy sync.Mutex
}

var _ ports.SyncService = (*SyncService)(nil)

func NewSyncService(tasks ports.TaskService, remote ports.RemoteTasks) *SyncService {
	return &SyncService{tasks: tasks, remote: remote}
}

// Sync runs one reconciliation pass:
//
//  1. resolve the default remote list (failure aborts the run),
//  2. create every incomplete task without a remote id,
//  3. patch title and due date of every incomplete task with one,
//  4. push completed status for every completed task with a remote id,
//     without checking whether the remote side already has it.
//
// Individual remote write failures are logged and skipped, so the counts
// can come in under the number of eligible tasks. Only one sync runs at
// a time.
func (s *SyncService) Sync(ctx context.Context) (domain.SyncResult, error) {
	if !s.busy.TryLock() {
		return domain.SyncResult{}, domain.ErrSyncInProgress
	}
	defer s.busy.Unlock()

	listID, err := s.remote.DefaultListID(ctx)
	if err != nil {
		return domain.SyncResult{}, err
	}

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return domain.SyncResult{}, err
	}

	created := 0
	remoteIDs := make(map[string]string)
	for _, task := range tasks {
		if task.Completed || task.RemoteID != "" {
			continue
		}
		title := strings.TrimSpace(task.Title)
		if title == "" {
			zap.L().Warn("skipping task with empty title", zap.String("task_id", task.ID))
			continue
		}

		payload := domain.RemoteCreate{Title: title, Notes: domain.SyncNotes}
		if task.HasDate() {
			payload.Due = task.Date
		}

		remoteID, err := s.remote.CreateTask(ctx, listID, payload)
		if err != nil {
			zap.L().Error("failed to create remote task", zap.String("task_id", task.ID), zap.Error(err))
			continue
		}
		remoteIDs[task.ID] = remoteID
		created++
	}

	updated := 0
	for _, task := range tasks {
		if task.Completed || task.RemoteID == "" {
			continue
		}

		patch := domain.RemotePatch{Title: task.Title}
		if task.HasDate() {
			patch.Due = task.Date
		} else {
			patch.ClearDue = true
		}

		if err := s.remote.PatchTask(ctx, listID, task.RemoteID, patch); err != nil {
			zap.L().Error("failed to update remote task", zap.String("remote_id", task.RemoteID), zap.Error(err))
			continue
		}
		updated++
	}

	merged, err := s.tasks.MergeRemoteIDs(ctx, remoteIDs)
	if err != nil {
		return domain.SyncResult{}, err
	}

	for _, task := range merged {
		if task.RemoteID == "" || !task.Completed {
			continue
		}
		// Pushed blindly: remote completion state is never read, so a
		// redundant patch is expected and harmless.
		patch := domain.RemotePatch{Status: domain.RemoteStatusCompleted}
		if err := s.remote.PatchTask(ctx, listID, task.RemoteID, patch); err != nil {
			zap.L().Error("failed to push completed status", zap.String("remote_id", task.RemoteID), zap.Error(err))
		}
	}

	return domain.SyncResult{Created: created, Updated: updated, Tasks: merged}, nil
}
