// Package googletasks talks to the Google Tasks REST API with a bearer
// token obtained from a TokenSource. Only the operations the sync engine
// needs are implemented: default-list lookup, create, patch and list.
package googletasks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/ports"
)

const defaultBaseURL = "https://tasks.googleapis.com"

type Client struct {
	baseURL string
	tokens  ports.TokenSource
	client  *http.Client
}

type taskListsResponse struct {
	Items []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"items"`
}

type taskResource struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Notes  string `json:"notes,omitempty"`
	Due    string `json:"due,omitempty"`
	Status string `json:"status,omitempty"`
}

type tasksResponse struct {
	Items []taskResource `json:"items"`
}

var _ ports.RemoteTasks = (*Client)(nil)

func NewClient(baseURL string, tokens ports.TokenSource) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// DefaultListID resolves the account's first task list. An account
// without any list yields domain.ErrNoTaskList.
func (c *Client) DefaultListID(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/tasks/v1/users/@me/lists", nil)
	if err != nil {
		return "", err
	}

	var lists taskListsResponse
	if err := json.Unmarshal(body, &lists); err != nil {
		return "", fmt.Errorf("decoding task lists: %w", err)
	}
	if len(lists.Items) == 0 {
		return "", domain.ErrNoTaskList
	}
	return lists.Items[0].ID, nil
}

func (c *Client) CreateTask(ctx context.Context, listID string, task domain.RemoteCreate) (string, error) {
	payload, err := json.Marshal(taskResource{
		Title: task.Title,
		Notes: task.Notes,
		Due:   task.Due,
	})
	if err != nil {
		return "", err
	}

	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tasks/v1/lists/%s/tasks", listID), payload)
	if err != nil {
		return "", err
	}

	var created taskResource
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("decoding created task: %w", err)
	}
	return created.ID, nil
}

func (c *Client) PatchTask(ctx context.Context, listID, taskID string, patch domain.RemotePatch) error {
	fields := map[string]any{}
	if patch.Title != "" {
		fields["title"] = patch.Title
	}
	if patch.ClearDue {
		fields["due"] = nil
	} else if patch.Due != "" {
		fields["due"] = patch.Due
	}
	if patch.Status != "" {
		fields["status"] = patch.Status
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/v1/lists/%s/tasks/%s", listID, taskID), payload)
	return err
}

func (c *Client) ListTasks(ctx context.Context, listID string) ([]domain.RemoteTask, error) {
	path := fmt.Sprintf("/tasks/v1/lists/%s/tasks?showCompleted=true&showHidden=true", listID)
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var decoded tasksResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding tasks: %w", err)
	}

	tasks := make([]domain.RemoteTask, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		tasks = append(tasks, domain.RemoteTask{
			ID:     item.ID,
			Title:  item.Title,
			Notes:  item.Notes,
			Due:    item.Due,
			Status: item.Status,
		})
	}
	return tasks, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google tasks request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", domain.ErrRemoteAuth, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("google tasks %s %s: status %d: %s", method, path, resp.StatusCode, truncate(body))
	}
	return body, nil
}

func truncate(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
