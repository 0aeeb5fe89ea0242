package dto

type TaskItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Completed bool   `json:"completed"`
	RemoteID  string `json:"remote_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type CreateTaskRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type UpdateTaskRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=255"`
	Category *string `json:"category" binding:"omitempty,max=100"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
}

type DecomposeRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

type DecomposeResponse struct {
	Count int        `json:"count"`
	Tasks []TaskItem `json:"tasks"`
}

type ReorderTasksRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type BulkScheduleRequest struct {
	IDs  []string `json:"ids" binding:"required,min=1"`
	Date string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time string   `json:"time" binding:"omitempty,datetime=15:04"`
}

type BulkScheduleResponse struct {
	Updated int `json:"updated"`
}

type DragRequest struct {
	ActiveType string `json:"active_type" binding:"required,oneof=container item"`
	ActiveID   string `json:"active_id" binding:"required"`
	OverType   string `json:"over_type" binding:"omitempty,oneof=container item"`
	OverID     string `json:"over_id"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CategoryOrderRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

type CategoryGroup struct {
	Name  string     `json:"name"`
	Tasks []TaskItem `json:"tasks"`
}

type DateView struct {
	Overdue  []TaskItem `json:"overdue"`
	Today    []TaskItem `json:"today"`
	Tomorrow []TaskItem `json:"tomorrow"`
	Later    []TaskItem `json:"later"`
	NoDate   []TaskItem `json:"no_date"`
}

type ViewModeItem struct {
	Mode string `json:"mode"`
}

type UpdateViewModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=category date"`
}

type SyncResponse struct {
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Tasks   []TaskItem `json:"tasks"`
}

type SettingsItem struct {
	GeminiAPIKey   string `json:"gemini_api_key"`
	GoogleClientID string `json:"google_client_id"`
	HasAccessToken bool   `json:"has_access_token"`
}

type UpdateSettingsRequest struct {
	GeminiAPIKey   *string `json:"gemini_api_key"`
	GoogleClientID *string `json:"google_client_id"`
	AccessToken    *string `json:"access_token"`
}
