package dto

type TaskItem struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
	Deadline     string `json:"deadline,omitempty"`
	Assignee     string `json:"assignee,omitempty"`
	LastModified int64  `json:"last_modified"`
}

type LogItem struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	TaskTitle string `json:"task_title,omitempty"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"`
}

type SnapshotResponse struct {
	Tasks         []TaskItem `json:"tasks"`
	Categories    []string   `json:"categories"`
	Logs          []LogItem  `json:"logs"`
	Version       int64      `json:"version"`
	LastUpdatedBy string     `json:"last_updated_by,omitempty"`
	Timestamp     int64      `json:"timestamp"`
}

type CreateTaskRequest struct {
	Category string  `json:"category" binding:"required,max=255"`
	Title    string  `json:"title" binding:"required,max=255"`
	Status   *string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Notes    *string `json:"notes" binding:"omitempty,max=65535"`
	Deadline *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Assignee *string `json:"assignee" binding:"omitempty,max=255"`
}

type UpdateTaskRequest struct {
	Category *string `json:"category" binding:"omitempty,max=255"`
	Title    *string `json:"title" binding:"omitempty,max=255"`
	Status   *string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Notes    *string `json:"notes" binding:"omitempty,max=65535"`
	Deadline *string `json:"deadline" binding:"omitempty"`
	Assignee *string `json:"assignee" binding:"omitempty,max=255"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type LoginRequest struct {
	Nickname string `json:"nickname" binding:"required,max=64"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Nickname string `json:"nickname"`
	Admin    bool   `json:"admin"`
}

type SyncStateResponse struct {
	Status       string `json:"status"`
	LastSyncedAt string `json:"last_synced_at,omitempty"`
	Version      int64  `json:"version"`
	Dirty        bool   `json:"dirty"`
}
