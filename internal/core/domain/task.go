package domain

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// ValidTaskStatus reports whether s is one of the four known statuses.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// Task is a single preparation item on the shared board. Tasks reference
// categories by bare name; nothing enforces that the name exists in the
// snapshot's category list.
type Task struct {
	ID           string     `json:"id"`
	Category     string     `json:"category"`
	Title        string     `json:"title"`
	Status       TaskStatus `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	Deadline     string     `json:"deadline,omitempty"`
	Assignee     string     `json:"assignee,omitempty"`
	LastModified int64      `json:"lastModified"`
}

// CreateTaskInput is the validated payload for a new task.
type CreateTaskInput struct {
	Category string
	Title    string
	Status   TaskStatus
	Notes    string
	Deadline string
	Assignee string
}

// TaskUpdate carries the fields of a partial task edit. Nil means the field
// is untouched; a pointer to the zero value clears it.
type TaskUpdate struct {
	Category *string
	Title    *string
	Status   *TaskStatus
	Notes    *string
	Deadline *string
	Assignee *string
}

// Empty reports whether the update would change nothing.
func (u TaskUpdate) Empty() bool {
	return u.Category == nil && u.Title == nil && u.Status == nil &&
		u.Notes == nil && u.Deadline == nil && u.Assignee == nil
}
