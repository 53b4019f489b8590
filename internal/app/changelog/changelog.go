// Package changelog turns high-level board intents into next snapshot
// collections plus a human-readable activity log entry. Everything here is a
// pure function over value slices; the sync engine owns all state.
package changelog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// NewEntry builds a log entry for a task-level event.
func NewEntry(taskID, taskTitle, actor, action string) domain.ActivityLogEntry {
	return domain.ActivityLogEntry{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		TaskTitle: taskTitle,
		Actor:     actor,
		Action:    action,
		Timestamp: nowMillis(),
	}
}

// NewSystemEntry builds a log entry for a board-wide event such as creating
// a category.
func NewSystemEntry(actor, action string) domain.ActivityLogEntry {
	return NewEntry(domain.SystemTaskID, "", actor, action)
}

// AppendLog prepends entry so the log reads newest-first, truncating to
// domain.MaxLogEntries. The input slice is not modified.
func AppendLog(logs []domain.ActivityLogEntry, entry domain.ActivityLogEntry) []domain.ActivityLogEntry {
	next := make([]domain.ActivityLogEntry, 0, len(logs)+1)
	next = append(next, entry)
	next = append(next, logs...)
	if len(next) > domain.MaxLogEntries {
		next = next[:domain.MaxLogEntries]
	}
	return next
}

// ApplyTaskUpdate returns a copy of tasks with the update merged into the
// task matching id and its LastModified refreshed. A missing id is a no-op,
// not an error: the UI may race a concurrent deletion, and the second return
// value lets callers detect that without crashing.
func ApplyTaskUpdate(tasks []domain.Task, id string, update domain.TaskUpdate) ([]domain.Task, bool) {
	found := false
	next := make([]domain.Task, len(tasks))
	for i, task := range tasks {
		if task.ID == id {
			found = true
			task = mergeUpdate(task, update)
			task.LastModified = nowMillis()
		}
		next[i] = task
	}
	if !found {
		return tasks, false
	}
	return next, true
}

func mergeUpdate(task domain.Task, update domain.TaskUpdate) domain.Task {
	if update.Category != nil {
		task.Category = *update.Category
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Notes != nil {
		task.Notes = *update.Notes
	}
	if update.Deadline != nil {
		task.Deadline = *update.Deadline
	}
	if update.Assignee != nil {
		task.Assignee = *update.Assignee
	}
	return task
}

// DescribeTaskUpdate produces the single phrase the activity log shows for
// an edit. When several fields change at once the most specific one wins:
// status, then rename, then assignee, then notes, then deadline, then
// category.
func DescribeTaskUpdate(task domain.Task, update domain.TaskUpdate) string {
	switch {
	case update.Status != nil && *update.Status != task.Status:
		return describeStatus(*update.Status)
	case update.Title != nil && *update.Title != task.Title:
		return fmt.Sprintf("renamed %q to %q", task.Title, *update.Title)
	case update.Assignee != nil && *update.Assignee != task.Assignee:
		if *update.Assignee == "" {
			return "cleared the assignee"
		}
		return fmt.Sprintf("assigned to %s", *update.Assignee)
	case update.Notes != nil && *update.Notes != task.Notes:
		return "updated the notes"
	case update.Deadline != nil && *update.Deadline != task.Deadline:
		if *update.Deadline == "" {
			return "removed the deadline"
		}
		return fmt.Sprintf("set the deadline to %s", *update.Deadline)
	case update.Category != nil && *update.Category != task.Category:
		return fmt.Sprintf("moved to %s", *update.Category)
	}
	return "edited the task"
}

func describeStatus(status domain.TaskStatus) string {
	switch status {
	case domain.TaskStatusPending:
		return "reopened the task"
	case domain.TaskStatusInProgress:
		return "started working on the task"
	case domain.TaskStatusCompleted:
		return "marked the task completed"
	case domain.TaskStatusCancelled:
		return "cancelled the task"
	}
	return fmt.Sprintf("changed status to %s", status)
}

// BuildTask assembles a fresh task with a generated id and current
// timestamp. Status defaults to pending when empty.
func BuildTask(category, title string, status domain.TaskStatus, notes, deadline, assignee string) domain.Task {
	if status == "" {
		status = domain.TaskStatusPending
	}
	return domain.Task{
		ID:           uuid.New().String(),
		Category:     category,
		Title:        title,
		Status:       status,
		Notes:        notes,
		Deadline:     deadline,
		Assignee:     assignee,
		LastModified: nowMillis(),
	}
}

// AddTask appends the task and logs its creation.
func AddTask(tasks []domain.Task, logs []domain.ActivityLogEntry, task domain.Task, actor string) ([]domain.Task, []domain.ActivityLogEntry) {
	next := make([]domain.Task, 0, len(tasks)+1)
	next = append(next, tasks...)
	next = append(next, task)
	entry := NewEntry(task.ID, task.Title, actor, "created the task")
	return next, AppendLog(logs, entry)
}

// RemoveTask drops the task matching id and logs the deletion. Missing ids
// are a detectable no-op, mirroring ApplyTaskUpdate.
func RemoveTask(tasks []domain.Task, logs []domain.ActivityLogEntry, id, actor string) ([]domain.Task, []domain.ActivityLogEntry, bool) {
	for i, task := range tasks {
		if task.ID != id {
			continue
		}
		next := make([]domain.Task, 0, len(tasks)-1)
		next = append(next, tasks[:i]...)
		next = append(next, tasks[i+1:]...)
		entry := NewEntry(task.ID, task.Title, actor, "deleted the task")
		return next, AppendLog(logs, entry), true
	}
	return tasks, logs, false
}

// AddCategory appends name to the ordered category list. Duplicates are
// rejected with domain.ErrDuplicateCategory; the list is the only identity
// categories have.
func AddCategory(categories []string, logs []domain.ActivityLogEntry, name, actor string) ([]string, []domain.ActivityLogEntry, error) {
	for _, existing := range categories {
		if existing == name {
			return categories, logs, domain.ErrDuplicateCategory
		}
	}
	next := make([]string, 0, len(categories)+1)
	next = append(next, categories...)
	next = append(next, name)
	entry := NewSystemEntry(actor, fmt.Sprintf("created the category %s", name))
	return next, AppendLog(logs, entry), nil
}
