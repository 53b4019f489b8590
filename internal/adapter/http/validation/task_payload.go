package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/dto"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput normalizes a create request. Gin's binding has
// already checked formats; this layer rejects blank required fields after
// trimming and applies defaults.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	category := strings.TrimSpace(req.Category)
	if title == "" || category == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	status := domain.TaskStatusPending
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	input := domain.CreateTaskInput{
		Category: category,
		Title:    title,
		Status:   status,
	}
	if req.Notes != nil {
		input.Notes = *req.Notes
	}
	if req.Deadline != nil {
		input.Deadline = *req.Deadline
	}
	if req.Assignee != nil {
		input.Assignee = strings.TrimSpace(*req.Assignee)
	}
	return input, nil
}

// BuildTaskUpdate turns a patch request into a domain update. At least one
// field must be present; a present-but-blank title is rejected, while blank
// deadline or assignee clear the field.
func BuildTaskUpdate(req dto.UpdateTaskRequest) (domain.TaskUpdate, error) {
	var update domain.TaskUpdate

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.Title = &title
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.Category = &category
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		if !domain.ValidTaskStatus(status) {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.Status = &status
	}
	if req.Notes != nil {
		update.Notes = req.Notes
	}
	if req.Deadline != nil {
		deadline := strings.TrimSpace(*req.Deadline)
		if deadline != "" && !validDate(deadline) {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.Deadline = &deadline
	}
	if req.Assignee != nil {
		assignee := strings.TrimSpace(*req.Assignee)
		update.Assignee = &assignee
	}

	if update.Empty() {
		return domain.TaskUpdate{}, ErrInvalidTaskPayload
	}
	return update, nil
}

func validDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
