package mapper

import (
	"time"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/dto"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:           task.ID,
		Category:     task.Category,
		Title:        task.Title,
		Status:       string(task.Status),
		Notes:        task.Notes,
		Deadline:     task.Deadline,
		Assignee:     task.Assignee,
		LastModified: task.LastModified,
	}
}

func ToLogItems(entries []domain.ActivityLogEntry) []dto.LogItem {
	items := make([]dto.LogItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.LogItem{
			ID:        entry.ID,
			TaskID:    entry.TaskID,
			TaskTitle: entry.TaskTitle,
			Actor:     entry.Actor,
			Action:    entry.Action,
			Timestamp: entry.Timestamp,
		})
	}
	return items
}

func ToSnapshotResponse(snapshot domain.Snapshot) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		Tasks:         ToTaskItems(snapshot.Tasks),
		Categories:    append([]string{}, snapshot.Categories...),
		Logs:          ToLogItems(snapshot.Logs),
		Version:       snapshot.Version,
		LastUpdatedBy: snapshot.LastUpdatedBy,
		Timestamp:     snapshot.Timestamp,
	}
}

func ToSessionResponse(session domain.Session) dto.SessionResponse {
	return dto.SessionResponse{Nickname: session.Nickname, Admin: session.Admin}
}

func ToSyncStateResponse(state ports.SyncState) dto.SyncStateResponse {
	resp := dto.SyncStateResponse{
		Status:  string(state.Status),
		Version: state.Version,
		Dirty:   state.Dirty,
	}
	if !state.LastSyncedAt.IsZero() {
		resp.LastSyncedAt = state.LastSyncedAt.Format(time.RFC3339)
	}
	return resp
}
