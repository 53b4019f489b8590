package ports

import (
	"context"
	"time"

	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
)

// SyncState is the status block the UI's indicator polls.
type SyncState struct {
	Status       SyncStatus
	LastSyncedAt time.Time
	Version      int64
	Dirty        bool
}

// BoardService is the use-case surface the HTTP adapter drives. Every write
// computes the next collections and hands them to the Syncer in one step;
// the adapter never touches sync state directly.
type BoardService interface {
	Snapshot() domain.Snapshot
	CreateTask(input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(id string, update domain.TaskUpdate) (domain.Task, error)
	DeleteTask(id string) error
	CreateCategory(name string) error
	Login(nickname, password string) (domain.Session, error)
	Logout() error
	CurrentSession() (domain.Session, error)
	Sync(ctx context.Context) error
	SyncState() SyncState
}
