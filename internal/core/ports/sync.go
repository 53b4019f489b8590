package ports

import (
	"context"
	"time"

	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
)

// LocalStore is the durable process-local cache holding the last-known-good
// snapshot and the participant session. It must survive restarts of the
// client; it is never shared between installs.
type LocalStore interface {
	LoadSnapshot() (*domain.Snapshot, error)
	SaveSnapshot(snapshot domain.Snapshot) error
	LoadSession() (*domain.Session, error)
	SaveSession(session domain.Session) error
	ClearSession() error
}

// DocumentStore reads and replaces one remote JSON document wholesale.
// Get returns domain.ErrDocumentNotFound when the document was never
// written; any other error means the request itself failed. Retries are the
// caller's concern, not the store's.
type DocumentStore interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, body []byte) error
}

// SyncStatus is the condensed state the UI's indicator renders.
type SyncStatus string

const (
	SyncStatusChecking SyncStatus = "checking"
	SyncStatusSyncing  SyncStatus = "syncing"
	SyncStatusSynced   SyncStatus = "synced"
	SyncStatusError    SyncStatus = "error"
	SyncStatusOffline  SyncStatus = "offline"
)

// Syncer is the surface the presentation layer consumes. Mutate takes
// fully-computed next collections; the engine never applies diffs itself.
type Syncer interface {
	Snapshot() domain.Snapshot
	Mutate(tasks []domain.Task, categories []string, logs []domain.ActivityLogEntry) error
	Pull(ctx context.Context, manual bool) error
	Push(ctx context.Context) error
	Status() SyncStatus
	LastSyncedAt() time.Time
	Version() int64
}
