// Package reconcile owns the snapshot reconciliation loop: optimistic local-first
// mutations, periodic pull/push against the remote document store, and
// whole-document last-writer-wins adoption keyed on the snapshot version.
package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
)

// Options tune the engine. Zero values fall back to the defaults below.
type Options struct {
	// RequestTimeout bounds every remote call; a timed-out call surfaces as
	// an error status and releases the busy flag.
	RequestTimeout time.Duration
	// HeartbeatInterval is the cadence of the background pull/push timer.
	HeartbeatInterval time.Duration
	// RequireAdmin restricts pushes to sessions holding the admin flag.
	RequireAdmin bool
	// Online is polled before a push; nil means always online.
	Online func() bool
	// Now is stubbed in tests; nil means time.Now.
	Now func() time.Time
}

const (
	defaultRequestTimeout    = 10 * time.Second
	defaultHeartbeatInterval = 10 * time.Second
)

// Engine is the reconciliation engine. All shared state (snapshot, version,
// dirty and busy flags) lives behind mu and is owned exclusively by the
// engine; network I/O always runs with mu released so mutations never wait
// on the wire.
type Engine struct {
	store  ports.LocalStore
	remote ports.DocumentStore
	logger *zap.Logger
	opts   Options

	mu           sync.Mutex
	snapshot     domain.Snapshot
	version      int64
	gen          uint64
	dirty        bool
	syncing      bool
	status       ports.SyncStatus
	lastSyncedAt time.Time
	session      domain.Session
}

var _ ports.Syncer = (*Engine)(nil)

// NewEngine boots from the local cache, or from the hardcoded default
// dataset on a fresh install. A corrupt or unreadable cache is treated as
// absent rather than fatal; the remote copy is still intact.
func NewEngine(store ports.LocalStore, remote ports.DocumentStore, logger *zap.Logger, opts Options) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = defaultHeartbeatInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	e := &Engine{
		store:  store,
		remote: remote,
		logger: logger,
		opts:   opts,
		status: ports.SyncStatusChecking,
	}

	cached, err := store.LoadSnapshot()
	if err != nil {
		logger.Warn("local snapshot cache unreadable, starting from defaults", zap.Error(err))
	}
	if cached != nil {
		e.snapshot = *cached
		e.version = cached.Version
	} else {
		e.snapshot = domain.DefaultSnapshot()
	}

	if session, err := store.LoadSession(); err == nil && session != nil {
		e.session = *session
	}

	return e
}

// SetSession updates the actor stamped onto pushed snapshots.
func (e *Engine) SetSession(session domain.Session) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = session
}

// Session returns the current participant identity.
func (e *Engine) Session() domain.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Snapshot returns a copy of the current in-memory snapshot.
func (e *Engine) Snapshot() domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot.Clone()
}

// Status returns the condensed sync state for the UI indicator.
func (e *Engine) Status() ports.SyncStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// LastSyncedAt returns the time of the last successful exchange with the
// remote store; zero until the first one.
func (e *Engine) LastSyncedAt() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastSyncedAt
}

// Version returns the last version known to be consistent with the remote
// store. Local mutations do not advance it; only a successful push or an
// adopted pull does.
func (e *Engine) Version() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.version
}

// Dirty reports whether local changes have not reached the remote store yet.
func (e *Engine) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// Mutate replaces the in-memory snapshot with the fully-computed next
// collections and persists it to the local store before anything touches the
// network. A failed local write fails the whole call and nothing is adopted:
// the offline-safety property depends on the cache never silently missing an
// edit. On success a push is fired asynchronously; its outcome is reported
// through Status, never through this call.
func (e *Engine) Mutate(tasks []domain.Task, categories []string, logs []domain.ActivityLogEntry) error {
	e.mu.Lock()

	next := e.snapshot
	next.Tasks = tasks
	next.Categories = categories
	next.Logs = logs
	next.LastUpdatedBy = e.session.Nickname
	next.Timestamp = e.opts.Now().UnixMilli()

	if err := e.store.SaveSnapshot(next); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("save snapshot to local store: %w", err)
	}

	e.snapshot = next
	e.dirty = true
	e.gen++
	e.mu.Unlock()

	go func() {
		if err := e.Push(context.Background()); err != nil {
			e.logger.Debug("background push after mutate failed", zap.Error(err))
		}
	}()

	return nil
}

// Pull fetches the remote document and adopts it wholesale when its version
// is strictly newer. Automatic pulls are skipped while local changes are
// unsynced so the heartbeat cannot clobber work that never reached the
// remote, and a mutation that lands mid-fetch blocks adoption the same way;
// a manual pull proceeds regardless. A manual pull that finds no
// document performs first-time initialization by pushing the local snapshot.
func (e *Engine) Pull(ctx context.Context, manual bool) error {
	e.mu.Lock()
	if e.syncing {
		e.mu.Unlock()
		return nil
	}
	if e.dirty && !manual {
		e.mu.Unlock()
		return nil
	}
	e.syncing = true
	e.status = ports.SyncStatusChecking
	gen := e.gen
	e.mu.Unlock()

	release := true
	defer func() {
		if release {
			e.endSync()
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, e.opts.RequestTimeout)
	defer cancel()

	body, err := e.remote.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			if !manual {
				e.setStatus(ports.SyncStatusSynced)
				return nil
			}
			// First write wins the race to create the document.
			e.logger.Info("remote document absent, initializing from local snapshot")
			release = false
			e.endSync()
			return e.Push(ctx)
		}
		e.logger.Warn("pull failed", zap.Error(err))
		e.setStatus(statusForError(err))
		return nil
	}

	var remote domain.Snapshot
	if err := json.Unmarshal(body, &remote); err != nil {
		e.logger.Warn("remote document is not a valid snapshot", zap.Error(err))
		e.setStatus(ports.SyncStatusError)
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// An automatic pull started against a clean snapshot; if a mutation
	// landed while the fetch was on the wire, that mutation wins and the
	// heartbeat pushes it instead of adopting over it.
	if remote.Version > e.version && (manual || e.gen == gen) {
		if err := e.store.SaveSnapshot(remote); err != nil {
			e.logger.Error("failed to cache pulled snapshot", zap.Error(err))
			e.status = ports.SyncStatusError
			return nil
		}
		e.logger.Info("adopted remote snapshot",
			zap.Int64("local_version", e.version),
			zap.Int64("remote_version", remote.Version))
		e.snapshot = remote
		e.version = remote.Version
		e.dirty = false
	}
	e.status = ports.SyncStatusSynced
	e.lastSyncedAt = e.opts.Now()
	return nil
}

// Push serializes the current snapshot at version+1 and replaces the remote
// document wholesale. Failures keep the dirty flag set so the heartbeat
// retries; they surface through Status, never as a panic or an error past
// this boundary. A mutation that lands while the push is on the wire also
// keeps the dirty flag set, since the document just written no longer
// reflects the local snapshot.
func (e *Engine) Push(ctx context.Context) error {
	e.mu.Lock()
	if e.syncing {
		e.mu.Unlock()
		return nil
	}
	if e.opts.RequireAdmin && !e.session.Admin {
		e.mu.Unlock()
		return nil
	}
	if e.opts.Online != nil && !e.opts.Online() {
		e.status = ports.SyncStatusOffline
		e.mu.Unlock()
		return nil
	}
	e.syncing = true
	e.status = ports.SyncStatusSyncing
	gen := e.gen

	candidate := e.snapshot.Clone()
	candidate.Version = e.version + 1
	candidate.LastUpdatedBy = e.session.Nickname
	candidate.Timestamp = e.opts.Now().UnixMilli()
	if len(candidate.Logs) > domain.MaxLogEntries {
		candidate.Logs = candidate.Logs[:domain.MaxLogEntries]
	}
	e.mu.Unlock()

	defer e.endSync()

	body, err := json.Marshal(candidate)
	if err != nil {
		e.logger.Error("failed to serialize snapshot", zap.Error(err))
		e.setStatus(ports.SyncStatusError)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.opts.RequestTimeout)
	defer cancel()

	if err := e.remote.Put(ctx, body); err != nil {
		e.logger.Warn("push failed", zap.Int64("version", candidate.Version), zap.Error(err))
		e.setStatus(statusForError(err))
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.version = candidate.Version
	e.status = ports.SyncStatusSynced
	e.lastSyncedAt = e.opts.Now()
	if e.gen != gen {
		// A mutation landed while the push was on the wire, so the remote
		// already holds a stale document. Keep dirty set; the heartbeat
		// pushes the newer snapshot at the next version.
		return nil
	}
	e.snapshot.Version = candidate.Version
	e.dirty = false
	if err := e.store.SaveSnapshot(e.snapshot); err != nil {
		e.logger.Error("failed to cache pushed snapshot", zap.Error(err))
	}
	return nil
}

// Run is the background heartbeat: pending local changes get pushed,
// otherwise the remote is polled for news. The busy flag makes overlapping
// ticks a no-op. Blocks until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.opts.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if e.Dirty() {
				_ = e.Push(ctx)
			} else {
				_ = e.Pull(ctx, false)
			}
		}
	}
}

func (e *Engine) endSync() {
	e.mu.Lock()
	e.syncing = false
	e.mu.Unlock()
}

func (e *Engine) setStatus(status ports.SyncStatus) {
	e.mu.Lock()
	e.status = status
	e.mu.Unlock()
}

func statusForError(err error) ports.SyncStatus {
	if errors.Is(err, context.DeadlineExceeded) {
		return ports.SyncStatusOffline
	}
	return ports.SyncStatusError
}
