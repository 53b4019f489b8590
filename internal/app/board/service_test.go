package board_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onurcagigan-dotcom/planet-event/internal/app/board"
	"github.com/onurcagigan-dotcom/planet-event/internal/app/reconcile"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
)

// In-memory collaborators; the push target is irrelevant here, so the
// remote just swallows documents.

type memStore struct {
	mu       sync.Mutex
	snapshot *domain.Snapshot
	session  *domain.Session
}

func (s *memStore) LoadSnapshot() (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, nil
	}
	copied := s.snapshot.Clone()
	return &copied, nil
}

func (s *memStore) SaveSnapshot(snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := snapshot.Clone()
	s.snapshot = &copied
	return nil
}

func (s *memStore) LoadSession() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return s.session, nil
}

func (s *memStore) SaveSession(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

func (s *memStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

type sinkRemote struct{}

func (sinkRemote) Get(ctx context.Context) ([]byte, error) { return nil, domain.ErrDocumentNotFound }

func (sinkRemote) Put(ctx context.Context, body []byte) error { return nil }

func newService(t *testing.T) *board.Service {
	t.Helper()
	engine := reconcile.NewEngine(&memStore{}, sinkRemote{}, nil, reconcile.Options{})
	return board.NewService(engine, &memStore{}, "prep2024")
}

func TestService_CreateTask_AppearsInSnapshotWithLogEntry(t *testing.T) {
	service := newService(t)
	_, err := service.Login("onur", "")
	require.NoError(t, err)

	task, err := service.CreateTask(domain.CreateTaskInput{
		Category: "Venue",
		Title:    "Book venue",
	})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.Equal(t, domain.TaskStatusPending, task.Status)

	snapshot := service.Snapshot()
	require.Len(t, snapshot.Tasks, 1)
	require.Equal(t, task.ID, snapshot.Tasks[0].ID)
	require.Equal(t, "created the task", snapshot.Logs[0].Action)
	require.Equal(t, "onur", snapshot.Logs[0].Actor)
}

func TestService_UpdateTask_LogsTheSpecificChange(t *testing.T) {
	service := newService(t)

	task, err := service.CreateTask(domain.CreateTaskInput{Category: "Venue", Title: "Book venue"})
	require.NoError(t, err)

	status := domain.TaskStatusCompleted
	updated, err := service.UpdateTask(task.ID, domain.TaskUpdate{Status: &status})
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusCompleted, updated.Status)

	snapshot := service.Snapshot()
	require.Equal(t, "marked the task completed", snapshot.Logs[0].Action)
	require.Equal(t, task.ID, snapshot.Logs[0].TaskID)
}

func TestService_UpdateTask_MissingID(t *testing.T) {
	service := newService(t)

	status := domain.TaskStatusCompleted
	_, err := service.UpdateTask("missing-id", domain.TaskUpdate{Status: &status})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestService_DeleteTask(t *testing.T) {
	service := newService(t)

	task, err := service.CreateTask(domain.CreateTaskInput{Category: "Venue", Title: "Book venue"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTask(task.ID))
	require.Empty(t, service.Snapshot().Tasks)
	require.ErrorIs(t, service.DeleteTask(task.ID), domain.ErrTaskNotFound)
}

func TestService_ConcurrentCreatesAllSurvive(t *testing.T) {
	service := newService(t)
	const writers = 20

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := service.CreateTask(domain.CreateTaskInput{
				Category: "Venue",
				Title:    fmt.Sprintf("Task %d", i),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// Simultaneous writers must not compute from the same base snapshot and
	// drop each other's tasks.
	snapshot := service.Snapshot()
	require.Len(t, snapshot.Tasks, writers)
	require.Len(t, snapshot.Logs, writers)
}

func TestService_CreateCategory(t *testing.T) {
	service := newService(t)

	require.NoError(t, service.CreateCategory("Security"))
	snapshot := service.Snapshot()
	require.Contains(t, snapshot.Categories, "Security")

	err := service.CreateCategory("Security")
	require.ErrorIs(t, err, domain.ErrDuplicateCategory)
}

func TestService_Login_AdminRequiresConfiguredPassword(t *testing.T) {
	service := newService(t)

	session, err := service.Login("onur", "prep2024")
	require.NoError(t, err)
	require.True(t, session.Admin)

	session, err = service.Login("guest", "wrong")
	require.NoError(t, err)
	require.False(t, session.Admin)

	session, err = service.Login("quiet", "")
	require.NoError(t, err)
	require.False(t, session.Admin)
}

func TestService_SessionLifecycle(t *testing.T) {
	service := newService(t)

	_, err := service.CurrentSession()
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = service.Login("onur", "")
	require.NoError(t, err)

	session, err := service.CurrentSession()
	require.NoError(t, err)
	require.Equal(t, "onur", session.Nickname)

	require.NoError(t, service.Logout())
	_, err = service.CurrentSession()
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestService_SyncState(t *testing.T) {
	service := newService(t)

	state := service.SyncState()
	require.Equal(t, int64(0), state.Version)
	require.False(t, state.Dirty)

	// Manual sync against an absent document initializes it.
	require.NoError(t, service.Sync(context.Background()))
	require.Equal(t, int64(1), service.SyncState().Version)
}
