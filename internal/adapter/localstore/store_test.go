package localstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/localstore"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
)

func openStore(t *testing.T) (*localstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	store, err := localstore.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	store, _ := openStore(t)

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	require.Nil(t, loaded)

	snapshot := domain.Snapshot{
		Tasks: []domain.Task{{
			ID:           "t1",
			Category:     "Venue",
			Title:        "Book venue",
			Status:       domain.TaskStatusInProgress,
			Notes:        "ask about parking",
			Deadline:     "2026-09-01",
			Assignee:     "dilek",
			LastModified: 1700000000000,
		}},
		Categories:    []string{"Venue", "Catering"},
		Logs:          []domain.ActivityLogEntry{{ID: "l1", TaskID: "t1", Actor: "onur", Action: "created the task", Timestamp: 1700000000000}},
		Version:       3,
		LastUpdatedBy: "onur",
		Timestamp:     1700000000000,
	}
	require.NoError(t, store.SaveSnapshot(snapshot))

	loaded, err = store.LoadSnapshot()
	require.NoError(t, err)
	require.Equal(t, snapshot, *loaded)
}

func TestStore_SnapshotSurvivesReopen(t *testing.T) {
	store, path := openStore(t)

	require.NoError(t, store.SaveSnapshot(domain.Snapshot{Version: 9, Categories: []string{"Venue"}}))
	require.NoError(t, store.Close())

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadSnapshot()
	require.NoError(t, err)
	require.Equal(t, int64(9), loaded.Version)
}

func TestStore_SaveSnapshotOverwrites(t *testing.T) {
	store, _ := openStore(t)

	require.NoError(t, store.SaveSnapshot(domain.Snapshot{Version: 1}))
	require.NoError(t, store.SaveSnapshot(domain.Snapshot{Version: 2}))

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	require.Equal(t, int64(2), loaded.Version)
}

func TestStore_SessionLifecycle(t *testing.T) {
	store, _ := openStore(t)

	_, err := store.LoadSession()
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.SaveSession(domain.Session{Nickname: "onur", Admin: true}))

	session, err := store.LoadSession()
	require.NoError(t, err)
	require.Equal(t, "onur", session.Nickname)
	require.True(t, session.Admin)

	require.NoError(t, store.ClearSession())
	_, err = store.LoadSession()
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Clearing an already-clear session is fine.
	require.NoError(t, store.ClearSession())
}
