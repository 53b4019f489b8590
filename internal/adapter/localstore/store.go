// Package localstore persists the last-known-good snapshot and the
// participant session in a single-file SQLite database, the client-side
// equivalent of browser storage. It survives restarts of this install and is
// never shared between devices.
package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
	"github.com/onurcagigan-dotcom/planet-event/internal/core/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const (
	snapshotKey = "snapshot"
	sessionKey  = "session"
)

type Store struct {
	db *sqlx.DB
}

var _ ports.LocalStore = (*Store)(nil)

// Open connects to the database file at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create local store directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize local store schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DefaultPath places the database under the XDG data directory, falling back
// to ~/.local/share.
func DefaultPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "planet-event", "cache.db"), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) LoadSnapshot() (*domain.Snapshot, error) {
	raw, err := s.get(snapshotKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, fmt.Errorf("decode cached snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *Store) SaveSnapshot(snapshot domain.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.set(snapshotKey, string(raw))
}

func (s *Store) LoadSession() (*domain.Session, error) {
	raw, err := s.get(sessionKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, domain.ErrSessionNotFound
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("decode cached session: %w", err)
	}
	return &session, nil
}

func (s *Store) SaveSession(session domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.set(sessionKey, string(raw))
}

func (s *Store) ClearSession() error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, sessionKey)
	return err
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
