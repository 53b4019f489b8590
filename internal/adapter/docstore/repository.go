// Package docstore is the reference implementation of the remote document
// store protocol: one JSON document per workspace id, replaced wholesale on
// every write. Whoever knows a document's URL can read and replace it; the
// URL is the entire trust model, as the clients assume.
package docstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/onurcagigan-dotcom/planet-event/internal/core/domain"
)

// DocumentRepository is the persistence surface the handlers drive.
type DocumentRepository interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, id string, body []byte) error
}

type Repository struct {
	db *sqlx.DB
}

var _ DocumentRepository = (*Repository)(nil)

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, id string) ([]byte, error) {
	var body string
	err := r.db.GetContext(ctx, &body, `SELECT body FROM documents WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func (r *Repository) Put(ctx context.Context, id string, body []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (id, body) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE body = VALUES(body)
	`, id, string(body))
	return err
}
