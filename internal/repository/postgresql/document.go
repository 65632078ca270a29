package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-console/internal/domain/document"
	"github.com/cmlabs-hris/hris-console/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const documentsSchema = `
	CREATE TABLE IF NOT EXISTS documents (
		seq        BIGSERIAL,
		collection TEXT        NOT NULL,
		id         TEXT        NOT NULL,
		body       JSONB       NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (collection, id)
	)
`

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

// EnsureSchema creates the documents table when missing.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, documentsSchema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

// List implements document.DocumentRepository.
func (r *documentRepositoryImpl) List(ctx context.Context, collection string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT body
		FROM documents
		WHERE collection = $1
		ORDER BY seq ASC
	`

	rows, err := q.Query(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := []document.Document{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc, err := decode(body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

// Get implements document.DocumentRepository.
func (r *documentRepositoryImpl) Get(ctx context.Context, collection, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT body
		FROM documents
		WHERE collection = $1 AND id = $2
	`

	var body []byte
	if err := q.QueryRow(ctx, query, collection, id).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, document.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return decode(body)
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, collection, id string, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	query := `
		INSERT INTO documents (collection, id, body, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING body
	`

	var body []byte
	if err := q.QueryRow(ctx, query, collection, id, payload).Scan(&body); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, document.ErrDuplicateID
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return decode(body)
}

// Replace implements document.DocumentRepository.
func (r *documentRepositoryImpl) Replace(ctx context.Context, collection, id string, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	query := `
		UPDATE documents
		SET body = $3, updated_at = NOW()
		WHERE collection = $1 AND id = $2
		RETURNING body
	`

	var body []byte
	if err := q.QueryRow(ctx, query, collection, id, payload).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, document.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to replace document: %w", err)
	}

	return decode(body)
}

// Merge implements document.DocumentRepository.
func (r *documentRepositoryImpl) Merge(ctx context.Context, collection, id string, patch document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}

	// jsonb || jsonb overwrites top level keys only
	query := `
		UPDATE documents
		SET body = body || $3::jsonb, updated_at = NOW()
		WHERE collection = $1 AND id = $2
		RETURNING body
	`

	var body []byte
	if err := q.QueryRow(ctx, query, collection, id, payload).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, document.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to merge document: %w", err)
	}

	return decode(body)
}

// Delete implements document.DocumentRepository.
func (r *documentRepositoryImpl) Delete(ctx context.Context, collection, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}

// Import implements document.DocumentRepository. All documents are inserted
// in one transaction; ids already present are skipped.
func (r *documentRepositoryImpl) Import(ctx context.Context, collection string, docs []document.Document) (int, error) {
	inserted := 0

	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			INSERT INTO documents (collection, id, body, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			ON CONFLICT (collection, id) DO NOTHING
		`

		for _, doc := range docs {
			payload, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to encode document %s: %w", doc.ID(), err)
			}
			tag, err := q.Exec(ctx, query, collection, doc.ID(), payload)
			if err != nil {
				return fmt.Errorf("failed to import document %s: %w", doc.ID(), err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func decode(body []byte) (document.Document, error) {
	var doc document.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}
