package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `id, title, content, file_path, file_ext, file_size, custodian, metadata, reviewed, redacted, created_at`

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    title,
    content,
    file_path,
    file_ext,
    file_size,
    custodian,
    metadata,
    reviewed,
    redacted,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	metadata, err := marshalMetadata(doc.Metadata)
	if err != nil {
		return err
	}

	var custodian sql.NullString
	if doc.Custodian != "" {
		custodian = sql.NullString{String: doc.Custodian, Valid: true}
	}
	var filePath sql.NullString
	if doc.FilePath != "" {
		filePath = sql.NullString{String: doc.FilePath, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.Title,
		doc.Content,
		filePath,
		doc.FileExt,
		doc.FileSize,
		custodian,
		metadata,
		doc.Reviewed,
		doc.Redacted,
		doc.CreatedAt,
	)
	return err
}

// GetByID fetches a document by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Document, error) {
	query := `
SELECT ` + documentColumns + `
FROM documents
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// List lists documents ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `
SELECT ` + documentColumns + `
FROM documents
WHERE deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Update persists mutable document fields.
func (r *PGRepo) Update(ctx context.Context, doc Document) error {
	const query = `
UPDATE documents
SET title = $1, content = $2, custodian = $3, metadata = $4, reviewed = $5, redacted = $6
WHERE id = $7 AND deleted_at IS NULL`

	metadata, err := marshalMetadata(doc.Metadata)
	if err != nil {
		return err
	}
	var custodian sql.NullString
	if doc.Custodian != "" {
		custodian = sql.NullString{String: doc.Custodian, Valid: true}
	}

	res, err := r.DB.ExecContext(ctx, query, doc.Title, doc.Content, custodian, metadata, doc.Reviewed, doc.Redacted, doc.ID)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes a document.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `
UPDATE documents
SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkRedacted flips the redacted flag; it is never cleared here.
func (r *PGRepo) MarkRedacted(ctx context.Context, id string) error {
	const query = `
UPDATE documents
SET redacted = TRUE
WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var filePath sql.NullString
	var custodian sql.NullString
	var metadata []byte
	if err := row.Scan(
		&doc.ID,
		&doc.Title,
		&doc.Content,
		&filePath,
		&doc.FileExt,
		&doc.FileSize,
		&custodian,
		&metadata,
		&doc.Reviewed,
		&doc.Redacted,
		&doc.CreatedAt,
	); err != nil {
		return Document{}, err
	}
	if filePath.Valid {
		doc.FilePath = filePath.String
	}
	if custodian.Valid {
		doc.Custodian = custodian.String
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &doc.Metadata); err != nil {
			return Document{}, fmt.Errorf("decode metadata: %w", err)
		}
	}
	if doc.Metadata == nil {
		doc.Metadata = map[string]string{}
	}
	return doc, nil
}

func marshalMetadata(metadata map[string]string) ([]byte, error) {
	if metadata == nil {
		metadata = map[string]string{}
	}
	out, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return out, nil
}

var _ Repo = (*PGRepo)(nil)
