package redactions

import (
	"context"
	"database/sql"
	"fmt"

	"discovery-backend/internal/documents"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts the redaction and sets the document's redacted flag in one
// transaction, so a ledger entry never exists without the flag.
func (r *PGRepo) Create(ctx context.Context, red Redaction) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin redaction tx: %w", err)
	}
	defer tx.Rollback()

	const insert = `
INSERT INTO redactions (
    id,
    document_id,
    kind,
    text_span,
    reason,
    page_number,
    x,
    y,
    width,
    height,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var textSpan sql.NullString
	if red.Kind == KindText {
		textSpan = sql.NullString{String: red.Text, Valid: true}
	}
	var page sql.NullInt64
	var x, y, width, height sql.NullFloat64
	if red.Kind == KindBox {
		page = sql.NullInt64{Int64: int64(red.Page), Valid: true}
		x = sql.NullFloat64{Float64: red.X, Valid: true}
		y = sql.NullFloat64{Float64: red.Y, Valid: true}
		width = sql.NullFloat64{Float64: red.Width, Valid: true}
		height = sql.NullFloat64{Float64: red.Height, Valid: true}
	}

	if _, err := tx.ExecContext(
		ctx,
		insert,
		red.ID,
		red.DocumentID,
		red.Kind,
		textSpan,
		red.Reason,
		page,
		x,
		y,
		width,
		height,
		red.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert redaction: %w", err)
	}

	const flag = `
UPDATE documents
SET redacted = TRUE
WHERE id = $1 AND deleted_at IS NULL`
	res, err := tx.ExecContext(ctx, flag, red.DocumentID)
	if err != nil {
		return fmt.Errorf("flag document: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return documents.ErrNotFound
	}

	return tx.Commit()
}

// ListByDocument returns a document's redactions oldest-first.
func (r *PGRepo) ListByDocument(ctx context.Context, documentID string) ([]Redaction, error) {
	const query = `
SELECT id, document_id, kind, text_span, reason, page_number, x, y, width, height, created_at
FROM redactions
WHERE document_id = $1
ORDER BY created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Redaction
	for rows.Next() {
		var red Redaction
		var textSpan, reason sql.NullString
		var page sql.NullInt64
		var x, y, width, height sql.NullFloat64
		if err := rows.Scan(
			&red.ID,
			&red.DocumentID,
			&red.Kind,
			&textSpan,
			&reason,
			&page,
			&x,
			&y,
			&width,
			&height,
			&red.CreatedAt,
		); err != nil {
			return nil, err
		}
		red.Text = textSpan.String
		red.Reason = reason.String
		red.Page = int(page.Int64)
		red.X = x.Float64
		red.Y = y.Float64
		red.Width = width.Float64
		red.Height = height.Float64
		out = append(out, red)
	}
	return out, rows.Err()
}

// Delete removes a redaction. The document's redacted flag stays set even
// when this was the last entry.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM redactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
