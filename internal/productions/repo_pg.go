package productions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateSet inserts a production set and its document links in one
// transaction. A failed link insert rolls the set back too, so no empty
// set is ever left behind.
func (r *PGRepo) CreateSet(ctx context.Context, set ProductionSet, links []ProductionDocumentLink) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set tx: %w", err)
	}
	defer tx.Rollback()

	const setQuery = `
INSERT INTO production_sets (
    id,
    name,
    bates_prefix,
    bates_start,
    format,
    include_text,
    include_images,
    include_metadata,
    include_native,
    load_file_format,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	if _, err := tx.ExecContext(
		ctx,
		setQuery,
		set.ID,
		set.Name,
		set.BatesPrefix,
		set.BatesStart,
		string(set.Format),
		set.Include.Text,
		set.Include.Images,
		set.Include.Metadata,
		set.Include.Native,
		string(set.LoadFileFormat),
		set.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert set: %w", err)
	}

	const linkQuery = `
INSERT INTO production_documents (
    id,
    production_set_id,
    document_id,
    bates_number,
    bates_sequence,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	for _, link := range links {
		if _, err := tx.ExecContext(
			ctx,
			linkQuery,
			link.ID,
			link.ProductionSetID,
			link.DocumentID,
			link.BatesNumber,
			link.BatesSequence,
			link.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert link %s: %w", link.BatesNumber, err)
		}
	}
	return tx.Commit()
}

// GetSet fetches a production set by ID.
func (r *PGRepo) GetSet(ctx context.Context, id string) (ProductionSet, error) {
	const query = `
SELECT id, name, bates_prefix, bates_start, format,
       include_text, include_images, include_metadata, include_native,
       load_file_format, created_at
FROM production_sets
WHERE id = $1
LIMIT 1`

	var set ProductionSet
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&set.ID,
		&set.Name,
		&set.BatesPrefix,
		&set.BatesStart,
		&set.Format,
		&set.Include.Text,
		&set.Include.Images,
		&set.Include.Metadata,
		&set.Include.Native,
		&set.LoadFileFormat,
		&set.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductionSet{}, ErrNotFound
		}
		return ProductionSet{}, err
	}
	return set, nil
}

// ListLinks returns a set's links in bates order.
func (r *PGRepo) ListLinks(ctx context.Context, setID string) ([]ProductionDocumentLink, error) {
	const query = `
SELECT id, production_set_id, document_id, bates_number, bates_sequence, created_at
FROM production_documents
WHERE production_set_id = $1
ORDER BY bates_sequence ASC`

	rows, err := r.DB.QueryContext(ctx, query, setID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProductionDocumentLink
	for rows.Next() {
		var link ProductionDocumentLink
		if err := rows.Scan(
			&link.ID,
			&link.ProductionSetID,
			&link.DocumentID,
			&link.BatesNumber,
			&link.BatesSequence,
			&link.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

// MaxSequenceForPrefix returns the highest sequence minted under a prefix.
func (r *PGRepo) MaxSequenceForPrefix(ctx context.Context, prefix string) (int64, error) {
	const query = `
SELECT COALESCE(MAX(pd.bates_sequence), 0)
FROM production_documents pd
JOIN production_sets ps ON ps.id = pd.production_set_id
WHERE ps.bates_prefix = $1`

	var max int64
	if err := r.DB.QueryRowContext(ctx, query, prefix).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

var _ Repo = (*PGRepo)(nil)
