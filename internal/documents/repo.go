package documents

import "context"

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, id string) (Document, error)
	List(ctx context.Context, limit, offset int) ([]Document, error)
	Update(ctx context.Context, doc Document) error
	Delete(ctx context.Context, id string) error
	MarkRedacted(ctx context.Context, id string) error
}
