package redactions

import (
	"context"
	"sort"
	"sync"
)

// DocumentFlagger marks a document as carrying at least one redaction.
type DocumentFlagger interface {
	MarkRedacted(ctx context.Context, id string) error
}

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Redaction

	Docs DocumentFlagger
}

// NewMemoryRepo constructs a MemoryRepo backed by the given document store.
func NewMemoryRepo(docs DocumentFlagger) *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Redaction),
		Docs: docs,
	}
}

// Create stores a redaction and flags its document.
func (r *MemoryRepo) Create(ctx context.Context, red Redaction) error {
	if err := r.Docs.MarkRedacted(ctx, red.DocumentID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[red.ID] = red
	return nil
}

// ListByDocument returns a document's redactions oldest-first.
func (r *MemoryRepo) ListByDocument(ctx context.Context, documentID string) ([]Redaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Redaction, 0)
	for _, red := range r.data {
		if red.DocumentID == documentID {
			out = append(out, red)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a redaction. The document's redacted flag stays set.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
