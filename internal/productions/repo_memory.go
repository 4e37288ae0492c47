package productions

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	sets  map[string]ProductionSet
	links map[string][]ProductionDocumentLink
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		sets:  make(map[string]ProductionSet),
		links: make(map[string][]ProductionDocumentLink),
	}
}

// CreateSet stores a production set and its links under one lock.
func (r *MemoryRepo) CreateSet(ctx context.Context, set ProductionSet, links []ProductionDocumentLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[set.ID] = set
	r.links[set.ID] = append([]ProductionDocumentLink(nil), links...)
	return nil
}

// GetSet returns a production set by ID.
func (r *MemoryRepo) GetSet(ctx context.Context, id string) (ProductionSet, error) {
	if err := ctx.Err(); err != nil {
		return ProductionSet{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.sets[id]
	if !ok {
		return ProductionSet{}, ErrNotFound
	}
	return set, nil
}

// ListLinks returns a set's links in bates order.
func (r *MemoryRepo) ListLinks(ctx context.Context, setID string) ([]ProductionDocumentLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := append([]ProductionDocumentLink(nil), r.links[setID]...)
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].BatesSequence < out[j].BatesSequence
	})
	return out, nil
}

// MaxSequenceForPrefix scans all links under sets sharing the prefix.
func (r *MemoryRepo) MaxSequenceForPrefix(ctx context.Context, prefix string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var max int64
	for setID, links := range r.links {
		if r.sets[setID].BatesPrefix != prefix {
			continue
		}
		for _, link := range links {
			if link.BatesSequence > max {
				max = link.BatesSequence
			}
		}
	}
	return max, nil
}

var _ Repo = (*MemoryRepo)(nil)
