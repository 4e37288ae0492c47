package productions

import "context"

// Repo persists production sets and their document links.
type Repo interface {
	// CreateSet persists a set together with its links as one unit, so a
	// failed link insert never leaves an empty set behind.
	CreateSet(ctx context.Context, set ProductionSet, links []ProductionDocumentLink) error
	GetSet(ctx context.Context, id string) (ProductionSet, error)
	ListLinks(ctx context.Context, setID string) ([]ProductionDocumentLink, error)
	// MaxSequenceForPrefix returns the highest bates sequence already minted
	// for a prefix, or 0 when the prefix is unused. Assembly starts above it
	// so re-runs never reissue a number.
	MaxSequenceForPrefix(ctx context.Context, prefix string) (int64, error)
}
