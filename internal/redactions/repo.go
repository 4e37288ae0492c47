package redactions

import "context"

// Repo persists the redaction ledger. Create also flips the owning
// document's redacted flag; the flag is one-way and Delete never clears it.
type Repo interface {
	Create(ctx context.Context, red Redaction) error
	ListByDocument(ctx context.Context, documentID string) ([]Redaction, error)
	Delete(ctx context.Context, id string) error
}
