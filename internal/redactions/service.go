package redactions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"discovery-backend/internal/documents"
)

// Service contains business logic for the redaction ledger.
type Service struct {
	Repo Repo
	Docs *documents.Service
}

// AddInput carries a redaction request. Kind selects which half is read.
type AddInput struct {
	Kind   Kind
	Text   string
	Reason string
	Page   int
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Add validates and persists a redaction against an existing document. The
// document's redacted flag is set as part of the same persistence step.
func (s *Service) Add(ctx context.Context, documentID string, in AddInput) (Redaction, error) {
	doc, err := s.Docs.Get(ctx, documentID)
	if err != nil {
		return Redaction{}, err
	}

	red := Redaction{
		ID:         uuid.NewString(),
		DocumentID: doc.ID,
		Kind:       in.Kind,
		Reason:     strings.TrimSpace(in.Reason),
		CreatedAt:  time.Now().UTC(),
	}

	switch in.Kind {
	case KindText:
		text := in.Text
		if strings.TrimSpace(text) == "" {
			return Redaction{}, fmt.Errorf("%w: text redaction requires a non-empty span", ErrInvalidInput)
		}
		red.Text = text
	case KindBox:
		if in.Page < 1 {
			return Redaction{}, fmt.Errorf("%w: box redaction requires page >= 1", ErrInvalidInput)
		}
		if in.Width <= 0 || in.Height <= 0 {
			return Redaction{}, fmt.Errorf("%w: box redaction requires positive width and height", ErrInvalidInput)
		}
		red.Page = in.Page
		red.X = in.X
		red.Y = in.Y
		red.Width = in.Width
		red.Height = in.Height
	default:
		return Redaction{}, fmt.Errorf("%w: kind must be %q or %q", ErrInvalidInput, KindText, KindBox)
	}

	if err := s.Repo.Create(ctx, red); err != nil {
		return Redaction{}, err
	}
	return red, nil
}

// List returns a document's redactions oldest-first.
func (s *Service) List(ctx context.Context, documentID string) ([]Redaction, error) {
	if _, err := s.Docs.Get(ctx, documentID); err != nil {
		return nil, err
	}
	return s.Repo.ListByDocument(ctx, documentID)
}

// Remove deletes a ledger entry. The owning document's redacted flag stays
// set: once anything was redacted the document is treated as redacted.
func (s *Service) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

// RedactedText returns the document's extracted text with its redactions
// applied.
func (s *Service) RedactedText(ctx context.Context, documentID string) (documents.Document, string, error) {
	doc, err := s.Docs.Get(ctx, documentID)
	if err != nil {
		return documents.Document{}, "", err
	}
	regions, err := s.Repo.ListByDocument(ctx, documentID)
	if err != nil {
		return documents.Document{}, "", err
	}
	return doc, Apply(doc.Content, regions), nil
}
