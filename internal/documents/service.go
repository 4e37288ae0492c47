package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"discovery-backend/internal/ai"
	"discovery-backend/internal/extract"
	"discovery-backend/internal/shared/storage/object"
	"discovery-backend/internal/shared/telemetry"
	"discovery-backend/internal/shared/util"
)

// MaxUploadBytes is the ingestion size limit; oversize payloads are rejected
// before extraction runs.
const MaxUploadBytes = 50 << 20

var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"doc":  {},
	"msg":  {},
	"eml":  {},
	"txt":  {},
	"xlsx": {},
	"xls":  {},
	"pptx": {},
	"ppt":  {},
}

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
	AI    ai.Client
}

// Ingest stores the uploaded file, extracts reviewable text, and persists the
// document. Extraction never blocks ingestion: unsupported or broken files
// get a placeholder text body.
func (s *Service) Ingest(ctx context.Context, fileName string, size int64, r io.Reader) (Document, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return Document{}, fmt.Errorf("%w: fileName is required", ErrInvalidInput)
	}
	ext := util.FileExt(fileName)
	if _, ok := allowedExtensions[ext]; !ok {
		return Document{}, fmt.Errorf("%w: .%s", ErrUnsupportedType, ext)
	}
	if size > MaxUploadBytes {
		return Document{}, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return Document{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > MaxUploadBytes {
		return Document{}, ErrFileTooLarge
	}

	storageKey, storedSize, _, err := s.Store.Save(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("store upload: %w", err)
	}

	content := extract.Extract(data, ext, fileName)

	doc := Document{
		ID:        uuid.NewString(),
		Title:     fileName,
		Content:   content,
		FilePath:  storageKey,
		FileExt:   ext,
		FileSize:  storedSize,
		Metadata:  map[string]string{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	// Best-effort derived copy of the extracted text next to the original.
	if _, err := s.Store.SaveWithKey(ctx, storageKey+".extracted.txt", "text/plain; charset=utf-8", strings.NewReader(content)); err != nil {
		telemetry.Warn("documents.extracted_copy_failed", map[string]any{
			"document_id": doc.ID,
			"err":         err.Error(),
		})
	}

	return doc, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, id string) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns documents newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Document, error) {
	return s.Repo.List(ctx, limit, offset)
}

// UpdateInput carries the mutable document fields; nil pointers are left
// untouched.
type UpdateInput struct {
	Title     *string
	Custodian *string
	Reviewed  *bool
	Metadata  map[string]string
}

// Update applies a partial update to a document.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return Document{}, err
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return Document{}, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		doc.Title = title
	}
	if in.Custodian != nil {
		doc.Custodian = strings.TrimSpace(*in.Custodian)
	}
	if in.Reviewed != nil {
		doc.Reviewed = *in.Reviewed
	}
	if in.Metadata != nil {
		doc.Metadata = in.Metadata
	}
	if err := s.Repo.Update(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Delete removes a document.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

// Download opens the original file and reports the content type implied by
// its extension.
func (s *Service) Download(ctx context.Context, id string) (io.ReadCloser, string, string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", "", err
	}
	if doc.FilePath == "" {
		return nil, "", "", ErrNotFound
	}
	body, err := s.Store.Open(ctx, doc.FilePath)
	if err != nil {
		return nil, "", "", fmt.Errorf("open original: %w", err)
	}
	return body, ContentTypeForExt(doc.FileExt), doc.Title, nil
}

// Summarize asks the AI collaborator for a review summary. There is no
// fallback: failures surface as a retryable error.
func (s *Service) Summarize(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.AI == nil {
		return "", ErrAIUnavailable
	}
	summary, err := s.AI.Summarize(ctx, doc.Content)
	if err != nil {
		telemetry.Warn("documents.summarize_failed", map[string]any{
			"document_id": id,
			"err":         err.Error(),
		})
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	return summary, nil
}

// SuggestTags asks the AI collaborator for review tags.
func (s *Service) SuggestTags(ctx context.Context, id string) ([]string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.AI == nil {
		return nil, ErrAIUnavailable
	}
	tags, err := s.AI.SuggestTags(ctx, doc.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	return tags, nil
}
