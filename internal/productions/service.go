package productions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"discovery-backend/internal/documents"
	"discovery-backend/internal/shared/metrics"
	"discovery-backend/internal/shared/telemetry"
)

// Service assembles production sets.
type Service struct {
	Repo Repo
	Docs *documents.Service
}

// AssembleInput is one export request. The resulting set is immutable.
type AssembleInput struct {
	Name           string
	BatesPrefix    string
	StartNumber    int64
	Format         Format
	Include        IncludeFlags
	LoadFileFormat LoadFileFormat
	DocumentIDs    []string
}

// AssembleResult carries the persisted set, its ordered bates assignments,
// the load file, and the optional metadata report.
type AssembleResult struct {
	Set            ProductionSet
	Links          []ProductionDocumentLink
	LoadFile       []byte
	MetadataReport []byte
}

// Assemble mints bates numbers for the given documents in input order,
// persists the set with its links, and renders the load file. Re-running
// over the same documents mints a new, strictly higher range for the
// prefix; numbers are never reissued.
func (s *Service) Assemble(ctx context.Context, in AssembleInput) (AssembleResult, error) {
	if err := validateInput(&in); err != nil {
		return AssembleResult{}, err
	}

	docs := make([]documents.Document, 0, len(in.DocumentIDs))
	for _, id := range in.DocumentIDs {
		doc, err := s.Docs.Get(ctx, id)
		if err != nil {
			return AssembleResult{}, fmt.Errorf("%w: unknown document %s", ErrInvalidInput, id)
		}
		docs = append(docs, doc)
	}

	maxSeq, err := s.Repo.MaxSequenceForPrefix(ctx, in.BatesPrefix)
	if err != nil {
		return AssembleResult{}, fmt.Errorf("next bates range: %w", err)
	}
	start := in.StartNumber
	if maxSeq+1 > start {
		start = maxSeq + 1
	}

	now := time.Now().UTC()
	set := ProductionSet{
		ID:             uuid.NewString(),
		Name:           in.Name,
		BatesPrefix:    in.BatesPrefix,
		BatesStart:     start,
		Format:         in.Format,
		Include:        in.Include,
		LoadFileFormat: in.LoadFileFormat,
		CreatedAt:      now,
	}
	links := make([]ProductionDocumentLink, len(docs))
	rows := make([]LoadFileRow, len(docs))
	metaRows := make([]MetadataRow, len(docs))
	for i, doc := range docs {
		seq := start + int64(i)
		bates := BatesNumber(in.BatesPrefix, seq)
		links[i] = ProductionDocumentLink{
			ID:              uuid.NewString(),
			ProductionSetID: set.ID,
			DocumentID:      doc.ID,
			BatesNumber:     bates,
			BatesSequence:   seq,
			CreatedAt:       now,
		}
		rows[i] = LoadFileRow{
			DocumentID: doc.ID,
			Bates:      bates,
			Title:      doc.Title,
			Custodian:  doc.Custodian,
			FileType:   doc.FileExt,
			FilePath:   doc.FilePath,
		}
		metaRows[i] = MetadataRow{
			Bates:     bates,
			Title:     doc.Title,
			Custodian: doc.Custodian,
			FileType:  doc.FileExt,
			SizeBytes: doc.FileSize,
			Redacted:  doc.Redacted,
		}
	}
	if err := s.Repo.CreateSet(ctx, set, links); err != nil {
		return AssembleResult{}, fmt.Errorf("persist set: %w", err)
	}

	loadFile, err := RenderLoadFile(set.LoadFileFormat, rows)
	if err != nil {
		return AssembleResult{}, fmt.Errorf("render load file: %w", err)
	}

	result := AssembleResult{Set: set, Links: links, LoadFile: loadFile}
	if in.Include.Metadata {
		report, err := RenderMetadataXLSX(set.Name, metaRows)
		if err != nil {
			return AssembleResult{}, fmt.Errorf("render metadata report: %w", err)
		}
		result.MetadataReport = report
	}

	metrics.IncProductionAssembled()
	telemetry.Info("productions.assembled", map[string]any{
		"production_set_id": set.ID,
		"prefix":            set.BatesPrefix,
		"documents":         len(links),
		"bates_start":       start,
	})
	return result, nil
}

// Get returns a set and its links in bates order.
func (s *Service) Get(ctx context.Context, id string) (ProductionSet, []ProductionDocumentLink, error) {
	if id == "" {
		return ProductionSet{}, nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	set, err := s.Repo.GetSet(ctx, id)
	if err != nil {
		return ProductionSet{}, nil, err
	}
	links, err := s.Repo.ListLinks(ctx, id)
	if err != nil {
		return ProductionSet{}, nil, err
	}
	return set, links, nil
}

func validateInput(in *AssembleInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.BatesPrefix = strings.TrimSpace(in.BatesPrefix)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.BatesPrefix == "" {
		return fmt.Errorf("%w: batesPrefix is required", ErrInvalidInput)
	}
	if in.StartNumber < 1 {
		in.StartNumber = 1
	}
	if len(in.DocumentIDs) == 0 {
		return fmt.Errorf("%w: documentIds must not be empty", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(in.DocumentIDs))
	for _, id := range in.DocumentIDs {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate document %s", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}
	switch in.Format {
	case FormatPDF, FormatTIFF, FormatNative:
	case "":
		in.Format = FormatPDF
	default:
		return fmt.Errorf("%w: format must be PDF, TIFF, or Native", ErrInvalidInput)
	}
	switch in.LoadFileFormat {
	case LoadFileDAT, LoadFileOPT, LoadFileCSV:
	case "":
		in.LoadFileFormat = LoadFileCSV
	default:
		return fmt.Errorf("%w: loadFileFormat must be DAT, OPT, or CSV", ErrInvalidInput)
	}
	return nil
}
