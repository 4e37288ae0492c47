package productions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"discovery-backend/internal/documents"
)

func newTestService(t *testing.T, docCount int) (*Service, []string) {
	t.Helper()

	docsRepo := documents.NewMemoryRepo()
	ids := make([]string, docCount)
	base := time.Now().UTC()
	for i := range ids {
		ids[i] = fmt.Sprintf("doc-%d", i+1)
		doc := documents.Document{
			ID:        ids[i],
			Title:     fmt.Sprintf("exhibit-%d.txt", i+1),
			Content:   "text",
			FileExt:   "txt",
			FilePath:  fmt.Sprintf("2026/01/exhibit-%d.txt", i+1),
			FileSize:  4,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := docsRepo.Create(context.Background(), doc); err != nil {
			t.Fatalf("seed document: %v", err)
		}
	}

	svc := &Service{
		Repo: NewMemoryRepo(),
		Docs: &documents.Service{Repo: docsRepo},
	}
	return svc, ids
}

func TestAssembleAssignsBatesInInputOrder(t *testing.T) {
	svc, ids := newTestService(t, 3)

	// Deliberately reversed input order.
	reversed := []string{ids[2], ids[1], ids[0]}
	result, err := svc.Assemble(context.Background(), AssembleInput{
		Name:        "Wave 1",
		BatesPrefix: "X_",
		StartNumber: 100,
		DocumentIDs: reversed,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if len(result.Links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(result.Links))
	}
	wantBates := []string{"X_000100", "X_000101", "X_000102"}
	for i, link := range result.Links {
		if link.BatesNumber != wantBates[i] {
			t.Fatalf("link %d: expected %s, got %s", i, wantBates[i], link.BatesNumber)
		}
		if link.DocumentID != reversed[i] {
			t.Fatalf("link %d: input order not preserved: expected %s, got %s", i, reversed[i], link.DocumentID)
		}
	}
}

func TestAssembleRerunMintsDisjointHigherRange(t *testing.T) {
	svc, ids := newTestService(t, 3)

	in := AssembleInput{
		Name:        "Wave 1",
		BatesPrefix: "X_",
		StartNumber: 100,
		DocumentIDs: ids,
	}
	first, err := svc.Assemble(context.Background(), in)
	if err != nil {
		t.Fatalf("first assemble: %v", err)
	}
	second, err := svc.Assemble(context.Background(), in)
	if err != nil {
		t.Fatalf("second assemble: %v", err)
	}

	seen := make(map[string]bool)
	for _, link := range first.Links {
		seen[link.BatesNumber] = true
	}
	for _, link := range second.Links {
		if seen[link.BatesNumber] {
			t.Fatalf("bates %s reissued on re-run", link.BatesNumber)
		}
	}
	if second.Set.BatesStart <= first.Links[len(first.Links)-1].BatesSequence {
		t.Fatalf("re-run must start above the previous range: start %d", second.Set.BatesStart)
	}
}

func TestAssembleHonoursHigherExplicitStart(t *testing.T) {
	svc, ids := newTestService(t, 1)

	first, err := svc.Assemble(context.Background(), AssembleInput{
		Name:        "Wave 1",
		BatesPrefix: "X_",
		StartNumber: 100,
		DocumentIDs: ids,
	})
	if err != nil {
		t.Fatalf("first assemble: %v", err)
	}
	if first.Links[0].BatesNumber != "X_000100" {
		t.Fatalf("expected X_000100, got %s", first.Links[0].BatesNumber)
	}

	second, err := svc.Assemble(context.Background(), AssembleInput{
		Name:        "Wave 2",
		BatesPrefix: "X_",
		StartNumber: 5000,
		DocumentIDs: ids,
	})
	if err != nil {
		t.Fatalf("second assemble: %v", err)
	}
	if second.Links[0].BatesNumber != "X_005000" {
		t.Fatalf("explicit higher start must win, got %s", second.Links[0].BatesNumber)
	}
}

func TestAssembleSeparatePrefixesDoNotInteract(t *testing.T) {
	svc, ids := newTestService(t, 1)

	if _, err := svc.Assemble(context.Background(), AssembleInput{
		Name:        "Wave 1",
		BatesPrefix: "X_",
		StartNumber: 100,
		DocumentIDs: ids,
	}); err != nil {
		t.Fatalf("assemble: %v", err)
	}

	other, err := svc.Assemble(context.Background(), AssembleInput{
		Name:        "Wave 1",
		BatesPrefix: "Y_",
		StartNumber: 1,
		DocumentIDs: ids,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if other.Links[0].BatesNumber != "Y_000001" {
		t.Fatalf("prefix Y_ should start fresh, got %s", other.Links[0].BatesNumber)
	}
}

func TestAssembleEmitsLoadFile(t *testing.T) {
	svc, ids := newTestService(t, 2)

	result, err := svc.Assemble(context.Background(), AssembleInput{
		Name:           "Wave 1",
		BatesPrefix:    "X_",
		StartNumber:    1,
		LoadFileFormat: LoadFileOPT,
		DocumentIDs:    ids,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(result.LoadFile), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one OPT row per document, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "X_000001,") {
		t.Fatalf("unexpected OPT row %q", lines[0])
	}
}

func TestAssembleMetadataReport(t *testing.T) {
	svc, ids := newTestService(t, 1)

	result, err := svc.Assemble(context.Background(), AssembleInput{
		Name:        "Wave 1",
		BatesPrefix: "X_",
		Include:     IncludeFlags{Metadata: true},
		DocumentIDs: ids,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(result.MetadataReport) == 0 {
		t.Fatalf("expected a metadata report")
	}
	// XLSX is a zip archive.
	if !bytes.HasPrefix(result.MetadataReport, []byte("PK")) {
		t.Fatalf("metadata report is not an XLSX workbook")
	}

	without, err := svc.Assemble(context.Background(), AssembleInput{
		Name:        "Wave 2",
		BatesPrefix: "X_",
		DocumentIDs: ids,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if without.MetadataReport != nil {
		t.Fatalf("metadata report must be opt-in")
	}
}

func TestAssembleValidation(t *testing.T) {
	svc, ids := newTestService(t, 1)

	cases := []struct {
		name string
		in   AssembleInput
	}{
		{"missing name", AssembleInput{BatesPrefix: "X_", DocumentIDs: ids}},
		{"missing prefix", AssembleInput{Name: "Wave 1", DocumentIDs: ids}},
		{"no documents", AssembleInput{Name: "Wave 1", BatesPrefix: "X_"}},
		{"bad format", AssembleInput{Name: "Wave 1", BatesPrefix: "X_", Format: "VHS", DocumentIDs: ids}},
		{"bad load file format", AssembleInput{Name: "Wave 1", BatesPrefix: "X_", LoadFileFormat: "LFP2", DocumentIDs: ids}},
		{"unknown document", AssembleInput{Name: "Wave 1", BatesPrefix: "X_", DocumentIDs: []string{"missing"}}},
		{"duplicate document", AssembleInput{Name: "Wave 1", BatesPrefix: "X_", DocumentIDs: []string{ids[0], ids[0]}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Assemble(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAssembleRejectsDuplicateDocuments(t *testing.T) {
	svc, ids := newTestService(t, 1)

	_, err := svc.Assemble(context.Background(), AssembleInput{
		Name:        "Wave 1",
		BatesPrefix: "DUP_",
		DocumentIDs: []string{ids[0], ids[0]},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// A rejected request must not mint anything: each (set, document) pair
	// owns exactly one bates number, so the duplicate never reaches the repo.
	max, err := svc.Repo.MaxSequenceForPrefix(context.Background(), "DUP_")
	if err != nil {
		t.Fatalf("max sequence: %v", err)
	}
	if max != 0 {
		t.Fatalf("rejected assemble minted sequences up to %d", max)
	}
}

func TestGetReturnsSetAndLinks(t *testing.T) {
	svc, ids := newTestService(t, 2)

	result, err := svc.Assemble(context.Background(), AssembleInput{
		Name:        "Wave 1",
		BatesPrefix: "X_",
		DocumentIDs: ids,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	set, links, err := svc.Get(context.Background(), result.Set.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if set.Name != "Wave 1" {
		t.Fatalf("unexpected set name %q", set.Name)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].BatesSequence >= links[1].BatesSequence {
		t.Fatalf("links must come back in bates order")
	}

	if _, _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
