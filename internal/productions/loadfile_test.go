package productions

import (
	"strings"
	"testing"
)

func sampleRows() []LoadFileRow {
	return []LoadFileRow{
		{
			DocumentID: "doc-1",
			Bates:      "X_000100",
			Title:      "memo.txt",
			Custodian:  "Dana Smith",
			FileType:   "txt",
			FilePath:   "2026/01/memo.txt",
		},
		{
			DocumentID: "doc-2",
			Bates:      "X_000101",
			Title:      "report.pdf",
			Custodian:  "",
			FileType:   "pdf",
			FilePath:   "2026/01/report.pdf",
		},
	}
}

func TestRenderDAT(t *testing.T) {
	out, err := RenderLoadFile(LoadFileDAT, sampleRows())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "þDOCIDþþBATESþþTITLEþþCUSTODIANþþFILETYPEþ" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "þdoc-1þþX_000100þþmemo.txtþþDana Smithþþtxtþ" {
		t.Fatalf("unexpected row %q", lines[1])
	}
	// Absent custodian renders as an empty wrapped field, never "null".
	if lines[2] != "þdoc-2þþX_000101þþreport.pdfþþþþpdfþ" {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestRenderOPT(t *testing.T) {
	out, err := RenderLoadFile(LoadFileOPT, sampleRows())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("OPT has no header; expected 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "X_000100,2026/01/memo.txt,Y,,,,," {
		t.Fatalf("unexpected row %q", lines[0])
	}
	if lines[1] != "X_000101,2026/01/report.pdf,Y,,,,," {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestRenderCSV(t *testing.T) {
	out, err := RenderLoadFile(LoadFileCSV, sampleRows())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID,BATES,TITLE,CUSTODIAN,FILETYPE" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "doc-1,X_000100,memo.txt,Dana Smith,txt" {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if lines[2] != "doc-2,X_000101,report.pdf,,pdf" {
		t.Fatalf("unexpected row %q", lines[2])
	}
	if strings.Contains(string(out), "null") {
		t.Fatalf("custodian must never render as null: %q", out)
	}
}

func TestRenderUnknownFormatFallsBackToCSV(t *testing.T) {
	out, err := RenderLoadFile(LoadFileFormat("LFP"), sampleRows())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(string(out), "ID,BATES,") {
		t.Fatalf("expected CSV fallback, got %q", out)
	}
}
