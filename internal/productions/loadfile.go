package productions

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// datDelim is the Concordance field delimiter; every field is wrapped in it.
const datDelim = "þ"

// LoadFileRow is one document's worth of load file data.
type LoadFileRow struct {
	DocumentID string
	Bates      string
	Title      string
	Custodian  string
	FileType   string
	FilePath   string
}

// RenderLoadFile emits the load file bytes for the chosen format. Unknown
// formats render as CSV. A missing custodian always becomes an empty field.
func RenderLoadFile(format LoadFileFormat, rows []LoadFileRow) ([]byte, error) {
	switch format {
	case LoadFileDAT:
		return renderDAT(rows), nil
	case LoadFileOPT:
		return renderOPT(rows), nil
	default:
		return renderCSV(rows)
	}
}

func renderDAT(rows []LoadFileRow) []byte {
	var b strings.Builder
	writeDATRow(&b, []string{"DOCID", "BATES", "TITLE", "CUSTODIAN", "FILETYPE"})
	for _, row := range rows {
		writeDATRow(&b, []string{row.DocumentID, row.Bates, row.Title, row.Custodian, row.FileType})
	}
	return []byte(b.String())
}

func writeDATRow(b *strings.Builder, fields []string) {
	for _, f := range fields {
		b.WriteString(datDelim)
		b.WriteString(f)
		b.WriteString(datDelim)
	}
	b.WriteString("\n")
}

// renderOPT emits one image-boundary row per document. The Y marks a new
// document; the trailing empty fields stand in for volume and page counts
// not modeled here.
func renderOPT(rows []LoadFileRow) []byte {
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s,%s,Y,,,,,\n", row.Bates, row.FilePath)
	}
	return []byte(b.String())
}

func renderCSV(rows []LoadFileRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ID", "BATES", "TITLE", "CUSTODIAN", "FILETYPE"}); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.DocumentID, row.Bates, row.Title, row.Custodian, row.FileType}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
