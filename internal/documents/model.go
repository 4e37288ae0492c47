package documents

import "time"

// Document represents a reviewable item in the discovery corpus. Content is
// the extracted text and is never empty: extraction degrades to a
// placeholder rather than failing. Redacted flips to true when the first
// redaction is recorded and never reverts automatically.
type Document struct {
	ID        string
	Title     string
	Content   string
	FilePath  string
	FileExt   string
	FileSize  int64
	Custodian string
	Metadata  map[string]string
	Reviewed  bool
	Redacted  bool
	CreatedAt time.Time
}
