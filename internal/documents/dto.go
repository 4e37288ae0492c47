package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	DocumentID string            `json:"documentId"`
	Title      string            `json:"title"`
	Content    string            `json:"content,omitempty"`
	FileExt    string            `json:"fileExt"`
	SizeBytes  int64             `json:"sizeBytes"`
	Custodian  string            `json:"custodian,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Reviewed   bool              `json:"reviewed"`
	Redacted   bool              `json:"redacted"`
	UploadedAt time.Time         `json:"uploadedAt"`
}

func toResponse(doc Document, includeContent bool) DocumentResponse {
	resp := DocumentResponse{
		DocumentID: doc.ID,
		Title:      doc.Title,
		FileExt:    doc.FileExt,
		SizeBytes:  doc.FileSize,
		Custodian:  doc.Custodian,
		Metadata:   doc.Metadata,
		Reviewed:   doc.Reviewed,
		Redacted:   doc.Redacted,
		UploadedAt: doc.CreatedAt,
	}
	if includeContent {
		resp.Content = doc.Content
	}
	return resp
}
