package redactions

import "time"

// Kind discriminates the two redaction shapes. A text redaction names the
// literal span to mask; a box redaction names a page rectangle on the
// original file.
type Kind string

const (
	KindText Kind = "text"
	KindBox  Kind = "box"
)

// Redaction is one entry in a document's redaction ledger. Text redactions
// populate Text; box redactions populate Page and the rectangle fields. The
// unused half stays zero.
type Redaction struct {
	ID         string    `json:"redactionId"`
	DocumentID string    `json:"documentId"`
	Kind       Kind      `json:"kind"`
	Text       string    `json:"text,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	Page       int       `json:"page,omitempty"`
	X          float64   `json:"x,omitempty"`
	Y          float64   `json:"y,omitempty"`
	Width      float64   `json:"width,omitempty"`
	Height     float64   `json:"height,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
