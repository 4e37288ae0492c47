package redactions

import "errors"

var (
	// ErrNotFound indicates the redaction does not exist.
	ErrNotFound = errors.New("redaction not found")
	// ErrInvalidInput indicates the redaction request failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
