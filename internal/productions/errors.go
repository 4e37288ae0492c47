package productions

import "errors"

var (
	// ErrNotFound indicates the production set does not exist.
	ErrNotFound = errors.New("production set not found")
	// ErrInvalidInput indicates the assembly request failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
