package documents

import "errors"

var (
	// ErrNotFound indicates the document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput indicates a malformed request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFileTooLarge indicates the upload exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds size limit")
	// ErrUnsupportedType indicates the file extension is not accepted.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrAIUnavailable indicates the AI collaborator call failed; the
	// operation may be retried.
	ErrAIUnavailable = errors.New("ai service unavailable")
)
