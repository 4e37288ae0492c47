package ai

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts the AI text-analysis collaborator. It is injected as a
// dependency rather than referenced as process-wide state so callers can
// swap in a fallback or test double.
type Client interface {
	Summarize(ctx context.Context, text string) (string, error)
	DetectPII(ctx context.Context, text string) (json.RawMessage, error)
	SuggestTags(ctx context.Context, text string) ([]string, error)
}

// ErrUnavailable is returned when the collaborator cannot be reached or is
// not configured. Callers decide whether to fall back or surface a retryable
// failure.
var ErrUnavailable = errors.New("ai service unavailable")

// NoopClient reports the collaborator as unavailable on every call so that
// callers exercise their fallback paths. Used in tests and when no provider
// is configured.
type NoopClient struct{}

// Summarize returns ErrUnavailable.
func (NoopClient) Summarize(ctx context.Context, text string) (string, error) {
	_ = ctx
	_ = text
	return "", ErrUnavailable
}

// DetectPII returns ErrUnavailable.
func (NoopClient) DetectPII(ctx context.Context, text string) (json.RawMessage, error) {
	_ = ctx
	_ = text
	return nil, ErrUnavailable
}

// SuggestTags returns ErrUnavailable.
func (NoopClient) SuggestTags(ctx context.Context, text string) ([]string, error) {
	_ = ctx
	_ = text
	return nil, ErrUnavailable
}

var _ Client = NoopClient{}
