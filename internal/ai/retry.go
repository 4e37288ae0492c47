package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"time"

	"discovery-backend/internal/shared/telemetry"
)

const retryBaseDelay = 300 * time.Millisecond

// Retrying wraps a Client with a single retry on transient transport
// failures.
type Retrying struct {
	Base Client
}

// NewRetrying wraps base; a nil base yields a nil client.
func NewRetrying(base Client) Client {
	if base == nil {
		return nil
	}
	return Retrying{Base: base}
}

// Summarize delegates with one retry on transient failure.
func (r Retrying) Summarize(ctx context.Context, text string) (string, error) {
	out, err := r.Base.Summarize(ctx, text)
	if err == nil || !shouldRetry(err) {
		return out, err
	}
	if err := wait(ctx); err != nil {
		return "", err
	}
	return r.Base.Summarize(ctx, text)
}

// DetectPII delegates with one retry on transient failure.
func (r Retrying) DetectPII(ctx context.Context, text string) (json.RawMessage, error) {
	out, err := r.Base.DetectPII(ctx, text)
	if err == nil || !shouldRetry(err) {
		return out, err
	}
	if err := wait(ctx); err != nil {
		return nil, err
	}
	return r.Base.DetectPII(ctx, text)
}

// SuggestTags delegates with one retry on transient failure.
func (r Retrying) SuggestTags(ctx context.Context, text string) ([]string, error) {
	out, err := r.Base.SuggestTags(ctx, text)
	if err == nil || !shouldRetry(err) {
		return out, err
	}
	if err := wait(ctx); err != nil {
		return nil, err
	}
	return r.Base.SuggestTags(ctx, text)
}

func wait(ctx context.Context) error {
	telemetry.Warn("ai.retry", map[string]any{"delay_ms": retryBaseDelay.Milliseconds()})
	select {
	case <-time.After(retryBaseDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, ErrUnavailable) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}

var _ Client = Retrying{}
