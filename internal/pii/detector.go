package pii

import (
	"context"
	"time"

	"discovery-backend/internal/ai"
	"discovery-backend/internal/shared/metrics"
	"discovery-backend/internal/shared/telemetry"
)

// Candidate is a proposed redaction span. Candidates are suggestions for
// human confirmation, not authoritative redactions: overlapping or duplicate
// spans across categories are possible and acceptable.
type Candidate struct {
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Detector proposes redaction candidates for a document's text. The AI
// collaborator is tried first; any failure falls back to local pattern
// matching.
type Detector struct {
	AI      ai.Client
	Timeout time.Duration
}

// Detect returns candidate spans for the given text. It never fails: when
// the collaborator call errors, times out, or returns malformed output, the
// regex fallback runs instead.
func (d *Detector) Detect(ctx context.Context, text string) []Candidate {
	if d.AI != nil {
		callCtx := ctx
		if d.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, d.Timeout)
			defer cancel()
		}

		raw, err := d.AI.DetectPII(callCtx, text)
		if err == nil {
			candidates, parseErr := parseCandidates(raw)
			if parseErr == nil {
				return candidates
			}
			telemetry.Warn("pii.detect.malformed_response", map[string]any{"err": parseErr.Error()})
		} else {
			telemetry.Warn("pii.detect.ai_failed", map[string]any{"err": err.Error()})
		}
	}

	metrics.IncPIIFallback()
	return fallbackCandidates(text)
}
