package pii

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"discovery-backend/internal/ai"
)

type stubAI struct {
	raw json.RawMessage
	err error
}

func (s stubAI) Summarize(ctx context.Context, text string) (string, error) {
	return "", ai.ErrUnavailable
}

func (s stubAI) DetectPII(ctx context.Context, text string) (json.RawMessage, error) {
	return s.raw, s.err
}

func (s stubAI) SuggestTags(ctx context.Context, text string) ([]string, error) {
	return nil, ai.ErrUnavailable
}

func TestDetectUsesAICandidates(t *testing.T) {
	d := &Detector{AI: stubAI{raw: json.RawMessage(`[{"text":"Jane Roe","reason":"Name"}]`)}}

	got := d.Detect(context.Background(), "Jane Roe signed the lease.")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Text != "Jane Roe" || got[0].Reason != "Name" {
		t.Fatalf("unexpected candidate: %+v", got[0])
	}
}

func TestDetectFallsBackOnAIError(t *testing.T) {
	d := &Detector{AI: stubAI{err: errors.New("connection refused")}}

	got := d.Detect(context.Background(), "Contact jane@example.com or 555-123-4567")
	if len(got) != 2 {
		t.Fatalf("expected 2 fallback candidates, got %d: %+v", len(got), got)
	}
	if got[0].Reason != "Phone Number" || got[0].Text != "555-123-4567" {
		t.Fatalf("unexpected first candidate: %+v", got[0])
	}
	if got[1].Reason != "Email Address" || got[1].Text != "jane@example.com" {
		t.Fatalf("unexpected second candidate: %+v", got[1])
	}
}

func TestDetectFallsBackOnMalformedJSON(t *testing.T) {
	d := &Detector{AI: stubAI{raw: json.RawMessage(`{"not":"an array"}`)}}

	got := d.Detect(context.Background(), "reach me at ops@example.org")
	if len(got) != 1 || got[0].Reason != "Email Address" {
		t.Fatalf("expected regex fallback, got %+v", got)
	}
}

func TestDetectFallsBackOnSchemaViolation(t *testing.T) {
	d := &Detector{AI: stubAI{raw: json.RawMessage(`[{"text":""}]`)}}

	got := d.Detect(context.Background(), "no sensitive content here")
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %+v", got)
	}
}

func TestDetectNilClientUsesFallback(t *testing.T) {
	d := &Detector{}

	got := d.Detect(context.Background(), "SSN 123-45-6789 on file")
	var reasons []string
	for _, c := range got {
		reasons = append(reasons, c.Reason)
	}
	if len(got) == 0 {
		t.Fatalf("expected fallback candidates, got none")
	}
	if got[0].Reason != "SSN" {
		t.Fatalf("expected SSN first, got %v", reasons)
	}
}

func TestFallbackPatternCategories(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		reason string
		want   string
	}{
		{"phone", "call (212) 555-0173 today", "Phone Number", "(212) 555-0173"},
		{"email", "cc legal@acme.test please", "Email Address", "legal@acme.test"},
		{"ssn", "SSN: 987-65-4320", "SSN", "987-65-4320"},
		{"zip", "Springfield, IL 62704", "ZIP Code", "62704"},
		{"currency", "wire $1,250,000.00 by Friday", "Currency Amount", "$1,250,000.00"},
		{"ip", "logged in from 192.168.10.44", "IP Address", "192.168.10.44"},
		{"street", "served at 742 Evergreen Terrace Way", "Street Address", "742 Evergreen Terrace Way"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fallbackCandidates(tc.text)
			for _, c := range got {
				if c.Reason == tc.reason && c.Text == tc.want {
					return
				}
			}
			t.Fatalf("expected %q tagged %q in %+v", tc.want, tc.reason, got)
		})
	}
}

func TestFallbackDoesNotDeduplicateAcrossPatterns(t *testing.T) {
	// A bare ZIP-like number inside a phone number is fine to double-report;
	// candidates are reviewed by a human before becoming redactions.
	got := fallbackCandidates("55512 34567")
	count := 0
	for _, c := range got {
		if c.Reason == "ZIP Code" {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected both 5-digit runs reported as ZIP codes, got %+v", got)
	}
}
