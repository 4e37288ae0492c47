package pii

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// candidateSchema mirrors the shape the collaborator is prompted to return.
const candidateSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["text", "reason"],
    "properties": {
      "text": {"type": "string", "minLength": 1},
      "reason": {"type": "string", "minLength": 1}
    }
  }
}`

var compiledCandidateSchema = jsonschema.MustCompileString("pii_candidates.json", candidateSchema)

func parseCandidates(raw json.RawMessage) ([]Candidate, error) {
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	if err := compiledCandidateSchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("candidate schema: %w", err)
	}

	var out []Candidate
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	if out == nil {
		out = []Candidate{}
	}
	return out, nil
}
