package pii

import "regexp"

// fallbackPatterns are applied in this fixed order when the AI collaborator
// is unavailable. One pass per pattern; results are additive and never
// deduplicated across patterns.
var fallbackPatterns = []struct {
	reason string
	re     *regexp.Regexp
}{
	{"Phone Number", regexp.MustCompile(`\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}\b`)},
	{"Email Address", regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)},
	{"SSN", regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
	{"ZIP Code", regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)},
	{"Currency Amount", regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d{2})?`)},
	{"IP Address", regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)},
	{"Street Address", regexp.MustCompile(`\b\d+\s+[A-Za-z0-9. ]+?(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Court|Ct|Place|Pl|Way)\b`)},
}

func fallbackCandidates(text string) []Candidate {
	out := []Candidate{}
	for _, p := range fallbackPatterns {
		for _, match := range p.re.FindAllString(text, -1) {
			out = append(out, Candidate{Text: match, Reason: p.reason})
		}
	}
	return out
}
