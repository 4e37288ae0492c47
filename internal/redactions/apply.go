package redactions

import (
	"strings"
	"unicode/utf8"
)

const maskRune = '█'

// Apply renders text with the given redactions burned in. Each text
// redaction masks the first literal occurrence of its span with block
// characters of the same rune length; later occurrences are left alone, as
// are overlapping spans already masked by an earlier entry. Box redactions
// describe the original file, not the extracted text, so they contribute
// nothing here.
func Apply(text string, regions []Redaction) string {
	for _, region := range regions {
		if region.Kind != KindText || region.Text == "" {
			continue
		}
		idx := strings.Index(text, region.Text)
		if idx < 0 {
			continue
		}
		mask := strings.Repeat(string(maskRune), utf8.RuneCountInString(region.Text))
		text = text[:idx] + mask + text[idx+len(region.Text):]
	}
	return text
}
