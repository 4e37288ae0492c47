package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"discovery-backend/internal/shared/metrics"
)

const (
	// pdfScanWindow bounds how far into the byte stream the heuristic looks.
	pdfScanWindow = 30000
	// pdfMinTextChars is the minimum concatenated fragment length accepted
	// as real document text rather than structural noise.
	pdfMinTextChars = 100
)

var pdfStructuralTokens = []string{"PDF", "obj", "stream", "Acrobat", "Adobe"}

var (
	showTextArrayRe = regexp.MustCompile(`\[([^\[\]]*)\]\s*TJ`)
	parenRunRe      = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)
	reflowSplitRe   = regexp.MustCompile(` {2,}|\n+`)
)

// extractPDF is a bounded, best-effort scan of the raw PDF byte stream for
// literal text. It is NOT a PDF renderer: uncompressed string fragments are
// pulled straight out of the bytes, and compressed or image-based PDFs
// degrade to a placeholder. A content-stream parser could replace this
// without changing the contract.
func extractPDF(data []byte, title string) string {
	head := data
	if len(head) > pdfScanWindow {
		head = head[:pdfScanWindow]
	}
	raw := string(head)

	if text := scanParenFragments(raw); len(text) > pdfMinTextChars {
		return reflow(text) + provenanceFooter(title, len(data))
	}
	if text := scanShowTextArrays(raw); len(text) > pdfMinTextChars {
		return reflow(text) + provenanceFooter(title, len(data))
	}

	metrics.IncExtractionDegraded()
	return fmt.Sprintf("[PDF %q appears to be image-based or does not contain extractable text. Review the native or original view.]", title)
}

// scanParenFragments collects parenthesized substrings that do not look like
// PDF structural tokens and joins the survivors with single spaces.
func scanParenFragments(raw string) string {
	var frags []string
	for i := 0; i < len(raw); i++ {
		if raw[i] != '(' {
			continue
		}
		end := -1
		for j := i + 1; j < len(raw); j++ {
			if raw[j] == ')' && raw[j-1] != '\\' {
				end = j
				break
			}
		}
		if end < 0 {
			break
		}
		frag := raw[i+1 : end]
		i = end
		if keepFragment(frag) {
			frags = append(frags, frag)
		}
	}
	return strings.Join(frags, " ")
}

// scanShowTextArrays pulls parenthesized runs out of `[...] TJ` show-text
// operator arrays and concatenates them.
func scanShowTextArrays(raw string) string {
	var buf strings.Builder
	for _, m := range showTextArrayRe.FindAllStringSubmatch(raw, -1) {
		for _, pm := range parenRunRe.FindAllStringSubmatch(m[1], -1) {
			buf.WriteString(pm[1])
		}
	}
	return buf.String()
}

func keepFragment(frag string) bool {
	if len(frag) < 3 {
		return false
	}
	for _, tok := range pdfStructuralTokens {
		if strings.Contains(frag, tok) {
			return false
		}
	}
	for _, r := range frag {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// reflow normalizes whitespace and re-wraps fragments into pseudo-paragraphs,
// splitting on runs of two or more spaces or on newlines.
func reflow(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	var paras []string
	for _, part := range reflowSplitRe.Split(s, -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paras = append(paras, trimmed)
		}
	}
	return strings.Join(paras, "\n\n")
}

func provenanceFooter(title string, sizeBytes int) string {
	return fmt.Sprintf("\n\n[Extracted from %s, %d bytes]", title, sizeBytes)
}
