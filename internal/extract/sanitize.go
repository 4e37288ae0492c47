package extract

import "strings"

// sanitizeText restricts extracted text to printable ASCII, the common
// Latin-1/Latin Extended ranges, and CR/LF. NUL bytes and lone UTF-16
// surrogates are dropped; every other disallowed character becomes a single
// space. This keeps downstream text storage safe and is knowingly lossy for
// non-Latin scripts.
func sanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == 0x0000:
			// drop NUL
		case r >= 0xD800 && r <= 0xDFFF:
			// drop lone surrogates
		case r == '\n' || r == '\r':
			b.WriteRune(r)
		case r >= 0x20 && r <= 0x7E:
			b.WriteRune(r)
		case r >= 0xA0 && r <= 0x24F:
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}
