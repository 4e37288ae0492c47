package productions

import "fmt"

// BatesNumber renders a single bates identifier: the prefix followed by the
// sequence zero-padded to at least six digits. Sequences past 999999 widen
// naturally.
func BatesNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s%06d", prefix, seq)
}

// BatesNumbers mints count consecutive bates identifiers starting at start.
func BatesNumbers(prefix string, start int64, count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = BatesNumber(prefix, start+int64(i))
	}
	return out
}
