package productions

import (
	"reflect"
	"strings"
	"testing"
)

func TestBatesNumbersPadding(t *testing.T) {
	got := BatesNumbers("ABC_", 1, 3)
	want := []string{"ABC_000001", "ABC_000002", "ABC_000003"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBatesNumbersWidenPastMillion(t *testing.T) {
	got := BatesNumbers("X_", 999999, 3)
	want := []string{"X_999999", "X_1000000", "X_1000001"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBatesNumbersShareThePrefix(t *testing.T) {
	for _, b := range BatesNumbers("ACME-", 42, 10) {
		if !strings.HasPrefix(b, "ACME-") {
			t.Fatalf("bates %q lost the prefix", b)
		}
	}
}
