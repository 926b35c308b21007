package chrono

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqual[V comparable](t *testing.T, expected V, actual V) {
	t.Helper()
	if expected != actual {
		t.Fatalf("expected: %v, actual: %v", expected, actual)
	}
}

func TestDeepEqual(t *testing.T, expected any, actual any) {
	t.Helper()
	if d := cmp.Diff(expected, actual); d != "" {
		t.Fatalf("mismatch (-expected +actual):\n%s", d)
	}
}
