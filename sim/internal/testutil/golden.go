// Package testutil provides shared test infrastructure for the checkout
// simulator: stored golden traces and float assertion helpers.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// LoadGoldenTrace reads sim/testdata/<name> and returns its lines, the last
// of which is the statistics line. The path is resolved relative to this
// source file so callers in any package under sim/ can use it.
func LoadGoldenTrace(t *testing.T, name string) []string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to sim/testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden trace: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
