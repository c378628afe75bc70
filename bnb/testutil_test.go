// Package bnb_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files.
package bnb_test

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/katalvlaran/knapsack/bnb"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for Generate-based instances.
	seedDet = int64(42)

	// timeTiny is a tiny wall-clock budget used to exercise deadline behavior.
	timeTiny = 1 * time.Millisecond
)

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, invariant checks)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
// Intended for strict sentinels (ErrNegativeCapacity, ErrTimeLimit, ...).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
// Prefer slices.Equal over reflect.DeepEqual for slices of basic types.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mkItems builds an Item sequence from (weight, value) pairs with indices in
// construction order, mirroring how Items assigns identity.
func mkItems(pairs ...[2]int64) []bnb.Item {
	items := make([]bnb.Item, len(pairs))
	var i int
	for i = range pairs {
		items[i] = bnb.Item{Index: i, Weight: pairs[i][0], Value: pairs[i][1]}
	}

	return items
}

// checkSolution asserts the structural invariants every Result must satisfy
// against the original items and capacity:
//   - every included index is a valid original index, each at most once,
//     and the sequence is ascending;
//   - the included weights sum to ≤ capacity;
//   - the included values sum to exactly MaxValue.
func checkSolution(t *testing.T, items []bnb.Item, capacity int64, res bnb.Result) {
	t.Helper()

	var (
		sumW int64
		sumV int64
		prev = -1
		idx  int
	)
	for _, idx = range res.Included {
		if idx < 0 || idx >= len(items) {
			t.Fatalf("included index %d out of range [0,%d)", idx, len(items))
		}
		if idx <= prev {
			t.Fatalf("included indices not strictly ascending: %v", res.Included)
		}
		prev = idx
		sumW += items[idx].Weight
		sumV += items[idx].Value
	}
	if sumW > capacity {
		t.Fatalf("included weight %d exceeds capacity %d", sumW, capacity)
	}
	if sumV != res.MaxValue {
		t.Fatalf("included values sum to %d, reported MaxValue %d", sumV, res.MaxValue)
	}
}
