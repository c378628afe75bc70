package dp

import "errors"

// Solve — bottom-up 0/1 knapsack table filling with exact reconstruction.
//
// Algorithm Outline:
//  1. Let n = len(values). Allocate the value row dp[0..capacity] (zeroed)
//     and an n×(capacity+1) choice table.
//  2. For each item i in original order, sweep w from capacity down to
//     weights[i]:
//     dp[w] = max(dp[w], dp[w-weights[i]]+values[i])
//     and record choice[i][w] when the inclusion strictly wins. The downward
//     sweep is what enforces single use of each item.
//  3. The optimal value is dp[capacity].
//  4. Reconstruction walks items in reverse original order with remaining =
//     capacity: whenever choice[i][remaining] is set, item i belongs to the
//     subset and remaining shrinks by its weight; stop early once remaining
//     reaches 0. Collected indices are reversed into ascending order.
//
// The recorded-choice walk (rather than re-testing value equalities against
// the final row) is what makes the reconstruction exact: the final row alone
// cannot distinguish "item i produced dp[w]" from "items after i did".
var (
	// ErrLengthMismatch indicates that values and weights cannot be paired.
	ErrLengthMismatch = errors.New("dp: values and weights length mismatch")

	// ErrNonPositiveWeight indicates an item with weight ≤ 0.
	ErrNonPositiveWeight = errors.New("dp: item weight must be positive")

	// ErrNegativeValue indicates an item with a negative value.
	ErrNegativeValue = errors.New("dp: item value must be non-negative")
)

// Solve computes the optimal 0/1 knapsack value for the given parallel
// value/weight slices and capacity, plus one optimal subset of item indices
// in ascending original order.
//
// A capacity ≤ 0 (or an empty item set) returns (0, nil, nil).
//
// Complexity: O(n·capacity) time, O(n·capacity) space.
func Solve(values, weights []int64, capacity int64) (int64, []int, error) {
	// Validation first: sentinels only, no panics.
	if len(values) != len(weights) {
		return 0, nil, ErrLengthMismatch
	}
	var i int
	for i = range weights {
		if weights[i] <= 0 {
			return 0, nil, ErrNonPositiveWeight
		}
		if values[i] < 0 {
			return 0, nil, ErrNegativeValue
		}
	}

	n := len(values)
	if n == 0 || capacity <= 0 {
		return 0, nil, nil
	}

	// Table filling: one value row, swept downward per item.
	var (
		table  = make([]int64, capacity+1)
		choice = make([][]bool, n)
		w      int64
		cand   int64
	)
	for i = 0; i < n; i++ {
		choice[i] = make([]bool, capacity+1)
		for w = capacity; w >= weights[i]; w-- {
			cand = table[w-weights[i]] + values[i]
			if cand > table[w] {
				table[w] = cand
				choice[i][w] = true
			}
		}
	}

	// Reconstruction: reverse original order, early exit on empty remainder.
	var (
		remaining = capacity
		included  []int
	)
	for i = n - 1; i >= 0 && remaining > 0; i-- {
		if choice[i][remaining] {
			included = append(included, i)
			remaining -= weights[i]
		}
	}

	// Collected descending; flip to the ascending reporting order.
	var l, r int
	for l, r = 0, len(included)-1; l < r; l, r = l+1, r-1 {
		included[l], included[r] = included[r], included[l]
	}

	return table[capacity], included, nil
}
