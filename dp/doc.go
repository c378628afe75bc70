// Package dp provides the classical bottom-up dynamic-programming solver for
// the 0/1 knapsack problem, used as an exact comparison oracle and
// performance baseline for the bnb package.
//
// Overview:
//
//   - Solve fills a one-dimensional value table dp[0..capacity], updating it
//     once per item and iterating capacity downward so each item is used at
//     most once (the 0/1 constraint).
//   - A per-item choice table records which updates came from inclusion, so
//     one optimal subset is reconstructed exactly — the returned indices are
//     in ascending original order and their values sum to the optimum.
//
// Contract with bnb:
//
//   - For every finite item set and non-negative capacity, dp.Solve and
//     bnb.Solve agree on the optimal value. The index sets may legitimately
//     differ when several optimal subsets exist.
//
// Complexity:
//
//   - Time:  O(n · capacity)
//   - Space: O(n · capacity) for the choice table (O(capacity) for values).
//
// Error handling (sentinel errors):
//
//   - ErrLengthMismatch    if the value and weight slices differ in length.
//   - ErrNonPositiveWeight if any weight is ≤ 0.
//   - ErrNegativeValue     if any value is < 0.
//
// A capacity ≤ 0 is not an error: it yields the trivial empty result, the
// same behavior a zero-capacity knapsack has in bnb.
package dp
