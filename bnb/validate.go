// Package bnb - validation utilities shared by the public entry points.
//
// This file contains small, side-effect-free helpers that:
//  1. Validate Options (tolerances, time budget).
//  2. Validate item sequences (positive weights, non-negative values).
//  3. Validate the capacity argument.
//
// Design principles:
//   - Deterministic, allocation-free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) worst-case over the item sequence.
package bnb

// validateOptions checks internal consistency of Options without referencing
// items or capacity.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// A negative epsilon would invert the pruning test (bound ≤ best+Eps)
	// and could prune nodes that still beat the incumbent ⇒ reject.
	if opts.Eps < 0 {
		return ErrBadEps
	}
	// Negative durations are undefined as budgets.
	if opts.TimeLimit < 0 {
		return ErrBadTimeLimit
	}

	return nil
}

// validateItems scans the item sequence once and rejects weights ≤ 0 and
// values < 0. An empty sequence is legal (trivial zero-value instance).
//
// Complexity: O(n) time, O(1) space.
func validateItems(items []Item) error {
	var i int
	for i = range items {
		if items[i].Weight <= 0 {
			return ErrNonPositiveWeight
		}
		if items[i].Value < 0 {
			return ErrNegativeValue
		}
	}

	return nil
}

// validateCapacity rejects negative capacities. Capacity 0 is legal and
// short-circuits to the trivial empty result inside Solve.
//
// Complexity: O(1).
func validateCapacity(capacity int64) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}

	return nil
}
