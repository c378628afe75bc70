// Package bnb - public entry points for the Branch-and-Bound solver.
//
// Solve is the canonical entry: it validates inputs, establishes the
// ratio-descending sort on a private copy of the items (the bound's validity
// precondition — owned by this entry point, not by the engine), runs the
// best-first search and shapes the Result. Items is a small convenience
// builder for callers holding parallel value/weight slices.
//
// Design principles:
//   - Deterministic: identical inputs and options ⇒ identical Result.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf wrapping
//     where a sentinel suffices.
//   - Caller isolation: the input slice is never reordered or written to.
package bnb

import "time"

// Items builds an Item sequence from parallel value/weight slices, assigning
// each item its original position as Index. Ratios are left for Solve to
// fill.
//
// Errors: ErrLengthMismatch when the slices disagree in length.
//
// Complexity: O(n) time, O(n) space.
func Items(values, weights []int64) ([]Item, error) {
	if len(values) != len(weights) {
		return nil, ErrLengthMismatch
	}

	items := make([]Item, len(values))
	var i int
	for i = range items {
		items[i] = Item{
			Index:  i,
			Weight: weights[i],
			Value:  values[i],
		}
	}

	return items, nil
}

// Solve finds the optimal 0/1 knapsack value and one optimal item subset via
// best-first Branch-and-Bound.
//
// Contract:
//   - items need not arrive sorted; Solve sorts a private copy by descending
//     Value/Weight ratio before the first bound is computed.
//   - capacity must be ≥ 0; capacity 0 yields MaxValue 0 and no items.
//   - Result.Included holds original indices in ascending order; it is empty
//     exactly when MaxValue is 0 (nothing fits or nothing has value).
//
// Errors: ErrNegativeCapacity, ErrNonPositiveWeight, ErrNegativeValue,
// ErrBadEps, ErrBadTimeLimit, ErrTimeLimit.
//
// Complexity: O(n log n) sort + exponential worst-case search (see doc.go).
func Solve(items []Item, capacity int64, opts Options) (Result, error) {
	// Stage 1 - strict validation (options, capacity, items).
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validateCapacity(capacity); err != nil {
		return Result{}, err
	}
	if err := validateItems(items); err != nil {
		return Result{}, err
	}

	// Stage 2 - establish the ratio-descending order on a private copy.
	// Everything downstream depends on this ordering; it never changes again.
	sorted := sortedByRatio(items)

	// Stage 3 - engine setup.
	var e engine
	e.items = sorted
	e.capacity = capacity
	e.eps = opts.Eps
	e.queue = newBoundQueue(len(sorted) + 1)
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Stage 4 - best-first search.
	if err := e.run(); err != nil {
		return Result{}, err
	}

	// Stage 5 - shape the result from the winning node's decision chain.
	return Result{
		MaxValue: e.best,
		Included: e.reconstruct(),
	}, nil
}
