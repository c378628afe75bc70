// Package bnb defines core types, sentinel errors and configuration options
// for the best-first Branch-and-Bound 0/1 knapsack solver.
//
// Data model:
//
//	– Item:    immutable candidate object {Index, Weight, Value, Ratio}.
//	– Result:  terminal artifact of a run {MaxValue, Included}.
//	– Options: tuning knobs (Eps pruning tolerance, TimeLimit soft budget).
//
// Errors (sentinel):
//
//	– ErrNegativeCapacity  if the capacity passed to Solve is negative.
//	– ErrNonPositiveWeight if an item carries weight ≤ 0.
//	– ErrNegativeValue     if an item carries value < 0.
//	– ErrLengthMismatch    if Items gets value/weight slices of unequal length.
//	– ErrBadEps            if Options.Eps < 0.
//	– ErrBadTimeLimit      if Options.TimeLimit < 0.
//	– ErrTimeLimit         if a positive time budget ran out mid-search.
//	– ErrEmptyQueue        on extractMax from an empty priority queue.
package bnb

import (
	"errors"
	"time"
)

// Sentinel errors returned by the Branch-and-Bound implementation.
var (
	// ErrNegativeCapacity indicates that a negative knapsack capacity was
	// supplied. Capacity 0 is legal and yields the trivial empty solution.
	ErrNegativeCapacity = errors.New("bnb: capacity must be non-negative")

	// ErrNonPositiveWeight indicates an item whose weight is zero or negative.
	// Zero-weight items would make the value/weight ratio undefined.
	ErrNonPositiveWeight = errors.New("bnb: item weight must be positive")

	// ErrNegativeValue indicates an item carrying a negative value.
	ErrNegativeValue = errors.New("bnb: item value must be non-negative")

	// ErrLengthMismatch indicates that parallel value/weight slices disagree
	// in length, so no item sequence can be formed from them.
	ErrLengthMismatch = errors.New("bnb: values and weights length mismatch")

	// ErrBadEps indicates a negative pruning tolerance, which would invert
	// the pruning test and break the optimality guarantee.
	ErrBadEps = errors.New("bnb: Eps must be non-negative")

	// ErrBadTimeLimit indicates a negative time budget (undefined duration).
	ErrBadTimeLimit = errors.New("bnb: TimeLimit must be non-negative")

	// ErrTimeLimit indicates that a positive Options.TimeLimit elapsed before
	// the search drained its queue.
	ErrTimeLimit = errors.New("bnb: time budget exceeded")

	// ErrEmptyQueue indicates extraction from an empty priority queue. The
	// engine's own loop checks emptiness before popping, so this sentinel
	// never surfaces through Solve under correct use.
	ErrEmptyQueue = errors.New("bnb: extract from empty queue")

	// ErrBadGenRange indicates non-positive bounds passed to Generate.
	ErrBadGenRange = errors.New("bnb: generator bounds must be positive")
)

// Item is an immutable description of one candidate object.
//
// Index is the item's original position in the caller's sequence; it is a
// stable identity used for reporting and never changes when Solve reorders
// its private copy. Ratio is Value/Weight and is filled by the public entry
// point — callers may leave it zero.
type Item struct {
	Index  int     // original position (stable identity, used in Result.Included)
	Weight int64   // positive weight consumed by including the item
	Value  int64   // non-negative value gained by including the item
	Ratio  float64 // Value/Weight; computed by Solve, drives the sort and the bound
}

// Result is the terminal artifact of a search run.
//
// Included lists the original indices of the chosen items in ascending
// order. It is empty when no item fits (or capacity is 0); MaxValue is 0
// exactly in those cases.
type Result struct {
	MaxValue int64 // optimal total value
	Included []int // original indices of one optimal subset, ascending
}

// Options configures a Branch-and-Bound run.
//
// Eps       – pruning tolerance: a node is pruned when bound ≤ best + Eps.
//
//	The default 0 keeps the strict textbook test, which is safe for
//	integer item values: any strictly better completion raises the
//	admissible bound by at least 1, far above float64 noise.
//
// TimeLimit – soft wall-clock budget; 0 disables the deadline. The deadline
//
//	is probed sparsely (once per batch of queue extractions) so the
//	overhead is negligible; on expiry Solve returns ErrTimeLimit.
type Options struct {
	Eps       float64       // pruning tolerance (≥ 0)
	TimeLimit time.Duration // soft time budget (0 = unlimited)
}

// DefaultOptions returns an Options struct initialized with the defaults:
// strict pruning (Eps 0) and no time budget.
func DefaultOptions() Options {
	return Options{
		Eps:       0,
		TimeLimit: 0,
	}
}
