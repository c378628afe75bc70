// Package bnb - fractional-relaxation bound estimator.
//
// The estimator answers one question for a partial solution: "assuming the
// capacity constraint allowed a fractional slice of one item, what is the
// best total value still reachable from here?" Because that relaxation only
// widens the feasible set, the answer never underestimates the true 0/1
// optimum — it is an admissible upper bound, safe to prune against.
//
// Correctness precondition (the single most important invariant here): the
// item sequence must be sorted by descending Value/Weight ratio before the
// first bound is computed, and must never change during search. The greedy
// fill below is only an upper bound under that ordering. Solve establishes
// the ordering once on a private copy; nothing else may touch it.
package bnb

import "sort"

// byRatioDesc orders items by descending Value/Weight ratio, breaking ties
// by ascending original index so runs are reproducible.
type byRatioDesc []Item

func (a byRatioDesc) Len() int { return len(a) }
func (a byRatioDesc) Less(i, j int) bool {
	if a[i].Ratio == a[j].Ratio {
		return a[i].Index < a[j].Index
	}

	return a[i].Ratio > a[j].Ratio
}
func (a byRatioDesc) Swap(i, j int) { a[i], a[j] = a[j], a[i] }

// sortedByRatio returns a private copy of items with Ratio filled and the
// copy sorted by descending ratio (index tiebreak). The caller's slice is
// never reordered or written to.
//
// Complexity: O(n log n) time, O(n) space.
func sortedByRatio(items []Item) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)

	var i int
	for i = range sorted {
		sorted[i].Ratio = float64(sorted[i].Value) / float64(sorted[i].Weight)
	}
	sort.Sort(byRatioDesc(sorted))

	return sorted
}

// upperBound computes the fractional-relaxation bound for a partial solution
// described by (value, weight, level) against the ratio-sorted items and a
// fixed capacity.
//
// Algorithm: an infeasible prefix (weight > capacity) bounds to 0 — a dead
// branch. Otherwise start from the accumulated value and greedily pour items
// from level onward into the remaining capacity, in ratio order; the first
// item that does not fit entirely contributes Ratio × remaining and the scan
// stops.
//
// Contract:
//   - items sorted by descending ratio (see sortedByRatio); 0 ≤ level ≤ len(items).
//
// Complexity: O(n−level) time, O(1) space.
func upperBound(items []Item, capacity int64, value int64, weight int64, level int) float64 {
	if weight > capacity {
		return 0
	}

	var (
		bound     = float64(value)
		remaining = capacity - weight
		i         int
	)
	for i = level; i < len(items) && remaining > 0; i++ {
		if items[i].Weight <= remaining {
			bound += float64(items[i].Value)
			remaining -= items[i].Weight

			continue
		}
		// Fractional tail: the relaxation admits a slice of the next item.
		bound += items[i].Ratio * float64(remaining)

		break
	}

	return bound
}
