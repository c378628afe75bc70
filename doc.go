// Package knapsack is a compact toolkit for exact 0/1 knapsack
// optimization — pick the subset of items that maximizes total value
// without exceeding a weight capacity.
//
// 🚀 What is knapsack?
//
//	A small, deterministic, pure-Go library built around two independent
//	exact solvers that cross-check each other:
//		• bnb/ — best-first Branch-and-Bound: a max-heap of search nodes
//		  keyed by a fractional-relaxation upper bound, with lazy pruning
//		  and an optional soft time budget
//		• dp/  — classical bottom-up dynamic programming over a capacity
//		  table, with exact reconstruction of one optimal item subset
//
// ✨ Why choose knapsack?
//
//   - Exact answers – both solvers return the true optimum, never an estimate
//   - Deterministic – same input, same options ⇒ identical result, every run
//   - Pure Go – no cgo; only small, well-known helper dependencies
//   - Honest errors – strict sentinel errors, no panics on user input
//
// Quick orientation:
//
//	bnb/ — Item model, bound estimator, priority queue, search engine,
//	       public Solve entry point and a reproducible instance generator
//	dp/  — the comparison oracle: Solve(values, weights, capacity)
//
// A five-line taste:
//
//	items, _ := bnb.Items([]int64{60, 100, 120}, []int64{10, 20, 30})
//	res, _ := bnb.Solve(items, 50, bnb.DefaultOptions())
//	fmt.Println(res.MaxValue, res.Included) // 220 [1 2]
//
// Both packages agree on the optimal value for every input; when several
// optimal subsets exist the reported index sets may legitimately differ.
//
//	go get github.com/katalvlaran/knapsack
package knapsack
