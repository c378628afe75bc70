// Package bnb provides an exact, best-first Branch-and-Bound solver for the
// 0/1 knapsack problem on items with positive integer weights and values.
//
// Overview:
//
//   - Solve explores the binary decision tree ("include item i" / "exclude
//     item i") in best-first order: a max-heap priority queue always yields
//     the open node with the greatest fractional-relaxation upper bound.
//   - Any node whose bound cannot exceed the best complete solution found so
//     far is pruned — both lazily at creation time (never enqueued) and again
//     at extraction time (in case the incumbent improved while it waited).
//   - The search is exact: the returned value is the true optimum, and the
//     returned indices form one optimal subset.
//
// When to use:
//
//   - Whenever you need a guaranteed-optimal 0/1 knapsack answer and the
//     instance is too large (or the capacity too wide) for the dp package's
//     O(n·capacity) table to be attractive.
//   - As the primary solver, with dp.Solve as an independent cross-check
//     (the two must agree on the optimal value for every input).
//
// Key features:
//
//   - Fractional-relaxation bound: remaining capacity is filled greedily in
//     descending value/weight ratio order, the last item fractionally; this
//     is an admissible (never underestimating) upper bound.
//   - Ratio-sorted search order: Solve sorts a private copy of the items by
//     descending ratio once, before the first bound is computed. This
//     ordering is the single precondition the bound's validity rests on and
//     it never changes during search.
//   - Immutable node chains: every search node links to its parent and is
//     never mutated once created, so the winning node's decision history can
//     be replayed to recover the exact included subset.
//   - Soft time budget: Options.TimeLimit aborts long searches with
//     ErrTimeLimit, probed sparsely once per queue extraction.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeCapacity  if capacity < 0 (capacity 0 is legal: empty result).
//   - ErrNonPositiveWeight if any item weight is ≤ 0.
//   - ErrNegativeValue     if any item value is < 0.
//   - ErrLengthMismatch    if Items receives slices of different lengths.
//   - ErrBadEps            if Options.Eps is negative.
//   - ErrBadTimeLimit      if Options.TimeLimit is negative.
//   - ErrTimeLimit         if a positive time budget was exceeded.
//   - ErrEmptyQueue        on extraction from an empty queue (internal guard;
//     never surfaces through Solve under correct use).
//
// Complexity:
//
//   - Worst case exponential in n (exact search). Practical speed comes from
//     the bound's tightness and the best-first order, which tends to reach a
//     strong incumbent early and prune aggressively.
//   - Per node: O(n) bound computation + O(log m) heap work for m queued nodes.
//   - Memory: proportional to the number of live queued nodes (data-dependent;
//     exponential in adversarial instances — inherent to Branch-and-Bound).
//
// Concurrency:
//
//   - A single Solve call is sequential and synchronous by design.
//   - Independent Solve calls are safe to run concurrently: each run's node
//     chains and queue are wholly private, and nodes are never mutated after
//     construction.
//
// See also:
//
//   - dp.Solve: the classical table-filling oracle used to cross-validate
//     results and as a performance baseline.
package bnb
