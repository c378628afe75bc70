// Package bnb — best-first Branch-and-Bound search engine.
//
// The engine explores the binary decision tree over a ratio-sorted item
// sequence using a max-heap priority queue keyed by the fractional
// relaxation bound (see bound.go).
//
// Rationale (succinct):
//  1. Best-first order: always expand the open node with the greatest bound.
//     The most promising region of the tree is explored first, so a strong
//     incumbent appears early and pruning bites sooner.
//  2. Two-sided pruning: children are enqueued only if their bound strictly
//     exceeds the incumbent (lazy pruning at creation), and every extracted
//     node is re-tested against the incumbent, which may have improved while
//     the node sat in the queue.
//  3. Immutable node chains: a node records the decision that created it and
//     links to its parent; ancestors are shared and never mutated, so the
//     winning node replays its chain to reconstruct the chosen subset.
//  4. Soft time limit: rare deadline checks (every 1024 extractions) keep
//     overhead negligible.
//
// Termination: level strictly increases with depth and is capped by n; each
// node either completes at level == n or spawns at most two children at
// level+1, so the tree is finite before pruning — and pruning only shrinks
// the explored set.
//
// Complexity:
//   - Worst case exponential in n (exact search); pruning drives practice.
//   - Per node: O(n) bound + O(log m) heap work.
//   - Memory: O(live queued nodes), data-dependent.
package bnb

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// deadlineMask gates the sparse deadline probe: one time.Now call per 1024
// queue extractions.
const deadlineMask = 1023

// node is one partial assignment of include/exclude decisions to a prefix of
// the ratio-sorted item sequence. Nodes are immutable once constructed and
// linked, which is what makes sharing ancestors across branches safe.
type node struct {
	level  int     // items decided so far; also the index of the next item to decide
	value  int64   // total value of included items among the first level decisions
	weight int64   // total weight of the same; ≤ capacity for every admitted node
	bound  float64 // fractional-relaxation upper bound, fixed at creation
	taken  bool    // whether items[level-1] was included by the decision creating this node
	parent *node   // shared immutable ancestor chain; nil for the root
}

// engine holds all search data for a single run. A dedicated struct (instead
// of closures) keeps dependencies explicit and hot-path state predictable.
type engine struct {
	// Fixed instance data
	items    []Item // ratio-sorted private copy; never reordered during search
	capacity int64
	eps      float64

	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter

	// Search state
	queue *boundQueue

	// Current best incumbent
	best     int64 // value of the best complete solution found so far
	bestNode *node // complete node realizing best; nil until one is found
}

// deadlineCheck performs a rare deadline test (every 1024 extractions).
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&deadlineMask) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// admit pushes child only if its bound strictly clears the incumbent (plus
// tolerance). This is the lazy half of the pruning rule: provably useless
// nodes never reach the queue.
func (e *engine) admit(child *node) {
	if child.bound > float64(e.best)+e.eps {
		e.queue.insert(child)
	}
}

// branch decides the next item after parent: the include child is created
// only when the item still fits (so weight ≤ capacity is an invariant of
// every node ever constructed), the exclude child always.
func (e *engine) branch(parent *node) {
	var (
		item  = e.items[parent.level]
		next  = parent.level + 1
		child *node
	)

	// Include branch — only when the item fits entirely.
	if parent.weight+item.Weight <= e.capacity {
		child = &node{
			level:  next,
			value:  parent.value + item.Value,
			weight: parent.weight + item.Weight,
			taken:  true,
			parent: parent,
		}
		child.bound = upperBound(e.items, e.capacity, child.value, child.weight, next)
		e.admit(child)
	}

	// Exclude branch — value and weight carry over unchanged.
	child = &node{
		level:  next,
		value:  parent.value,
		weight: parent.weight,
		parent: parent,
	}
	child.bound = upperBound(e.items, e.capacity, child.value, child.weight, next)
	e.admit(child)
}

// run drives the best-first loop to completion (or deadline).
func (e *engine) run() error {
	// Root: nothing decided, nothing consumed.
	root := &node{}
	root.bound = upperBound(e.items, e.capacity, 0, 0, 0)
	e.queue.insert(root)

	var (
		cur *node
		err error
	)
	for e.queue.size() > 0 {
		if e.deadlineCheck() {
			return ErrTimeLimit
		}

		// The loop condition guards emptiness, so extractMax cannot fail here.
		cur, err = e.queue.extractMax()
		if err != nil {
			return err
		}

		// Core pruning rule: only a bound strictly above the incumbent can
		// still be worth expanding. The incumbent may have improved since
		// this node was enqueued.
		if cur.bound <= float64(e.best)+e.eps {
			continue
		}

		// All items decided: a complete candidate.
		if cur.level == len(e.items) {
			if cur.value > e.best {
				e.best = cur.value
				e.bestNode = cur
			}

			continue
		}

		e.branch(cur)
	}

	return nil
}

// reconstruct replays the winning node's ancestor chain into a roaring
// bitmap of original indices, then flattens it. The bitmap deduplicates and
// iterates in ascending order, which is exactly the reporting contract.
//
// Complexity: O(n) chain walk + O(k) flatten for k included items.
func (e *engine) reconstruct() []int {
	if e.bestNode == nil {
		return nil
	}

	chosen := roaring.New()
	var n *node
	for n = e.bestNode; n != nil && n.level > 0; n = n.parent {
		if n.taken {
			chosen.Add(uint32(e.items[n.level-1].Index))
		}
	}

	included := make([]int, 0, chosen.GetCardinality())
	it := chosen.Iterator()
	for it.HasNext() {
		included = append(included, int(it.Next()))
	}

	return included
}
