// Package bnb - max-heap priority queue over search nodes.
//
// The queue orders nodes solely by their float64 bound: extractMax always
// yields an open node with the greatest bound, which is what makes the
// search best-first. Duplicate bounds are legal and broken arbitrarily; no
// stability or secondary ordering is promised.
package bnb

import "container/heap"

// Compile time check to ensure nodeHeap satisfies the heap interface.
var _ heap.Interface = (*nodeHeap)(nil)

// nodeHeap is the container/heap backing store: an array-backed binary
// max-heap of *node compared by bound.
type nodeHeap []*node

// Len returns the number of nodes in the heap.
func (h nodeHeap) Len() int { return len(h) }

// Less defines the comparison: greater bound → higher priority (max-heap).
func (h nodeHeap) Less(i, j int) bool { return h[i].bound > h[j].bound }

// Swap swaps two elements in the heap.
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap; x must be of type *node.
func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

// Pop removes and returns the last element; container/heap has already moved
// the maximum there.
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid retaining a dead node reference
	*h = old[:n-1]

	return item
}

// boundQueue wraps nodeHeap behind the three operations the engine needs:
// insert, extractMax and size. The wrapper keeps heap.Init/Push/Pop calls in
// one place and turns the empty-queue misuse into a sentinel instead of a
// panic.
type boundQueue struct {
	h nodeHeap
}

// newBoundQueue returns an empty queue with room for sizeHint nodes.
//
// Complexity: O(1).
func newBoundQueue(sizeHint int) *boundQueue {
	q := &boundQueue{h: make(nodeHeap, 0, sizeHint)}
	heap.Init(&q.h)

	return q
}

// insert pushes n onto the queue.
//
// Complexity: O(log m) for m queued nodes.
func (q *boundQueue) insert(n *node) {
	heap.Push(&q.h, n)
}

// extractMax removes and returns the node with the greatest bound, or
// ErrEmptyQueue if the queue holds nothing.
//
// Complexity: O(log m).
func (q *boundQueue) extractMax() (*node, error) {
	if q.h.Len() == 0 {
		return nil, ErrEmptyQueue
	}

	return heap.Pop(&q.h).(*node), nil
}

// size reports the number of queued nodes.
//
// Complexity: O(1).
func (q *boundQueue) size() int { return q.h.Len() }
