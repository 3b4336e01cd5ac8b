// Package pqueue provides a generic binary min-heap over caller-owned
// elements with a caller-supplied comparator, wrapping container/heap the
// way the corpus's own pathfinding priority queues do.
package pqueue

import "container/heap"

// Less reports whether a should pop before b. A nil Less degrades the
// queue to an unordered bag: insert/pop still work, but pop order is
// unspecified (container/heap's internal slice order).
type Less[T any] func(a, b T) bool

// Queue is a dynamic-array binary min-heap over opaque elements of type
// T. It does not own its elements beyond holding references to them.
type Queue[T any] struct {
	items []T
	less  Less[T]
}

// New creates an empty queue with the given comparator. A nil comparator
// is valid and yields bag semantics (see Less).
func New[T any](less Less[T]) *Queue[T] {
	return &Queue[T]{less: less}
}

// Length returns the number of queued elements.
func (q *Queue[T]) Length() int { return len(q.items) }

// Insert adds an item, growing the backing array as needed and
// restoring heap order.
func (q *Queue[T]) Insert(item T) {
	heap.Push((*heapAdapter[T])(q), item)
}

// Pop removes and returns the highest-priority item, or the zero value
// and false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	item := heap.Pop((*heapAdapter[T])(q)).(T)
	return item, true
}

// Peek returns the highest-priority item without removing it, or the
// zero value and false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// heapAdapter implements heap.Interface on behalf of Queue without
// exposing container/heap's Push/Pop/Len/Less/Swap names on the public
// Queue type, whose API uses the spec's own Insert/Pop/Peek/Length
// naming instead.
type heapAdapter[T any] Queue[T]

func (h *heapAdapter[T]) Len() int { return len(h.items) }

func (h *heapAdapter[T]) Less(i, j int) bool {
	if h.less == nil {
		return false
	}
	return h.less(h.items[i], h.items[j])
}

func (h *heapAdapter[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *heapAdapter[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *heapAdapter[T]) Pop() any {
	n := len(h.items)
	item := h.items[n-1]
	var zero T
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	return item
}
