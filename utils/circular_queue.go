package utils

import (
	"iter"

	"github.com/vestorino/Ballistic-Missile/oerror"
)

// CircularQueue is a fixed capacity FIFO. Appending to a full queue drops the oldest element, which
// makes it suitable for bounded histories such as the missile trail.
type CircularQueue[T any] struct {
	items []T
	head  int
	tail  int
	size  int
}

func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Get returns the element at logical position index (0 = oldest), or an error if out of range.
func (q *CircularQueue[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= q.size {
		return zero, oerror.New("circularQueue: get %d out of range [0, %d)", index, q.size)
	}
	return q.items[(q.head+index)%len(q.items)], nil
}

// Iter yields the elements from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Slice copies the elements, oldest first, into a new slice.
func (q *CircularQueue[T]) Slice() []T {
	out := make([]T, 0, q.size)
	for item := range q.Iter() {
		out = append(out, item)
	}
	return out
}

// Len returns the number of elements currently held.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the maximum number of items the queue can hold.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}

// Pop removes and returns the oldest element. The boolean ok is false if the
// queue is empty.
func (q *CircularQueue[T]) Pop() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	item = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return item, true
}

// Append appends an item or returns an error if the queue has zero capacity.
func (q *CircularQueue[T]) Append(item T) error {
	if len(q.items) == 0 {
		return oerror.New("circularQueue: append on zero-capacity queue")
	}

	q.items[q.tail] = item
	if q.size == len(q.items) {
		// Full: the slot just written was the oldest element.
		q.head = (q.head + 1) % len(q.items)
	} else {
		q.size++
	}
	q.tail = (q.tail + 1) % len(q.items)
	return nil
}

// Clear drops every element while keeping the capacity.
func (q *CircularQueue[T]) Clear() {
	clear(q.items)
	q.head, q.tail, q.size = 0, 0, 0
}
