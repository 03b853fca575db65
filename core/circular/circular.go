// File: core/circular/circular.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// CircularBuffer is an array-backed ring with a single rotating write cursor.
// Implements api.Buffer.

package circular

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Buffer[any] = (*CircularBuffer[any])(nil)

// CircularBuffer holds the last Len() pushed values. Relative index i maps to
// physical slot (head+i) mod Len().
type CircularBuffer[T any] struct {
	data []T
	head int
}

// New allocates a buffer of capacity zero values with the cursor at slot 0.
func New[T any](capacity int) (*CircularBuffer[T], error) {
	if capacity <= 0 {
		return nil, api.InvalidCapacity(capacity)
	}
	return &CircularBuffer[T]{data: make([]T, capacity)}, nil
}

// NewWithInit allocates a buffer and pushes init(0) .. init(capacity-1) in
// order, so Get(i) == init(i) and the cursor wraps back to slot 0.
// A nil init behaves like New.
func NewWithInit[T any](capacity int, init func(i int) T) (*CircularBuffer[T], error) {
	r, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	if init == nil {
		return r, nil
	}
	for i := 0; i < capacity; i++ {
		r.Push(init(i))
	}
	return r, nil
}

// MustNew is like NewWithInit but panics on an invalid capacity.
func MustNew[T any](capacity int, init func(i int) T) *CircularBuffer[T] {
	r, err := NewWithInit(capacity, init)
	if err != nil {
		panic(err)
	}
	return r
}

// Push writes item over the oldest slot and advances the cursor.
func (r *CircularBuffer[T]) Push(item T) {
	r.data[r.head] = item
	r.head++
	if r.head == len(r.data) {
		r.head = 0
	}
}

// Len returns the fixed capacity.
func (r *CircularBuffer[T]) Len() int {
	return len(r.data)
}

// Get returns the element at relative index i (0 oldest, Len()-1 newest).
func (r *CircularBuffer[T]) Get(i int) (T, error) {
	n := len(r.data)
	if i < 0 || i >= n {
		var zero T
		return zero, api.OutOfRange(i, n)
	}
	return r.data[(r.head+i)%n], nil
}

// Last returns the element at the last relative position, Get(Len()-1).
// That is the most recently pushed value.
func (r *CircularBuffer[T]) Last() T {
	if r.head == 0 {
		return r.data[len(r.data)-1]
	}
	return r.data[r.head-1]
}

// Iter returns a new cursor over r.
func (r *CircularBuffer[T]) Iter() api.Iterator[T] {
	return NewIterator[T](r)
}

// String renders the window oldest first.
func (r *CircularBuffer[T]) String() string {
	return fmt.Sprint(Collect[T](r))
}
