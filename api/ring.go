// File: api/ring.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity overwrite ring contract and its traversal cursor.

package api

// Buffer is a fixed-capacity ring that evicts its oldest element on every
// push once full. Relative index 0 is the oldest retained element and
// Len()-1 the newest.
//
// Implementations are not safe for concurrent use; callers sharing a Buffer
// between goroutines must serialize access themselves.
type Buffer[T any] interface {
	// Push overwrites the oldest slot with item. Never fails.
	Push(item T)
	// Len returns the fixed capacity.
	Len() int
	// Get returns the element at relative index i, or ErrOutOfRange.
	Get(i int) (T, error)
	// Last returns the element at relative index Len()-1.
	Last() T
	// Iter returns a fresh cursor positioned before the first element.
	Iter() Iterator[T]
}

// Iterator walks a Buffer in relative order, reading lazily from the live
// buffer on every Current call.
type Iterator[T any] interface {
	// Next advances the cursor; false once past the last element.
	Next() bool
	// Current returns the element under the cursor, or
	// ErrInvalidIterationState before the first Next.
	Current() (T, error)
	// Reset moves the cursor back before the first element.
	Reset()
}
