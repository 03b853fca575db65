// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake ring implementation for testing: a plain slice that appends on push
// and drops its first element. Slow but obviously correct, used as an oracle.

package fake

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/core/circular"
)

var _ api.Buffer[any] = (*Ring[any])(nil)

// Ring is a fake implementation of api.Buffer.
type Ring[T any] struct {
	items []T

	// Pushes counts Push calls, for assertions in tests.
	Pushes int
}

// NewRing creates a fake ring holding a copy of items, oldest first.
// Panics when items is empty, mirroring the capacity policy of real buffers.
func NewRing[T any](items ...T) *Ring[T] {
	if len(items) == 0 {
		panic(api.InvalidCapacity(0))
	}
	cp := make([]T, len(items))
	copy(cp, items)
	return &Ring[T]{items: cp}
}

// Push drops the oldest element and appends item.
func (r *Ring[T]) Push(item T) {
	r.Pushes++
	r.items = append(r.items[1:], item)
}

// Len returns the number of slots.
func (r *Ring[T]) Len() int {
	return len(r.items)
}

// Get returns items[i].
func (r *Ring[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(r.items) {
		var zero T
		return zero, api.OutOfRange(i, len(r.items))
	}
	return r.items[i], nil
}

// Last returns the newest element.
func (r *Ring[T]) Last() T {
	return r.items[len(r.items)-1]
}

// Iter returns a cursor over the fake.
func (r *Ring[T]) Iter() api.Iterator[T] {
	return circular.NewIterator[T](r)
}

// Items returns a copy of the contents.
func (r *Ring[T]) Items() []T {
	cp := make([]T, len(r.items))
	copy(cp, r.items)
	return cp
}
