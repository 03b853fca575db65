// File: adapters/queue_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// QueueBuffer glues github.com/eapache/queue to api.Buffer: the queue is kept
// at exactly capacity elements, Push removes the front before adding.

package adapters

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/core/circular"
)

var _ api.Buffer[any] = (*QueueBuffer[any])(nil)

// QueueBuffer is an api.Buffer backed by a growable FIFO queue.
type QueueBuffer[T any] struct {
	q        *queue.Queue
	capacity int
}

// NewQueueBuffer creates a buffer pre-filled with capacity zero values.
func NewQueueBuffer[T any](capacity int) (*QueueBuffer[T], error) {
	return NewQueueBufferWithInit[T](capacity, nil)
}

// NewQueueBufferWithInit fills the buffer with init(0) .. init(capacity-1).
// A nil init fills with zero values.
func NewQueueBufferWithInit[T any](capacity int, init func(i int) T) (*QueueBuffer[T], error) {
	if capacity <= 0 {
		return nil, api.InvalidCapacity(capacity)
	}
	b := &QueueBuffer[T]{q: queue.New(), capacity: capacity}
	for i := 0; i < capacity; i++ {
		var v T
		if init != nil {
			v = init(i)
		}
		b.q.Add(v)
	}
	return b, nil
}

// Push evicts the front element and appends item.
func (b *QueueBuffer[T]) Push(item T) {
	b.q.Remove()
	b.q.Add(item)
}

// Len returns the fixed capacity.
func (b *QueueBuffer[T]) Len() int {
	return b.capacity
}

// Get returns the element at relative index i.
func (b *QueueBuffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= b.capacity {
		var zero T
		return zero, api.OutOfRange(i, b.capacity)
	}
	// nil interface values come back untyped; fall through to zero.
	v, _ := b.q.Get(i).(T)
	return v, nil
}

// Last returns the element at relative index Len()-1.
func (b *QueueBuffer[T]) Last() T {
	v, _ := b.q.Get(-1).(T)
	return v
}

// Iter returns a new cursor over b.
func (b *QueueBuffer[T]) Iter() api.Iterator[T] {
	return circular.NewIterator[T](b)
}
