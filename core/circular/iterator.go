// File: core/circular/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package circular

import "github.com/momentics/hioload-ring/api"

var _ api.Iterator[any] = (*Iterator[any])(nil)

// Iterator is a cursor over any api.Buffer. It holds only a position and a
// non-owning reference, so several may run over one buffer at once. Values
// are read at Current time; pushes between calls are visible.
type Iterator[T any] struct {
	buf api.Buffer[T]
	pos int
}

// NewIterator returns a cursor positioned before the first element of buf.
func NewIterator[T any](buf api.Buffer[T]) *Iterator[T] {
	return &Iterator[T]{buf: buf, pos: -1}
}

// Next advances to the next relative index. Once past the end it keeps
// returning false.
func (it *Iterator[T]) Next() bool {
	n := it.buf.Len()
	if it.pos < n {
		it.pos++
	}
	return it.pos < n
}

// Current returns the element under the cursor. It fails with
// ErrInvalidIterationState before the first Next, after Reset, and once the
// cursor is exhausted.
func (it *Iterator[T]) Current() (T, error) {
	if it.pos < 0 || it.pos >= it.buf.Len() {
		var zero T
		return zero, api.NewError(api.ErrCodeInvalidIterationState, api.ErrInvalidIterationState.Message).
			WithContext("position", it.pos)
	}
	return it.buf.Get(it.pos)
}

// Reset moves the cursor back before the first element.
func (it *Iterator[T]) Reset() {
	it.pos = -1
}

// Position reports the relative index under the cursor: -1 before the first
// Next, Len() once exhausted.
func (it *Iterator[T]) Position() int {
	return it.pos
}
