// File: core/circular/seq.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range-over-func views of any api.Buffer.

package circular

import (
	"iter"
	"slices"

	"github.com/momentics/hioload-ring/api"
)

// All yields (relative index, value) pairs oldest first. Each value is read
// when yielded.
func All[T any](b api.Buffer[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := NewIterator(b)
		for it.Next() {
			v, err := it.Current()
			if err != nil {
				return
			}
			if !yield(it.Position(), v) {
				return
			}
		}
	}
}

// Values yields the elements oldest first.
func Values[T any](b api.Buffer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range All(b) {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect copies the current window into a new slice, oldest first.
func Collect[T any](b api.Buffer[T]) []T {
	return slices.Collect(Values(b))
}
