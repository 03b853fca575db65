// File: core/circular/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity overwrite ring buffer. A CircularBuffer always holds exactly
// Len() logical positions; Push overwrites the oldest one and advances the
// write cursor. Traversal goes through independent Iterator cursors or the
// range-over-func helpers in seq.go.
//
// Nothing in this package is safe for concurrent use. The buffer carries no
// lock so that Push and Get stay O(1) without synchronization cost; wrap it
// in a sync.Mutex if it must be shared.
package circular
