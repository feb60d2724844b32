// Package api
// Author: momentics <momentics@gmail.com>
//
// Read-only sequence and view contracts for the seqview library.
//
// Targets are externally owned: views hold a reference, never a copy,
// and observe target mutations immediately. All reads must be O(1)
// index arithmetic over the target unless materialization is
// explicitly requested.

package api

import "iter"

// Sequence is the target contract: an ordered, indexable collection.
// At follows raw-slice semantics; callers must keep i within [0, Len).
type Sequence[T any] interface {
	// Len returns the current number of elements.
	Len() int

	// At returns the element at index i, 0 <= i < Len.
	At(i int) T
}

// Viewer is the read surface shared by all view types.
type Viewer[T any] interface {
	// Len returns the current number of reachable elements.
	Len() int

	// At returns the element at index i. Negative indices address from
	// the end. Out-of-range indices fail with an IndexOutOfRange error.
	At(i int) (T, error)

	// Iter returns a restartable forward iterator over the elements.
	Iter() iter.Seq[T]

	// Reverse returns a restartable reverse-order iterator.
	Reverse() iter.Seq[T]
}
