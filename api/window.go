// Package api
// Author: momentics <momentics@gmail.com>
//
// Window and slice-specification contracts.
//
// A window is a resolved, ordered sequence of target indices. Windows
// are immutable once resolved; the target is allowed to change beneath
// them, so individual indices drift in and out of target range.

package api

import "iter"

// Slice is a slice specification. Nil fields take direction-dependent
// defaults: with a positive step, start/stop default to the sequence
// bounds; with a negative step they default to the reversed bounds.
// A Step pointing at zero is rejected with ErrInvalidArgument.
type Slice struct {
	Start *int
	Stop  *int
	Step  *int
}

// Window is a resolved window: an ordered sequence of target indices.
type Window interface {
	// Len returns the nominal number of indices in the window.
	Len() int

	// At returns the target index at window position pos, 0 <= pos < Len.
	At(pos int) int

	// All yields the window's indices in window order.
	All() iter.Seq[int]

	// CountIn returns how many of the window's indices fall in
	// [0, length).
	CountIn(length int) int

	// Slice composes the window with a further slice specification,
	// resolved against the window's own length. The composed window maps
	// positions through the receiver; it is never re-derived from the
	// original target.
	Slice(s Slice) (Window, error)
}
