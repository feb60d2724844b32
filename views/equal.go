// File: views/equal.go
// Author: momentics <momentics@gmail.com>
//
// Structural equality and containment over viewers. These never fail:
// mismatched lengths or unreachable positions simply compare unequal.

package views

import (
	"iter"

	"github.com/momentics/seqview/api"
)

// Equal reports elementwise equality of two viewers of comparable
// elements, in order.
func Equal[T comparable](a, b api.Viewer[T]) bool {
	return equalSeqs(a.Iter(), b.Iter(), func(x, y T) bool { return x == y })
}

// Contains reports whether v contains x.
func Contains[T comparable](v api.Viewer[T], x T) bool {
	for el := range v.Iter() {
		if el == x {
			return true
		}
	}
	return false
}

// equalSeqs walks two iterators in lockstep.
func equalSeqs[T any](a, b iter.Seq[T], eq func(x, y T) bool) bool {
	next, stop := iter.Pull(b)
	defer stop()
	for x := range a {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	_, ok := next()
	return !ok
}
