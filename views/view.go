// File: views/view.go
// Author: momentics <momentics@gmail.com>
//
// Full-range view. Nothing is cached: every operation re-reads the
// target length, so the view tracks target mutations exactly.

package views

import (
	"iter"

	"github.com/momentics/seqview/api"
	"github.com/momentics/seqview/window"
)

// View is a read-only view over the whole of a target sequence. Its
// length always equals the current target length.
type View[T any] struct {
	target api.Sequence[T]
}

// New constructs a view from its target.
func New[T any](target api.Sequence[T]) *View[T] {
	return &View[T]{target: target}
}

// Target returns the wrapped sequence.
func (v *View[T]) Target() api.Sequence[T] { return v.target }

// Len returns the current target length.
func (v *View[T]) Len() int { return v.target.Len() }

// At returns the element at index i. Negative indices address from the
// end of the target. Out-of-range indices fail with ErrIndexOutOfRange.
func (v *View[T]) At(i int) (T, error) {
	var zero T
	idx, err := window.ResolveIndex(i, v.target.Len())
	if err != nil {
		return zero, err
	}
	return v.target.At(idx), nil
}

// SliceView resolves s against the current target length and returns a
// windowed view over the same target.
func (v *View[T]) SliceView(s api.Slice) (*WindowedView[T], error) {
	win, err := window.Resolve(s, v.target.Len())
	if err != nil {
		return nil, err
	}
	return NewWindowed(v.target, win), nil
}

// Iter returns a restartable forward iterator. The target length is
// re-read on every step, so mutations between yields are observed.
func (v *View[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.target.Len(); i++ {
			if !yield(v.target.At(i)) {
				return
			}
		}
	}
}

// Reverse returns a restartable reverse-order iterator. Positions that
// fall out of range mid-iteration are skipped.
func (v *View[T]) Reverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.target.Len() - 1; i >= 0; i-- {
			if i >= v.target.Len() {
				continue
			}
			if !yield(v.target.At(i)) {
				return
			}
		}
	}
}

// ContainsFunc reports whether any element matches x under eq.
func (v *View[T]) ContainsFunc(x T, eq func(a, b T) bool) bool {
	for el := range v.Iter() {
		if eq(el, x) {
			return true
		}
	}
	return false
}

// EqualFunc reports elementwise equality with other, in order. Window
// representations are irrelevant; only the reachable elements count.
func (v *View[T]) EqualFunc(other api.Viewer[T], eq func(a, b T) bool) bool {
	return equalSeqs(v.Iter(), other.Iter(), eq)
}

// DumpState implements api.Debug.
func (v *View[T]) DumpState() map[string]any {
	return map[string]any{
		"kind":       "view",
		"target_len": v.target.Len(),
	}
}
