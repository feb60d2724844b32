// File: views/windowed.go
// Author: momentics <momentics@gmail.com>
//
// Windowed view. The window is fixed at construction; the target is
// allowed to change from beneath, so windowing indices drift in and
// out of target range. Indices that are out of range today may become
// valid again if the target regrows.

package views

import (
	"iter"

	"github.com/momentics/seqview/api"
	"github.com/momentics/seqview/window"
)

// WindowedView is a view over a subset of target positions described by
// a resolved window.
type WindowedView[T any] struct {
	target api.Sequence[T]
	win    api.Window
}

// NewWindowed constructs a windowed view from its target and window.
// A nil window defaults to the full range of the target at construction
// time; prefer a plain View when the whole target is wanted.
func NewWindowed[T any](target api.Sequence[T], win api.Window) *WindowedView[T] {
	if win == nil {
		win = window.Full(target.Len())
	}
	return &WindowedView[T]{target: target, win: win}
}

// Target returns the wrapped sequence.
func (w *WindowedView[T]) Target() api.Sequence[T] { return w.target }

// Window returns the view's resolved window.
func (w *WindowedView[T]) Window() api.Window { return w.win }

// WindowLen returns the nominal window length, counting positions whose
// indices may currently be out of target range.
func (w *WindowedView[T]) WindowLen() int { return w.win.Len() }

// Len returns the number of window indices currently valid against the
// target. Recomputed on every call, never cached.
func (w *WindowedView[T]) Len() int {
	return w.win.CountIn(w.target.Len())
}

// At returns the element at window position i. Negative positions
// address from the end of the window. A position outside the window
// fails with ErrIndexOutOfRange; a windowing index outside the current
// target fails with ErrWindowIndexOutOfRange.
func (w *WindowedView[T]) At(i int) (T, error) {
	var zero T
	pos, err := window.ResolveIndex(i, w.win.Len())
	if err != nil {
		return zero, err
	}
	idx := w.win.At(pos)
	if n := w.target.Len(); idx < 0 || idx >= n {
		return zero, api.NewError(api.ErrCodeWindowIndexOutOfRange, "windowing index out of target range").
			WithContext("position", i).
			WithContext("index", idx).
			WithContext("target_len", n)
	}
	return w.target.At(idx), nil
}

// Get is At with a fallback: def is returned on any out-of-range
// condition instead of an error.
func (w *WindowedView[T]) Get(i int, def T) T {
	el, err := w.At(i)
	if err != nil {
		return def
	}
	return el
}

// GetEach returns a lazy sequence with one entry per window position.
// Positions whose index is currently out of target range yield def.
// Its length always equals the nominal window length, regardless of
// what the target does.
func (w *WindowedView[T]) GetEach(def T) *LazySeq[T] {
	target, win := w.target, w.win
	return NewLazySeq(win.Len(), func(pos int) T {
		idx := win.At(pos)
		if n := target.Len(); idx < 0 || idx >= n {
			return def
		}
		return target.At(idx)
	})
}

// SliceView composes the window with s, resolved against the nominal
// window length. The target is never consulted.
func (w *WindowedView[T]) SliceView(s api.Slice) (*WindowedView[T], error) {
	sub, err := w.win.Slice(s)
	if err != nil {
		return nil, err
	}
	return &WindowedView[T]{target: w.target, win: sub}, nil
}

// Iter yields the elements at currently valid window indices, in window
// order. Out-of-range indices are skipped, so the materialized view
// never reaches past the live target.
func (w *WindowedView[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := range w.win.All() {
			if n := w.target.Len(); idx < 0 || idx >= n {
				continue
			}
			if !yield(w.target.At(idx)) {
				return
			}
		}
	}
}

// Reverse yields the valid elements in reverse window order.
func (w *WindowedView[T]) Reverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := w.win.Len() - 1; pos >= 0; pos-- {
			idx := w.win.At(pos)
			if n := w.target.Len(); idx < 0 || idx >= n {
				continue
			}
			if !yield(w.target.At(idx)) {
				return
			}
		}
	}
}

// ContainsFunc reports whether any reachable element matches x under eq.
func (w *WindowedView[T]) ContainsFunc(x T, eq func(a, b T) bool) bool {
	for el := range w.Iter() {
		if eq(el, x) {
			return true
		}
	}
	return false
}

// EqualFunc reports elementwise equality with other, in order. A
// windowed view equals a plain View (or any Viewer) whenever the
// reachable elements match; windows may differ.
func (w *WindowedView[T]) EqualFunc(other api.Viewer[T], eq func(a, b T) bool) bool {
	return equalSeqs(w.Iter(), other.Iter(), eq)
}

// DumpState implements api.Debug.
func (w *WindowedView[T]) DumpState() map[string]any {
	return map[string]any{
		"kind":       "windowed",
		"target_len": w.target.Len(),
		"window_len": w.win.Len(),
		"valid_len":  w.Len(),
	}
}
