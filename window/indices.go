// File: window/indices.go
// Author: momentics <momentics@gmail.com>
//
// Explicit-index window. Used when a window cannot be expressed as an
// arithmetic triple, e.g. hand-built windows or compositions over them.

package window

import (
	"iter"

	"github.com/momentics/seqview/api"
)

// IndexList is an explicit window of target indices, in window order.
type IndexList []int

// Len returns the nominal number of indices in the window.
func (w IndexList) Len() int { return len(w) }

// At returns the index at position pos, 0 <= pos < Len.
func (w IndexList) At(pos int) int { return w[pos] }

// All yields the window's indices in order.
func (w IndexList) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, idx := range w {
			if !yield(idx) {
				return
			}
		}
	}
}

// CountIn implements api.Window.
func (w IndexList) CountIn(length int) int {
	count := 0
	for _, idx := range w {
		if idx >= 0 && idx < length {
			count++
		}
	}
	return count
}

// Slice composes the window with a further slice specification,
// materializing the selected indices.
func (w IndexList) Slice(s api.Slice) (api.Window, error) {
	p, err := Resolve(s, len(w))
	if err != nil {
		return nil, err
	}
	out := make(IndexList, 0, p.Len())
	for pos := range p.All() {
		out = append(out, w[pos])
	}
	return out, nil
}
