// File: window/range.go
// Author: momentics <momentics@gmail.com>
//
// Lazy (start, stop, step) window triple. A Range never materializes
// its indices; length, lookup, clipping and composition are all index
// arithmetic in O(1).

package window

import (
	"iter"

	"github.com/momentics/seqview/api"
)

// Range is a lazily evaluated window described by a (start, stop, step)
// triple. stop is an exclusive bound; with a negative step it may sit
// below zero. Normalized ranges only ever enumerate indices that were
// inside [0, length) at resolution time.
type Range struct {
	start, stop, step int
}

// NewRange builds a range from a raw triple. Panics on a zero step;
// use Resolve for untrusted input. An empty triple is canonicalized.
func NewRange(start, stop, step int) Range {
	if step == 0 {
		panic("window: range step cannot be zero")
	}
	r := Range{start: start, stop: stop, step: step}
	if r.Len() == 0 {
		return emptyRange(step)
	}
	return r
}

func emptyRange(step int) Range {
	return Range{start: 0, stop: 0, step: step}
}

// Start returns the first index the range would enumerate.
func (r Range) Start() int { return r.start }

// Stop returns the exclusive bound of the range.
func (r Range) Stop() int { return r.stop }

// Step returns the range stride; never zero for resolved ranges.
func (r Range) Step() int { return r.step }

// Len returns the number of indices the range enumerates.
func (r Range) Len() int {
	if r.step > 0 {
		if r.start >= r.stop {
			return 0
		}
		return ceilDiv(r.stop-r.start, r.step)
	}
	if r.start <= r.stop {
		return 0
	}
	return ceilDiv(r.start-r.stop, -r.step)
}

// At returns the index at position pos, 0 <= pos < Len.
func (r Range) At(pos int) int {
	return r.start + pos*r.step
}

// All yields the range's indices in order.
func (r Range) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := r.Len()
		for pos := 0; pos < n; pos++ {
			if !yield(r.start + pos*r.step) {
				return
			}
		}
	}
}

// Backward yields the range's indices in reverse order.
func (r Range) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for pos := r.Len() - 1; pos >= 0; pos-- {
			if !yield(r.start + pos*r.step) {
				return
			}
		}
	}
}

// Clip intersects the range with [0, length), keeping element phase.
// Only the entry side can drift out of range for a normalized window,
// so clipping adjusts start inward for negative steps and tightens
// stop for positive ones.
func (r Range) Clip(length int) Range {
	if length < 0 {
		length = 0
	}
	if r.step > 0 {
		stop := r.stop
		if stop > length {
			stop = length
		}
		if r.start >= stop {
			return emptyRange(r.step)
		}
		return Range{start: r.start, stop: stop, step: r.step}
	}
	start := r.start
	if start >= length {
		start -= -r.step * ceilDiv(start-(length-1), -r.step)
	}
	if start < 0 || start <= r.stop {
		return emptyRange(r.step)
	}
	return Range{start: start, stop: r.stop, step: r.step}
}

// CountIn implements api.Window.
func (r Range) CountIn(length int) int {
	return r.Clip(length).Len()
}

// Slice composes the range with a further slice specification, resolved
// against the range's own length. The result is still a lazy triple.
func (r Range) Slice(s api.Slice) (api.Window, error) {
	p, err := Resolve(s, r.Len())
	if err != nil {
		return nil, err
	}
	return r.compose(p), nil
}

// compose maps the position range p through r.
func (r Range) compose(p Range) Range {
	n := p.Len()
	step := r.step * p.step
	if n == 0 {
		return emptyRange(step)
	}
	start := r.start + p.start*r.step
	return Range{start: start, stop: start + n*step, step: step}
}
