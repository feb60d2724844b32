// File: window/resolve.go
// Author: momentics <momentics@gmail.com>
//
// Slice-specification normalization against a sequence length.
// All call sites working with slice specs or raw integer indices must
// resolve them here before touching a target, so out-of-bounds inputs
// are handled in one place.
//
// Out-of-range starts are stepped inward by whole multiples of the
// step, never clamped. Clamping would shift the phase of included
// elements: with length 5, spec (5, nil, -2) must select indices
// [3, 1], not the clamped [4, 2, 0].

package window

import (
	"github.com/momentics/seqview/api"
)

// Int returns a pointer to v, for building api.Slice literals inline.
func Int(v int) *int { return &v }

// Full returns the full-range window over a sequence of the given
// length.
func Full(length int) Range {
	if length < 0 {
		length = 0
	}
	return Range{start: 0, stop: length, step: 1}
}

// Resolve normalizes a slice specification against a sequence length.
//
// The returned Range iterates exactly the intended indices: start is
// adjusted inward onto the step phase when the nominal start lies
// outside [0, length), and stop is clamped (an exclusive bound cannot
// change phase). A zero step or negative length fails with
// ErrInvalidArgument.
func Resolve(s api.Slice, length int) (Range, error) {
	if length < 0 {
		return Range{}, api.NewError(api.ErrCodeInvalidArgument, "negative sequence length").
			WithContext("length", length)
	}
	step := 1
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return Range{}, api.NewError(api.ErrCodeInvalidArgument, "slice step cannot be zero")
	}
	if step > 0 {
		return resolveForward(s, length, step), nil
	}
	return resolveBackward(s, length, step), nil
}

func resolveForward(s api.Slice, length, step int) Range {
	start := 0
	if s.Start != nil {
		start = *s.Start
		if start < 0 {
			start += length
		}
		if start < 0 {
			// Below range: step inward onto the phase.
			adj := start + step*ceilDiv(-start, step)
			tracef("start %d below range, stepped inward to %d", start, adj)
			start = adj
		}
	}
	stop := length
	if s.Stop != nil {
		stop = *s.Stop
		if stop < 0 {
			stop += length
		}
		if stop < 0 {
			stop = 0
		} else if stop > length {
			stop = length
		}
	}
	if start >= length || start >= stop {
		return emptyRange(step)
	}
	return Range{start: start, stop: stop, step: step}
}

func resolveBackward(s api.Slice, length, step int) Range {
	start := length - 1
	if s.Start != nil {
		start = *s.Start
		if start < 0 {
			start += length
		}
		if start >= length {
			// Above range: step inward onto the phase.
			adj := start - (-step)*ceilDiv(start-(length-1), -step)
			tracef("start %d above range, stepped inward to %d", start, adj)
			start = adj
		}
	}
	// stop is an exclusive lower bound here; -1 runs through index 0.
	stop := -1
	if s.Stop != nil {
		stop = *s.Stop
		if stop < 0 {
			stop += length
		}
		if stop < -1 {
			stop = -1
		} else if stop > length-1 {
			stop = length - 1
		}
	}
	if start < 0 || start <= stop {
		return emptyRange(step)
	}
	return Range{start: start, stop: stop, step: step}
}

// ResolveIndex normalizes an integer index against a length. Negative
// indices address from the end. Out-of-range indices fail with
// ErrIndexOutOfRange.
func ResolveIndex(i, length int) (int, error) {
	idx := i
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, api.NewError(api.ErrCodeIndexOutOfRange, "index out of range").
			WithContext("index", i).
			WithContext("length", length)
	}
	return idx, nil
}

// ceilDiv returns ceil(a/b); b must be positive.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
