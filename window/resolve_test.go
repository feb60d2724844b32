// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// resolve_test.go — normalization tests for slice specifications,
// including randomized composition properties.
package window_test

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/momentics/seqview/api"
	"github.com/momentics/seqview/window"
)

func collect(w api.Window) []int {
	out := make([]int, 0, w.Len())
	for idx := range w.All() {
		out = append(out, idx)
	}
	return out
}

func TestResolveDefaults(t *testing.T) {
	r, err := window.Resolve(api.Slice{}, 5)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got := collect(r); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("full slice: got %v", got)
	}
	if full := collect(window.Full(5)); !slices.Equal(full, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Full(5): got %v", full)
	}
}

func TestResolveInRange(t *testing.T) {
	cases := []struct {
		name   string
		spec   api.Slice
		length int
		want   []int
	}{
		{"forward_sub", api.Slice{Start: window.Int(1), Stop: window.Int(4)}, 5, []int{1, 2, 3}},
		{"reverse_all", api.Slice{Step: window.Int(-1)}, 5, []int{4, 3, 2, 1, 0}},
		{"reverse_step2", api.Slice{Start: window.Int(3), Step: window.Int(-2)}, 5, []int{3, 1}},
		{"neg_start", api.Slice{Start: window.Int(-1), Step: window.Int(-2)}, 5, []int{4, 2, 0}},
		{"neg_bounds", api.Slice{Start: window.Int(-4), Stop: window.Int(3)}, 5, []int{1, 2}},
		{"stop_clamped", api.Slice{Start: window.Int(2), Stop: window.Int(100), Step: window.Int(3)}, 5, []int{2}},
		{"stop_below", api.Slice{Stop: window.Int(-20), Step: window.Int(-1)}, 5, []int{4, 3, 2, 1, 0}},
		{"even_positions", api.Slice{Stop: window.Int(5), Step: window.Int(2)}, 5, []int{0, 2, 4}},
		{"crossed_bounds", api.Slice{Start: window.Int(4), Stop: window.Int(10), Step: window.Int(-1)}, 5, nil},
		{"empty_target", api.Slice{}, 0, nil},
		{"empty_target_reverse", api.Slice{Step: window.Int(-1)}, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := window.Resolve(tc.spec, tc.length)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			got := collect(r)
			if len(tc.want) == 0 && len(got) == 0 {
				return
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// Out-of-range starts must be stepped inward onto the step phase, not
// clamped to the boundary.
func TestResolveStepsInward(t *testing.T) {
	cases := []struct {
		name   string
		spec   api.Slice
		length int
		want   []int
	}{
		{"above_reverse", api.Slice{Start: window.Int(5), Step: window.Int(-2)}, 5, []int{3, 1}},
		{"far_above_reverse", api.Slice{Start: window.Int(100), Step: window.Int(-3)}, 5, []int{4, 1}},
		{"below_forward", api.Slice{Start: window.Int(-7), Step: window.Int(2)}, 5, []int{0, 2, 4}},
		{"below_forward_phase", api.Slice{Start: window.Int(-7), Step: window.Int(3)}, 5, []int{1, 4}},
		{"below_reverse_empty", api.Slice{Start: window.Int(-6), Step: window.Int(-1)}, 5, nil},
		{"above_forward_empty", api.Slice{Start: window.Int(5)}, 5, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := window.Resolve(tc.spec, tc.length)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			got := collect(r)
			if len(tc.want) == 0 && len(got) == 0 {
				return
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolveZeroStep(t *testing.T) {
	_, err := window.Resolve(api.Slice{Step: window.Int(0)}, 5)
	if err == nil {
		t.Fatal("expected error for zero step")
	}
	if !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if api.CodeOf(err) != api.ErrCodeInvalidArgument {
		t.Errorf("unexpected code %v", api.CodeOf(err))
	}
}

func TestResolveNegativeLength(t *testing.T) {
	_, err := window.Resolve(api.Slice{}, -1)
	if !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestResolveIndex(t *testing.T) {
	if idx, err := window.ResolveIndex(-1, 5); err != nil || idx != 4 {
		t.Errorf("ResolveIndex(-1, 5) = %d, %v", idx, err)
	}
	if idx, err := window.ResolveIndex(2, 5); err != nil || idx != 2 {
		t.Errorf("ResolveIndex(2, 5) = %d, %v", idx, err)
	}
	for _, i := range []int{5, -6, 100} {
		_, err := window.ResolveIndex(i, 5)
		if !errors.Is(err, api.ErrIndexOutOfRange) {
			t.Errorf("ResolveIndex(%d, 5): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
	if _, err := window.ResolveIndex(0, 0); err == nil {
		t.Error("ResolveIndex(0, 0) must fail")
	}
}

// Every resolved index must lie in [0, length), stride by exactly step,
// and keep the phase of the requested start.
func TestResolvePropertyBased(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		length := rng.Intn(12)
		spec := randomSpec(rng)
		r, err := window.Resolve(spec, length)
		if err != nil {
			t.Fatalf("Resolve(%s, %d) failed: %v", specString(spec), length, err)
		}
		got := collect(r)
		step := 1
		if spec.Step != nil {
			step = *spec.Step
		}
		for k, idx := range got {
			if idx < 0 || idx >= length {
				t.Fatalf("Resolve(%s, %d): index %d out of range", specString(spec), length, idx)
			}
			if k > 0 && got[k]-got[k-1] != step {
				t.Fatalf("Resolve(%s, %d): stride broken in %v", specString(spec), length, got)
			}
		}
		if spec.Start != nil && len(got) > 0 {
			start := *spec.Start
			if start < 0 {
				start += length
			}
			diff := start - got[0]
			if diff%step != 0 {
				t.Fatalf("Resolve(%s, %d): first index %d off phase from start %d", specString(spec), length, got[0], start)
			}
		}
	}
}

// Composing a window with a slice must equal materializing the window
// and indexing the materialized list.
func TestWindowComposeProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 5000; i++ {
		length := rng.Intn(12)
		base, err := window.Resolve(randomSpec(rng), length)
		if err != nil {
			t.Fatal(err)
		}
		mat := collect(base)
		spec := randomSpec(rng)
		pos, err := window.Resolve(spec, len(mat))
		if err != nil {
			t.Fatal(err)
		}
		want := make([]int, 0, pos.Len())
		for p := range pos.All() {
			want = append(want, mat[p])
		}

		composed, err := base.Slice(spec)
		if err != nil {
			t.Fatalf("Range.Slice failed: %v", err)
		}
		if got := collect(composed); !slices.Equal(got, want) {
			t.Fatalf("Range compose %s over %v: got %v, want %v", specString(spec), mat, got, want)
		}

		listed, err := window.IndexList(mat).Slice(spec)
		if err != nil {
			t.Fatalf("IndexList.Slice failed: %v", err)
		}
		if got := collect(listed); !slices.Equal(got, want) {
			t.Fatalf("IndexList compose %s over %v: got %v, want %v", specString(spec), mat, got, want)
		}
	}
}

// Clipping must keep exactly the window members below the live length.
func TestRangeClipProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		length := rng.Intn(12)
		r, err := window.Resolve(randomSpec(rng), length)
		if err != nil {
			t.Fatal(err)
		}
		live := rng.Intn(15)
		var want []int
		for idx := range r.All() {
			if idx < live {
				want = append(want, idx)
			}
		}
		got := collect(r.Clip(live))
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if !slices.Equal(got, want) {
			t.Fatalf("Clip(%d) of %v: got %v, want %v", live, collect(r), got, want)
		}
		if r.CountIn(live) != len(want) {
			t.Fatalf("CountIn(%d) = %d, want %d", live, r.CountIn(live), len(want))
		}
	}
}

func TestIndexListCountIn(t *testing.T) {
	w := window.IndexList{4, 0, 7, 2}
	if got := w.CountIn(5); got != 3 {
		t.Errorf("CountIn(5) = %d, want 3", got)
	}
	if got := w.CountIn(0); got != 0 {
		t.Errorf("CountIn(0) = %d, want 0", got)
	}
}

func TestTraceHookFires(t *testing.T) {
	var events int
	window.SetTraceFunc(func(msg string, args ...any) { events++ })
	defer window.SetTraceFunc(nil)

	_, err := window.Resolve(api.Slice{Start: window.Int(5), Step: window.Int(-2)}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if events == 0 {
		t.Error("expected a trace event for the inward start adjustment")
	}
}

func randomSpec(rng *rand.Rand) api.Slice {
	var s api.Slice
	if rng.Intn(2) == 0 {
		s.Start = window.Int(rng.Intn(30) - 15)
	}
	if rng.Intn(2) == 0 {
		s.Stop = window.Int(rng.Intn(30) - 15)
	}
	if rng.Intn(2) == 0 {
		step := rng.Intn(8) - 4
		if step == 0 {
			step = 1
		}
		s.Step = window.Int(step)
	}
	return s
}

func specString(s api.Slice) string {
	part := func(p *int) any {
		if p == nil {
			return "nil"
		}
		return *p
	}
	return fmt.Sprintf("[%v:%v:%v]", part(s.Start), part(s.Stop), part(s.Step))
}
