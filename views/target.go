// File: views/target.go
// Author: momentics <momentics@gmail.com>
//
// Target adapters. Views see targets through the api.Sequence contract;
// SliceTarget adapts a plain Go slice to it by pointer, so growth and
// shrink through that pointer are observed live by every view.

package views

import "github.com/momentics/seqview/api"

// SliceTarget adapts *[]T to api.Sequence. The pointer is retained, not
// the slice header, so appends that reallocate remain visible.
type SliceTarget[T any] struct {
	data *[]T
}

// NewSliceTarget wraps a slice pointer as a sequence target.
func NewSliceTarget[T any](data *[]T) *SliceTarget[T] {
	return &SliceTarget[T]{data: data}
}

func (t *SliceTarget[T]) Len() int   { return len(*t.data) }
func (t *SliceTarget[T]) At(i int) T { return (*t.data)[i] }

// Of builds a full view over a Go slice.
func Of[T any](data *[]T) *View[T] {
	return New(api.Sequence[T](NewSliceTarget(data)))
}
