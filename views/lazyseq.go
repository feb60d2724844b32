// File: views/lazyseq.go
// Author: momentics <momentics@gmail.com>
//
// Lazily-evaluated fixed-length sequence: a mapper applied to positions
// [0, n). Results are never cached; cheap mappers stay cheap and the
// caller decides about memoization.

package views

import (
	"iter"

	"github.com/momentics/seqview/api"
	"github.com/momentics/seqview/window"
)

// LazySeq maps positions to elements on demand.
type LazySeq[T any] struct {
	mapper func(pos int) T
	length int
}

// NewLazySeq builds a lazy sequence of the given length over mapper.
// Negative lengths are treated as empty.
func NewLazySeq[T any](length int, mapper func(pos int) T) *LazySeq[T] {
	if length < 0 {
		length = 0
	}
	return &LazySeq[T]{mapper: mapper, length: length}
}

// Len returns the sequence length.
func (s *LazySeq[T]) Len() int { return s.length }

// At returns the element at position i. Negative positions address from
// the end.
func (s *LazySeq[T]) At(i int) (T, error) {
	var zero T
	pos, err := window.ResolveIndex(i, s.length)
	if err != nil {
		return zero, err
	}
	return s.mapper(pos), nil
}

// Iter returns a restartable forward iterator.
func (s *LazySeq[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := 0; pos < s.length; pos++ {
			if !yield(s.mapper(pos)) {
				return
			}
		}
	}
}

// Reverse returns a restartable reverse-order iterator.
func (s *LazySeq[T]) Reverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := s.length - 1; pos >= 0; pos-- {
			if !yield(s.mapper(pos)) {
				return
			}
		}
	}
}

// SliceSeq re-slices the position domain, sharing the mapper.
func (s *LazySeq[T]) SliceSeq(sp api.Slice) (*LazySeq[T], error) {
	r, err := window.Resolve(sp, s.length)
	if err != nil {
		return nil, err
	}
	mapper := s.mapper
	return NewLazySeq(r.Len(), func(pos int) T {
		return mapper(r.At(pos))
	}), nil
}

// Collect materializes the sequence into a fresh slice.
func (s *LazySeq[T]) Collect() []T {
	out := make([]T, 0, s.length)
	for el := range s.Iter() {
		out = append(out, el)
	}
	return out
}
