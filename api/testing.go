// Package api
// Author: momentics
//
// Mock/testing utilities for the core contracts.

package api

// MockSequence is a test and mock-friendly implementation of Sequence.
type MockSequence[T any] struct {
	LenFunc func() int
	AtFunc  func(i int) T
}

func (m *MockSequence[T]) Len() int   { return m.LenFunc() }
func (m *MockSequence[T]) At(i int) T { return m.AtFunc(i) }
