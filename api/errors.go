// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the seqview library.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrInvalidArgument       = fmt.Errorf("invalid argument")
	ErrIndexOutOfRange       = fmt.Errorf("index out of range")
	ErrWindowIndexOutOfRange = fmt.Errorf("windowing index out of range")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeIndexOutOfRange
	ErrCodeWindowIndexOutOfRange
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the error code to its sentinel, so errors.Is works
// against the package-level Err values.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeIndexOutOfRange:
		return ErrIndexOutOfRange
	case ErrCodeWindowIndexOutOfRange:
		return ErrWindowIndexOutOfRange
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf returns the ErrorCode carried by err. Nil maps to ErrCodeOK,
// errors from outside the library map to ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
