// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring.

package api

import "fmt"

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeInvalidIterationState
	ErrCodeInvalidConfiguration
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeOutOfRange:
		return "out of range"
	case ErrCodeInvalidIterationState:
		return "invalid iteration state"
	case ErrCodeInvalidConfiguration:
		return "invalid configuration"
	default:
		return "internal"
	}
}

// Common errors used across the library. Match with errors.Is; errors
// returned by operations carry extra context but compare equal by code.
var (
	ErrOutOfRange            = NewError(ErrCodeOutOfRange, "index out of range")
	ErrInvalidIterationState = NewError(ErrCodeInvalidIterationState, "iteration has not started, call Next")
	ErrInvalidConfiguration  = NewError(ErrCodeInvalidConfiguration, "capacity must be positive")
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

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
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

// OutOfRange builds an ErrCodeOutOfRange error for index against capacity.
func OutOfRange(index, capacity int) *Error {
	return NewError(ErrCodeOutOfRange, ErrOutOfRange.Message).
		WithContext("index", index).
		WithContext("capacity", capacity)
}

// InvalidCapacity builds an ErrCodeInvalidConfiguration error.
func InvalidCapacity(capacity int) *Error {
	return NewError(ErrCodeInvalidConfiguration, ErrInvalidConfiguration.Message).
		WithContext("capacity", capacity)
}
