// Package apperr classifies the expected error kinds handlers translate to
// HTTP statuses. Anything unclassified is an upstream failure (500).
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a rejected payload (400).
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a missing record (404).
	ErrNotFound = errors.New("not found")
)

// AppError pairs an error kind with the client-facing message.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Err }

// Validation builds a 400-class error with the given message.
func Validation(format string, args ...interface{}) *AppError {
	return &AppError{Err: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a 404-class error for the named resource.
func NotFound(resource string) *AppError {
	return &AppError{Err: ErrNotFound, Message: resource + " not found"}
}
