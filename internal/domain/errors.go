package domain

import "fmt"

// The three recoverable error kinds the API boundary knows how to translate:
// ValidationError -> 400, NotFoundError -> 404, ConflictError -> 409.
// Anything else is treated as an internal error.

// ValidationError reports malformed input or a violated business rule
// (past event, no seats available).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid builds a ValidationError from a format string.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound builds a NotFoundError from a format string.
func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports an identifier collision.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflict builds a ConflictError from a format string.
func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
