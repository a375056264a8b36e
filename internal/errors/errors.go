// Package errors provides sentinel and custom error types for the application.
package errors

import "fmt"

// ErrNotFound represents a "not found" error.
// Use when a requested resource doesn't exist.
var ErrNotFound = &NotFoundError{}

// NotFoundError is a sentinel error for resources that are not found.
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new NotFoundError with a custom message.
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Resource != "" {
		return e.Resource + " not found"
	}

	return "resource not found"
}

// Is implements the error interface for error comparison.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)

	return ok
}

// ErrValidation represents a validation error.
// Use when client input fails validation.
var ErrValidation = &ValidationError{}

// ValidationError is a sentinel error for validation failures.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new ValidationError with a custom message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Field != "" {
		return "validation failed for field: " + e.Field
	}

	return "validation error"
}

// Is implements the error interface for error comparison.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)

	return ok
}

// ErrUnknownAction is the sentinel for requests naming an action kind the
// executor does not know.
var ErrUnknownAction = &UnknownActionError{}

// UnknownActionError is a sentinel error for unrecognized action kinds.
type UnknownActionError struct {
	ActionType string
}

// NewUnknownActionError creates an UnknownActionError for the given action type.
func NewUnknownActionError(actionType string) *UnknownActionError {
	return &UnknownActionError{ActionType: actionType}
}

// Error implements the error interface.
func (e *UnknownActionError) Error() string {
	if e.ActionType != "" {
		return fmt.Sprintf("unknown action type: %s", e.ActionType)
	}

	return "unknown action type"
}

// Is implements the error interface for error comparison.
func (e *UnknownActionError) Is(target error) bool {
	_, ok := target.(*UnknownActionError)

	return ok
}

// ErrEmbeddingUnavailable is the sentinel for embedding model failures:
// the model could not be initialized or could not process the input.
// Handlers map it to a generic internal error; detail stays in the logs.
var ErrEmbeddingUnavailable = &EmbeddingUnavailableError{}

// EmbeddingUnavailableError wraps an underlying model or client failure.
type EmbeddingUnavailableError struct {
	Err error
}

// NewEmbeddingUnavailableError wraps err as an EmbeddingUnavailableError.
func NewEmbeddingUnavailableError(err error) *EmbeddingUnavailableError {
	return &EmbeddingUnavailableError{Err: err}
}

// Error implements the error interface.
func (e *EmbeddingUnavailableError) Error() string {
	if e.Err != nil {
		return "embedding unavailable: " + e.Err.Error()
	}

	return "embedding unavailable"
}

// Unwrap exposes the underlying failure for errors.Is/As chains.
func (e *EmbeddingUnavailableError) Unwrap() error {
	return e.Err
}

// Is implements the error interface for error comparison.
func (e *EmbeddingUnavailableError) Is(target error) bool {
	_, ok := target.(*EmbeddingUnavailableError)

	return ok
}
