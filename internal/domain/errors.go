package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// Validation error kinds. A *ValidationError unwraps to exactly one of these.
var (
	ErrMissingField      = errors.New("missing field")
	ErrInvalidEnum       = errors.New("invalid enum value")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidDateTime   = errors.New("invalid date, time, or timezone")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidID         = errors.New("invalid id")
	ErrEmptyCollection   = errors.New("empty collection")
)

// Conflict kinds. Both unwrap to ErrConflict.
var (
	ErrDuplicateSlug    = &conflictError{msg: "An event with this title already exists on this date"}
	ErrDuplicateBooking = &conflictError{msg: "You have already booked this event"}
)

type conflictError struct {
	msg string
}

func (e *conflictError) Error() string { return e.msg }

func (e *conflictError) Unwrap() error { return ErrConflict }

// ValidationError is a client-correctable rejection of an input field.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

// NewValidationError returns a ValidationError of the given kind.
func NewValidationError(kind error, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Field != "" {
		return e.Field + ": " + e.Kind.Error()
	}
	return e.Kind.Error()
}

// Unwrap exposes both the kind and ErrInvalidInput to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return []error{e.Kind, ErrInvalidInput}
}
