package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an application error. The set is closed: the transport
// layer maps each kind onto exactly one HTTP status code.
type Kind int

const (
	// KindValidation marks malformed or rule-violating input, including
	// dangling references such as a product pointing at a missing category.
	KindValidation Kind = iota + 1
	// KindNotFound marks an operation that targeted a nonexistent entity.
	KindNotFound
	// KindConflict marks a uniqueness violation.
	KindConflict
	// KindInternal marks an unexpected storage or infrastructure failure.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is the application error type returned by every service operation.
// The wrapped cause is kept for logging and never serialized to clients.
type Error struct {
	Kind    Kind
	Field   string // offending field for validation errors, may be empty
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidation returns a Validation error for the given field.
func NewValidation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewNotFound returns a NotFound error for the named entity.
func NewNotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// NewConflict returns a Conflict error.
func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewInternal wraps an unexpected failure. The client-facing message is
// opaque; the cause stays available for logging via Unwrap.
func NewInternal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf extracts the error kind. Errors from outside the taxonomy are
// treated as Internal so no raw failure ever picks its own status code.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a NotFound application error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
