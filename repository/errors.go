package repository

import (
	"errors"
	"fmt"
)

// Kind categorizes repository errors.
type Kind string

const (
	// KindNotFound indicates the targeted entity does not exist.
	KindNotFound Kind = "NOT_FOUND"

	// KindConstraintViolation indicates a uniqueness, foreign key, or
	// check constraint was violated.
	KindConstraintViolation Kind = "CONSTRAINT_VIOLATION"

	// KindConnection indicates the storage engine was unreachable or the
	// connection was lost.
	KindConnection Kind = "CONNECTION_ERROR"

	// KindTransaction indicates a begin/commit/rollback failure.
	KindTransaction Kind = "TRANSACTION_ERROR"

	// KindQuery indicates a statement failed to parse or execute.
	KindQuery Kind = "QUERY_ERROR"

	// KindInvalidInput indicates caller-supplied input the adapter could
	// not use.
	KindInvalidInput Kind = "INVALID_INPUT"

	// KindInternal indicates an unclassified adapter failure.
	KindInternal Kind = "INTERNAL"
)

// Error is the structured error returned by repository operations.
//
// Adapters classify driver errors into a Kind and keep the cause wrapped,
// so callers can branch on the kind with KindOf/IsKind and still reach the
// driver error via errors.As. No error is silently swallowed.
type Error struct {
	// Kind identifies the error category.
	Kind Kind

	// Message is a human-readable description.
	Message string

	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an error with the given kind and message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates an error with the given kind and message, wrapping a
// cause.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or "" if err is not a repository error.
func KindOf(err error) Kind {
	var repoErr *Error
	if errors.As(err, &repoErr) {
		return repoErr.Kind
	}
	return ""
}

// IsKind reports whether err is a repository error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsNotFound reports whether err is a NOT_FOUND repository error.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}
