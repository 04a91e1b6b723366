package roleauth

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for roleauth operations.
var (
	// ErrConflict is returned when a unique name is already taken.
	ErrConflict = errors.New("roleauth: conflict")

	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("roleauth: not found")

	// ErrPersistence is returned when the store rejects a write. The transaction
	// has already been rolled back when this error is seen.
	ErrPersistence = errors.New("roleauth: persistence error")

	// ErrValidation is returned when input fails field constraints.
	ErrValidation = errors.New("roleauth: validation failed")
)

// Error wraps a sentinel error with a caller-facing message and context.
type Error struct {
	Err     error  // Underlying sentinel error
	Message string // Human-readable message, safe to show to API callers
	Entity  string // Entity involved (if applicable)
	ID      int64  // Record id involved (if applicable)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a target error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new Error with context.
func NewError(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// WithEntity adds the entity name to the error.
func (e *Error) WithEntity(entity string) *Error {
	e.Entity = entity
	return e
}

// WithID adds the record id to the error.
func (e *Error) WithID(id int64) *Error {
	e.ID = id
	return e
}

// IsConflict checks if an error is a duplicate-name conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsNotFound checks if an error is due to a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPersistence checks if an error is a rejected write.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// IsValidation checks if an error is due to invalid input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// StatusCode maps an error to the HTTP status the handlers respond with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err), IsPersistence(err), IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-facing message of err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
