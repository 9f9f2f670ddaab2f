// Package errors defines the error kinds surfaced by the jobly services.
//
// Every failure a caller can correct (bad input, constraint violations) is a
// bad request; lookups that hit no row are not-found. Use the Is* helpers or
// errors.Is against the sentinels rather than matching on messages.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common sentinel errors
var (
	// ErrBadRequest matches every caller-correctable failure
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is returned when a targeted row does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized is returned when credentials do not match
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError represents an input validation failure, including an
// update with no fields and a search criterion with an invalid value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrBadRequest
}

// ConstraintKind names the store constraint that rejected a write.
type ConstraintKind string

const (
	Unique     ConstraintKind = "unique"
	ForeignKey ConstraintKind = "foreign key"
	Check      ConstraintKind = "check"
	NotNull    ConstraintKind = "not null"
)

// ConstraintError represents a write rejected by the store because of a
// referential, uniqueness or check constraint.
type ConstraintError struct {
	Kind ConstraintKind
	Err  error
}

func (e *ConstraintError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s constraint violated", e.Kind)
	}
	return fmt.Sprintf("%s constraint violated: %v", e.Kind, e.Err)
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrBadRequest
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a get, update or remove that matched no row
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnauthorizedError represents failed authentication
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func (e *UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConstraintError creates a new ConstraintError
func NewConstraintError(kind ConstraintKind, err error) error {
	return &ConstraintError{Kind: kind, Err: err}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewUnauthorizedError creates a new UnauthorizedError
func NewUnauthorizedError(message string) error {
	return &UnauthorizedError{Message: message}
}

// IsBadRequest checks if an error is caller-correctable
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if an error is an authentication failure
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsConstraintViolation checks if an error came from a store constraint
func IsConstraintViolation(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}

// StatusCode maps an error onto the HTTP status a transport layer should answer with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsBadRequest(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsUnauthorized(err):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
