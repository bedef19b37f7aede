// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. Use cases and middleware signal these errors and a
// single translation stage maps them to HTTP status codes and response bodies.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated principal doesn't have permission.
	ErrForbidden = errors.New("forbidden")
)

// Error is a domain error carrying a message that is safe to return to API clients.
// Kind is one of the sentinel errors above and drives the HTTP status mapping.
type Error struct {
	Kind    error
	Message string
}

// Error returns the client-facing message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel kind so errors.Is keeps working.
func (e *Error) Unwrap() error {
	return e.Kind
}

// WithMessage creates an error of the given kind with a client-facing message.
func WithMessage(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// PublicMessage returns the client-facing message of the first *Error found in err's tree.
func PublicMessage(err error) (string, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message, true
	}
	return "", false
}

// New creates an error that is not one of the domain kinds.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while keeping it matchable with Is. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
