// Package errors defines the application error taxonomy: every domain
// failure is an AppError pairing a user-facing message with an HTTP status
// code. Errors are constructed at the violation site and serialized only at
// the HTTP boundary.
package errors

import (
	"net/http"

	"spotter/internal/errors"
)

// AppError is the single error carrier type of the system.
type AppError interface {
	error
	HTTPCode() int   // HTTP status code
	Message() string // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode int
	message  string
}

// New creates an AppError with the given message and HTTP status code.
func New(message string, httpCode int) *BaseError {
	return &BaseError{httpCode: httpCode, message: message}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error values, named by meaning.
var (
	// Registration / account errors
	ErrEmailTaken = New("User already exists", http.StatusConflict)

	// Authentication errors. ErrPasswordlessAccount is deliberately distinct
	// from ErrInvalidCredentials so a Google-only account failing a password
	// login is distinguishable from a plain wrong password.
	ErrInvalidCredentials  = New("Invalid email or password", http.StatusUnauthorized)
	ErrPasswordlessAccount = New("This account uses Google sign-in", http.StatusUnauthorized)
	ErrUnauthorized        = New("Unauthorized", http.StatusUnauthorized)

	// Token errors
	ErrInvalidToken = New("Invalid or expired token", http.StatusUnauthorized)
	ErrTokenReuse   = New("Refresh token is no longer valid", http.StatusUnauthorized)

	// Resource errors
	ErrUserNotFound = New("User not found", http.StatusNotFound)
	ErrNotFound     = New("Resource not found", http.StatusNotFound)
	ErrNoSpots      = New("No Spots found", http.StatusNotFound)

	// Input errors
	ErrValidationFailed = New("Invalid input", http.StatusBadRequest)

	// General errors
	ErrInternal = New("Internal server error", http.StatusInternalServerError)
)

// DatabaseExecuteError wraps an unmapped storage failure. It implements
// AppError so the HTTP boundary serializes it like any other domain error
// while the wrapped cause stays available for logging.
type DatabaseExecuteError struct {
	err     error
	message string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, message string) AppError {
	return &DatabaseExecuteError{err: err, message: message}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.message).Error()
}

// Unwrap exposes the underlying driver error for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return e.message
}
