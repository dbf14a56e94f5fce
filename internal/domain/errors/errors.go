// Package errors defines the application error taxonomy. Every error carries
// an HTTP status, a stable business code and a user-facing message; the error
// middleware translates them into the unified response envelope.
package errors

import (
	"net/http"

	"localhelp/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches errors by business code, so a detail-enriched copy still
// compares equal to its predefined base error.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if errors.As(target, &base) {
		return e.errorCode == base.errorCode
	}

	return false
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"Search radius must be greater than zero",
		"",
	)

	ErrSelfContact = NewBaseError(
		http.StatusBadRequest,
		"SELF_CONTACT",
		"You cannot start a conversation about your own post",
		"",
	)

	ErrSelfRating = NewBaseError(
		http.StatusBadRequest,
		"SELF_RATING",
		"You cannot rate yourself",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"OWNERSHIP_VIOLATION",
		"You can only modify your own listings",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	ErrAddressNotSet = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_SET",
		"No registered address found. Please set your address first",
		"",
	)

	ErrVerificationFailed = NewBaseError(
		http.StatusBadRequest,
		"VERIFICATION_FAILED",
		"You do not appear to be at your registered address",
		"",
	)

	// Read paths degrade to empty results on upstream failures; write paths
	// surface this error so the caller can retry.
	ErrUpstreamFailure = NewBaseError(
		http.StatusServiceUnavailable,
		"UPSTREAM_FAILURE",
		"A dependent service failed, please try again",
		"",
	)
)

// NewDatabaseExecuteError wraps a database failure as an upstream failure.
// The original error stays in details for the logs and is never shown to the
// client as the message.
func NewDatabaseExecuteError(details string) *BaseError {
	return ErrUpstreamFailure.WithDetails(details)
}
