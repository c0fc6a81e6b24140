package client

import (
	"errors"
	"fmt"
)

// ErrorCode classifies client pipeline errors.
type ErrorCode int

const (
	// ErrCodeConfiguration indicates the client is unusable as configured
	// (empty address pool, unusable override).
	ErrCodeConfiguration ErrorCode = iota
	// ErrCodeConnection indicates a transport-level failure (refused, DNS,
	// broken connection).
	ErrCodeConnection
	// ErrCodeTimeout indicates the request context expired or was cancelled.
	ErrCodeTimeout
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConfiguration:
		return "configuration"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error is a structured client error. Service-reported failures are not
// represented here; those surface as *responses.APIError.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("client: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// NewConfigurationError creates a configuration error.
func NewConfigurationError(msg string) *Error {
	return &Error{Code: ErrCodeConfiguration, Message: msg}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// ErrRequestConsumed is returned when a request builder is finalized a
// second time. Builders are single use.
var ErrRequestConsumed = errors.New("client: request already sent")

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConfiguration
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsTransport checks if an error is a transport failure of either kind.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Code == ErrCodeConnection || e.Code == ErrCodeTimeout)
}
