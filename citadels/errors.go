package citadels

import (
	"errors"
	"fmt"
)

// ErrorCode represents a categorized error type.
type ErrorCode int

const (
	ErrorUnknown ErrorCode = iota

	// ErrorServer is an application-level fault reported by the remote
	// authority via an error envelope. Informational, never fatal.
	ErrorServer

	// Client-side errors.
	ErrorConnection
	ErrorNotConnected
	ErrorDecode
	ErrorSerialization
	ErrorInvalidConfig
	ErrorBadState
)

// String returns the string representation of an ErrorCode.
func (e ErrorCode) String() string {
	switch e {
	case ErrorUnknown:
		return "unknown"
	case ErrorServer:
		return "server_error"
	case ErrorConnection:
		return "connection_error"
	case ErrorNotConnected:
		return "not_connected"
	case ErrorDecode:
		return "decode_error"
	case ErrorSerialization:
		return "serialization_error"
	case ErrorInvalidConfig:
		return "invalid_config"
	case ErrorBadState:
		return "bad_state"
	default:
		return fmt.Sprintf("unknown_code_%d", e)
	}
}

// ClientError is a structured error with code and context.
type ClientError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Unwrap support.
func (e *ClientError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is support; two ClientErrors match on code.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new ClientError with the given code and message.
func NewError(code ErrorCode, message string) *ClientError {
	return &ClientError{Code: code, Message: message}
}

// WrapError wraps an existing error with a ClientError.
func WrapError(code ErrorCode, message string, err error) *ClientError {
	return &ClientError{Code: code, Message: message, Wrapped: err}
}

// FromServerError converts a wire error payload to a ClientError.
func FromServerError(se ServerError) *ClientError {
	return &ClientError{Code: ErrorServer, Message: se.Message}
}

// IsServerError reports whether err originated from an error envelope.
func IsServerError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Code == ErrorServer
}
