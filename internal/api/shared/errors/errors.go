package errors

import (
	"encoding/json"
	"strings"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeValidationFailed ErrorCode = "validation_failed"

	// Server errors (5xx)
	ErrCodeInternalError     ErrorCode = "internal_error"
	ErrCodeDatabaseError     ErrorCode = "database_error"
	ErrCodeServiceError      ErrorCode = "service_error"
	ErrCodeCompilationFailed ErrorCode = "compilation_failed"
)

// APIError represents a structured API error that carries error code and details.
// The same shape is decoded by the HTTP gateways on the client side.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Parse decodes an error body; ok is false when the body is not a structured APIError
func Parse(body []byte) (apiErr *APIError, ok bool) {
	var e APIError
	if err := json.Unmarshal(body, &e); err != nil || e.Code == "" {
		return nil, false
	}
	return &e, true
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// NewCompilationError carries the compiler diagnostics, joined by newlines, as the message
func NewCompilationError(message string) *APIError {
	return &APIError{
		Code:    ErrCodeCompilationFailed,
		Message: message,
	}
}
