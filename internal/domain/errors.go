package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is returned when user input is missing or malformed.
	// It is always raised locally, before any network call.
	ErrValidation = errors.New("validation failed")

	// ErrWalletUnavailable is returned when no wallet provider is configured or reachable
	ErrWalletUnavailable = errors.New("wallet provider is not available")

	// ErrChain is returned when the wallet or the chain rejects or fails a request
	ErrChain = errors.New("chain request failed")

	// ErrCompilation is returned when the compiler reports error diagnostics
	ErrCompilation = errors.New("compilation failed")

	// ErrTransport is returned when the backend (compiler or store service) cannot be reached
	// or answers with a non-success status
	ErrTransport = errors.New("transport failure")

	// ErrProtocol is returned when a success response cannot be parsed as the expected shape
	ErrProtocol = errors.New("unexpected response")

	// ErrStore is returned when the persistence layer fails
	ErrStore = errors.New("store failure")

	// ErrOperationInFlight is returned when a workflow action is started while another is pending
	ErrOperationInFlight = errors.New("another operation is in progress")
)

// UnrecognizedChainErrorCode is the EIP-3085 wallet error code for a chain the wallet does not know
const UnrecognizedChainErrorCode = 4902

// NewValidationError creates a validation error with a user-facing message
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// Failure is a transport, protocol or store error. Message is safe to show to a user;
// Err holds the technical cause, if any.
type Failure struct {
	Kind    error
	Message string
	Err     error
}

func (e *Failure) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Err)
}

// Is reports the failure class so callers can match it with errors.Is
func (e *Failure) Is(target error) bool {
	return target == e.Kind
}

func (e *Failure) Unwrap() error {
	return e.Err
}

// NewTransportError wraps err as a transport failure
func NewTransportError(message string, err error) error {
	return &Failure{Kind: ErrTransport, Message: message, Err: err}
}

// NewProtocolError wraps err as a protocol failure
func NewProtocolError(message string, err error) error {
	return &Failure{Kind: ErrProtocol, Message: message, Err: err}
}

// NewStoreError wraps err as a persistence failure
func NewStoreError(message string, err error) error {
	return &Failure{Kind: ErrStore, Message: message, Err: err}
}

// ChainError carries the wallet/provider error code and message
type ChainError struct {
	Code    int
	Message string
}

func (e *ChainError) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// Is reports ErrChain so callers can match the whole class with errors.Is
func (e *ChainError) Is(target error) bool {
	return target == ErrChain
}

// IsUnrecognizedChain reports whether the wallet does not know the requested chain
func (e *ChainError) IsUnrecognizedChain() bool {
	return e.Code == UnrecognizedChainErrorCode
}

// CompilationError carries the compiler's error-severity diagnostics
type CompilationError struct {
	Diagnostics []string
}

func (e *CompilationError) Error() string {
	return strings.Join(e.Diagnostics, "\n")
}

// Is reports ErrCompilation so callers can match the whole class with errors.Is
func (e *CompilationError) Is(target error) bool {
	return target == ErrCompilation
}
