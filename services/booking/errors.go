package booking

import (
	"errors"
	"fmt"
)

const (
	CodeValidation  = "validationError"
	CodeConflict    = "conflictError"
	CodeNetwork     = "networkError"
	CodePaymentInit = "paymentInitError"
)

// EngineError is a typed booking-engine error carrying a taxonomy code.
type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError flags a submission rejected before any network call.
func NewValidationError(msg string) error {
	return &EngineError{Code: CodeValidation, Message: msg}
}

// NewConflictError flags a server-side hold rejection; the message is
// surfaced verbatim so the user can re-select.
func NewConflictError(msg string) error {
	return &EngineError{Code: CodeConflict, Message: msg}
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(msg string) error {
	return &EngineError{Code: CodeNetwork, Message: msg}
}

// NewPaymentInitError flags a malformed or missing gateway payload. Fatal
// for the attempt; never auto-retried.
func NewPaymentInitError(msg string) error {
	return &EngineError{Code: CodePaymentInit, Message: msg}
}

// ErrorCode extracts the taxonomy code from err, or "" for untyped errors.
func ErrorCode(err error) string {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}
