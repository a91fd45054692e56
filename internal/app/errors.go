package app

import "fmt"

// Error codes.
const (
	ErrCodeConfigRead    = "config_read"
	ErrCodeConfigInvalid = "config_invalid"
	ErrCodeOpenFailed    = "open_failed"
	ErrCodeEmptyURL      = "empty_url"
)

// Error is the structured error type used throughout the app layer.
type Error struct {
	Code    string `json:"code"`              // Machine-readable error code
	Message string `json:"message"`           // Human-readable message
	Details any    `json:"details,omitempty"` // Additional context
}

func (e *Error) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Details)
	}
	return e.Message
}

func newError(code, message string, details any) *Error {
	return &Error{Code: code, Message: message, Details: details}
}
