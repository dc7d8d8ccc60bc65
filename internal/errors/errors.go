package errors

import (
	"fmt"
)

// VerifyError is the structured error type for avep-verify.
// Probes return it so the checks can log and render failures consistently.
type VerifyError struct {
	// Code is the unique error code (e.g., "ERR_302_NETWORK_UNAVAILABLE").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Network, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *VerifyError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *VerifyError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with VerifyError.
func (e *VerifyError) Is(target error) bool {
	if t, ok := target.(*VerifyError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *VerifyError) WithDetail(key, value string) *VerifyError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *VerifyError) WithSuggestion(suggestion string) *VerifyError {
	e.Suggestion = suggestion
	return e
}

// New creates a new VerifyError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *VerifyError {
	return &VerifyError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a VerifyError from an existing error.
// The error's message becomes the VerifyError message.
func Wrap(code string, err error) *VerifyError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *VerifyError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *VerifyError {
	return New(ErrCodeInternal, message, cause)
}
