package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError with the same code, so
// errors.Is(err, &AppError{Code: ErrCodeDuplicateKey}) matches any duplicate-key error.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// DuplicateKey creates an AppError for a key produced by two elements.
func DuplicateKey(key, existing, incoming any) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateKey,
		Message: fmt.Sprintf("duplicate key %v (attempted merging values %v and %v)", key, existing, incoming),
		Details: map[string]any{"key": key, "existing": existing, "incoming": incoming},
	}
}

// UnboundedEvaluation creates an AppError for an operation that would have to
// consume an infinite stream.
func UnboundedEvaluation(operation string) *AppError {
	return &AppError{
		Code:    ErrCodeUnboundedEvaluation,
		Message: fmt.Sprintf("%s cannot consume an unbounded stream; bound it with Limit first", operation),
		Details: map[string]any{"operation": operation},
	}
}

// Canceled creates an AppError wrapping a context error.
func Canceled(operation string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeCanceled,
		Message: fmt.Sprintf("%s canceled", operation),
		Details: map[string]any{"operation": operation},
		Cause:   cause,
	}
}

// InvalidArgument creates an AppError for an argument outside its domain.
func InvalidArgument(field, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("invalid %s: %s", field, reason),
		Details: map[string]any{"field": field, "reason": reason},
	}
}

// Validation creates an AppError for failed struct validation.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Config creates an AppError for configuration that could not be loaded.
func Config(service string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeConfig,
		Message: fmt.Sprintf("failed to load config for service %s", service),
		Details: map[string]any{"service": service},
		Cause:   cause,
	}
}

// --- Inspection ---

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "" when there is none.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err's chain contains an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, &AppError{Code: code})
}
