package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Compile-time errors: unknown operation, unknown capability or an
	// illegal stage ordering. Always raised before any input is read.
	ErrUnsupported ErrorCode = "UNSUPPORTED"

	// Run-time errors: a value a stage cannot convert.
	ErrConversion ErrorCode = "CONVERSION"

	// Stream errors
	ErrInputRead   ErrorCode = "INPUT_READ"
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// SplineError represents a structured error with code and details
type SplineError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SplineError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SplineError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface. Two SplineErrors match when their codes match.
func (e *SplineError) Is(target error) bool {
	var targetErr *SplineError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SplineError with the given code and message
func New(code ErrorCode, message string) *SplineError {
	return &SplineError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SplineError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SplineError {
	return &SplineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SplineError
func Wrap(err error, code ErrorCode, message string) *SplineError {
	if err == nil {
		return nil
	}
	return &SplineError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SplineError {
	if err == nil {
		return nil
	}
	return &SplineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SplineError) WithDetail(key string, value interface{}) *SplineError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Conversion builds the error reported when a stage cannot handle the value
// read from input line `line`. The raw line is kept so the operator can find it.
func Conversion(stage string, line int, raw string, cause error) *SplineError {
	err := Newf(ErrConversion, "%s: cannot convert line %d %q", stage, line, raw)
	err.Wrapped = cause
	return err.
		WithDetail("stage", stage).
		WithDetail("line", line).
		WithDetail("raw", raw)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var splineErr *SplineError
	if errors.As(err, &splineErr) {
		return splineErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SplineError
func GetErrorCode(err error) ErrorCode {
	var splineErr *SplineError
	if errors.As(err, &splineErr) {
		return splineErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SplineError
func GetErrorDetails(err error) map[string]interface{} {
	var splineErr *SplineError
	if errors.As(err, &splineErr) {
		return splineErr.Details
	}
	return nil
}
