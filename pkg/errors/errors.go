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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Property errors
	ErrPropsParse ErrorCode = "PROPS_PARSE"

	// Fragment errors
	ErrFragmentUnknown ErrorCode = "FRAGMENT_UNKNOWN"

	// FileSystem errors
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileExists ErrorCode = "FILE_EXISTS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// DevmkError represents a structured error with code and details
type DevmkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DevmkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DevmkError) Unwrap() error {
	return e.Wrapped
}

// Is matches any DevmkError carrying the same code
func (e *DevmkError) Is(target error) bool {
	var targetErr *DevmkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DevmkError with the given code and message
func New(code ErrorCode, message string) *DevmkError {
	return &DevmkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DevmkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DevmkError {
	return &DevmkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *DevmkError {
	if err == nil {
		return nil
	}
	return &DevmkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DevmkError {
	if err == nil {
		return nil
	}
	return &DevmkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DevmkError) WithDetail(key string, value interface{}) *DevmkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var devmkErr *DevmkError
	if errors.As(err, &devmkErr) {
		return devmkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DevmkError
func GetErrorCode(err error) ErrorCode {
	var devmkErr *DevmkError
	if errors.As(err, &devmkErr) {
		return devmkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DevmkError
func GetErrorDetails(err error) map[string]interface{} {
	var devmkErr *DevmkError
	if errors.As(err, &devmkErr) {
		return devmkErr.Details
	}
	return nil
}
