// Package errors defines the coded error used across preload.
//
// Every failure a caller may want to branch on carries an ErrorCode: the
// registry reports NOT_FOUND and ALREADY_INITIALIZED, content sources report
// CONTENT_LOAD and CONTENT_PARSE, config loading reports CONFIG_*. Test with
// IsErrorCode rather than comparing messages. Structured context (the slot
// key, the number of registered slots) travels in Details under the Detail*
// keys, so the CLI and logs can report it without parsing text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of failure independently of its message
type ErrorCode string

// Error codes for different error categories
const (
	// General errors. ErrNotFound is also the registry's lookup miss.
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Returned by a second registry Initialize
	ErrAlreadyInitialized ErrorCode = "ALREADY_INITIALIZED"

	// Content sources: I/O failures and malformed bundles
	ErrContentLoad  ErrorCode = "CONTENT_LOAD"
	ErrContentParse ErrorCode = "CONTENT_PARSE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// Detail keys shared by the packages that attach details
const (
	// DetailKey holds the slot key an error is about
	DetailKey = "key"
	// DetailCount holds the number of slots already registered
	DetailCount = "count"
	// DetailMissing holds the slot keys a check found absent
	DetailMissing = "missing"
)

// PreloadError is a coded error with optional details and a wrapped cause.
// Its Error text is "[CODE] message" followed by the cause, if any.
type PreloadError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PreloadError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PreloadError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a PreloadError with the same code, so
// errors.Is(err, errors.New(errors.ErrNotFound, "")) matches any lookup miss
func (e *PreloadError) Is(target error) bool {
	var targetErr *PreloadError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PreloadError with the given code and message
func New(code ErrorCode, message string) *PreloadError {
	return &PreloadError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PreloadError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PreloadError {
	return &PreloadError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PreloadError
func Wrap(err error, code ErrorCode, message string) *PreloadError {
	if err == nil {
		return nil
	}
	return &PreloadError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PreloadError {
	if err == nil {
		return nil
	}
	return &PreloadError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PreloadError) WithDetail(key string, value interface{}) *PreloadError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var preloadErr *PreloadError
	if errors.As(err, &preloadErr) {
		return preloadErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PreloadError
func GetErrorCode(err error) ErrorCode {
	var preloadErr *PreloadError
	if errors.As(err, &preloadErr) {
		return preloadErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PreloadError
func GetErrorDetails(err error) map[string]interface{} {
	var preloadErr *PreloadError
	if errors.As(err, &preloadErr) {
		return preloadErr.Details
	}
	return nil
}
