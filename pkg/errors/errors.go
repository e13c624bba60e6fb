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

	// Manifest errors
	ErrManifestLoad    ErrorCode = "MANIFEST_LOAD"
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// Linker errors
	ErrSourceMissing  ErrorCode = "SOURCE_MISSING"
	ErrTargetConflict ErrorCode = "TARGET_CONFLICT"
	ErrDirCreate      ErrorCode = "DIR_CREATE_FAILED"
	ErrSymlinkCreate  ErrorCode = "SYMLINK_CREATE_FAILED"

	// Plugin fetch errors
	ErrNetwork      ErrorCode = "NETWORK_ERROR"
	ErrDestConflict ErrorCode = "DESTINATION_CONFLICT"
	ErrGitMissing   ErrorCode = "GIT_MISSING"

	// Docs server errors
	ErrRootMissing    ErrorCode = "ROOT_MISSING"
	ErrNoHandle       ErrorCode = "NO_HANDLE"
	ErrStaleHandle    ErrorCode = "STALE_HANDLE"
	ErrAlreadyRunning ErrorCode = "ALREADY_RUNNING"
	ErrServerSpawn    ErrorCode = "SERVER_SPAWN_FAILED"
)

// LinkError represents a structured error with code and details
type LinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkError) Unwrap() error {
	return e.Wrapped
}

// Is matches errors by code so callers can test categories with errors.Is
func (e *LinkError) Is(target error) bool {
	var targetErr *LinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkError with the given code and message
func New(code ErrorCode, message string) *LinkError {
	return &LinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkError {
	return &LinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LinkError
func Wrap(err error, code ErrorCode, message string) *LinkError {
	if err == nil {
		return nil
	}
	return &LinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkError {
	if err == nil {
		return nil
	}
	return &LinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LinkError) WithDetail(key string, value interface{}) *LinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// CodeOf extracts the ErrorCode from an error, or ErrUnknown for
// errors that did not come from this package.
func CodeOf(err error) ErrorCode {
	var le *LinkError
	if errors.As(err, &le) {
		return le.Code
	}
	return ErrUnknown
}
