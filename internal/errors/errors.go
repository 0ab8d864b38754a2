package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeCatalogNotFound    = "CATALOG_NOT_FOUND"
	CodeCatalogMalformed   = "CATALOG_MALFORMED"
	CodeUnknownTrialType   = "UNKNOWN_TRIAL_TYPE"
	CodeInvalidIdentity    = "INVALID_IDENTITY"
	CodeIncompletePlayback = "INCOMPLETE_PLAYBACK"
	CodeMissingScore       = "MISSING_SCORE"
	CodePersistFailure     = "PERSIST_FAILURE"
	CodeConfigInvalid      = "CONFIG_INVALID"
	CodeStoreError         = "STORE_ERROR"
	CodeStudyFull          = "STUDY_FULL"
	CodeInternalError      = "INTERNAL_ERROR"
)

// Common error constructors
func CatalogNotFound(message string) *AppError {
	return New(CodeCatalogNotFound, message)
}

func CatalogMalformed(message string) *AppError {
	return New(CodeCatalogMalformed, message)
}

func UnknownTrialType(tag string) *AppError {
	return New(CodeUnknownTrialType, fmt.Sprintf("unknown trial type: %s", tag))
}

func InvalidIdentity(message string) *AppError {
	return New(CodeInvalidIdentity, message)
}

func IncompletePlayback(message string) *AppError {
	return New(CodeIncompletePlayback, message)
}

func MissingScore(message string) *AppError {
	return New(CodeMissingScore, message)
}

func PersistFailure(message string) *AppError {
	return New(CodePersistFailure, message)
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func StoreError(message string) *AppError {
	return New(CodeStoreError, message)
}
