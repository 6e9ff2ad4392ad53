package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeLoad        ErrorType = "LOAD"
	ErrTypeValidation  ErrorType = "VALIDATION"
	ErrTypeFormat      ErrorType = "FORMAT"
	ErrTypeEmptyResult ErrorType = "EMPTY_RESULT"
	ErrTypeStorage     ErrorType = "STORAGE"
	ErrTypeConfig      ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper constructors for the pipeline error taxonomy.

// NewLoadError creates an error for a file that is missing or unreadable.
// Fatal to that table's pipeline, not to the process.
func NewLoadError(message string, cause error) *AppError {
	return NewAppError(ErrTypeLoad, message, cause)
}

// NewValidationError creates an error naming every missing required column.
func NewValidationError(table string, missing []string) *AppError {
	return NewAppError(ErrTypeValidation,
		fmt.Sprintf("missing required columns in %s: %s", table, strings.Join(missing, ", ")),
		nil).WithContext("table", table).WithContext("missing_columns", missing)
}

// NewFormatError creates an error for an unrecognized or wholly unparseable
// timestamp/date column.
func NewFormatError(message string) *AppError {
	return NewAppError(ErrTypeFormat, message, nil)
}

// NewEmptyResultError marks the distinguished non-error condition where a
// stage produced zero rows. Callers treat it as an outcome, not a failure.
func NewEmptyResultError(message string) *AppError {
	return NewAppError(ErrTypeEmptyResult, message, nil)
}

// NewStorageError creates an error for output file writes.
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// IsEmptyResult reports whether err is the zero-rows outcome.
func IsEmptyResult(err error) bool {
	return IsType(err, ErrTypeEmptyResult)
}
