package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeMissingFile ErrorType = "MISSING_FILE"
	ErrTypeSchema      ErrorType = "SCHEMA"
	ErrTypeStorage     ErrorType = "STORAGE"
	ErrTypeChart       ErrorType = "CHART"
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

// IsType reports whether err, or any error it wraps, is an AppError of the
// given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper functions for common error types

// NewMissingFileError creates an error for an absent or unreadable input file
func NewMissingFileError(path string, cause error) *AppError {
	return NewAppError(ErrTypeMissingFile, fmt.Sprintf("input file %s is missing or unreadable", path), cause).
		WithContext("path", path)
}

// NewSchemaError creates an error for an input table that violates the
// expected schema (missing column, wrong shape)
func NewSchemaError(message string, cause error) *AppError {
	return NewAppError(ErrTypeSchema, message, cause)
}

// NewCellError creates a schema error for a single malformed cell value,
// carrying the file, column and 1-based row of the offending cell
func NewCellError(file, column string, row int, cause error) *AppError {
	return NewAppError(ErrTypeSchema, fmt.Sprintf("malformed value in %s, column %s, row %d", file, column, row), cause).
		WithContext("file", file).
		WithContext("column", column).
		WithContext("row", row)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewChartError creates a chart rendering error
func NewChartError(message string, cause error) *AppError {
	return NewAppError(ErrTypeChart, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
