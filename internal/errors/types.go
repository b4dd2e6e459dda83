package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeInvalidInput
	ErrorTypeDatabase
	ErrorTypeAssetMissing
)

// kind describes how each ErrorType is coded, shown and logged
type kind struct {
	name string
	code string
	// callerFault errors come from bad requests and are not worth logging
	callerFault bool
	// publicMessage replaces the error message in responses when set
	publicMessage string
}

var kinds = map[ErrorType]kind{
	ErrorTypeValidation:   {name: "validation", code: "VALIDATION_FAILED", callerFault: true},
	ErrorTypeInvalidInput: {name: "invalid_input", code: "INVALID_INPUT", callerFault: true},
	ErrorTypeDatabase:     {name: "database", code: "DATABASE_ERROR", publicMessage: "A database error occurred. Please try again."},
	ErrorTypeAssetMissing: {name: "asset_missing", code: "ASSET_MISSING"},
}

// String returns the string representation of the error type
func (et ErrorType) String() string {
	if k, ok := kinds[et]; ok {
		return k.name
	}
	return "unknown"
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code, so errors.Is works
// against a template such as &AppError{Type: ErrorTypeDatabase, Code: "DATABASE_ERROR"}.
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && e.Type == other.Type && e.Code == other.Code
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext records key on the error and returns it for chaining
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = map[string]interface{}{}
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves context information from the error
func (e *AppError) GetContext(key string) (interface{}, bool) {
	value, ok := e.Context[key]
	return value, ok
}
