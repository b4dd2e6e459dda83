package errors

import (
	"errors"
	"fmt"
)

func newAppError(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    kinds[errorType].code,
		Cause:   cause,
	}
}

// NewValidationError reports input that parsed but broke a rule, such as blank task text
func NewValidationError(message string, cause error) *AppError {
	return newAppError(ErrorTypeValidation, message, cause)
}

// NewInvalidInputError reports input that could not be parsed at all
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newAppError(ErrorTypeInvalidInput, fmt.Sprintf("invalid input for %s: %s", field, reason), nil).
		WithContext("field", field).
		WithContext("value", value).
		WithContext("reason", reason)
}

// NewDatabaseError wraps a storage failure during operation
func NewDatabaseError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeDatabase, "database operation failed: "+operation, cause).
		WithContext("operation", operation)
}

// NewAssetMissingError reports a static asset that could not be read
func NewAssetMissingError(path string, cause error) *AppError {
	return newAppError(ErrorTypeAssetMissing, "asset not found: "+path, cause).
		WithContext("path", path)
}

// AsAppError returns the first AppError in err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.IsType(errorType)
}

// GetUserMessage returns the text that is safe to show to a user.
// Storage details stay in the logs.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	k, known := kinds[appErr.Type]
	if !known {
		return "An unexpected error occurred. Please try again."
	}
	if k.publicMessage != "" {
		return k.publicMessage
	}
	return appErr.Message
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError reports whether err points at a fault in the service rather than the caller
func ShouldLogError(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return true
	}
	return !kinds[appErr.Type].callerFault
}
