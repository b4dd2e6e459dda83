package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Database", ErrorTypeDatabase, "database"},
		{"AssetMissing", ErrorTypeAssetMissing, "asset_missing"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.errorType.String(); got != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name:     "Error without cause",
			appError: &AppError{Type: ErrorTypeValidation, Message: "task is required"},
			expected: "validation: task is required",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeDatabase,
				Message: "insert failed",
				Cause:   errors.New("database is locked"),
			},
			expected: "database: insert failed (caused by: database is locked)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appError.Error(); got != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	appError := &AppError{Type: ErrorTypeDatabase, Message: "wrapped", Cause: cause}

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
	if !errors.Is(appError, cause) {
		t.Errorf("errors.Is should find the cause through Unwrap")
	}
}

func TestAppError_Is(t *testing.T) {
	a := &AppError{Type: ErrorTypeValidation, Code: "VALIDATION_FAILED"}
	b := &AppError{Type: ErrorTypeValidation, Code: "VALIDATION_FAILED"}
	c := &AppError{Type: ErrorTypeDatabase, Code: "DATABASE_ERROR"}

	tests := []struct {
		name     string
		target   error
		expected bool
	}{
		{"Same type and code", b, true},
		{"Different type", c, false},
		{"Regular error", errors.New("plain"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Is(tt.target); got != tt.expected {
				t.Errorf("AppError.Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Context(t *testing.T) {
	appError := &AppError{Type: ErrorTypeInvalidInput, Message: "bad id"}

	if _, ok := appError.GetContext("field"); ok {
		t.Errorf("GetContext should return false when context is nil")
	}

	result := appError.WithContext("field", "id")
	if result != appError {
		t.Errorf("WithContext should return the same instance")
	}

	value, ok := appError.GetContext("field")
	if !ok || value != "id" {
		t.Errorf("GetContext(field) = %v, %v; want id, true", value, ok)
	}
	if _, ok := appError.GetContext("missing"); ok {
		t.Errorf("GetContext should return false for unknown keys")
	}
}
