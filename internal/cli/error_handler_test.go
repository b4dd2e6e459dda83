package cli

import (
	"errors"
	"fmt"
	"testing"

	apperrors "todo-list/internal/errors"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Invalid input error",
			operation: "add task",
			err:       apperrors.NewInvalidInputError("text", "", "task text is required"),
			expected:  "failed to add task: invalid input for text: task text is required",
		},
		{
			name:      "Database error",
			operation: "list tasks",
			err:       apperrors.NewDatabaseError("query", errors.New("disk I/O error")),
			expected:  "failed to list tasks: A database error occurred. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "check",
			err:       errors.New("regular error"),
			expected:  "failed to check: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Database error",
			err:      apperrors.NewDatabaseError("insert", errors.New("timeout")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "Table missing",
			err:      ErrTableMissing,
			expected: "table 'todos' does not exist",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()
	dbErr := apperrors.NewDatabaseError("open", errors.New("locked"))

	if got := eh.GetErrorCode(dbErr); got != "DATABASE_ERROR" {
		t.Errorf("GetErrorCode(db) = %q", got)
	}
	if got := eh.GetErrorCode(fmt.Errorf("smoke: %w", ErrTableMissing)); got != "TABLE_MISSING" {
		t.Errorf("GetErrorCode(table missing) = %q", got)
	}
	if got := eh.GetErrorCode(errors.New("x")); got != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode(plain) = %q", got)
	}
}
