package cli

import (
	stderrors "errors"
	"fmt"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
)

// ErrTableMissing is returned when the database has no todos table
var ErrTableMissing = stderrors.New("table 'todos' does not exist")

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides a user-friendly message for err prefixed with the failed operation.
// The underlying cause is printed when debug output is on.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if appErr, ok := errors.AsAppError(err); ok {
		if appErr.Cause != nil {
			logging.Debugf("[DIAG]: %s: %v\n", operation, appErr.Cause)
		}
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	if stderrors.Is(err, ErrTableMissing) {
		return "TABLE_MISSING"
	}
	return errors.GetErrorCode(err)
}
