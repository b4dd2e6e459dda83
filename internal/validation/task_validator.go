package validation

// FieldTask is the request field that carries task text
const FieldTask = "task"

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskText checks that text is non-empty once surrounding whitespace is removed.
// Length and character set are not restricted.
func (tv *TaskValidator) ValidateTaskText(text string) error {
	validationError := NewValidationError()
	if !tv.validator.IsNonEmptyString(text) {
		validationError.AddRequiredError(FieldTask)
	}
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidTaskText returns the trimmed text if valid
func (tv *TaskValidator) GetValidTaskText(text string) (string, error) {
	if err := tv.ValidateTaskText(text); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(text), nil
}
