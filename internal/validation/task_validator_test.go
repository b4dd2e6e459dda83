package validation

import (
	"strings"
	"testing"
)

func TestTaskValidator_ValidateTaskText(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"Valid text", "Buy milk", false},
		{"Empty text", "", true},
		{"Whitespace only", "   ", true},
		{"Tabs and newlines", "\t\n ", true},
		{"Markup is allowed", "<script>alert(1)</script>", false},
		{"Long text is allowed", strings.Repeat("a", 5000), false},
		{"Unicode", "café ☕", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskText(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("ValidateTaskText(%q) expected error but got nil", tt.input)
					return
				}

				validationErr, ok := err.(*ValidationError)
				if !ok {
					t.Errorf("ValidateTaskText(%q) expected ValidationError but got %T", tt.input, err)
					return
				}

				if len(validationErr.Errors) != 1 || validationErr.Errors[0].Field != FieldTask {
					t.Errorf("ValidateTaskText(%q) unexpected errors %+v", tt.input, validationErr.Errors)
				}
			} else if err != nil {
				t.Errorf("ValidateTaskText(%q) expected no error but got %v", tt.input, err)
			}
		})
	}
}

func TestTaskValidator_GetValidTaskText(t *testing.T) {
	validator := NewTaskValidator()

	text, err := validator.GetValidTaskText("  Water plants \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Water plants" {
		t.Errorf("GetValidTaskText = %q, expected %q", text, "Water plants")
	}

	text, err = validator.GetValidTaskText("   ")
	if err == nil {
		t.Fatal("expected error for blank text")
	}
	if text != "" {
		t.Errorf("GetValidTaskText on blank input returned %q", text)
	}
}
