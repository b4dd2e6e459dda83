package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Task
	}{
		{"creates task with text", "Buy milk", Task{Text: "Buy milk"}},
		{"creates task with empty text", "", Task{Text: ""}},
		{"keeps markup verbatim", "<b>bold</b>", Task{Text: "<b>bold</b>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewTask(tt.text))
		})
	}
}
