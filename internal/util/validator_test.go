package util

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type testBox struct {
	Width float64 `validate:"gt=0"`
	Port  string  `validate:"required,numeric"`
}

type testConfig struct {
	Box testBox
}

func TestGenerateErrorMessagesAsString(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation errors",
			err:      validator.New().Struct(testConfig{Box: testBox{Width: 0, Port: "abc"}}),
			expected: "Box.Width must be greater than 0; Box.Port must be numeric",
		},
		{
			name:     "Plain error",
			err:      errors.New("something broke"),
			expected: "something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateErrorMessagesAsString(tt.err); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
