package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "JSON wrapped in ```json block",
			input:    "```json\n{\"wages\": 52000}\n```",
			expected: `{"wages": 52000}`,
		},
		{
			name:     "JSON wrapped in generic ``` block",
			input:    "```\n{\"wages\": 52000}\n```",
			expected: `{"wages": 52000}`,
		},
		{
			name:     "Plain JSON without code blocks",
			input:    `{"wages": 52000}`,
			expected: `{"wages": 52000}`,
		},
		{
			name:     "Whitespace around code blocks",
			input:    "  ```json\n{\"wages\": 52000}\n```  ",
			expected: `{"wages": 52000}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Bare object",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "Object surrounded by prose",
			input:    "Here is the data you asked for:\n{\"a\": 1, \"b\": {\"c\": 2}}\nLet me know if you need more.",
			expected: `{"a": 1, "b": {"c": 2}}`,
		},
		{
			name:     "Braces inside strings are ignored",
			input:    `{"note": "contains } and { characters", "x": 1}`,
			expected: `{"note": "contains } and { characters", "x": 1}`,
		},
		{
			name:     "Escaped quotes inside strings",
			input:    `{"note": "she said \"hi\"", "x": 1} trailing`,
			expected: `{"note": "she said \"hi\"", "x": 1}`,
		},
		{
			name:     "No object present",
			input:    "no json here",
			expected: "",
		},
		{
			name:     "Unbalanced object",
			input:    `{"a": 1`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstJSONObject(tt.input))
		})
	}
}
