package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("classify-document")
	require.NoError(t, err)
	assert.Contains(t, prompt, "W-2")
	assert.Contains(t, prompt, "{{.DocumentText}}")

	_, err = Get("no-such-key")
	assert.Error(t, err)
}

func TestExtractionPromptsPresent(t *testing.T) {
	keys, err := List()
	require.NoError(t, err)

	for _, want := range []string{"classify-document", "extract-w2", "extract-1099-int", "extract-1099-nec"} {
		assert.Contains(t, keys, want)
	}
}

func TestExtractionPromptsCarryExactFieldSets(t *testing.T) {
	tests := []struct {
		key    string
		fields []string
	}{
		{"extract-w2", []string{"wages", "federal_tax_withheld", "social_security_wages", "medicare_wages", "employer_name", "employee_name"}},
		{"extract-1099-int", []string{"interest_income", "early_withdrawal_penalty", "payer_name", "recipient_name"}},
		{"extract-1099-nec", []string{"nonemployee_compensation", "payer_name", "recipient_name"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			prompt := MustGet(tt.key)
			for _, field := range tt.fields {
				assert.Contains(t, prompt, field)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	template := MustGet("classify-document")
	out := Format(template, map[string]string{"DocumentText": "Form W-2 Wage and Tax Statement"})

	assert.False(t, strings.Contains(out, "{{.DocumentText}}"))
	assert.Contains(t, out, "Form W-2 Wage and Tax Statement")
}
