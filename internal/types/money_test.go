package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"999.9", "$999.90"},
		{"1000", "$1,000.00"},
		{"52000", "$52,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-2244", "-$2,244.00"},
	}

	for _, tt := range tests {
		got := USD(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "USD(%s)", tt.in)
	}
}
