package brackets

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/tax-return-agent/internal/types"
)

func TestTablesAreWellFormed(t *testing.T) {
	statuses := []types.FilingStatus{
		types.StatusSingle,
		types.StatusMarriedFilingJointly,
		types.StatusMarriedFilingSeparately,
		types.StatusHeadOfHousehold,
	}

	for _, status := range statuses {
		table := ForStatus(status)
		require.NotEmpty(t, table, "status %s", status)

		previousLimit := decimal.Zero
		previousRate := decimal.Zero
		for i, b := range table {
			if i == len(table)-1 {
				assert.True(t, b.Unbounded, "status %s: last bracket must be open-ended", status)
			} else {
				assert.False(t, b.Unbounded)
				assert.True(t, b.Limit.GreaterThan(previousLimit),
					"status %s: limits must ascend", status)
				previousLimit = b.Limit
			}
			assert.True(t, b.Rate.GreaterThan(previousRate),
				"status %s: rates must ascend", status)
			previousRate = b.Rate
		}
	}
}

func TestForStatus(t *testing.T) {
	assert.True(t, ForStatus(types.StatusSingle)[0].Limit.Equal(decimal.NewFromInt(11600)))
	assert.True(t, ForStatus(types.StatusMarriedFilingJointly)[0].Limit.Equal(decimal.NewFromInt(23200)))
	assert.True(t, ForStatus(types.StatusHeadOfHousehold)[0].Limit.Equal(decimal.NewFromInt(16550)))

	// Married Filing Separately and unrecognized statuses share the Single table.
	assert.Equal(t, ForStatus(types.StatusSingle), ForStatus(types.StatusMarriedFilingSeparately))
	assert.Equal(t, ForStatus(types.StatusSingle), ForStatus(types.FilingStatus("Widowed Twice")))
}

func TestStandardDeduction(t *testing.T) {
	tests := []struct {
		status types.FilingStatus
		want   int64
	}{
		{types.StatusSingle, 14600},
		{types.StatusMarriedFilingJointly, 29200},
		{types.StatusMarriedFilingSeparately, 14600},
		{types.StatusHeadOfHousehold, 21900},
		{types.FilingStatus("Unknown"), 14600},
	}

	for _, tt := range tests {
		got := StandardDeduction(tt.status)
		assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "status %s: got %s", tt.status, got)
	}
}
