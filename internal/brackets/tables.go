// Package brackets holds the 2024 federal tax bracket tables and standard
// deduction amounts, keyed by filing status. The data is process-wide,
// read-only, and safe for unsynchronized concurrent reads.
package brackets

import (
	"github.com/shopspring/decimal"

	"github.com/jonathan/tax-return-agent/internal/types"
)

// Bracket is one slice of a progressive tax schedule: income up to Limit
// (exclusive of lower brackets) is taxed at Rate. The top bracket of every
// table has Unbounded set and its Limit is ignored, which guarantees the
// bracket walk always exhausts the taxable income.
type Bracket struct {
	Limit     decimal.Decimal
	Rate      decimal.Decimal
	Unbounded bool
}

func bracket(limit int64, rate string) Bracket {
	return Bracket{Limit: decimal.NewFromInt(limit), Rate: decimal.RequireFromString(rate)}
}

func topBracket(rate string) Bracket {
	return Bracket{Rate: decimal.RequireFromString(rate), Unbounded: true}
}

// 2024 tax year tables. Married Filing Separately shares the Single table.
var (
	single = []Bracket{
		bracket(11600, "0.10"),
		bracket(47150, "0.12"),
		bracket(100525, "0.22"),
		bracket(191950, "0.24"),
		bracket(243725, "0.32"),
		bracket(609350, "0.35"),
		topBracket("0.37"),
	}

	marriedJoint = []Bracket{
		bracket(23200, "0.10"),
		bracket(94300, "0.12"),
		bracket(201050, "0.22"),
		bracket(383900, "0.24"),
		bracket(487450, "0.32"),
		bracket(731200, "0.35"),
		topBracket("0.37"),
	}

	headOfHousehold = []Bracket{
		bracket(16550, "0.10"),
		bracket(63100, "0.12"),
		bracket(100500, "0.22"),
		bracket(191950, "0.24"),
		bracket(243700, "0.32"),
		bracket(609350, "0.35"),
		topBracket("0.37"),
	}
)

// Standard deductions for 2024.
var standardDeductions = map[types.FilingStatus]decimal.Decimal{
	types.StatusSingle:                  decimal.NewFromInt(14600),
	types.StatusMarriedFilingJointly:    decimal.NewFromInt(29200),
	types.StatusMarriedFilingSeparately: decimal.NewFromInt(14600),
	types.StatusHeadOfHousehold:         decimal.NewFromInt(21900),
}

// ForStatus returns the bracket table for a filing status, in ascending
// upper-bound order. Unknown statuses use the Single table.
func ForStatus(status types.FilingStatus) []Bracket {
	switch status {
	case types.StatusMarriedFilingJointly:
		return marriedJoint
	case types.StatusHeadOfHousehold:
		return headOfHousehold
	case types.StatusSingle, types.StatusMarriedFilingSeparately:
		return single
	default:
		return single
	}
}

// StandardDeduction returns the standard deduction for a filing status.
// Unknown statuses use the Single amount.
func StandardDeduction(status types.FilingStatus) decimal.Decimal {
	if d, ok := standardDeductions[status]; ok {
		return d
	}
	return standardDeductions[types.StatusSingle]
}
