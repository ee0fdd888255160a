// Package tax implements the progressive-bracket tax engine and the
// settlement of withholding against computed liability.
package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jonathan/tax-return-agent/internal/brackets"
	"github.com/jonathan/tax-return-agent/internal/types"
)

var oneHundred = decimal.NewFromInt(100)

// Compute walks the bracket table for the filing status and produces the
// total tax with a per-bracket breakdown. Unknown statuses use the Single
// table. Non-positive taxable income yields a zero result with an empty
// bracket list.
//
// Per-bracket taxes are kept at full precision; TotalTax and EffectiveRate
// are rounded to two places. The detail entries therefore sum to TotalTax
// within cent rounding.
func Compute(taxableIncome decimal.Decimal, status types.FilingStatus) types.TaxResult {
	if !taxableIncome.IsPositive() {
		return types.TaxResult{
			TaxableIncome:  decimal.Zero,
			TotalTax:       decimal.Zero,
			EffectiveRate:  decimal.Zero,
			MarginalRate:   decimal.Zero,
			BracketDetails: []types.BracketDetail{},
		}
	}

	table := brackets.ForStatus(status)

	totalTax := decimal.Zero
	remaining := taxableIncome
	previousLimit := decimal.Zero
	marginalRate := decimal.Zero
	details := make([]types.BracketDetail, 0, len(table))

	for _, bracket := range table {
		if !remaining.IsPositive() {
			break
		}

		bracketIncome := remaining
		if !bracket.Unbounded {
			if width := bracket.Limit.Sub(previousLimit); width.LessThan(bracketIncome) {
				bracketIncome = width
			}
		}

		bracketTax := bracketIncome.Mul(bracket.Rate)
		totalTax = totalTax.Add(bracketTax)
		marginalRate = bracket.Rate

		details = append(details, types.BracketDetail{
			Range:           rangeLabel(previousLimit, bracket),
			Rate:            rateLabel(bracket.Rate),
			IncomeInBracket: bracketIncome,
			TaxInBracket:    bracketTax,
		})

		remaining = remaining.Sub(bracketIncome)
		previousLimit = bracket.Limit
	}

	effectiveRate := totalTax.Div(taxableIncome).Mul(oneHundred)

	return types.TaxResult{
		TaxableIncome:  taxableIncome,
		TotalTax:       totalTax.Round(2),
		EffectiveRate:  effectiveRate.Round(2),
		MarginalRate:   marginalRate.Mul(oneHundred),
		BracketDetails: details,
	}
}

// rangeLabel renders the income range a bracket covers, e.g.
// "$11,600.00 - $47,150.00" or "$609,350.00+" for the open-ended top bracket.
func rangeLabel(previousLimit decimal.Decimal, bracket brackets.Bracket) string {
	if bracket.Unbounded {
		return fmt.Sprintf("%s+", types.USD(previousLimit))
	}
	return fmt.Sprintf("%s - %s", types.USD(previousLimit), types.USD(bracket.Limit))
}

// rateLabel renders a fractional rate as a whole percentage, e.g. "22%".
func rateLabel(rate decimal.Decimal) string {
	return fmt.Sprintf("%s%%", rate.Mul(oneHundred).StringFixed(0))
}
