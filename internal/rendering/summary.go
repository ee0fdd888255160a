// Package rendering formats assembled tax returns for human consumption.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/tax-return-agent/internal/types"
)

const bannerWidth = 60

// Summary renders a plain-text report of a complete return, suitable for
// printing to a terminal or saving next to the uploaded documents.
func Summary(ret types.CompleteReturn) string {
	banner := strings.Repeat("=", bannerWidth)

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add(banner)
	add("TAX RETURN SUMMARY")
	add(banner)
	add("")

	add("TAXPAYER INFORMATION:")
	add("  Name: %s", ret.PersonalInfo.Name)
	add("  Filing Status: %s", ret.PersonalInfo.FilingStatus)
	add("")

	add("INCOME:")
	add("  Wages (W-2): %s", types.USD(ret.Income.TotalWages))
	add("  Interest Income (1099-INT): %s", types.USD(ret.Income.TotalInterest))
	add("  Other Income (1099-NEC): %s", types.USD(ret.Income.TotalNonemployeeCompensation))
	add("  TOTAL INCOME: %s", types.USD(ret.Income.TotalIncome))
	add("")

	add("DEDUCTIONS:")
	add("  Standard Deduction: %s", types.USD(ret.Deductions.StandardDeduction))
	add("  Taxable Income: %s", types.USD(ret.TaxableIncome))
	add("")

	add("TAX CALCULATION:")
	add("  Federal Income Tax: %s", types.USD(ret.TaxCalculation.TotalTax))
	add("  Effective Tax Rate: %s%%", ret.TaxCalculation.EffectiveRate.StringFixed(2))
	add("  Marginal Tax Rate: %s%%", ret.TaxCalculation.MarginalRate.StringFixed(0))
	add("")

	add("PAYMENTS:")
	add("  Federal Tax Withheld: %s", types.USD(ret.Payments.FederalWithheld))
	add("")

	add("RESULT:")
	add("  %s", ret.RefundOrOwed.Message)
	add("")
	add(banner)

	return strings.Join(lines, "\n")
}
