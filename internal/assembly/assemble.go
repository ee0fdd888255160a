// Package assembly builds the complete tax return from extracted documents
// and taxpayer information: aggregation, deductions, tax computation, and the
// final refund-or-owed settlement.
package assembly

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jonathan/tax-return-agent/internal/aggregation"
	"github.com/jonathan/tax-return-agent/internal/brackets"
	"github.com/jonathan/tax-return-agent/internal/tax"
	"github.com/jonathan/tax-return-agent/internal/types"
)

var validate = validator.New()

// ValidatePersonalInfo checks that every required taxpayer field is present.
// The first missing field is reported; callers fix one omission at a time.
func ValidatePersonalInfo(info types.PersonalInfo) error {
	err := validate.Struct(info)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &MissingInputError{Field: strings.ToLower(fieldErrs[0].Field())}
	}
	return err
}

// ComputeReturn assembles a complete return from extracted documents and
// taxpayer information.
//
// AGI equals total income; this pipeline models no above-the-line
// adjustments. Taxable income is AGI minus the standard deduction, floored at
// zero. The larger of standard and itemized deduction would apply, but
// itemized amounts are not collected, so the standard deduction always wins.
func ComputeReturn(docs []types.TaxDocument, info types.PersonalInfo) (types.CompleteReturn, error) {
	if err := ValidatePersonalInfo(info); err != nil {
		return types.CompleteReturn{}, err
	}

	income := aggregation.Aggregate(docs)
	deduction := brackets.StandardDeduction(info.FilingStatus)

	agi := income.TotalIncome
	taxableIncome := agi.Sub(deduction)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	taxCalc := tax.Compute(taxableIncome, info.FilingStatus)
	outcome := tax.SettleUp(taxCalc.TotalTax, income.TotalFederalWithheld)

	return types.CompleteReturn{
		PersonalInfo: info,
		Income:       income,
		Deductions: types.Deductions{
			StandardDeduction: deduction,
			ItemizedDeduction: decimal.Zero,
		},
		AGI:            agi,
		TaxableIncome:  taxableIncome,
		TaxCalculation: taxCalc,
		Payments: types.Payments{
			FederalWithheld: income.TotalFederalWithheld,
		},
		RefundOrOwed: outcome,
	}, nil
}
