package types

import "github.com/shopspring/decimal"

// IncomeTotals holds the per-category sums aggregated across all extracted
// documents. TotalIncome is always the sum of the three category totals,
// rounded to cents after summation.
type IncomeTotals struct {
	TotalIncome                  decimal.Decimal      `json:"total_income"`
	TotalWages                   decimal.Decimal      `json:"total_wages"`
	TotalInterest                decimal.Decimal      `json:"total_interest"`
	TotalNonemployeeCompensation decimal.Decimal      `json:"total_nonemployee_compensation"`
	TotalFederalWithheld         decimal.Decimal      `json:"total_federal_withheld"`
	DocumentCounts               map[DocumentType]int `json:"document_counts"`
}

// BracketDetail records one slice of the progressive tax computation.
type BracketDetail struct {
	Range           string          `json:"range"`
	Rate            string          `json:"rate"`
	IncomeInBracket decimal.Decimal `json:"income_in_bracket"`
	TaxInBracket    decimal.Decimal `json:"tax_in_bracket"`
}

// TaxResult is the output of the progressive bracket walk. Rates are
// percentages. The bracket details sum to TotalTax within cent rounding.
type TaxResult struct {
	TaxableIncome  decimal.Decimal `json:"taxable_income"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	EffectiveRate  decimal.Decimal `json:"effective_rate"`
	MarginalRate   decimal.Decimal `json:"marginal_rate"`
	BracketDetails []BracketDetail `json:"bracket_details"`
}

// SettlementStatus tags the refund-or-owed outcome.
type SettlementStatus string

// Settlement outcomes
const (
	StatusRefund SettlementStatus = "REFUND"
	StatusOwed   SettlementStatus = "OWED"
	StatusEven   SettlementStatus = "EVEN"
)

// RefundOrOwed is the settlement of withholding against computed liability.
// Amount is always non-negative; it is zero exactly when Status is EVEN.
type RefundOrOwed struct {
	Status  SettlementStatus `json:"status"`
	Amount  decimal.Decimal  `json:"amount"`
	Message string           `json:"message"`
}

// Deductions holds the deduction amounts applied to AGI. Itemized deductions
// are not implemented and always zero.
type Deductions struct {
	StandardDeduction decimal.Decimal `json:"standard_deduction"`
	ItemizedDeduction decimal.Decimal `json:"itemized_deduction"`
}

// Payments holds tax already collected before filing.
type Payments struct {
	FederalWithheld decimal.Decimal `json:"federal_withheld"`
}

// CompleteReturn is the fully assembled calculation result. AGI equals total
// income (no adjustments are implemented); TaxableIncome is AGI minus the
// standard deduction, clamped at zero. Assembly is all-or-nothing: no partial
// CompleteReturn is ever produced.
type CompleteReturn struct {
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Income         IncomeTotals    `json:"income"`
	Deductions     Deductions      `json:"deductions"`
	AGI            decimal.Decimal `json:"agi"`
	TaxableIncome  decimal.Decimal `json:"taxable_income"`
	TaxCalculation TaxResult       `json:"tax_calculation"`
	Payments       Payments        `json:"payments"`
	RefundOrOwed   RefundOrOwed    `json:"refund_or_owed"`
}
