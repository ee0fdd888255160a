package types

// FilingStatus is the taxpayer's federal filing status. Unknown values fall
// back to Single wherever a bracket table or deduction is selected.
type FilingStatus string

// Filing statuses recognized by the bracket and deduction tables
const (
	StatusSingle                  FilingStatus = "Single"
	StatusMarriedFilingJointly    FilingStatus = "Married Filing Jointly"
	StatusMarriedFilingSeparately FilingStatus = "Married Filing Separately"
	StatusHeadOfHousehold         FilingStatus = "Head of Household"
)

// PersonalInfo carries the taxpayer identity fields. The core validates
// presence only; content is passed through opaque to the renderer.
type PersonalInfo struct {
	Name         string       `json:"name" validate:"required"`
	SSN          string       `json:"ssn" validate:"required"`
	Address      string       `json:"address" validate:"required"`
	FilingStatus FilingStatus `json:"filing_status" validate:"required"`
}
