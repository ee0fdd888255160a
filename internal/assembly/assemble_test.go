package assembly

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/tax-return-agent/internal/types"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validInfo() types.PersonalInfo {
	return types.PersonalInfo{
		Name:         "Jane Taxpayer",
		SSN:          "123-45-6789",
		Address:      "1 Main St, Springfield",
		FilingStatus: types.StatusSingle,
	}
}

func TestComputeReturnSingleW2(t *testing.T) {
	docs := []types.TaxDocument{
		&types.W2{
			Wages:              d("52000.00"),
			FederalTaxWithheld: d("6500.00"),
			EmployerName:       "Acme Corp",
			EmployeeName:       "Jane Taxpayer",
		},
	}

	ret, err := ComputeReturn(docs, validInfo())
	require.NoError(t, err)

	assert.True(t, ret.AGI.Equal(d("52000.00")), "AGI = %s", ret.AGI)
	assert.True(t, ret.Deductions.StandardDeduction.Equal(d("14600")))
	assert.True(t, ret.TaxableIncome.Equal(d("37400.00")), "taxable = %s", ret.TaxableIncome)
	assert.True(t, ret.TaxCalculation.TotalTax.Equal(d("4256.00")), "tax = %s", ret.TaxCalculation.TotalTax)
	assert.True(t, ret.Payments.FederalWithheld.Equal(d("6500.00")))

	assert.Equal(t, types.StatusRefund, ret.RefundOrOwed.Status)
	assert.True(t, ret.RefundOrOwed.Amount.Equal(d("2244.00")), "refund = %s", ret.RefundOrOwed.Amount)
}

func TestComputeReturnTaxableIncomeFloorsAtZero(t *testing.T) {
	docs := []types.TaxDocument{
		&types.W2{Wages: d("9000.00"), FederalTaxWithheld: d("450.00")},
	}

	ret, err := ComputeReturn(docs, validInfo())
	require.NoError(t, err)

	assert.True(t, ret.TaxableIncome.IsZero())
	assert.True(t, ret.TaxCalculation.TotalTax.IsZero())
	assert.Equal(t, types.StatusRefund, ret.RefundOrOwed.Status)
	assert.True(t, ret.RefundOrOwed.Amount.Equal(d("450.00")))
}

func TestComputeReturnExactWithholdingIsEven(t *testing.T) {
	docs := []types.TaxDocument{
		&types.W2{Wages: d("52000.00"), FederalTaxWithheld: d("4256.00")},
	}

	ret, err := ComputeReturn(docs, validInfo())
	require.NoError(t, err)

	assert.Equal(t, types.StatusEven, ret.RefundOrOwed.Status)
	assert.True(t, ret.RefundOrOwed.Amount.IsZero())
}

func TestComputeReturnMarriedJointDeduction(t *testing.T) {
	info := validInfo()
	info.FilingStatus = types.StatusMarriedFilingJointly

	docs := []types.TaxDocument{
		&types.W2{Wages: d("100000.00"), FederalTaxWithheld: d("12000.00")},
	}

	ret, err := ComputeReturn(docs, info)
	require.NoError(t, err)

	assert.True(t, ret.Deductions.StandardDeduction.Equal(d("29200")))
	assert.True(t, ret.TaxableIncome.Equal(d("70800.00")))
}

func TestComputeReturnMissingInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*types.PersonalInfo)
		wantField string
	}{
		{"Missing name", func(p *types.PersonalInfo) { p.Name = "" }, "name"},
		{"Missing SSN", func(p *types.PersonalInfo) { p.SSN = "" }, "ssn"},
		{"Missing address", func(p *types.PersonalInfo) { p.Address = "" }, "address"},
		{"Missing filing status", func(p *types.PersonalInfo) { p.FilingStatus = "" }, "filingstatus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validInfo()
			tt.mutate(&info)

			_, err := ComputeReturn(nil, info)

			var missing *MissingInputError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantField, missing.Field)
		})
	}
}

func TestComputeReturnNoDocuments(t *testing.T) {
	ret, err := ComputeReturn(nil, validInfo())
	require.NoError(t, err)

	assert.True(t, ret.AGI.IsZero())
	assert.True(t, ret.TaxableIncome.IsZero())
	assert.Equal(t, types.StatusEven, ret.RefundOrOwed.Status)
}
