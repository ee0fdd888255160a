package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jonathan/tax-return-agent/internal/types"
)

// SettleUp compares federal withholding against computed liability and
// returns the refund-or-owed outcome. Amount is always the absolute
// difference rounded to cents; it is zero exactly when the two match.
func SettleUp(totalTax, federalWithheld decimal.Decimal) types.RefundOrOwed {
	difference := federalWithheld.Sub(totalTax)

	switch {
	case difference.IsPositive():
		amount := difference.Round(2)
		return types.RefundOrOwed{
			Status:  types.StatusRefund,
			Amount:  amount,
			Message: fmt.Sprintf("You are due a refund of %s", types.USD(amount)),
		}
	case difference.IsNegative():
		amount := difference.Abs().Round(2)
		return types.RefundOrOwed{
			Status:  types.StatusOwed,
			Amount:  amount,
			Message: fmt.Sprintf("You owe %s", types.USD(amount)),
		}
	default:
		return types.RefundOrOwed{
			Status:  types.StatusEven,
			Amount:  decimal.Zero,
			Message: "Your withholding exactly matches your tax liability",
		}
	}
}
