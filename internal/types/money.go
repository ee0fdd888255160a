package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// USD formats a decimal as a dollar amount with thousands separators and two
// decimal places, e.g. 52000 -> "$52,000.00".
func USD(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var sb strings.Builder
	if neg {
		sb.WriteString("-")
	}
	sb.WriteString("$")
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(",")
		}
		sb.WriteRune(ch)
	}
	sb.WriteString(".")
	sb.WriteString(fracPart)
	return sb.String()
}
