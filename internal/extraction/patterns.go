package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jonathan/tax-return-agent/internal/types"
)

// Pattern variants per field, ordered from most to least specific label
// phrasing; the first variant that matches wins. Amount patterns capture the
// number with optional thousands separators and cents.
var (
	employerNamePatterns = compileAll(
		`(?i)Employer:\s*([^\n]+)`,
		`(?i)Employer Name:\s*([^\n]+)`,
		`(?i)(?:c\s+)?Employer[\s']*s name[^:]*:\s*([^\n]+)`,
	)
	employeeNamePatterns = compileAll(
		`(?i)Employee:\s*([^\n]+)`,
		`(?i)Employee Name:\s*([^\n]+)`,
		`(?i)(?:e\s+)?Employee[\s']*s name[^:]*:\s*([^\n]+)`,
	)
	wagesPatterns = compileAll(
		`(?i)Wages\s*\(?Box\s*1\)?[:\s]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Box\s*1[^$]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Wages[^$]*\$([\d,]+(?:\.\d{2})?)`,
	)
	federalWithheldPatterns = compileAll(
		`(?i)Federal\s+Tax\s+Withheld\s*\(?Box\s*2\)?[:\s]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Box\s*2[^$]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Federal.*withheld[^$]*\$([\d,]+(?:\.\d{2})?)`,
	)
	socialSecurityWagesPatterns = compileAll(
		`(?i)Social\s+Security\s+Wages\s*\(?Box\s*3\)?[:\s]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Box\s*3[^$]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Social\s+Security[^$]*\$([\d,]+(?:\.\d{2})?)`,
	)
	medicareWagesPatterns = compileAll(
		`(?i)Medicare\s+Wages\s*\(?Box\s*5\)?[:\s]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Box\s*5[^$]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Medicare[^$]*\$([\d,]+(?:\.\d{2})?)`,
	)

	payerNamePatterns = compileAll(
		`(?i)Payer:\s*([^\n]+)`,
		`(?i)Payer Name:\s*([^\n]+)`,
		`(?i)PAYER[\s']*S name[^:]*:\s*([^\n]+)`,
	)
	recipientNamePatterns = compileAll(
		`(?i)Recipient:\s*([^\n]+)`,
		`(?i)Recipient Name:\s*([^\n]+)`,
		`(?i)RECIPIENT[\s']*S name[^:]*:\s*([^\n]+)`,
	)
	interestIncomePatterns = compileAll(
		`(?i)Interest\s+Income\s*\(?Box\s*1\)?[:\s]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Box\s*1[^$]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Interest[^$]*\$([\d,]+(?:\.\d{2})?)`,
	)
	withdrawalPenaltyPatterns = compileAll(
		`(?i)Early\s+Withdrawal\s+Penalty\s*\(?Box\s*2\)?[:\s]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Box\s*2[^$]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Penalty[^$]*\$([\d,]+(?:\.\d{2})?)`,
	)
	compensationPatterns = compileAll(
		`(?i)Nonemployee\s+Compensation\s*\(?Box\s*1\)?[:\s]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Box\s*1[^$]*\$?([\d,]+(?:\.\d{2})?)`,
		`(?i)Compensation[^$]*\$([\d,]+(?:\.\d{2})?)`,
	)
)

// brokenAmountRe matches an amount whose digit group was split across a line
// break after the dollar sign, e.g. "$6\n,500".
var brokenAmountRe = regexp.MustCompile(`\$(\d+)\s*\n\s*,(\d+)`)

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// rejoinBrokenAmounts re-joins digit groups that PDF text extraction split
// across a line break, so the field patterns see "$6,500" again.
func rejoinBrokenAmounts(text string) string {
	return brokenAmountRe.ReplaceAllString(text, "$$${1},${2}")
}

// firstAmount runs the pattern variants in order and parses the first match
// as a decimal. Unparseable or negative matches count as not found (zero).
func firstAmount(text string, patterns []*regexp.Regexp) decimal.Decimal {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.IsNegative() {
			continue
		}
		return amount
	}
	return decimal.Zero
}

// firstName runs the pattern variants in order and returns the first trimmed
// match, or the NotFound sentinel.
func firstName(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
	}
	return types.NotFound
}

// parseW2 extracts W-2 fields using pattern rules only.
func parseW2(text string) *types.W2 {
	text = rejoinBrokenAmounts(text)
	return &types.W2{
		Wages:               firstAmount(text, wagesPatterns),
		FederalTaxWithheld:  firstAmount(text, federalWithheldPatterns),
		SocialSecurityWages: firstAmount(text, socialSecurityWagesPatterns),
		MedicareWages:       firstAmount(text, medicareWagesPatterns),
		EmployerName:        firstName(text, employerNamePatterns),
		EmployeeName:        firstName(text, employeeNamePatterns),
	}
}

// parse1099INT extracts 1099-INT fields using pattern rules only.
func parse1099INT(text string) *types.Form1099INT {
	text = rejoinBrokenAmounts(text)
	return &types.Form1099INT{
		InterestIncome:         firstAmount(text, interestIncomePatterns),
		EarlyWithdrawalPenalty: firstAmount(text, withdrawalPenaltyPatterns),
		PayerName:              firstName(text, payerNamePatterns),
		RecipientName:          firstName(text, recipientNamePatterns),
	}
}

// parse1099NEC extracts 1099-NEC fields using pattern rules only.
func parse1099NEC(text string) *types.Form1099NEC {
	text = rejoinBrokenAmounts(text)
	return &types.Form1099NEC{
		NonemployeeCompensation: firstAmount(text, compensationPatterns),
		PayerName:               firstName(text, payerNamePatterns),
		RecipientName:           firstName(text, recipientNamePatterns),
	}
}
