// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/tax-return-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxBracketsToShow is the default number of bracket rows to display
	maxBracketsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of one extracted document.
func (p *Printer) PrintDocument(name string, doc types.TaxDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:  %s\n", name))
	sb.WriteString(fmt.Sprintf("Type:  %s\n", doc.Type()))

	switch d := doc.(type) {
	case *types.W2:
		sb.WriteString(fmt.Sprintf("Employer:  %s\n", d.EmployerName))
		sb.WriteString(fmt.Sprintf("Employee:  %s\n", d.EmployeeName))
		sb.WriteString(fmt.Sprintf("Wages:     %s\n", types.USD(d.Wages)))
		sb.WriteString(fmt.Sprintf("Withheld:  %s", types.USD(d.FederalTaxWithheld)))
	case *types.Form1099INT:
		sb.WriteString(fmt.Sprintf("Payer:     %s\n", d.PayerName))
		sb.WriteString(fmt.Sprintf("Interest:  %s", types.USD(d.InterestIncome)))
	case *types.Form1099NEC:
		sb.WriteString(fmt.Sprintf("Payer:         %s\n", d.PayerName))
		sb.WriteString(fmt.Sprintf("Compensation:  %s", types.USD(d.NonemployeeCompensation)))
	}

	p.printBox("EXTRACTED DOCUMENT", sb.String())
}

// PrintIncomeTotals outputs the aggregated income categories and document counts.
func (p *Printer) PrintIncomeTotals(totals types.IncomeTotals) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Wages:         %s\n", types.USD(totals.TotalWages)))
	sb.WriteString(fmt.Sprintf("Interest:      %s\n", types.USD(totals.TotalInterest)))
	sb.WriteString(fmt.Sprintf("Compensation:  %s\n", types.USD(totals.TotalNonemployeeCompensation)))
	sb.WriteString(fmt.Sprintf("Total income:  %s\n", types.USD(totals.TotalIncome)))
	sb.WriteString(fmt.Sprintf("Withheld:      %s\n", types.USD(totals.TotalFederalWithheld)))

	if len(totals.DocumentCounts) > 0 {
		sb.WriteString("\nDocuments:\n")
		for _, docType := range types.SupportedDocumentTypes {
			if count := totals.DocumentCounts[docType]; count > 0 {
				sb.WriteString(fmt.Sprintf("  • %s x%d\n", docType, count))
			}
		}
	}

	p.printBox("AGGREGATED INCOME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTaxResult outputs the bracket-by-bracket tax computation.
func (p *Printer) PrintTaxResult(result types.TaxResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Taxable income:  %s\n", types.USD(result.TaxableIncome)))
	sb.WriteString(fmt.Sprintf("Total tax:       %s\n", types.USD(result.TotalTax)))
	sb.WriteString(fmt.Sprintf("Effective rate:  %s%%\n", result.EffectiveRate.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Marginal rate:   %s%%\n", result.MarginalRate.StringFixed(0)))

	if len(result.BracketDetails) > 0 {
		sb.WriteString("\nBrackets:\n")
		count := min(len(result.BracketDetails), maxBracketsToShow)
		for i := 0; i < count; i++ {
			detail := result.BracketDetails[i]
			sb.WriteString(fmt.Sprintf("  %s @ %s: %s\n",
				detail.Range, detail.Rate, types.USD(detail.TaxInBracket)))
		}
		if len(result.BracketDetails) > maxBracketsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.BracketDetails)-maxBracketsToShow))
		}
	}

	p.printBox("TAX CALCULATION", strings.TrimSuffix(sb.String(), "\n"))
}
