// Package aggregation sums extracted document fields into per-category income
// totals. Aggregation is pure summation: commutative, associative, and free
// of external calls, so permuting the input documents never changes totals.
package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/jonathan/tax-return-agent/internal/types"
)

// Aggregate accumulates the relevant numeric fields of each document into the
// matching category totals and counts documents per type. Every supported type
// gets a count entry, zero when absent, so consumers always see the full
// breakdown. Documents of unrecognized type are skipped silently; the
// extractor already filters them.
//
// Totals are rounded to cents once at the end, half away from zero
// (decimal.Round). The rounding mode matters: these totals feed directly into
// printed currency amounts.
func Aggregate(docs []types.TaxDocument) types.IncomeTotals {
	var wages, interest, compensation, withheld decimal.Decimal
	counts := make(map[types.DocumentType]int, len(types.SupportedDocumentTypes))
	for _, docType := range types.SupportedDocumentTypes {
		counts[docType] = 0
	}

	for _, doc := range docs {
		switch d := doc.(type) {
		case *types.W2:
			wages = wages.Add(d.Wages)
			withheld = withheld.Add(d.FederalTaxWithheld)
			counts[types.DocTypeW2]++
		case *types.Form1099INT:
			interest = interest.Add(d.InterestIncome)
			counts[types.DocType1099INT]++
		case *types.Form1099NEC:
			compensation = compensation.Add(d.NonemployeeCompensation)
			counts[types.DocType1099NEC]++
		}
	}

	total := wages.Add(interest).Add(compensation)

	return types.IncomeTotals{
		TotalIncome:                  total.Round(2),
		TotalWages:                   wages.Round(2),
		TotalInterest:                interest.Round(2),
		TotalNonemployeeCompensation: compensation.Round(2),
		TotalFederalWithheld:         withheld.Round(2),
		DocumentCounts:               counts,
	}
}
