// Package extraction implements the field extractor: document-type
// classification and per-type field extraction from raw document text.
//
// Extraction is two-tier. The deterministic tier applies ordered,
// independently testable pattern rules and always produces a usable result.
// The generative tier runs only when the pattern tier clearly failed, and its
// output is schema-validated before acceptance; on any model failure the
// pattern result stands. Pattern results, even when mostly defaults, are
// always a safe fallback.
package extraction

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/tax-return-agent/internal/llm"
	"github.com/jonathan/tax-return-agent/internal/types"
)

// DefaultModelTimeout bounds each outbound model call. On timeout the
// extractor falls back to the deterministic pattern result.
const DefaultModelTimeout = 30 * time.Second

// Extractor classifies raw document text and extracts typed fields from it.
// A nil Client disables the generative fallback tier; the pattern tier alone
// still produces results for well-formed documents.
type Extractor struct {
	Client  llm.Client
	Timeout time.Duration
}

// New returns an Extractor with the default model-call timeout. client may be
// nil to run pattern-only.
func New(client llm.Client) *Extractor {
	return &Extractor{Client: client, Timeout: DefaultModelTimeout}
}

// Extract classifies rawText and extracts the field set for the resolved
// document type. It returns EmptyDocumentError for blank input and
// UnsupportedDocumentTypeError when classification stays inconclusive; every
// other failure degrades to best-effort defaults instead of propagating.
func (e *Extractor) Extract(ctx context.Context, rawText string) (types.TaxDocument, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &EmptyDocumentError{}
	}

	docType := e.classify(ctx, rawText)

	switch docType {
	case types.DocTypeW2:
		return e.extractW2(ctx, rawText), nil
	case types.DocType1099INT:
		return e.extract1099INT(ctx, rawText), nil
	case types.DocType1099NEC:
		return e.extract1099NEC(ctx, rawText), nil
	default:
		return nil, &UnsupportedDocumentTypeError{Detected: docType}
	}
}

// extractW2 runs the pattern pass and, when no entity-defining signal was
// found (zero wages and no employer name), the model fallback.
func (e *Extractor) extractW2(ctx context.Context, text string) *types.W2 {
	doc := parseW2(text)
	if doc.Wages.IsPositive() || doc.EmployerName != types.NotFound {
		return doc
	}
	return e.fallbackW2(ctx, text, doc)
}

func (e *Extractor) extract1099INT(ctx context.Context, text string) *types.Form1099INT {
	doc := parse1099INT(text)
	if doc.InterestIncome.IsPositive() || doc.PayerName != types.NotFound {
		return doc
	}
	return e.fallback1099INT(ctx, text, doc)
}

func (e *Extractor) extract1099NEC(ctx context.Context, text string) *types.Form1099NEC {
	doc := parse1099NEC(text)
	if doc.NonemployeeCompensation.IsPositive() || doc.PayerName != types.NotFound {
		return doc
	}
	return e.fallback1099NEC(ctx, text, doc)
}
