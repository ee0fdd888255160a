package extraction

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jonathan/tax-return-agent/internal/llm"
	"github.com/jonathan/tax-return-agent/internal/prompts"
	"github.com/jonathan/tax-return-agent/internal/schemas"
	"github.com/jonathan/tax-return-agent/internal/types"
)

// Response token limits per document type; the W-2 carries the largest field set.
const (
	w2FallbackMaxTokens  = 500
	intFallbackMaxTokens = 300
	necFallbackMaxTokens = 300
)

// modelDocumentJSON runs the constrained extraction prompt for docType and
// returns the validated JSON object from the response. ok is false on call
// failure, timeout, missing object, or schema rejection; callers keep the
// pattern result in that case.
func (e *Extractor) modelDocumentJSON(ctx context.Context, text string, docType types.DocumentType, promptKey string, maxTokens int32) (string, bool) {
	if e.Client == nil {
		return "", false
	}

	template := prompts.MustGet(promptKey)
	prompt := prompts.Format(template, map[string]string{"DocumentText": text})

	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	response, err := e.Client.GenerateJSON(ctx, prompt, llm.TierStandard, maxTokens)
	if err != nil {
		return "", false
	}

	object := llm.FirstJSONObject(llm.CleanJSONBlock(response))
	if object == "" {
		return "", false
	}

	if err := schemas.ValidateDocument(docType, object); err != nil {
		return "", false
	}

	return object, true
}

// clampAmount maps negative model values to zero: a negative monetary field
// is an extraction error, not a valid tax value.
func clampAmount(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func orNotFound(name string) string {
	if name == "" {
		return types.NotFound
	}
	return name
}

func (e *Extractor) fallbackW2(ctx context.Context, text string, base *types.W2) *types.W2 {
	object, ok := e.modelDocumentJSON(ctx, text, types.DocTypeW2, "extract-w2", w2FallbackMaxTokens)
	if !ok {
		return base
	}

	var doc types.W2
	if err := json.Unmarshal([]byte(object), &doc); err != nil {
		return base
	}

	doc.Wages = clampAmount(doc.Wages)
	doc.FederalTaxWithheld = clampAmount(doc.FederalTaxWithheld)
	doc.SocialSecurityWages = clampAmount(doc.SocialSecurityWages)
	doc.MedicareWages = clampAmount(doc.MedicareWages)
	doc.EmployerName = orNotFound(doc.EmployerName)
	doc.EmployeeName = orNotFound(doc.EmployeeName)
	return &doc
}

func (e *Extractor) fallback1099INT(ctx context.Context, text string, base *types.Form1099INT) *types.Form1099INT {
	object, ok := e.modelDocumentJSON(ctx, text, types.DocType1099INT, "extract-1099-int", intFallbackMaxTokens)
	if !ok {
		return base
	}

	var doc types.Form1099INT
	if err := json.Unmarshal([]byte(object), &doc); err != nil {
		return base
	}

	doc.InterestIncome = clampAmount(doc.InterestIncome)
	doc.EarlyWithdrawalPenalty = clampAmount(doc.EarlyWithdrawalPenalty)
	doc.PayerName = orNotFound(doc.PayerName)
	doc.RecipientName = orNotFound(doc.RecipientName)
	return &doc
}

func (e *Extractor) fallback1099NEC(ctx context.Context, text string, base *types.Form1099NEC) *types.Form1099NEC {
	object, ok := e.modelDocumentJSON(ctx, text, types.DocType1099NEC, "extract-1099-nec", necFallbackMaxTokens)
	if !ok {
		return base
	}

	var doc types.Form1099NEC
	if err := json.Unmarshal([]byte(object), &doc); err != nil {
		return base
	}

	doc.NonemployeeCompensation = clampAmount(doc.NonemployeeCompensation)
	doc.PayerName = orNotFound(doc.PayerName)
	doc.RecipientName = orNotFound(doc.RecipientName)
	return &doc
}
