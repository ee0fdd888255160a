package extraction

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/tax-return-agent/internal/llm"
	"github.com/jonathan/tax-return-agent/internal/prompts"
	"github.com/jonathan/tax-return-agent/internal/types"
)

// classifyTextLimit caps how much document text is sent with the
// classification prompt. The form marker appears near the top of every form,
// so the head of the text is enough.
const classifyTextLimit = 1000

// classifyMaxTokens bounds the classification response; the answer is a
// single form label.
const classifyMaxTokens = 50

// typeMarkers are the literal form markers tried in order; the optional
// hyphen tolerates both "W-2" and "W2" spellings.
var typeMarkers = []struct {
	re      *regexp.Regexp
	docType types.DocumentType
}{
	{regexp.MustCompile(`(?i)Form\s+W-?2`), types.DocTypeW2},
	{regexp.MustCompile(`(?i)Form\s+1099-?INT`), types.DocType1099INT},
	{regexp.MustCompile(`(?i)Form\s+1099-?NEC`), types.DocType1099NEC},
}

// classifyByPattern applies the ordered marker tests; first match wins.
func classifyByPattern(text string) types.DocumentType {
	for _, marker := range typeMarkers {
		if marker.re.MatchString(text) {
			return marker.docType
		}
	}
	return types.DocTypeUnknown
}

// truncateAtRune cuts s to at most limit bytes without splitting a
// multi-byte rune at the boundary.
func truncateAtRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// classifyByModel asks the model for the form type and validates the answer
// by substring-matching against the supported type list. The response is
// never trusted verbatim.
func (e *Extractor) classifyByModel(ctx context.Context, text string) (types.DocumentType, error) {
	head := truncateAtRune(text, classifyTextLimit)

	template := prompts.MustGet("classify-document")
	prompt := prompts.Format(template, map[string]string{"DocumentText": head})

	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	response, err := e.Client.GenerateContent(ctx, prompt, llm.TierLite, classifyMaxTokens)
	if err != nil {
		return types.DocTypeUnknown, &ExternalServiceError{Operation: "document classification", Cause: err}
	}

	response = strings.TrimSpace(response)
	for _, docType := range types.SupportedDocumentTypes {
		if strings.Contains(response, string(docType)) {
			return docType, nil
		}
	}

	return types.DocTypeUnknown, nil
}

// classify resolves the document type, pattern tier first, model tier second.
func (e *Extractor) classify(ctx context.Context, text string) types.DocumentType {
	if docType := classifyByPattern(text); docType != types.DocTypeUnknown {
		return docType
	}

	if e.Client == nil {
		return types.DocTypeUnknown
	}

	docType, err := e.classifyByModel(ctx, text)
	if err != nil {
		return types.DocTypeUnknown
	}
	return docType
}
