package extraction

import (
	"fmt"

	"github.com/jonathan/tax-return-agent/internal/types"
)

// EmptyDocumentError indicates upstream text extraction yielded no text.
// Fatal for the document; classification is not attempted.
type EmptyDocumentError struct {
	Name string
}

func (e *EmptyDocumentError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("document %q contains no extractable text", e.Name)
	}
	return "document contains no extractable text"
}

// UnsupportedDocumentTypeError indicates classification stayed inconclusive
// after both the pattern and model attempts. Fatal for the document only.
type UnsupportedDocumentTypeError struct {
	Detected types.DocumentType
}

func (e *UnsupportedDocumentTypeError) Error() string {
	return fmt.Sprintf("unsupported document type: %s", e.Detected)
}

// ExternalServiceError wraps a model call failure, timeout, or malformed
// response. It is always recovered locally by falling back to the pattern
// result and never surfaces as a request failure.
type ExternalServiceError struct {
	Operation string
	Cause     error
}

func (e *ExternalServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model call failed during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("model call failed during %s", e.Operation)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}
