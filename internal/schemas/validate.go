// Package schemas validates generative-model JSON output against embedded
// JSON Schemas before any of it is accepted into an extraction result. Model
// output is never trusted verbatim; anything that fails validation here is
// discarded in favor of the deterministic pattern result.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/tax-return-agent/internal/types"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// schemaFileFor maps a document type to its embedded schema file.
var schemaFileFor = map[types.DocumentType]string{
	types.DocTypeW2:      "w2.schema.json",
	types.DocType1099INT: "1099_int.schema.json",
	types.DocType1099NEC: "1099_nec.schema.json",
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateDocument validates JSON content against the embedded schema for the
// given document type. A nil return means the content carries the exact field
// set expected for that type, with the right JSON types.
func ValidateDocument(docType types.DocumentType, jsonContent string) error {
	filename, ok := schemaFileFor[docType]
	if !ok {
		return fmt.Errorf("no schema for document type %q", docType)
	}

	schemaContent, err := schemaFiles.ReadFile(filename)
	if err != nil {
		return &SchemaLoadError{
			Path:    filename,
			Message: "embedded schema missing",
			Cause:   err,
		}
	}

	return ValidateJSONString(string(schemaContent), jsonContent)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
