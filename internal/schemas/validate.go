// Package schemas provides JSON Schema validation for structured LLM output.
// The schema that validates responses is the same document sent to the
// generator inside the prompt, so the two cannot drift apart.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_record.schema.json
var resumeRecordSchema []byte

// ResumeRecordSchemaJSON returns the raw JSON Schema for a ResumeRecord.
// Callers embed it verbatim in the generation prompt.
func ResumeRecordSchemaJSON() []byte {
	return resumeRecordSchema
}

// ValidationError represents a schema validation failure with field paths
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
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResumeRecord checks a JSON document against the ResumeRecord
// schema. Returns nil when valid, a *ValidationError when the shape is
// wrong, or a plain error when the document is not even parseable JSON.
func ValidateResumeRecord(document string) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeRecordSchema)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("document is not valid JSON: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
