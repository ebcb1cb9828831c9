package tailoring

import (
	"encoding/json"

	"github.com/jonathan/intersync-backend/internal/llm"
	"github.com/jonathan/intersync-backend/internal/schemas"
	"github.com/jonathan/intersync-backend/internal/types"
)

// ParseResumeRecord parses raw generated text into a ResumeRecord. The text
// may be wrapped in a fenced code block, optionally tagged "json"; the fence
// is stripped before parsing. Any parse or shape failure is reported as a
// SchemaViolationError.
func ParseResumeRecord(raw string) (types.ResumeRecord, error) {
	text := llm.StripFence(raw)

	if err := schemas.ValidateResumeRecord(text); err != nil {
		return types.ResumeRecord{}, &SchemaViolationError{
			Message: "response does not match the resume record schema",
			Cause:   err,
		}
	}

	var record types.ResumeRecord
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return types.ResumeRecord{}, &SchemaViolationError{
			Message: "failed to decode resume record",
			Cause:   err,
		}
	}

	return record, nil
}
