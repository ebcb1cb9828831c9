package tailoring

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/intersync-backend/internal/prompts"
	"github.com/jonathan/intersync-backend/internal/schemas"
	"github.com/jonathan/intersync-backend/internal/types"
)

// payload is the instruction document sent to the generator. Field order is
// fixed; the payload is fully determined by (target role, job description,
// candidate).
type payload struct {
	Instructions   []string               `json:"instructions"`
	TargetRole     string                 `json:"target_role"`
	JobDescription string                 `json:"job_description"`
	Candidate      types.CandidateProfile `json:"candidate"`
	OutputSchema   json.RawMessage        `json:"output_schema"`
}

// BuildPayload serializes the tailoring instruction payload. The output
// schema block is the same schema document the response parser validates
// against, so the contract sent and the contract accepted cannot drift.
func BuildPayload(targetRole, jobDescription string, candidate types.CandidateProfile) (string, error) {
	instructions, err := prompts.GetList("tailor.json", "instructions")
	if err != nil {
		return "", fmt.Errorf("failed to load tailoring instructions: %w", err)
	}

	p := payload{
		Instructions:   instructions,
		TargetRole:     targetRole,
		JobDescription: jobDescription,
		Candidate:      candidate,
		OutputSchema:   json.RawMessage(schemas.ResumeRecordSchemaJSON()),
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to serialize payload: %w", err)
	}
	return string(data), nil
}
