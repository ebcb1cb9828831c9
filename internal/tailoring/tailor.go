package tailoring

import (
	"context"
	"time"

	"github.com/jonathan/intersync-backend/internal/llm"
	"github.com/jonathan/intersync-backend/internal/types"
)

// defaultTimeout bounds the remote generation call. The AI path is
// best-effort; a hung upstream must not hold a request open indefinitely.
const defaultTimeout = 60 * time.Second

// Tailor produces a tailored ResumeRecord for a target role and job
// description.
type Tailor interface {
	Tailor(ctx context.Context, targetRole, jobDescription string, candidate types.CandidateProfile) (types.ResumeRecord, error)
}

// LLMTailor implements Tailor against an llm.Client.
type LLMTailor struct {
	client  llm.Client
	tier    llm.ModelTier
	timeout time.Duration
}

// NewLLMTailor creates a tailor backed by the given client. A nil client is
// allowed; Tailor then fails with UnavailableError so callers fall back.
func NewLLMTailor(client llm.Client) *LLMTailor {
	return &LLMTailor{
		client:  client,
		tier:    llm.TierStandard,
		timeout: defaultTimeout,
	}
}

// WithTimeout returns a copy of the tailor using the given call timeout.
func (t *LLMTailor) WithTimeout(timeout time.Duration) *LLMTailor {
	copied := *t
	copied.timeout = timeout
	return &copied
}

// Tailor builds the instruction payload, calls the generator, and parses the
// response. Failure kinds:
//   - *UnavailableError: no client configured
//   - *UpstreamError: the remote call failed
//   - *SchemaViolationError: the response is not a valid ResumeRecord
func (t *LLMTailor) Tailor(ctx context.Context, targetRole, jobDescription string, candidate types.CandidateProfile) (types.ResumeRecord, error) {
	if t == nil || t.client == nil {
		return types.ResumeRecord{}, &UnavailableError{Reason: "no provider credential configured"}
	}

	prompt, err := BuildPayload(targetRole, jobDescription, candidate)
	if err != nil {
		return types.ResumeRecord{}, &UpstreamError{Message: "failed to build payload", Cause: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	raw, err := t.client.GenerateContent(callCtx, prompt, t.tier)
	if err != nil {
		return types.ResumeRecord{}, &UpstreamError{Message: "generation call failed", Cause: err}
	}

	return ParseResumeRecord(raw)
}
