// Package tailoring turns a candidate profile and a job description into a
// tailored ResumeRecord, via an LLM when one is configured and via the
// deterministic fallback builder otherwise.
package tailoring

import "fmt"

// UnavailableError indicates the AI path cannot be attempted because no
// provider credential is configured.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("ai tailoring unavailable: %s", e.Reason)
	}
	return "ai tailoring unavailable"
}

// UpstreamError indicates the remote generation call failed.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// SchemaViolationError indicates the model's response could not be parsed
// into a ResumeRecord.
type SchemaViolationError struct {
	Message string
	Cause   error
}

func (e *SchemaViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema violation: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema violation: %s", e.Message)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Cause
}
