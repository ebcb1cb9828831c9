//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// BuildResumeRequest is the request body for the resume build endpoints.
// Exactly one of JobDescription / JobDescriptionURL must be provided.
type BuildResumeRequest struct {
	TargetRole        string           `json:"target_role" validate:"required,min=1"`
	JobDescription    string           `json:"job_description" validate:"required_without=JobDescriptionURL"`
	JobDescriptionURL string           `json:"job_description_url,omitempty" validate:"omitempty,http_url"`
	Candidate         CandidateProfile `json:"candidate" validate:"required"`
	DisableAI         bool             `json:"disable_ai,omitempty"`
}

// SuggestProjectsRequest is the request body for catalog project suggestions.
type SuggestProjectsRequest struct {
	Interests []string `json:"interests,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// SkillGraphRequest is the request body for the skill graph endpoint.
type SkillGraphRequest struct {
	Skills []string `json:"skills" validate:"required,min=1"`
}

// Validate validates the BuildResumeRequest using the validator.
func (r *BuildResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SkillGraphRequest using the validator.
func (r *SkillGraphRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
