//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// CandidateProfile is the immutable candidate input to the tailoring
// pipeline. It is never mutated after construction.
type CandidateProfile struct {
	Name       string              `json:"name" validate:"required,min=1"`
	Email      string              `json:"email,omitempty" validate:"omitempty,email"`
	Links      []string            `json:"links,omitempty"`
	Interests  []string            `json:"interests,omitempty"`
	Skills     []string            `json:"skills,omitempty"`
	Projects   []Project           `json:"projects,omitempty" validate:"dive"`
	Experience []CandidateJobEntry `json:"experience,omitempty"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Project is a candidate-supplied project.
type Project struct {
	Name        string   `json:"name" validate:"required,min=1"`
	Description string   `json:"description,omitempty"`
	Tech        []string `json:"tech,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// CandidateJobEntry is a candidate-supplied work-experience item.
type CandidateJobEntry struct {
	Title      string   `json:"title"`
	Company    string   `json:"company,omitempty"`
	Dates      string   `json:"dates,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}
