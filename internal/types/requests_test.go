package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBuildRequest() BuildResumeRequest {
	return BuildResumeRequest{
		TargetRole:     "Backend Engineer",
		JobDescription: "We build Go services",
		Candidate:      CandidateProfile{Name: "Ada"},
	}
}

func TestBuildResumeRequest_Valid(t *testing.T) {
	req := validBuildRequest()
	assert.NoError(t, req.Validate())
}

func TestBuildResumeRequest_MissingTargetRole(t *testing.T) {
	req := validBuildRequest()
	req.TargetRole = ""
	assert.Error(t, req.Validate())
}

func TestBuildResumeRequest_URLInsteadOfText(t *testing.T) {
	req := validBuildRequest()
	req.JobDescription = ""
	req.JobDescriptionURL = "https://example.com/job"
	assert.NoError(t, req.Validate())
}

func TestBuildResumeRequest_NeitherJobSourceProvided(t *testing.T) {
	req := validBuildRequest()
	req.JobDescription = ""
	assert.Error(t, req.Validate())
}

func TestBuildResumeRequest_InvalidURL(t *testing.T) {
	req := validBuildRequest()
	req.JobDescriptionURL = "not a url"
	assert.Error(t, req.Validate())
}

func TestCandidateProfile_Valid(t *testing.T) {
	profile := CandidateProfile{Name: "Ada", Email: "ada@example.com"}
	assert.NoError(t, profile.Validate())
}

func TestCandidateProfile_MissingName(t *testing.T) {
	profile := CandidateProfile{Email: "ada@example.com"}
	assert.Error(t, profile.Validate())
}

func TestCandidateProfile_BadEmail(t *testing.T) {
	profile := CandidateProfile{Name: "Ada", Email: "not-an-email"}
	assert.Error(t, profile.Validate())
}

func TestCandidateProfile_ProjectRequiresName(t *testing.T) {
	profile := CandidateProfile{
		Name:     "Ada",
		Projects: []Project{{Description: "no name"}},
	}
	assert.Error(t, profile.Validate())
}

func TestSkillGraphRequest_RequiresSkills(t *testing.T) {
	req := SkillGraphRequest{}
	assert.Error(t, req.Validate())

	req.Skills = []string{"Go"}
	require.NoError(t, req.Validate())
}
