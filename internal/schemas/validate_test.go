package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeRecord_MinimalValid(t *testing.T) {
	err := ValidateResumeRecord(`{"summary": ["x"], "skills": {}}`)
	assert.NoError(t, err)
}

func TestValidateResumeRecord_LenientListShapes(t *testing.T) {
	// Scalar strings where lists are expected are allowed; the decoder
	// coerces them.
	err := ValidateResumeRecord(`{"summary": "one line", "skills": {"Languages": "Go"}}`)
	assert.NoError(t, err)
}

func TestValidateResumeRecord_MissingRequired(t *testing.T) {
	err := ValidateResumeRecord(`{"headline": "Engineer"}`)

	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateResumeRecord_SkillsMustBeObject(t *testing.T) {
	err := ValidateResumeRecord(`{"summary": ["x"], "skills": ["not", "an", "object"]}`)
	assert.Error(t, err)
}

func TestValidateResumeRecord_ProjectRequiresName(t *testing.T) {
	err := ValidateResumeRecord(`{"summary": ["x"], "skills": {}, "projects": [{"bullets": ["b"]}]}`)
	assert.Error(t, err)
}

func TestValidateResumeRecord_NotJSON(t *testing.T) {
	err := ValidateResumeRecord("plain prose")
	assert.Error(t, err)
}

func TestResumeRecordSchemaJSON_IsValidJSON(t *testing.T) {
	var schema map[string]any
	require.NoError(t, json.Unmarshal(ResumeRecordSchemaJSON(), &schema))
	assert.Equal(t, "ResumeRecord", schema["title"])
}
