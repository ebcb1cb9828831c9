package tailoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/intersync-backend/internal/types"
)

func TestBuildFallback_CompleteRecord(t *testing.T) {
	candidate := types.CandidateProfile{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Links:  []string{"github.com/ada"},
		Skills: []string{"Go", "SQL"},
	}

	record := BuildFallback("Backend Engineer", "We need Go and SQL experience", candidate)

	assert.Equal(t, "Ada Lovelace", record.Header.Name)
	assert.Equal(t, "ada@example.com", record.Header.Email)
	assert.Equal(t, types.StringList{"github.com/ada"}, record.Header.Links)
	assert.Equal(t, "Backend Engineer", record.Headline)
	require.Len(t, record.Summary, 1)
	assert.Equal(t, "Backend Engineer candidate with skills in Go, SQL.", record.Summary[0])
	assert.Equal(t, types.StringList{"Go", "SQL"}, record.Skills.Get("Technical Skills"))
}

func TestBuildFallback_SummaryTruncatesToSixSkills(t *testing.T) {
	candidate := types.CandidateProfile{
		Name:   "Ada",
		Skills: []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7"},
	}

	record := BuildFallback("Engineer", "", candidate)

	require.Len(t, record.Summary, 1)
	assert.Contains(t, record.Summary[0], "s6")
	assert.NotContains(t, record.Summary[0], "s7")
	// The skills section itself keeps the full list.
	assert.Len(t, record.Skills.Get("Technical Skills"), 7)
}

func TestBuildFallback_ProjectBulletsCappedAtThree(t *testing.T) {
	candidate := types.CandidateProfile{
		Name: "Ada",
		Projects: []types.Project{
			{
				Name:       "Synth",
				Highlights: []string{"h1", "h2", "h3", "h4", "h5"},
			},
		},
	}

	record := BuildFallback("Engineer", "", candidate)

	require.Len(t, record.Projects, 1)
	assert.Equal(t, types.StringList{"h1", "h2", "h3"}, record.Projects[0].Bullets)
}

func TestBuildFallback_ProjectWithoutHighlightsUsesDescription(t *testing.T) {
	candidate := types.CandidateProfile{
		Name: "Ada",
		Projects: []types.Project{
			{Name: "Synth", Description: "A modular synthesizer"},
		},
	}

	record := BuildFallback("Engineer", "", candidate)

	require.Len(t, record.Projects, 1)
	assert.Equal(t, types.StringList{"A modular synthesizer"}, record.Projects[0].Bullets)
}

func TestBuildFallback_ExperienceMapped(t *testing.T) {
	candidate := types.CandidateProfile{
		Name: "Ada",
		Experience: []types.CandidateJobEntry{
			{
				Title:      "Engineer",
				Company:    "Acme",
				Dates:      "2020-2023",
				Highlights: []string{"Built the thing"},
			},
		},
	}

	record := BuildFallback("Engineer", "", candidate)

	require.Len(t, record.Experience, 1)
	assert.Equal(t, "Engineer", record.Experience[0].Title)
	assert.Equal(t, "Acme", record.Experience[0].Company)
	assert.Equal(t, "2020-2023", record.Experience[0].Dates)
	assert.Equal(t, types.StringList{"Built the thing"}, record.Experience[0].Bullets)
}

func TestBuildFallback_MatchedKeywords(t *testing.T) {
	candidate := types.CandidateProfile{
		Name:   "Ada",
		Skills: []string{"SQL", "Docker", "React"},
	}

	record := BuildFallback("Engineer", "Looking for sql and docker expertise", candidate)

	assert.Equal(t, types.StringList{"SQL", "Docker"}, record.ATSKeywordsMatched)
	assert.Empty(t, record.ATSKeywordsMissing)
}

func TestBuildFallback_EmptySkillStringSkippedInMatching(t *testing.T) {
	candidate := types.CandidateProfile{
		Name:   "Ada",
		Skills: []string{"", "Go"},
	}

	record := BuildFallback("Engineer", "Go shop", candidate)

	assert.Equal(t, types.StringList{"Go"}, record.ATSKeywordsMatched)
}

func TestBuildFallback_TotalOnEmptyCandidate(t *testing.T) {
	record := BuildFallback("Engineer", "", types.CandidateProfile{})

	require.Len(t, record.Summary, 1)
	require.Len(t, record.Skills, 1)
	assert.Equal(t, "Technical Skills", record.Skills[0].Name)
	assert.Empty(t, record.Projects)
	assert.Empty(t, record.Experience)
}
