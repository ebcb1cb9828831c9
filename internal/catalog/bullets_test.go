package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeBullets(t *testing.T) {
	entry := Entry{
		ID:           "music",
		Name:         "Music Data Visualizer",
		Description:  "Interactive visualization of audio data",
		Languages:    []string{"Python", "JavaScript"},
		SkillsGained: []string{"Audio Analysis", "Data Visualization", "ML Fundamentals"},
		Steps:        []Step{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}},
	}

	bullets := ResumeBullets(entry)

	require.Len(t, bullets, 3)
	assert.Equal(t, "Developed Music Data Visualizer: interactive visualization of audio data using Python and JavaScript", bullets[0])
	assert.Equal(t, "Implemented Audio Analysis and Data Visualization through 4-phase development process", bullets[1])
	assert.Equal(t, "Built end-to-end solution demonstrating ml fundamentals with modern development practices", bullets[2])
}

func TestResumeBullets_SingleLanguageAndSkill(t *testing.T) {
	entry := Entry{
		ID:           "solo",
		Name:         "Solo",
		Description:  "One thing",
		Languages:    []string{"Go"},
		SkillsGained: []string{"Testing"},
		Steps:        []Step{{Title: "only"}},
	}

	bullets := ResumeBullets(entry)

	require.Len(t, bullets, 3)
	assert.Equal(t, "Developed Solo: one thing using Go", bullets[0])
	assert.Equal(t, "Implemented Testing through 1-phase development process", bullets[1])
	assert.Equal(t, "Built end-to-end solution demonstrating testing with modern development practices", bullets[2])
}

func TestResumeBullets_Deterministic(t *testing.T) {
	entries, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	first := ResumeBullets(entries[0])
	second := ResumeBullets(entries[0])
	assert.Equal(t, first, second)
}
