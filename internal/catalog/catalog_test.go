package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	entries, err := Default()

	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	assert.Contains(t, ids, "music")
	assert.Contains(t, ids, "gaming")
	assert.Contains(t, ids, "robotics")
	assert.Contains(t, ids, "photography")
	assert.Contains(t, ids, "finance")
}

func TestDefault_EntriesAreComplete(t *testing.T) {
	entries, err := Default()

	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEmpty(t, entry.ID)
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.Languages, "entry %s has no languages", entry.ID)
		assert.NotEmpty(t, entry.SkillsGained, "entry %s has no skills", entry.ID)
		assert.NotEmpty(t, entry.Steps, "entry %s has no steps", entry.ID)
	}
}

func TestDefault_StableAcrossCalls(t *testing.T) {
	first, err := Default()
	require.NoError(t, err)
	second, err := Default()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[{"id": "custom", "name": "Custom Project", "languages": ["Go"], "skills_gained": ["Testing"], "difficulty": "Beginner", "steps": []}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := LoadFile(path)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "custom", entries[0].ID)
	assert.Equal(t, "Custom Project", entries[0].Name)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFile_RejectsEntryWithoutID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "No ID"}]`), 0o644))

	_, err := LoadFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no id")
}

func TestByID(t *testing.T) {
	entries := []Entry{{ID: "a"}, {ID: "b"}}

	found := ByID(entries, "b")
	require.NotNil(t, found)
	assert.Equal(t, "b", found.ID)

	assert.Nil(t, ByID(entries, "missing"))
}
