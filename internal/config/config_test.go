package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"target_role": "Backend Engineer", "out": "out.tex", "port": 9090}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", cfg.TargetRole)
	assert.Equal(t, "out.tex", cfg.Out)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "{broken")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_JobAndURLMutuallyExclusive(t *testing.T) {
	cfg := Config{Job: "job.txt", JobURL: "https://example.com/job"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_MissingCandidateFile(t *testing.T) {
	cfg := Config{Candidate: filepath.Join(t.TempDir(), "nope.json")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidate file not found")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg.Port = 8080
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{TargetRole: "Engineer"}
	merged := cfg.MergeWithDefaults(Config{
		TargetRole: "ignored",
		Out:        "resume.tex",
		Port:       8080,
	})

	assert.Equal(t, "Engineer", merged.TargetRole)
	assert.Equal(t, "resume.tex", merged.Out)
	assert.Equal(t, 8080, merged.Port)
}
