// Package catalog provides the static project-template catalog used for
// relevance scoring and project suggestions. The catalog is read-only after
// load and safe for unsynchronized concurrent reads.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

//go:embed templates.json
var catalogFiles embed.FS

// Entry is a pre-authored project template. Entries are authored data, not
// generated at runtime.
type Entry struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Languages       []string `json:"languages"`
	SkillsGained    []string `json:"skills_gained"`
	Difficulty      string   `json:"difficulty"`
	Steps           []Step   `json:"steps"`
	Neuroplasticity string   `json:"neuroplasticity,omitempty"`
}

// Step is one phase of a project template.
type Step struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Resources   []string `json:"resources,omitempty"`
}

var (
	defaultOnce    sync.Once
	defaultEntries []Entry
	defaultErr     error
)

// Default returns the embedded catalog. The slice is shared; callers must
// not modify it.
func Default() ([]Entry, error) {
	defaultOnce.Do(func() {
		data, err := catalogFiles.ReadFile("templates.json")
		if err != nil {
			defaultErr = fmt.Errorf("failed to read embedded catalog: %w", err)
			return
		}
		defaultEntries, defaultErr = parse(data)
	})
	return defaultEntries, defaultErr
}

// LoadFile loads a catalog from a JSON file, overriding the embedded one.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	entries, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return entries, nil
}

func parse(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	for i, entry := range entries {
		if entry.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
	}
	return entries, nil
}

// ByID returns the entry with the given id, or nil when absent.
func ByID(entries []Entry, id string) *Entry {
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i]
		}
	}
	return nil
}
