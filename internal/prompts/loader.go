// Package prompts provides a loader for externalized LLM prompt data.
// Prompt files are JSON documents embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// cache stores parsed prompt files to avoid repeated JSON parsing
var (
	cache   = make(map[string]map[string]json.RawMessage)
	cacheMu sync.RWMutex
)

// GetList retrieves a string-list prompt value by filename and key.
// The filename should not include a path (e.g. "tailor.json").
func GetList(filename, key string) ([]string, error) {
	entries, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	raw, exists := entries[key]
	if !exists {
		return nil, fmt.Errorf("prompt key %q not found in %s", key, filename)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("prompt key %q in %s is not a string list: %w", key, filename, err)
	}
	return list, nil
}

// MustGetList retrieves a string-list prompt value, panicking if not found.
// Use this for prompts that are required at initialization time.
func MustGetList(filename, key string) []string {
	list, err := GetList(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return list
}

// loadFile loads and caches a prompt file.
func loadFile(filename string) (map[string]json.RawMessage, error) {
	cacheMu.RLock()
	if entries, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return entries, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("prompt file %q not found: %w", filename, err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %q: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = entries
	cacheMu.Unlock()

	return entries, nil
}
