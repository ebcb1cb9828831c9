// Package types provides type definitions for structured data used throughout the intersync system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StringList is a []string that tolerates malformed JSON shapes. Generated
// resume data sometimes carries a bare string (or number) where a list is
// expected; decoding coerces scalars to a one-element list instead of failing.
type StringList []string

// UnmarshalJSON decodes either a JSON array or a scalar value.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	if trimmed[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := coerceString(item); ok {
				out = append(out, s)
			}
		}
		*l = out
		return nil
	}

	if s, ok := coerceString(trimmed); ok {
		*l = []string{s}
		return nil
	}
	*l = nil
	return nil
}

// coerceString converts a raw JSON value to its display string.
// Strings decode normally; numbers and booleans keep their literal text.
// Objects and arrays are dropped (no sensible single-line rendering).
func coerceString(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[':
		return "", false
	default:
		return strings.TrimSpace(string(trimmed)), true
	}
}
