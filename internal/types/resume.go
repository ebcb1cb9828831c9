//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResumeRecord is the canonical intermediate resume representation. Both the
// AI tailoring path and the fallback builder produce this shape, and the
// renderer accepts nothing else.
type ResumeRecord struct {
	Header             Header            `json:"header"`
	Headline           string            `json:"headline,omitempty"`
	Summary            StringList        `json:"summary"`
	Skills             SkillSections     `json:"skills"`
	Projects           []ResumeProject   `json:"projects,omitempty"`
	Experience         []ExperienceEntry `json:"experience,omitempty"`
	ATSKeywordsMatched StringList        `json:"ats_keywords_matched,omitempty"`
	ATSKeywordsMissing StringList        `json:"ats_keywords_missing,omitempty"`
}

// Header holds the contact block of a resume.
type Header struct {
	Name  string     `json:"name"`
	Email string     `json:"email,omitempty"`
	Links StringList `json:"links,omitempty"`
}

// ResumeProject is a project entry on the tailored resume.
type ResumeProject struct {
	Name    string     `json:"name"`
	Bullets StringList `json:"bullets"`
}

// ExperienceEntry is a work-experience entry on the tailored resume.
type ExperienceEntry struct {
	Title   string     `json:"title"`
	Company string     `json:"company,omitempty"`
	Dates   string     `json:"dates,omitempty"`
	Bullets StringList `json:"bullets,omitempty"`
}

// SkillBucket is one named skills section, e.g. "Technical Skills".
type SkillBucket struct {
	Name  string
	Items StringList
}

// SkillSections maps section name to skill items. It is a slice, not a map,
// because insertion order is the display order and Go maps do not keep it.
type SkillSections []SkillBucket

// Get returns the items for a named bucket, or nil when absent.
func (s SkillSections) Get(name string) StringList {
	for _, bucket := range s {
		if bucket.Name == name {
			return bucket.Items
		}
	}
	return nil
}

// MarshalJSON renders the sections as a JSON object in insertion order.
func (s SkillSections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, bucket := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(bucket.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(bucket.Items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object token by token so that key order
// survives the round trip.
func (s *SkillSections) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}
	if trimmed[0] != '{' {
		// Anything that is not an object degrades to no skill sections.
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil { // consume '{'
		return err
	}

	sections := SkillSections{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var items StringList
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		sections = append(sections, SkillBucket{Name: key, Items: items})
	}

	*s = sections
	return nil
}
