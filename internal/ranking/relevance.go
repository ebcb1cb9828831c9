// Package ranking scores catalog project templates against a candidate
// profile. Scoring is pure: identical inputs always produce identical output.
package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/intersync-backend/internal/catalog"
)

// Scoring constants. Scores start at the base and never drop below it.
const (
	baseScore     = 50
	interestBonus = 45
	languageBonus = 10
	maxScore      = 100
)

// ScoredEntry is a catalog entry with its computed relevance in [50,100].
// Derived per request, never persisted.
type ScoredEntry struct {
	catalog.Entry
	Relevance int `json:"relevance"`
}

// Score computes the relevance of a catalog entry for a candidate.
//
// The interest and language checks are case-insensitive substring tests
// against the joined interest/skill strings, not token-set matches. Substring
// collisions ("art" inside "start") are an accepted property of the
// algorithm, kept deliberately.
func Score(interests, skills []string, entry catalog.Entry) int {
	score := baseScore

	joinedInterests := strings.ToLower(strings.Join(interests, " "))
	if strings.Contains(joinedInterests, strings.ToLower(entry.ID)) {
		score += interestBonus
	}

	joinedSkills := strings.ToLower(strings.Join(skills, " "))
	for _, lang := range entry.Languages {
		if strings.Contains(joinedSkills, strings.ToLower(lang)) {
			score += languageBonus
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// Rank scores every entry and returns them sorted by descending relevance.
// The sort is stable: ties keep the catalog's original order.
func Rank(interests, skills []string, entries []catalog.Entry) []ScoredEntry {
	scored := make([]ScoredEntry, 0, len(entries))
	for _, entry := range entries {
		scored = append(scored, ScoredEntry{
			Entry:     entry,
			Relevance: Score(interests, skills, entry),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Relevance > scored[j].Relevance
	})

	return scored
}
