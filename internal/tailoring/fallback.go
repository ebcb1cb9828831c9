package tailoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/intersync-backend/internal/types"
)

const (
	maxSummarySkills  = 6
	maxProjectBullets = 3
)

// BuildFallback builds a complete ResumeRecord without any external calls.
// It is total: any candidate input produces a schema-conformant record.
//
// The fallback cannot know which job requirements the candidate lacks, so
// ats_keywords_missing stays empty here.
func BuildFallback(targetRole, jobDescription string, candidate types.CandidateProfile) types.ResumeRecord {
	summarySkills := candidate.Skills
	if len(summarySkills) > maxSummarySkills {
		summarySkills = summarySkills[:maxSummarySkills]
	}
	summary := fmt.Sprintf("%s candidate with skills in %s.", targetRole, strings.Join(summarySkills, ", "))

	projects := make([]types.ResumeProject, 0, len(candidate.Projects))
	for _, p := range candidate.Projects {
		projects = append(projects, types.ResumeProject{
			Name:    p.Name,
			Bullets: fallbackBullets(p),
		})
	}

	experience := make([]types.ExperienceEntry, 0, len(candidate.Experience))
	for _, e := range candidate.Experience {
		experience = append(experience, types.ExperienceEntry{
			Title:   e.Title,
			Company: e.Company,
			Dates:   e.Dates,
			Bullets: types.StringList(e.Highlights),
		})
	}

	return types.ResumeRecord{
		Header: types.Header{
			Name:  candidate.Name,
			Email: candidate.Email,
			Links: types.StringList(candidate.Links),
		},
		Headline: targetRole,
		Summary:  types.StringList{summary},
		Skills: types.SkillSections{
			{Name: "Technical Skills", Items: types.StringList(candidate.Skills)},
		},
		Projects:           projects,
		Experience:         experience,
		ATSKeywordsMatched: matchKeywords(candidate.Skills, jobDescription),
	}
}

// fallbackBullets returns a project's highlights truncated to three, or a
// one-element list holding its description when it has no highlights.
func fallbackBullets(p types.Project) types.StringList {
	bullets := p.Highlights
	if len(bullets) == 0 {
		bullets = []string{p.Description}
	}
	if len(bullets) > maxProjectBullets {
		bullets = bullets[:maxProjectBullets]
	}
	return types.StringList(bullets)
}

// matchKeywords returns the skills whose lowercased form occurs as a
// substring of the lowercased job description, in their original order.
// Substring matching can produce false positives; that behavior is kept on
// purpose to stay consistent with the relevance scorer.
func matchKeywords(skills []string, jobDescription string) types.StringList {
	jobText := strings.ToLower(jobDescription)
	matched := types.StringList{}
	for _, skill := range skills {
		if skill == "" {
			continue
		}
		if strings.Contains(jobText, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}
	return matched
}
