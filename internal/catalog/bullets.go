package catalog

import (
	"fmt"
	"strings"
)

// ResumeBullets generates the three deterministic resume bullets for a
// template entry. Output depends only on the entry data.
func ResumeBullets(entry Entry) []string {
	languages := strings.Join(entry.Languages, " and ")

	topSkills := entry.SkillsGained
	if len(topSkills) > 2 {
		topSkills = topSkills[:2]
	}

	capstone := ""
	if len(entry.SkillsGained) > 0 {
		capstone = strings.ToLower(entry.SkillsGained[len(entry.SkillsGained)-1])
	}

	return []string{
		fmt.Sprintf("Developed %s: %s using %s", entry.Name, strings.ToLower(entry.Description), languages),
		fmt.Sprintf("Implemented %s through %d-phase development process", strings.Join(topSkills, " and "), len(entry.Steps)),
		fmt.Sprintf("Built end-to-end solution demonstrating %s with modern development practices", capstone),
	}
}
