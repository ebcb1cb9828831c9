// Package skills builds the skill-growth graph: the candidate's current
// skills plus the skills each catalog project would add, linked by the
// project languages they already know.
package skills

import "github.com/jonathan/intersync-backend/internal/catalog"

// Display limits for the graph payload.
const (
	maxNodes = 10
	maxEdges = 15

	currentSkillBaseLevel = 70
	currentSkillLevelStep = 5
	potentialSkillLevel   = 30
)

// Node is a skill vertex in the graph.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Level int    `json:"level"`
	Type  string `json:"type"`
}

// Edge links a known language to a skill a project would teach.
type Edge struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Project string `json:"project"`
}

// Graph is the skill graph returned to callers.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Build constructs the graph for the given current skills against the
// catalog. Pure function of its inputs.
func Build(currentSkills []string, entries []catalog.Entry) Graph {
	known := make(map[string]bool, len(currentSkills))
	for _, skill := range currentSkills {
		known[skill] = true
	}

	nodes := make([]Node, 0, len(currentSkills))
	for i, skill := range currentSkills {
		nodes = append(nodes, Node{
			ID:    skill,
			Label: skill,
			Level: currentSkillBaseLevel + i*currentSkillLevelStep,
			Type:  "current",
		})
	}

	edges := make([]Edge, 0)
	for _, entry := range entries {
		for _, gained := range entry.SkillsGained {
			if known[gained] {
				continue
			}

			nodes = append(nodes, Node{
				ID:    gained,
				Label: gained,
				Level: potentialSkillLevel,
				Type:  "potential",
			})

			for _, lang := range entry.Languages {
				if known[lang] {
					edges = append(edges, Edge{
						From:    lang,
						To:      gained,
						Project: entry.Name,
					})
				}
			}
		}
	}

	if len(nodes) > maxNodes {
		nodes = nodes[:maxNodes]
	}
	if len(edges) > maxEdges {
		edges = edges[:maxEdges]
	}

	return Graph{Nodes: nodes, Edges: edges}
}
