// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/intersync-backend/internal/ranking"
	"github.com/jonathan/intersync-backend/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoredProjects outputs the ranked catalog suggestions.
func (p *Printer) PrintScoredProjects(scored []ranking.ScoredEntry) {
	if len(scored) == 0 {
		return
	}

	var sb strings.Builder
	shown := scored
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for _, entry := range shown {
		sb.WriteString(fmt.Sprintf("%3d  %s\n", entry.Relevance, entry.Name))
	}
	if len(scored) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(scored)-maxItemsToShow))
	}

	p.printBox("Suggested Projects", strings.TrimRight(sb.String(), "\n"))
}

// PrintResumeRecord outputs a human-readable summary of the tailored record.
func (p *Printer) PrintResumeRecord(record types.ResumeRecord, usedAI bool) {
	var sb strings.Builder

	source := "fallback builder"
	if usedAI {
		source = "ai tailoring"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.Header.Name))
	sb.WriteString(fmt.Sprintf("Headline: %s\n", record.Headline))
	sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	sb.WriteString("\n")

	for _, bucket := range record.Skills {
		items := bucket.Items
		if len(items) > maxItemsToShow {
			items = items[:maxItemsToShow]
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", bucket.Name, strings.Join(items, ", ")))
	}

	sb.WriteString(fmt.Sprintf("\nProjects:   %d\n", len(record.Projects)))
	sb.WriteString(fmt.Sprintf("Experience: %d\n", len(record.Experience)))
	if len(record.ATSKeywordsMatched) > 0 {
		sb.WriteString(fmt.Sprintf("ATS match:  %s\n", strings.Join(record.ATSKeywordsMatched, ", ")))
	}

	p.printBox("Tailored Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintWarning outputs a highlighted warning line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarning(warning string) {
	if warning == "" {
		return
	}
	fmt.Fprintf(p.out, "! %s\n", warning)
}
