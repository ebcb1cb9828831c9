package rendering

import (
	"strings"

	"github.com/jonathan/intersync-backend/internal/types"
)

const preamble = `\documentclass[letterpaper,11pt]{article}
\usepackage[margin=0.75in]{geometry}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\setlist[itemize]{leftmargin=*,nosep}
`

// defaultName keeps the header non-empty when the record carries no name.
const defaultName = "Your Name"

// Render converts a ResumeRecord into LaTeX source. It is total: missing or
// empty fields degrade to placeholder content, never to an error, and the
// output is structurally valid for any input. Sections always appear in the
// same order: header, summary, skills, experience, projects.
func Render(record types.ResumeRecord) string {
	var d doc

	d.raw(preamble)
	d.raw("\\begin{document}\n")

	renderHeader(&d, record)
	renderSummary(&d, record.Summary)
	renderSkills(&d, record.Skills)
	renderExperience(&d, record.Experience)
	renderProjects(&d, record.Projects)

	d.raw("\\end{document}\n")
	return d.String()
}

// doc accumulates output lines. User text enters only through the escaping
// helpers below, which keeps the escaping invariant in one place.
type doc struct {
	b strings.Builder
}

// raw appends markup literal text. Never pass user-controlled strings here.
func (d *doc) raw(s string) {
	d.b.WriteString(s)
}

// section opens a new unnumbered section with a literal title.
func (d *doc) section(title string) {
	d.b.WriteString("\\section*{")
	d.b.WriteString(title)
	d.b.WriteString("}\n")
}

// itemize writes a bulleted list of escaped items, filtering blank ones.
// An empty list after filtering writes nothing: no empty itemize wrapper.
// Reports whether anything was written.
func (d *doc) itemize(items []string) bool {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		escaped := strings.TrimSpace(Escape(item))
		if escaped != "" {
			kept = append(kept, escaped)
		}
	}
	if len(kept) == 0 {
		return false
	}

	d.raw("\\begin{itemize}\\itemsep 0pt\n")
	for _, item := range kept {
		d.raw("  \\item ")
		d.raw(item)
		d.raw("\n")
	}
	d.raw("\\end{itemize}\n")
	return true
}

// placeholder writes the single-space body used for sections with no
// content. An empty section body can break the compiled document, so the
// heading is always followed by something.
func (d *doc) placeholder() {
	d.raw(" \n")
}

func (d *doc) String() string {
	return d.b.String()
}

func renderHeader(d *doc, record types.ResumeRecord) {
	name := record.Header.Name
	if strings.TrimSpace(name) == "" {
		name = defaultName
	}

	contactParts := make([]string, 0, len(record.Header.Links)+1)
	if record.Header.Email != "" {
		contactParts = append(contactParts, record.Header.Email)
	}
	for _, link := range record.Header.Links {
		if link != "" {
			contactParts = append(contactParts, link)
		}
	}

	d.raw("\\begin{center}\n")
	d.raw("{\\LARGE \\textbf{")
	d.raw(Escape(name))
	d.raw("}}\\\\\n")
	d.raw(Escape(strings.Join(contactParts, " | ")))
	d.raw("\\\\\n")
	d.raw("\\textit{")
	d.raw(Escape(record.Headline))
	d.raw("}\n")
	d.raw("\\end{center}\n")
}

func renderSummary(d *doc, summary types.StringList) {
	d.section("Summary")
	if !d.itemize(summary) {
		d.placeholder()
	}
}

func renderSkills(d *doc, skills types.SkillSections) {
	d.section("Skills")

	wrote := false
	for _, bucket := range skills {
		items := make([]string, 0, len(bucket.Items))
		for _, item := range bucket.Items {
			escaped := strings.TrimSpace(Escape(item))
			if escaped != "" {
				items = append(items, escaped)
			}
		}
		if len(items) == 0 {
			continue
		}

		d.raw("\\textbf{")
		d.raw(Escape(bucket.Name))
		d.raw(":} ")
		d.raw(strings.Join(items, ", "))
		d.raw("\\\\\n")
		wrote = true
	}

	if !wrote {
		d.placeholder()
	}
}

func renderExperience(d *doc, entries []types.ExperienceEntry) {
	d.section("Experience")
	if len(entries) == 0 {
		d.placeholder()
		return
	}

	for _, entry := range entries {
		title := entry.Title
		if strings.TrimSpace(title) == "" {
			title = "Experience"
		}

		d.raw("\\textbf{")
		d.raw(Escape(title))
		d.raw("}")
		if entry.Company != "" {
			d.raw(" --- ")
			d.raw(Escape(entry.Company))
		}
		if entry.Dates != "" {
			d.raw(" \\hfill ")
			d.raw(Escape(entry.Dates))
		}
		d.raw("\n\n")
		d.itemize(entry.Bullets)
		d.raw("\\vspace{2mm}\n")
	}
}

func renderProjects(d *doc, projects []types.ResumeProject) {
	d.section("Projects")
	if len(projects) == 0 {
		d.placeholder()
		return
	}

	for _, project := range projects {
		name := project.Name
		if strings.TrimSpace(name) == "" {
			name = "Project"
		}

		d.raw("\\textbf{")
		d.raw(Escape(name))
		d.raw("}\n\n")
		d.itemize(project.Bullets)
		d.raw("\\vspace{2mm}\n")
	}
}
