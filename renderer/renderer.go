// Package renderer renders reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates is the templates folder.
var templates, _ = fs.Sub(templatesFS, "templates")

// RenderEstimate renders an estimate to a markdown string.
func RenderEstimate(e *Estimate) string {
	partials := map[string]string{
		"estimate_summary":  "estimate_summary.md",
		"estimate_projects": "estimate_projects.md",
	}
	return renderTemplate("estimate", "estimate.md", partials, e)
}

// RenderHistory renders the ledger to a markdown string.
func RenderHistory(h *History) string {
	return renderTemplate("history", "history.md", nil, h)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
