// Package renderer renders the dashboard as markdown, from text/template
// partials embedded in the binary.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// Section is one part of the dashboard that can be rendered alone.
type Section string

const (
	SectionSummary    Section = "cards"
	SectionAdvice     Section = "advice"
	SectionHistory    Section = "history"
	SectionHoldings   Section = "holdings"
	SectionCategories Section = "categories"
	SectionActivity   Section = "activity"
)

// funcs are the helpers available to every template.
var funcs = template.FuncMap{"cell": cell}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// cell makes s safe inside a markdown table cell: a pipe would open a new
// column and a line break would end the row.
func cell(s string) string { return cellReplacer.Replace(s) }

// RenderDashboard renders the full dashboard to a markdown string.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_title":      "dashboard_title.md",
		"dashboard_cards":      "dashboard_cards.md",
		"dashboard_advice":     "dashboard_advice.md",
		"dashboard_history":    "dashboard_history.md",
		"dashboard_holdings":   "dashboard_holdings.md",
		"dashboard_categories": "dashboard_categories.md",
		"dashboard_activity":   "dashboard_activity.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// RenderSection renders a single section of the dashboard.
func RenderSection(d *Dashboard, s Section) string {
	name := "dashboard_" + string(s)
	return renderTemplate(name, name+".md", nil, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
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
