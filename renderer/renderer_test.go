package renderer

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/etnz/finflow"
)

//go:embed testdata/*.md
var testcasesGoldenFS embed.FS

var fixPartials = flag.Bool("fix-partials", false, "if true, update failing partial test case .md files with the received output")

// seedDashboard is the dashboard of the demonstration book.
func seedDashboard() *Dashboard {
	return NewDashboard(finflow.Seed("EUR"), finflow.SeedHistory("EUR"), finflow.Spanish)
}

func TestFixPartialsIsOff(t *testing.T) {
	if *fixPartials {
		t.Fatal("-fix-partials is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

func TestTemplatePartials(t *testing.T) {
	testCases := []struct {
		name       string
		goldenFile string
		data       func() *Dashboard
	}{
		{name: "dashboard_title", goldenFile: "testdata/dashboard_title.md", data: seedDashboard},
		{name: "dashboard_cards", goldenFile: "testdata/dashboard_cards.md", data: seedDashboard},
		{name: "dashboard_advice", goldenFile: "testdata/dashboard_advice.md", data: seedDashboard},
		{name: "dashboard_history", goldenFile: "testdata/dashboard_history.md", data: seedDashboard},
		{name: "dashboard_holdings", goldenFile: "testdata/dashboard_holdings.md", data: seedDashboard},
		{name: "dashboard_categories", goldenFile: "testdata/dashboard_categories.md", data: seedDashboard},
		{name: "dashboard_activity", goldenFile: "testdata/dashboard_activity.md", data: seedDashboard},
	}

	// --- Coverage Check ---
	set := parseTemplates(t)
	tested := make(map[string]struct{})
	for _, tc := range testCases {
		tested[tc.name+".md"] = struct{}{}
	}
	for _, partialFile := range set.partials {
		if _, ok := tested[partialFile]; !ok {
			t.Errorf("untested template partial found: %s. Please add a test case to TestTemplatePartials.", partialFile)
		}
	}
	for _, f := range set.orphanGoldens {
		t.Errorf("orphan golden file found: %s. It does not match any known template.", f)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			templateFile := tc.name + ".md"
			templateContent, err := fs.ReadFile(templates, templateFile)
			if err != nil {
				t.Fatalf("failed to read template file %q: %v", templateFile, err)
			}

			tmpl, err := template.New(tc.name).Funcs(funcs).Parse(string(templateContent))
			if err != nil {
				t.Fatalf("failed to parse template %q: %v", templateFile, err)
			}

			var rendered bytes.Buffer
			if err := tmpl.Execute(&rendered, tc.data()); err != nil {
				t.Fatalf("failed to execute template %q: %v", templateFile, err)
			}

			compareGolden(t, tc.name, tc.goldenFile, rendered.String())
		})
	}
}

func TestReportRendering(t *testing.T) {
	testCases := []struct {
		name       string
		goldenFile string
		render     func() string
	}{
		{
			name:       "dashboard",
			goldenFile: "testdata/dashboard_assembly.md",
			render:     func() string { return RenderDashboard(seedDashboard()) },
		},
	}

	set := parseTemplates(t)
	tested := make(map[string]struct{})
	for _, tc := range testCases {
		tested[tc.name+".md"] = struct{}{}
	}
	for _, assemblyFile := range set.assemblies {
		if _, ok := tested[assemblyFile]; !ok {
			t.Errorf("untested assembly template found: %s. Please add a test case to TestReportRendering.", assemblyFile)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			compareGolden(t, tc.name, tc.goldenFile, tc.render())
		})
	}
}

func TestRenderSection(t *testing.T) {
	d := seedDashboard()
	for _, s := range []Section{SectionSummary, SectionAdvice, SectionHistory, SectionHoldings, SectionCategories, SectionActivity} {
		t.Run(string(s), func(t *testing.T) {
			golden, err := fs.ReadFile(testcasesGoldenFS, "testdata/dashboard_"+string(s)+".md")
			if err != nil {
				t.Fatalf("failed to read golden file: %v", err)
			}
			if got := RenderSection(d, s); got != string(golden) {
				t.Errorf("RenderSection(%q) mismatch:\n%s", s, createDiff(string(golden), got))
			}
		})
	}
}

func TestAdviceStates(t *testing.T) {
	tests := []struct {
		name   string
		advice Advice
		want   string
	}{
		{"placeholder", Advice{Placeholder: "ask"}, "_ask_\n"},
		{"loading", Advice{Loading: true, LoadingText: "wait", Text: "old"}, "_wait_\n"},
		{"text", Advice{Text: "### Consejo\n\n1. Ahorra", Placeholder: "ask"}, "### Consejo\n\n1. Ahorra\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := seedDashboard()
			d.Advice = tt.advice
			got := RenderSection(d, SectionAdvice)
			want := "## Asistente Financiero Gemini\n\n" + tt.want
			if got != want {
				t.Errorf("advice section = %q, want %q", got, want)
			}
		})
	}
}

func TestEnglishLabels(t *testing.T) {
	d := NewDashboard(finflow.Seed("USD"), finflow.SeedHistory("USD"), finflow.English)
	got := RenderDashboard(d)
	for _, want := range []string{
		"## Summary",
		"| Total Balance | $12,755.00 | ▲ +12.5% |",
		"## My Stocks",
		"| 2023-10-03 | Alquiler | Vivienda | -$1,200.00 | Completed |",
		"_Ask for advice",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("english dashboard does not contain %q:\n%s", want, got)
		}
	}
}

// pipedDashboard is the demonstration dashboard with user text that would
// break a markdown table if written raw.
func pipedDashboard() *Dashboard {
	d := seedDashboard()
	d.Activity[0].Description = "Cena | amigos"
	d.Activity[0].Category = "Ocio\r\nfin"
	d.Holdings[0].Name = "Apple | Inc."
	d.Expenses[0].Category = "Casa|Piso"
	return d
}

func TestTableCellsEscaped(t *testing.T) {
	d := pipedDashboard()
	for _, tc := range []struct {
		section Section
		want    string
	}{
		{SectionActivity, "| 2023-10-01 | Cena \\| amigos | Ocio fin | +€3,500.00 | Completado |"},
		{SectionHoldings, "| AAPL | Apple \\| Inc. |"},
		{SectionCategories, "| Casa\\|Piso |"},
	} {
		got := RenderSection(d, tc.section)
		if !strings.Contains(got, tc.want) {
			t.Errorf("section %s does not contain %q:\n%s", tc.section, tc.want, got)
		}
	}
}

func TestEmptyBook(t *testing.T) {
	d := NewDashboard(finflow.NewBook("EUR"), nil, finflow.Spanish)
	got := RenderDashboard(d)
	if strings.Contains(got, "error") {
		t.Fatalf("empty dashboard failed to render:\n%s", got)
	}
	if !strings.Contains(got, "| Balance Total | €0.00 | ▲ +12.5% |") {
		t.Errorf("empty dashboard should show zero totals:\n%s", got)
	}
	if !strings.Contains(got, "Tu Portafolio -, Mercado -.") {
		t.Errorf("empty history should have no performance:\n%s", got)
	}
}

func compareGolden(t *testing.T, name, goldenFile, got string) {
	t.Helper()
	goldenData, err := fs.ReadFile(testcasesGoldenFS, goldenFile)
	if err != nil {
		if os.IsNotExist(err) && *fixPartials {
			// Do not return the received output otherwise the golden never gets fixed.
			goldenData = []byte{}
		} else {
			t.Fatalf("failed to read golden file %q: %v", goldenFile, err)
		}
	}
	want := string(goldenData)
	if got == want {
		return
	}
	if *fixPartials {
		if err := os.MkdirAll(filepath.Dir(goldenFile), 0755); err != nil {
			t.Fatalf("failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
			t.Fatalf("failed to write updated golden file %q: %v", goldenFile, err)
		}
		t.Logf("updated golden file %s", goldenFile)
		return
	}
	t.Errorf("output mismatch for %s:\n--- want\n+++ got\n%s", name, createDiff(want, got))
}

func createDiff(want, got string) string {
	// A simple diff-like representation for clearer test failures.
	return fmt.Sprintf("-%s\n+%s", strings.ReplaceAll(want, "\n", "\n-"), strings.ReplaceAll(got, "\n", "\n+"))
}

// templateSet describes the discovered templates from the filesystem.
type templateSet struct {
	// assemblies are the templates that include others (e.g., "dashboard.md").
	assemblies []string
	// partials are the templates included by an assembly (e.g., "dashboard_title.md").
	partials []string
	// orphanGoldens are golden files that don't match any known template.
	orphanGoldens []string
}

// parseTemplates scans the embedded filesystem for .md files and categorizes them
// as either assembly templates or partial templates.
func parseTemplates(t *testing.T) templateSet {
	t.Helper()

	templateFiles, err := templates.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}

	var set templateSet
	var names []string
	for _, file := range templateFiles {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}
		names = append(names, file.Name())
	}

	known := make(map[string]struct{})
	for _, name1 := range names {
		base1 := strings.TrimSuffix(name1, ".md")
		known[base1] = struct{}{}
		isPartial := false
		for _, name2 := range names {
			if name1 != name2 && strings.HasPrefix(base1, strings.TrimSuffix(name2, ".md")+"_") {
				isPartial = true
				break
			}
		}
		if isPartial {
			set.partials = append(set.partials, name1)
		} else {
			set.assemblies = append(set.assemblies, name1)
		}
	}

	goldens, _ := testcasesGoldenFS.ReadDir("testdata")
	for _, f := range goldens {
		base := strings.TrimSuffix(f.Name(), ".md")
		// Assembly golden files have a `_assembly` suffix.
		if _, ok := known[strings.TrimSuffix(base, "_assembly")]; !ok {
			set.orphanGoldens = append(set.orphanGoldens, f.Name())
		}
	}
	return set
}
