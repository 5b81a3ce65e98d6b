package advisor

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/finflow"
)

//go:embed prompts/*.tmpl
var prompts embed.FS

// Prompt renders the instruction sent to the model for req, in lang.
func Prompt(req Request, lang finflow.Lang) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("cannot encode advice request: %w", err)
	}

	name := "prompts/" + string(lang) + ".tmpl"
	if _, err := prompts.Open(name); err != nil {
		name = "prompts/" + string(finflow.DefaultLang) + ".tmpl"
	}
	tmpl, err := template.ParseFS(prompts, name)
	if err != nil {
		return "", fmt.Errorf("cannot parse prompt template %q: %w", name, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, struct{ Data string }{string(data)}); err != nil {
		return "", fmt.Errorf("cannot execute prompt template %q: %w", name, err)
	}
	return b.String(), nil
}
