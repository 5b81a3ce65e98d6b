package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}</body>
</html>
`))

// HTML converts a markdown document into a standalone HTML page.
// Tables are rendered using the GitHub Flavored Markdown extension.
func HTML(lang, title, markdown string) ([]byte, error) {
	var body bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("cannot convert markdown to html: %w", err)
	}

	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Lang, Title string
		Body        template.HTML
	}{lang, title, template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("cannot render html page: %w", err)
	}
	return out.Bytes(), nil
}
