package finflow

import (
	"fmt"
	"strings"
)

// Lang is the language used for user-facing texts.
type Lang string

const (
	Spanish Lang = "es"
	English Lang = "en"
)

// DefaultLang is the language of the dashboard when none is configured.
const DefaultLang = Spanish

// Langs lists the supported languages.
var Langs = []Lang{Spanish, English}

// ParseLang reads a language code like "es" or "en-GB".
func ParseLang(s string) (Lang, error) {
	code, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "-")
	for _, l := range Langs {
		if string(l) == code {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q, want one of %v", s, Langs)
}
