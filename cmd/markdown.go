package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal. When the output is not a
// terminal the markdown is printed as is.
func printMarkdown(md string) {
	if !isTerminal(out) {
		fmt.Fprint(out, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(out, md)
		return
	}
	rendered, err := r.Render(md)
	if err != nil {
		fmt.Fprint(out, md)
		return
	}
	fmt.Fprint(out, rendered)
}

// markdownPrinter adapts printMarkdown for writers other than out.
func markdownPrinter(w io.Writer, md string) {
	old := out
	out = w
	defer func() { out = old }()
	printMarkdown(md)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
