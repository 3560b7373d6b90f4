// Package renderer builds markdown reports for portfolios, analyses and
// market activity, and renders them for the terminal.
package renderer

import (
	"github.com/charmbracelet/glamour"
)

// Terminal renders a markdown report with terminal styling. When styling
// fails (no TTY, unknown terminal) the raw markdown is returned, which is
// still readable.
func Terminal(markdown string) string {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		return markdown
	}
	return out
}
