// Package preview renders generated markdown for the terminal.
package preview

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWidth is the word wrap width used when none is given.
const DefaultWidth = 120

// Options configures the terminal renderer
type Options struct {
	Width int    // word wrap width, DefaultWidth when zero
	Style string // glamour style name or path, detected from the terminal when empty
}

// Render converts markdown into styled terminal output.
func Render(markdown string, opts Options) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	style := glamour.WithAutoStyle()
	if opts.Style != "" {
		style = glamour.WithStylePath(opts.Style)
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
