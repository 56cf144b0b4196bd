// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/italia-opensource/awesome-italia-opensource/internal/pipeline"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResults outputs one line per rendered domain.
func (p *Printer) PrintResults(title string, results []pipeline.Result) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	total := 0
	for _, r := range results {
		status := "checked"
		if r.Written {
			status = "written"
		}
		sb.WriteString(fmt.Sprintf("%-11s %4d entries  %-7s %s\n",
			r.Domain, r.Entries, status, r.Duration.Round(time.Millisecond)))
		total += r.Entries
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d entries in %d lists", total, len(results)))

	p.printBox(title, sb.String())
}

// PrintProgress outputs a single progress event.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(event pipeline.ProgressEvent) {
	fmt.Fprintf(p.out, "[%s] %-9s %s\n", event.Domain, event.Step, event.Message)
}
