// Package markdown builds markdown documents out of headers, paragraphs and tables.
package markdown

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	md "github.com/nao1215/markdown"
)

type blockKind int

const (
	headerBlock blockKind = iota
	paragraphBlock
	tableBlock
)

// Document is an ordered list of markdown blocks
type Document struct {
	blocks []*Block
}

// Block is one top-level element of a document
type Block struct {
	kind  blockKind
	level int
	text  string
	table md.TableSet
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

func (d *Document) add(b *Block) *Block {
	d.blocks = append(d.blocks, b)
	return b
}

// AddHeader appends an ATX header. Levels outside 1..6 are clamped.
func (d *Document) AddHeader(text string, level int) *Block {
	return d.add(&Block{kind: headerBlock, level: max(1, min(level, 6)), text: strings.TrimSpace(text)})
}

// AddParagraph appends a paragraph. Each line is trimmed and blank lines are
// dropped so indented literals never turn into code blocks.
func (d *Document) AddParagraph(text string) *Block {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return d.add(&Block{kind: paragraphBlock, text: strings.Join(kept, "\n")})
}

// InsertLink turns the first occurrence of target in a paragraph into a link.
func (b *Block) InsertLink(target, url string) *Block {
	if b.kind == paragraphBlock {
		b.text = strings.Replace(b.text, target, Link(target, url), 1)
	}
	return b
}

// String returns the markdown of the block.
func (b *Block) String() string {
	switch b.kind {
	case headerBlock:
		return headerOf(md.NewMarkdown(io.Discard), b.level, b.text).String()
	case tableBlock:
		return renderTable(b.table)
	default:
		return b.text
	}
}

func headerOf(m *md.Markdown, level int, text string) *md.Markdown {
	switch level {
	case 1:
		return m.H1(text)
	case 2:
		return m.H2(text)
	case 3:
		return m.H3(text)
	case 4:
		return m.H4(text)
	case 5:
		return m.H5(text)
	default:
		return m.H6(text)
	}
}

// AddTable appends a table. Every row must have as many cells as the header.
func (d *Document) AddTable(header []string, rows [][]string) error {
	if len(header) == 0 {
		return fmt.Errorf("table header is empty")
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("table row %d has %d cells, header has %d", i, len(row), len(header))
		}
	}

	d.add(&Block{kind: tableBlock, table: md.TableSet{Header: header, Rows: rows}})
	return nil
}

// renderTable writes cells as given, one space of padding, with the
// separator as wide as each header and at least three dashes.
func renderTable(t md.TableSet) string {
	var sb strings.Builder
	writeRow(&sb, t.Header)

	separator := make([]string, len(t.Header))
	for i, h := range t.Header {
		separator[i] = strings.Repeat("-", max(3, len(h)))
	}
	sb.WriteString("\n")
	writeRow(&sb, separator)

	for _, row := range t.Rows {
		sb.WriteString("\n")
		writeRow(&sb, row)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(EscapeCell(cell))
		sb.WriteString(" |")
	}
}

// build feeds the blocks to a markdown writer targeting w, a blank line
// between blocks and a newline at the end.
func (d *Document) build(w io.Writer) *md.Markdown {
	m := md.NewMarkdown(w)
	for i, b := range d.blocks {
		if i > 0 {
			m.PlainText("")
		}
		switch b.kind {
		case headerBlock:
			headerOf(m, b.level, b.text)
		case tableBlock:
			m.PlainText(renderTable(b.table))
		default:
			m.PlainText(b.text)
		}
	}
	return m.PlainText("")
}

// String renders the document, blocks separated by a blank line.
func (d *Document) String() string {
	return d.build(io.Discard).String()
}

// WriteFile renders the document to path, replacing any existing file.
func (d *Document) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := d.build(f).Build(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// Link renders text as an inline link, or plain text when url is empty.
func Link(text, url string) string {
	if url == "" {
		return text
	}
	return md.Link(text, url)
}

// EscapeCell keeps cell content on one line and escapes column separators.
func EscapeCell(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "|", `\|`)
}
