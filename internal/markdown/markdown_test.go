package markdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_String(t *testing.T) {
	doc := New()
	doc.AddHeader("Title", 1)
	doc.AddParagraph(`
		first line
		second line
	`)
	doc.AddHeader("Section", 3)
	require.NoError(t, doc.AddTable([]string{"Name", "Tags"}, [][]string{
		{Link("Acme", "https://acme.it"), "b2b, saas"},
		{"Beta", ""},
	}))

	want := `# Title

first line
second line

### Section

| Name | Tags |
| ---- | ---- |
| [Acme](https://acme.it) | b2b, saas |
| Beta |  |
`
	if diff := cmp.Diff(want, doc.String()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestAddHeader_ClampsLevel(t *testing.T) {
	doc := New()
	assert.Equal(t, "# low", doc.AddHeader("low", 0).String())
	assert.Equal(t, "###### high", doc.AddHeader("high", 9).String())
}

func TestInsertLink_FirstOccurrenceOnly(t *testing.T) {
	doc := New()
	p := doc.AddParagraph("read the guidelines, then the guidelines again").
		InsertLink("guidelines", "https://example.com/g")

	assert.Equal(t, "read the [guidelines](https://example.com/g), then the guidelines again", p.String())
}

func TestInsertLink_MissingTarget(t *testing.T) {
	doc := New()
	p := doc.AddParagraph("nothing to link").InsertLink("absent", "https://example.com")
	assert.Equal(t, "nothing to link", p.String())
}

func TestAddTable_HeaderOnly(t *testing.T) {
	doc := New()
	require.NoError(t, doc.AddTable([]string{"Name", "Type"}, nil))
	assert.Equal(t, "| Name | Type |\n| ---- | ---- |\n", doc.String())
}

func TestAddTable_RowWidthMismatch(t *testing.T) {
	doc := New()
	err := doc.AddTable([]string{"A", "B"}, [][]string{{"only one"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0 has 1 cells")
}

func TestAddTable_EmptyHeader(t *testing.T) {
	assert.Error(t, New().AddTable(nil, nil))
}

func TestEscapeCell(t *testing.T) {
	assert.Equal(t, `a \| b`, EscapeCell("a | b"))
	assert.Equal(t, "one two", EscapeCell("one\ntwo"))
	assert.Equal(t, "one two", EscapeCell("one\r\ntwo"))
}

func TestLink(t *testing.T) {
	assert.Equal(t, "[x](https://x.io)", Link("x", "https://x.io"))
	assert.Equal(t, "x", Link("x", ""))
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "README")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0644))

	doc := New()
	doc.AddHeader("Fresh", 1)
	require.NoError(t, doc.WriteFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Fresh\n", string(content))
}

func TestWriteFile_MatchesString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README")

	doc := New()
	doc.AddHeader("List", 4)
	doc.AddParagraph("see the guidelines").InsertLink("guidelines", "https://example.com")
	require.NoError(t, doc.AddTable([]string{"Name"}, [][]string{{"a | b"}}))
	require.NoError(t, doc.WriteFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(doc.String(), string(content)); diff != "" {
		t.Errorf("written file mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "#### List\n\nsee the [guidelines](https://example.com)\n\n| Name |\n| ---- |\n| a \\| b |\n", string(content))
}

func TestInsertLink_IgnoresHeaders(t *testing.T) {
	doc := New()
	h := doc.AddHeader("guidelines", 2).InsertLink("guidelines", "https://example.com")
	assert.Equal(t, "## guidelines", h.String())
}

func TestWriteFile_ParentIsFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0644))

	doc := New()
	doc.AddHeader("Title", 1)
	assert.Error(t, doc.WriteFile(filepath.Join(parent, "README")))
}
