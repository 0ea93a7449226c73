package lsp_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombi-toml/tombi/config"
	"github.com/tombi-toml/tombi/format"
	"github.com/tombi-toml/tombi/lsp"
	"github.com/tombi-toml/tombi/schema"
	"github.com/tombi-toml/tombi/text"
)

func newStore(t *testing.T) *lsp.DocumentStore {
	t.Helper()

	return lsp.NewDocumentStore(config.Default(), nil, schema.NewStore(nil, true))
}

func writeSchema(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const packageSchema = `{
  "type": "object",
  "properties": {
    "name": { "type": "string", "description": "Package name." },
    "version": { "type": "string" },
    "license": { "type": "string", "enum": ["MIT", "Apache-2.0"] }
  }
}`

func withSchemaHeader(t *testing.T, schemaBody string, src string) string {
	t.Helper()

	path := writeSchema(t, schemaBody)

	return fmt.Sprintf("#:schema %s\n%s", path, src)
}

func TestDocumentSymbols(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	store.Open("file:///a.toml", []byte("name = \"demo\"\n\n[owner]\nteam = \"core\"\nids = [1, 2, 3]\n"), 1)

	symbols, ok := lsp.DocumentSymbols(store, "file:///a.toml")
	require.True(t, ok)
	require.Len(t, symbols, 2)

	assert.Equal(t, "name", symbols[0].Name)
	assert.Equal(t, lsp.SymbolString, symbols[0].Kind)

	assert.Equal(t, "owner", symbols[1].Name)
	assert.Equal(t, lsp.SymbolObject, symbols[1].Kind)
	require.Len(t, symbols[1].Children, 2)
	assert.Equal(t, lsp.SymbolArray, symbols[1].Children[1].Kind)
}

func TestDocumentSymbolsUnknownURI(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	_, ok := lsp.DocumentSymbols(store, "file:///missing.toml")
	assert.False(t, ok)
}

func TestFoldingRanges(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	src := "[table]\nkey = [\n  1,\n  2,\n]\n"
	store.Open("file:///a.toml", []byte(src), 1)

	ranges, ok := lsp.FoldingRanges(store, "file:///a.toml")
	require.True(t, ok)
	require.NotEmpty(t, ranges)

	for _, r := range ranges {
		assert.Less(t, r.StartLine, r.EndLine)
	}
}

func TestDiagnosticsSyntaxOnly(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	store.Open("file:///a.toml", []byte("key = \n"), 1)

	diags, ok := lsp.Diagnostics(context.Background(), store, "file:///a.toml")
	require.True(t, ok)
	require.NotEmpty(t, diags)
	assert.Equal(t, "syntax", diags[0].Source)
	assert.Equal(t, lsp.SeverityError, diags[0].Severity)
}

func TestDiagnosticsDuplicateKey(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	store.Open("file:///a.toml", []byte("name = \"a\"\nname = \"b\"\n"), 1)

	diags, ok := lsp.Diagnostics(context.Background(), store, "file:///a.toml")
	require.True(t, ok)
	require.NotEmpty(t, diags)

	found := false
	for _, d := range diags {
		if d.Source == "document" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDiagnosticsSchemaViolation(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	src := withSchemaHeader(t, packageSchema, "license = \"GPL-3.0\"\n")
	store.Open("file:///a.toml", []byte(src), 1)

	diags, ok := lsp.Diagnostics(context.Background(), store, "file:///a.toml")
	require.True(t, ok)

	found := false
	for _, d := range diags {
		if d.Source == "schema" {
			found = true
		}
	}
	assert.True(t, found, "expected a schema diagnostic for the disallowed enum value")
}

func TestHover(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	src := withSchemaHeader(t, packageSchema, "name = \"demo\"\n")
	store.Open("file:///a.toml", []byte(src), 1)

	lines := splitLines(src)
	nameLine := lineOf(lines, "name = ")

	h, ok := lsp.Hover(context.Background(), store, "file:///a.toml", text.Position{Line: nameLine, Column: 1})
	require.True(t, ok)
	assert.Contains(t, h.Contents, "Package name.")
}

func TestCompletionKey(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	src := withSchemaHeader(t, packageSchema, "name = \"demo\"\n")
	store.Open("file:///a.toml", []byte(src), 1)

	lines := splitLines(src)
	nameLine := lineOf(lines, "name = ")

	items, ok := lsp.Completion(context.Background(), store, "file:///a.toml", text.Position{Line: nameLine, Column: 0})
	require.True(t, ok)

	var labels []string
	for _, it := range items {
		labels = append(labels, it.Label)
	}

	assert.Contains(t, labels, "version")
	assert.Contains(t, labels, "license")
	assert.NotContains(t, labels, "name")
}

func TestCompletionValueEnum(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	src := withSchemaHeader(t, packageSchema, "license = \"\"\n")
	store.Open("file:///a.toml", []byte(src), 1)

	lines := splitLines(src)
	licenseLine := lineOf(lines, "license = ")

	items, ok := lsp.Completion(context.Background(), store, "file:///a.toml", text.Position{Line: licenseLine, Column: 11})
	require.True(t, ok)

	var labels []string
	for _, it := range items {
		labels = append(labels, it.Label)
	}

	assert.ElementsMatch(t, []string{"MIT", "Apache-2.0"}, labels)
}

func TestFormatWithKeysOrderHint(t *testing.T) {
	t.Parallel()

	schemaBody := `{
  "type": "object",
  "x-tombi-table-keys-order": "ascending",
  "properties": {
    "b": { "type": "string" },
    "a": { "type": "string" }
  }
}`

	store := newStore(t)
	src := withSchemaHeader(t, schemaBody, "b = \"2\"\na = \"1\"\n")
	store.Open("file:///a.toml", []byte(src), 1)

	out, ok := lsp.Format(context.Background(), store, "file:///a.toml", format.Default())
	require.True(t, ok)
	assert.Less(t, indexOf(out, "a ="), indexOf(out, "b ="))
}

func TestCodeActionsToInlineTable(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	store.Open("file:///a.toml", []byte("table.value = 1\n"), 1)

	actions, ok := lsp.CodeActions(context.Background(), store, "file:///a.toml", text.Span{Start: 0, End: 1})
	require.True(t, ok)
	require.NotEmpty(t, actions)

	var titles []string
	for _, a := range actions {
		titles = append(titles, a.Title)
	}

	assert.Contains(t, titles, "Convert to inline table")
}

func TestCodeActionsToDottedKey(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	store.Open("file:///a.toml", []byte("table = { value = 1 }\n"), 1)

	actions, ok := lsp.CodeActions(context.Background(), store, "file:///a.toml", text.Span{Start: 0, End: 1})
	require.True(t, ok)

	var titles []string
	for _, a := range actions {
		titles = append(titles, a.Title)
	}

	assert.Contains(t, titles, "Convert to dotted key")
}

func TestDocumentLinksWorkspaceMembers(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	store.Open("file:///proj/Cargo.toml", []byte("[workspace]\nmembers = [\"crates/a\", \"crates/b\"]\n"), 1)

	links, ok := lsp.DocumentLinks(store, "file:///proj/Cargo.toml")
	require.True(t, ok)
	require.Len(t, links, 2)
	assert.Equal(t, "file:///proj/crates/a", links[0].Target)
	assert.Equal(t, "file:///proj/crates/b", links[1].Target)
}

func TestDocumentLinksNoRule(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	store.Open("file:///a.toml", []byte("name = \"demo\"\n"), 1)

	links, ok := lsp.DocumentLinks(store, "file:///a.toml")
	require.True(t, ok)
	assert.Empty(t, links)
}

func splitLines(src string) []string {
	var out []string
	start := 0

	for i, r := range src {
		if r == '\n' {
			out = append(out, src[start:i])
			start = i + 1
		}
	}

	out = append(out, src[start:])

	return out
}

func lineOf(lines []string, prefix string) uint32 {
	for i, l := range lines {
		if len(l) >= len(prefix) && l[:len(prefix)] == prefix {
			return uint32(i)
		}
	}

	return 0
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}

	return -1
}
