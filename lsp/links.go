package lsp

import (
	"path"
	"strings"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/document"
	"github.com/tombi-toml/tombi/schema"
	"github.com/tombi-toml/tombi/syntax"
)

// linkRule names one well-known array-of-strings key whose entries are
// glob-style member paths relative to the document's own directory, per
// §4.8's "Cargo/uv workspace members" example. Resolution is purely
// syntactic: no filesystem existence check, so a link is always offered
// even if the target doesn't (yet) exist on disk.
type linkRule struct {
	path []string
}

var linkRules = []linkRule{
	{path: []string{"workspace", "members"}},
	{path: []string{"tool", "uv", "workspace", "members"}},
}

// DocumentLinks proposes a link for every string entry of a recognized
// workspace-members array, resolved relative to uri's directory. It
// returns ok=false only if uri isn't open.
func DocumentLinks(store *DocumentStore, uri string) ([]DocumentLink, bool) {
	doc, ok := store.get(uri)
	if !ok {
		return nil, false
	}

	root, table, _, _, _ := doc.snapshot()
	if table == nil {
		return nil, true
	}

	base := path.Dir(strings.TrimPrefix(uri, "file://"))

	var out []DocumentLink

	for _, rule := range linkRules {
		accessors := make([]schema.Accessor, len(rule.path))
		for i, s := range rule.path {
			accessors[i] = schema.KeyAccessor(s)
		}

		value, ok := navigateValue(table, accessors)
		if !ok {
			continue
		}

		tblArr, ok := value.(*document.Array)
		if !ok {
			continue
		}

		astArr, ok := findArrayByPath(root, rule.path)
		if !ok {
			continue
		}

		out = append(out, linksForArray(tblArr, astArr, base)...)
	}

	return out, true
}

func linksForArray(values *document.Array, astArr ast.Array, base string) []DocumentLink {
	astValues := astArr.Values()

	var out []DocumentLink

	for i, v := range values.Values {
		str, ok := v.(document.String)
		if !ok || i >= len(astValues) {
			continue
		}

		target := str.Raw
		if !path.IsAbs(target) {
			target = path.Join(base, target)
		}

		out = append(out, DocumentLink{Span: astValues[i].Span(), Target: "file://" + target})
	}

	return out
}

// findArrayByPath walks root's top-level items, accumulating each
// Table/ArrayOfTable header's dotted path, to find the ARRAY literal at
// the exact dotted key path segs.
func findArrayByPath(root ast.Root, segs []string) (ast.Array, bool) {
	for _, item := range root.Items() {
		switch item.Kind() {
		case syntax.KindTable:
			header, ok := item.Table.Header()
			if !ok {
				continue
			}

			if arr, ok := findArrayInEntries(item.Table.KeyValues(), keysPath(header), segs); ok {
				return arr, true
			}
		case syntax.KindArrayOfTable:
			header, ok := item.ArrayOfTable.Header()
			if !ok {
				continue
			}

			if arr, ok := findArrayInEntries(item.ArrayOfTable.KeyValues(), keysPath(header), segs); ok {
				return arr, true
			}
		case syntax.KindKeyValue:
			if arr, ok := findArrayInEntries([]ast.KeyValue{item.KeyValue}, nil, segs); ok {
				return arr, true
			}
		}
	}

	return ast.Array{}, false
}

func findArrayInEntries(kvs []ast.KeyValue, prefix []string, segs []string) (ast.Array, bool) {
	for _, kv := range kvs {
		keys, ok := kv.Keys()
		if !ok {
			continue
		}

		full := append(append([]string{}, prefix...), keysPath(keys)...)
		if !equalStrings(full, segs) {
			continue
		}

		val, ok := kv.Value()
		if !ok {
			continue
		}

		if arr, ok := val.Array(); ok {
			return arr, true
		}
	}

	return ast.Array{}, false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
