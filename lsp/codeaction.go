package lsp

import (
	"context"
	"fmt"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// CodeActions proposes the dotted-key <-> inline-table refactor for
// whichever KeyValue entry covers span, per §4.8. It returns ok=false only
// if uri isn't open; a uri with no applicable entry at span yields an
// empty, ok=true slice.
func CodeActions(ctx context.Context, store *DocumentStore, uri string, span text.Span) ([]CodeAction, bool) {
	doc, ok := store.get(uri)
	if !ok {
		return nil, false
	}

	root, _, _, _, _ := doc.snapshot()

	kv, ok := findKeyValue(root, span)
	if !ok {
		return nil, true
	}

	var out []CodeAction

	if action, ok := toInlineTable(kv); ok {
		out = append(out, action)
	}

	if action, ok := toDottedKey(kv); ok {
		out = append(out, action)
	}

	return out, true
}

// findKeyValue returns the narrowest KeyValue entry, at any nesting depth
// (including inside inline tables), whose span contains span's start.
func findKeyValue(root ast.Root, span text.Span) (ast.KeyValue, bool) {
	for _, item := range root.Items() {
		var kvs []ast.KeyValue

		switch item.Kind() {
		case syntax.KindTable:
			kvs = item.Table.KeyValues()
		case syntax.KindArrayOfTable:
			kvs = item.ArrayOfTable.KeyValues()
		case syntax.KindKeyValue:
			kvs = []ast.KeyValue{item.KeyValue}
		}

		if found, ok := findKeyValueIn(kvs, span); ok {
			return found, true
		}
	}

	return ast.KeyValue{}, false
}

func findKeyValueIn(kvs []ast.KeyValue, span text.Span) (ast.KeyValue, bool) {
	for _, kv := range kvs {
		if !spanContainsOffset(kv.Span(), span.Start) {
			continue
		}

		if val, ok := kv.Value(); ok {
			if it, ok := val.InlineTable(); ok {
				if found, ok := findKeyValueIn(it.KeyValues(), span); ok {
					return found, true
				}
			}
		}

		return kv, true
	}

	return ast.KeyValue{}, false
}

// toInlineTable proposes collapsing a two-segment dotted key ("a.b = 1")
// into an inline table ("a = { b = 1 }"). Scoped to exactly two segments:
// a deeper dotted path would need to decide how much of the tail stays
// dotted inside the braces, which isn't worth the ambiguity here.
func toInlineTable(kv ast.KeyValue) (CodeAction, bool) {
	keys, ok := kv.Keys()
	if !ok {
		return CodeAction{}, false
	}

	items := keys.Items()
	if len(items) != 2 {
		return CodeAction{}, false
	}

	val, ok := kv.Value()
	if !ok || val.IsMissing() {
		return CodeAction{}, false
	}

	newText := fmt.Sprintf("%s = { %s = %s }", items[0].Raw(), items[1].Raw(), val.Node().Text())

	return CodeAction{
		Title: "Convert to inline table",
		Edits: []TextEdit{{Span: kv.Span(), NewText: newText}},
	}, true
}

// toDottedKey proposes the inverse: an inline table holding exactly one
// entry ("a = { b = 1 }") collapsed to a dotted key ("a.b = 1").
func toDottedKey(kv ast.KeyValue) (CodeAction, bool) {
	keys, ok := kv.Keys()
	if !ok || len(keys.Items()) != 1 {
		return CodeAction{}, false
	}

	val, ok := kv.Value()
	if !ok {
		return CodeAction{}, false
	}

	it, ok := val.InlineTable()
	if !ok {
		return CodeAction{}, false
	}

	inner := it.KeyValues()
	if len(inner) != 1 {
		return CodeAction{}, false
	}

	innerKeys, ok := inner[0].Keys()
	if !ok || len(innerKeys.Items()) != 1 {
		return CodeAction{}, false
	}

	innerVal, ok := inner[0].Value()
	if !ok || innerVal.IsMissing() {
		return CodeAction{}, false
	}

	newText := fmt.Sprintf("%s.%s = %s", keys.Items()[0].Raw(), innerKeys.Items()[0].Raw(), innerVal.Node().Text())

	return CodeAction{
		Title: "Convert to dotted key",
		Edits: []TextEdit{{Span: kv.Span(), NewText: newText}},
	}, true
}
