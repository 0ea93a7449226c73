package lsp

import (
	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/lexer"
	"github.com/tombi-toml/tombi/schema"
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// spanContainsOffset reports whether offset falls within span, inclusive
// of both ends — a cursor sitting exactly at a span's boundary (e.g.
// right after the closing quote of a string) still counts as "in" it.
func spanContainsOffset(span text.Span, offset uint32) bool {
	return span.Start <= offset && offset <= span.End
}

// location is what [locate] found at a cursor offset: the accessor path
// down to it, and whichever of key/value actually contains the offset.
type location struct {
	Path  []schema.Accessor
	Key   *ast.Key
	Value *ast.Value
}

// locate walks root looking for the narrowest key segment or value whose
// span contains offset, building the same accessor path the formatter's
// schema hints and the validator's diagnostics are keyed by. It returns
// ok=false if offset falls in pure trivia (whitespace, a header bracket,
// an `=` sign) that belongs to no accessor.
func locate(root ast.Root, offset uint32) (location, bool) {
	for _, item := range root.Items() {
		switch item.Kind() {
		case syntax.KindTable:
			header, ok := item.Table.Header()
			if !ok {
				continue
			}

			if loc, ok := locateKeys(header, nil, offset); ok {
				return loc, true
			}

			if loc, ok := locateEntries(item.Table.KeyValues(), accessorsOfStrings(keysPath(header)), offset); ok {
				return loc, true
			}
		case syntax.KindArrayOfTable:
			header, ok := item.ArrayOfTable.Header()
			if !ok {
				continue
			}

			if loc, ok := locateKeys(header, nil, offset); ok {
				return loc, true
			}

			if loc, ok := locateEntries(item.ArrayOfTable.KeyValues(), accessorsOfStrings(keysPath(header)), offset); ok {
				return loc, true
			}
		case syntax.KindKeyValue:
			if loc, ok := locateEntry(item.KeyValue, nil, offset); ok {
				return loc, true
			}
		}
	}

	return location{}, false
}

func locateEntries(kvs []ast.KeyValue, parentPath []schema.Accessor, offset uint32) (location, bool) {
	for _, kv := range kvs {
		if !spanContainsOffset(kv.Span(), offset) {
			continue
		}

		return locateEntry(kv, parentPath, offset)
	}

	return location{}, false
}

func locateEntry(kv ast.KeyValue, parentPath []schema.Accessor, offset uint32) (location, bool) {
	keys, ok := kv.Keys()
	if !ok {
		return location{}, false
	}

	if loc, ok := locateKeys(keys, parentPath, offset); ok {
		return loc, true
	}

	path := append(append([]schema.Accessor{}, parentPath...), accessorsOfStrings(keysPath(keys))...)

	val, ok := kv.Value()
	if !ok || !spanContainsOffset(val.Span(), offset) {
		return location{}, false
	}

	if loc, ok := locateValue(val, path, offset); ok {
		return loc, true
	}

	v := val

	return location{Path: path, Value: &v}, true
}

func locateKeys(keys ast.Keys, parentPath []schema.Accessor, offset uint32) (location, bool) {
	if !spanContainsOffset(keys.Span(), offset) {
		return location{}, false
	}

	segs := keysPath(keys)

	for i, k := range keys.Items() {
		if !spanContainsOffset(k.Span(), offset) {
			continue
		}

		kk := k

		return location{Path: append(append([]schema.Accessor{}, parentPath...), accessorsOfStrings(segs[:i+1])...), Key: &kk}, true
	}

	return location{}, false
}

func locateValue(v ast.Value, path []schema.Accessor, offset uint32) (location, bool) {
	if arr, ok := v.Array(); ok {
		for i, elem := range arr.Values() {
			if !spanContainsOffset(elem.Span(), offset) {
				continue
			}

			elemPath := append(append([]schema.Accessor{}, path...), schema.IndexAccessor(i))

			if loc, ok := locateValue(elem, elemPath, offset); ok {
				return loc, true
			}

			ev := elem

			return location{Path: elemPath, Value: &ev}, true
		}

		return location{}, false
	}

	if it, ok := v.InlineTable(); ok {
		return locateEntries(it.KeyValues(), path, offset)
	}

	return location{}, false
}

func accessorsOfStrings(names []string) []schema.Accessor {
	out := make([]schema.Accessor, len(names))
	for i, n := range names {
		out[i] = schema.KeyAccessor(n)
	}

	return out
}

// keyName decodes a single key segment's source spelling.
func keyName(k ast.Key) string {
	raw := k.Raw()

	switch k.Kind() {
	case ast.KeyBasicString:
		decoded, _ := lexer.DecodeBasicString(raw)
		return decoded
	case ast.KeyLiteralString:
		decoded, _ := lexer.DecodeLiteralString(raw)
		return decoded
	default:
		return raw
	}
}

func keysPath(keys ast.Keys) []string {
	items := keys.Items()
	out := make([]string, len(items))

	for i, k := range items {
		out[i] = keyName(k)
	}

	return out
}

// schemaAt resolves the schema covering path by descending one accessor
// at a time from root, via [schema.Descend]. It returns ok=false as soon
// as any step has no matching property/items schema.
func schemaAt(root schema.CurrentSchema, ctx *schema.Context, path []schema.Accessor, span text.Span) (schema.CurrentSchema, bool) {
	cur := root

	for _, a := range path {
		next, ok := schema.Descend(cur, ctx, a, span)
		if !ok {
			return schema.CurrentSchema{}, false
		}

		cur = next
	}

	return cur, true
}
