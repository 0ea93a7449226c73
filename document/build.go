package document

import (
	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/lexer"
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
	"github.com/tombi-toml/tombi/toml"
)

// builder carries the state threaded through one elaboration pass: the
// TOML edition (which gates optional-seconds time literals) and the
// accumulated non-fatal error list.
type builder struct {
	version toml.Version
	errs    []*Error
}

// Build converts a parsed [ast.Root] into the document tree, implementing
// the algorithm in §4.3 of the specification: an accessor-path walk that
// creates ParentKey/ParentTable tables as it goes, detects
// ConflictTable/ConflictArray, and accumulates array-of-tables elements.
// It never aborts: every error is positional and collected alongside the
// (possibly partial) tree.
func Build(root ast.Root, v toml.Version) (*Table, []*Error) {
	b := &builder{version: v}
	rootTable := newTable(TableRoot, root.Node().Span(), root.Node().Span())

	for _, item := range root.Items() {
		switch item.Kind() {
		case syntax.KindKeyValue:
			b.insertKeyValue(rootTable, item.KeyValue)
		case syntax.KindTable:
			b.openTable(rootTable, item.Table)
		case syntax.KindArrayOfTable:
			b.openArrayOfTable(rootTable, item.ArrayOfTable)
		}
	}

	return rootTable, b.errs
}

func (b *builder) errf(kind ErrorKind, span text.Span, format string, args ...any) {
	b.errs = append(b.errs, newError(kind, span, format, args...))
}

// decodeKeyText decodes a single key segment's text per its spelling
// kind, using the same escape decoder the lexer itself would use to
// interpret a string value — so `"a.b"` and `a.b` are never confused for
// the same key, per §4.3.
func (b *builder) decodeKeyText(k ast.Key) string {
	raw := k.Raw()

	switch k.Kind() {
	case ast.KeyBasicString:
		decoded, errs := lexer.DecodeBasicString(raw)
		for range errs {
			b.errf(ErrParseString, k.Span(), "invalid key string")
		}

		return decoded
	case ast.KeyLiteralString:
		decoded, _ := lexer.DecodeLiteralString(raw)
		return decoded
	default:
		return raw
	}
}

func (b *builder) toKey(k ast.Key) Key {
	return Key{Kind: k.Kind(), Raw: b.decodeKeyText(k), Range: k.Span()}
}

// navigate walks keys (every segment but the caller's final one) from
// cur, creating TableParentKey intermediates for segments that don't
// exist yet and descending into an existing ParentTable/ParentKey/
// Explicit table, or into the last element of an existing array of
// tables. It reports a ConflictTable/ConflictArray error — and nil — if
// the path crosses a value that cannot be a container.
func (b *builder) navigate(cur *Table, keys []ast.Key) *Table {
	for _, k := range keys {
		name := b.decodeKeyText(k)

		existing, ok := cur.Get(name)
		if !ok {
			next := newTable(TableParentKey, k.Span(), k.Span())
			cur.set(name, b.toKey(k), next)
			cur = next

			continue
		}

		switch v := existing.(type) {
		case *Table:
			switch v.Kind {
			case TableParentKey, TableParentTable, TableExplicit, TableRoot:
				cur = v
			default:
				b.errf(ErrConflictTable, k.Span(), "cannot descend through an inline table")
				return nil
			}
		case *Array:
			if v.Kind == ArrayOfTables && len(v.Values) > 0 {
				last, isTable := v.Values[len(v.Values)-1].(*Table)
				if !isTable {
					b.errf(ErrConflictTable, k.Span(), "array of tables element is not a table")
					return nil
				}

				cur = last
			} else {
				b.errf(ErrConflictArray, k.Span(), "cannot descend through an array")
				return nil
			}
		default:
			b.errf(ErrConflictTable, k.Span(), "key %q is not a table", name)
			return nil
		}
	}

	return cur
}

// insertKeyValue elaborates a single `KeyValue` item (whether it's a
// top-level key-value, one nested under a table header, or one inside an
// inline table) into cur.
func (b *builder) insertKeyValue(cur *Table, kv ast.KeyValue) {
	keysNode, ok := kv.Keys()
	if !ok {
		return
	}

	segments := keysNode.Items()
	if len(segments) == 0 {
		return
	}

	container := b.navigate(cur, segments[:len(segments)-1])
	if container == nil {
		return
	}

	last := segments[len(segments)-1]
	name := b.decodeKeyText(last)

	if existing, exists := container.Get(name); exists {
		switch v := existing.(type) {
		case *Table:
			b.errf(ErrConflictTable, last.Span(), "key %q already defines a table", name)
		case *Array:
			if v.Kind == ArrayOfTables || v.Kind == ArrayParentOfTables {
				b.errf(ErrConflictArray, last.Span(), "key %q already defines an array of tables", name)
			} else {
				b.errf(ErrDuplicateKey, last.Span(), "duplicate key: %s", name)
			}
		default:
			b.errf(ErrDuplicateKey, last.Span(), "duplicate key: %s", name)
		}

		return
	}

	astValue, hasValue := kv.Value()

	val := b.elaborateValue(astValue, hasValue, kv.Span())
	container.set(name, b.toKey(last), val)
}

// openTable materializes a `[a.b.c]` header: walks/creates ParentTable
// tables down to the last segment, then completes (or conflicts with) the
// target table before elaborating its direct key-values.
func (b *builder) openTable(root *Table, t ast.Table) {
	header, ok := t.Header()
	if !ok {
		return
	}

	segments := header.Items()
	if len(segments) == 0 {
		return
	}

	container := b.navigateForHeader(root, segments[:len(segments)-1])
	if container == nil {
		return
	}

	last := segments[len(segments)-1]
	name := b.decodeKeyText(last)

	target := b.completeOrCreateTable(container, last, name, t.Span())
	if target == nil {
		return
	}

	for _, kv := range t.KeyValues() {
		b.insertKeyValue(target, kv)
	}
}

// openArrayOfTable materializes a `[[a.b.c]]` header: walks/creates
// ParentTable tables down to the last segment, appends a new element to
// the array-of-tables at that key (creating it on first use), then
// elaborates the new element's direct key-values.
func (b *builder) openArrayOfTable(root *Table, t ast.ArrayOfTable) {
	header, ok := t.Header()
	if !ok {
		return
	}

	segments := header.Items()
	if len(segments) == 0 {
		return
	}

	container := b.navigateForHeader(root, segments[:len(segments)-1])
	if container == nil {
		return
	}

	last := segments[len(segments)-1]
	name := b.decodeKeyText(last)

	arr := b.arrayOfTablesFor(container, last, name)
	if arr == nil {
		return
	}

	elem := newTable(TableExplicit, t.Span(), t.Span())
	arr.Values = append(arr.Values, elem)
	arr.SymbolRange = arr.SymbolRange.Add(t.Span())

	for _, kv := range t.KeyValues() {
		b.insertKeyValue(elem, kv)
	}
}

// navigateForHeader is [navigate] specialized for Table/ArrayOfTable
// headers: intermediates created along the way are ParentTable (not
// ParentKey), since they were created by a bracketed header rather than a
// dotted key-value.
func (b *builder) navigateForHeader(cur *Table, keys []ast.Key) *Table {
	for _, k := range keys {
		name := b.decodeKeyText(k)

		existing, ok := cur.Get(name)
		if !ok {
			next := newTable(TableParentTable, k.Span(), k.Span())
			cur.set(name, b.toKey(k), next)
			cur = next

			continue
		}

		switch v := existing.(type) {
		case *Table:
			switch v.Kind {
			case TableParentKey, TableParentTable, TableExplicit, TableRoot:
				cur = v
			default:
				b.errf(ErrConflictTable, k.Span(), "cannot descend through an inline table")
				return nil
			}
		case *Array:
			if v.Kind == ArrayOfTables && len(v.Values) > 0 {
				last, isTable := v.Values[len(v.Values)-1].(*Table)
				if !isTable {
					b.errf(ErrConflictTable, k.Span(), "array of tables element is not a table")
					return nil
				}

				cur = last
			} else {
				b.errf(ErrConflictArray, k.Span(), "cannot descend through an array")
				return nil
			}
		default:
			b.errf(ErrConflictTable, k.Span(), "key %q is not a table", name)
			return nil
		}
	}

	return cur
}

// completeOrCreateTable resolves the final segment of a `[a.b.c]` header:
// creates a fresh TableExplicit if the key is unused, completes an
// existing ParentTable/ParentKey in place, or reports ConflictTable for
// anything already materialized as an explicit or inline table.
func (b *builder) completeOrCreateTable(container *Table, lastKey ast.Key, name string, blockSpan text.Span) *Table {
	existing, ok := container.Get(name)
	if !ok {
		t := newTable(TableExplicit, blockSpan, blockSpan)
		container.set(name, b.toKey(lastKey), t)

		return t
	}

	switch v := existing.(type) {
	case *Table:
		switch v.Kind {
		case TableParentTable, TableParentKey:
			v.Kind = TableExplicit
			v.Range = blockSpan
			v.SymbolRange = blockSpan

			return v
		case TableExplicit, TableInline, TableKeyValue, TableRoot:
			b.errf(ErrConflictTable, lastKey.Span(), "table %q redefined", name)
			return nil
		}
	case *Array:
		b.errf(ErrConflictArray, lastKey.Span(), "key %q is already an array", name)
		return nil
	}

	b.errf(ErrConflictTable, lastKey.Span(), "key %q is not a table", name)

	return nil
}

// arrayOfTablesFor resolves the final segment of a `[[a.b.c]]` header:
// creates a fresh empty ArrayOfTables if the key is unused, reuses an
// existing one, or reports ConflictArray against an existing literal
// array and ConflictTable against anything else.
func (b *builder) arrayOfTablesFor(container *Table, lastKey ast.Key, name string) *Array {
	existing, ok := container.Get(name)
	if !ok {
		arr := newArray(ArrayOfTables, lastKey.Span(), lastKey.Span())
		container.set(name, b.toKey(lastKey), arr)

		return arr
	}

	switch v := existing.(type) {
	case *Array:
		if v.Kind == ArrayOfTables || v.Kind == ArrayParentOfTables {
			v.Kind = ArrayOfTables
			return v
		}

		b.errf(ErrConflictArray, lastKey.Span(), "key %q is already a plain array", name)

		return nil
	default:
		b.errf(ErrConflictTable, lastKey.Span(), "key %q is not an array of tables", name)
		return nil
	}
}
