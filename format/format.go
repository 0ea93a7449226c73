package format

import (
	"strings"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/syntax"
)

// Format renders root as TOML text per opts, after applying hints' table
// key and array value reordering.
func Format(root ast.Root, opts Options, hints SchemaHints) string {
	root = reorderRoot(root, hints)

	w := &writer{opts: opts}
	w.writeRoot(root)

	return w.buf.String()
}

type writer struct {
	opts  Options
	buf   strings.Builder
	depth int
}

func (w *writer) writeRoot(root ast.Root) {
	items := root.Items()

	var lastEnd uint32

	for i, item := range items {
		if i > 0 && (item.Kind() == syntax.KindTable || item.Kind() == syntax.KindArrayOfTable) {
			w.buf.WriteString(w.opts.newline())
		}

		switch item.Kind() {
		case syntax.KindTable:
			w.writeComments(item.Table.LeadingComments())

			if header, ok := item.Table.Header(); ok {
				w.writeTableHeader(header, "[", "]")
			}

			for _, kv := range item.Table.KeyValues() {
				w.writeEntry(kv)
			}

			lastEnd = item.Table.Span().End
		case syntax.KindArrayOfTable:
			w.writeComments(item.ArrayOfTable.LeadingComments())

			if header, ok := item.ArrayOfTable.Header(); ok {
				w.writeTableHeader(header, "[[", "]]")
			}

			for _, kv := range item.ArrayOfTable.KeyValues() {
				w.writeEntry(kv)
			}

			lastEnd = item.ArrayOfTable.Span().End
		case syntax.KindKeyValue:
			w.writeEntry(item.KeyValue)

			lastEnd = item.KeyValue.Span().End
			if c, ok := item.KeyValue.TailingComment(); ok {
				lastEnd = c.Span().End
			}
		}
	}

	w.writeTrailingComments(root.Node(), lastEnd)
}

// writeTrailingComments emits every COMMENT token in n that starts at or
// after after: whatever is left over once every item has claimed its own
// leading and tailing comments, i.e. comments at the very end of the file
// with no following item to lead.
func (w *writer) writeTrailingComments(n *syntax.Node, after uint32) {
	for _, tok := range n.ChildTokensOfKind(syntax.KindComment) {
		if tok.Span().Start < after {
			continue
		}

		w.buf.WriteString(tok.Text())
		w.buf.WriteString(w.opts.newline())
	}
}

func (w *writer) writeTableHeader(keys ast.Keys, open, close string) {
	w.buf.WriteString(open)
	w.writeKeys(keys)
	w.buf.WriteString(close)
	w.buf.WriteString(w.opts.newline())
}

func (w *writer) writeKeys(keys ast.Keys) {
	for i, k := range keys.Items() {
		if i > 0 {
			w.buf.WriteByte('.')
		}

		w.buf.WriteString(w.restyleKeyText(k))
	}
}

func (w *writer) restyleKeyText(k ast.Key) string {
	var kind syntax.Kind

	switch k.Kind() {
	case ast.KeyBasicString:
		kind = syntax.KindBasicString
	case ast.KeyLiteralString:
		kind = syntax.KindLiteralString
	default:
		return k.Raw()
	}

	return restyleString(kind, k.Raw(), w.opts.QuoteStyle)
}

func (w *writer) writeEntry(kv ast.KeyValue) {
	w.writeComments(kv.LeadingComments())

	if keys, ok := kv.Keys(); ok {
		w.writeKeys(keys)
	}

	w.buf.WriteString(" = ")

	if val, ok := kv.Value(); ok {
		w.writeValue(val)
	}

	if c, ok := kv.TailingComment(); ok {
		w.buf.WriteByte(' ')
		w.buf.WriteString(c.Text())
	}

	w.buf.WriteString(w.opts.newline())
}

func (w *writer) writeComments(comments []ast.Comment) {
	for _, c := range comments {
		w.buf.WriteString(c.Text())
		w.buf.WriteString(w.opts.newline())
	}
}

func (w *writer) writeValue(v ast.Value) {
	if arr, ok := v.Array(); ok {
		w.writeArray(arr)
		return
	}

	if it, ok := v.InlineTable(); ok {
		w.writeInlineTable(it)
		return
	}

	if tok := v.Token(); tok != nil {
		w.buf.WriteString(w.restyleScalar(tok.Kind(), tok.Text()))
	}
}

func (w *writer) restyleScalar(kind syntax.Kind, raw string) string {
	switch kind {
	case syntax.KindBasicString, syntax.KindLiteralString:
		return restyleString(kind, raw, w.opts.QuoteStyle)
	case syntax.KindOffsetDateTime, syntax.KindLocalDateTime:
		return restyleDateTimeDelimiter(kind, raw, w.opts.DateTimeDelimiter)
	default:
		return raw
	}
}

// writeArray renders values on one line when the result fits within the
// configured line width, and one value per line otherwise. A zero-element
// array is always `[]`, matching the fixed layout rules that apply
// regardless of line width.
func (w *writer) writeArray(a ast.Array) {
	values := a.Values()
	if len(values) == 0 {
		w.buf.WriteString("[]")

		return
	}

	inline := w.renderArrayInline(values)
	if w.fits(inline) {
		w.buf.WriteString(inline)

		return
	}

	w.writeArrayMultiline(values)
}

func (w *writer) renderArrayInline(values []ast.Value) string {
	var b strings.Builder

	b.WriteString("[ ")

	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}

		sub := &writer{opts: w.opts}
		sub.writeValue(v)
		b.WriteString(sub.buf.String())
	}

	b.WriteString(" ]")

	return b.String()
}

func (w *writer) writeArrayMultiline(values []ast.Value) {
	w.buf.WriteString("[")
	w.buf.WriteString(w.opts.newline())

	w.depth++

	for _, v := range values {
		w.writeIndent()
		w.writeValue(v)
		w.buf.WriteString(",")
		w.buf.WriteString(w.opts.newline())
	}

	w.depth--

	w.writeIndent()
	w.buf.WriteString("]")
}

// writeInlineTable always renders on one line with no trailing comma, a
// form every supported TOML version accepts; an inline table written
// across several lines in the source is collapsed onto one.
func (w *writer) writeInlineTable(t ast.InlineTable) {
	w.buf.WriteString("{ ")

	for i, kv := range t.KeyValues() {
		if i > 0 {
			w.buf.WriteString(", ")
		}

		if keys, ok := kv.Keys(); ok {
			w.writeKeys(keys)
		}

		w.buf.WriteString(" = ")

		if val, ok := kv.Value(); ok {
			w.writeValue(val)
		}
	}

	w.buf.WriteString(" }")
}

func (w *writer) writeIndent() {
	for range w.depth {
		w.buf.WriteString(w.opts.indentUnit())
	}
}

func (w *writer) fits(inline string) bool {
	if strings.Contains(inline, "\n") {
		return false
	}

	return w.currentColumn()+len(inline) <= w.opts.LineWidth
}

func (w *writer) currentColumn() int {
	s := w.buf.String()
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		return len(s) - idx - 1
	}

	return len(s)
}
