package format

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/editor"
	"github.com/tombi-toml/tombi/schema"
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// reorderRoot returns a root whose table entries and array elements have
// been permuted to match hints, built as a single batch of tree edits
// through [editor.Apply] rather than by writing lines out of order: the
// writer in format.go always emits entries in whatever order the tree
// already holds them, so reordering has to happen to the tree first.
//
// Only a container's own direct entries are reordered — a table header's
// position among its siblings, and an array-of-tables' element order, are
// left alone, since those carry positional meaning (accumulation order)
// the grammar itself assigns, unlike a table's key order or a plain
// array's element order, which TOML treats as insignificant.
func reorderRoot(root ast.Root, hints SchemaHints) ast.Root {
	if len(hints) == 0 {
		return root
	}

	var (
		changes []editor.Change
		rootKVs []ast.KeyValue
	)

	for _, item := range root.Items() {
		switch item.Kind() {
		case syntax.KindTable:
			header, ok := item.Table.Header()
			if !ok {
				continue
			}

			path := accessorsOfStrings(keysPath(header))
			collectContainer(item.Table.Node(), item.Table.KeyValues(), path, hints, &changes)
		case syntax.KindArrayOfTable:
			header, ok := item.ArrayOfTable.Header()
			if !ok {
				continue
			}

			path := accessorsOfStrings(keysPath(header))
			collectContainer(item.ArrayOfTable.Node(), item.ArrayOfTable.KeyValues(), path, hints, &changes)
		case syntax.KindKeyValue:
			rootKVs = append(rootKVs, item.KeyValue)
		}
	}

	collectContainer(root.Node(), rootKVs, nil, hints, &changes)

	if len(changes) == 0 {
		return root
	}

	return ast.NewRoot(editor.Apply(root.Node(), changes))
}

// collectContainer reorders node's direct kvs per hints, if a hint names
// this path, and recurses into each entry's value.
func collectContainer(node *syntax.Node, kvs []ast.KeyValue, path []schema.Accessor, hints SchemaHints, changes *[]editor.Change) {
	hint := hints.lookup(schema.JoinAccessors(path))
	if hint.TableKeysOrder != schema.KeysOrderNone {
		if ch, ok := buildKeyReorderChange(node, kvs, hint); ok {
			*changes = append(*changes, ch)
		}
	}

	for _, kv := range kvs {
		collectEntry(kv, path, hints, changes)
	}
}

func collectEntry(kv ast.KeyValue, parentPath []schema.Accessor, hints SchemaHints, changes *[]editor.Change) {
	keys, ok := kv.Keys()
	if !ok {
		return
	}

	val, ok := kv.Value()
	if !ok {
		return
	}

	path := append(append([]schema.Accessor{}, parentPath...), accessorsOfStrings(keysPath(keys))...)

	collectValue(val, path, hints, changes)
}

func collectValue(v ast.Value, path []schema.Accessor, hints SchemaHints, changes *[]editor.Change) {
	if arr, ok := v.Array(); ok {
		hint := hints.lookup(schema.JoinAccessors(path))

		values := arr.Values()
		if hint.ArrayValuesOrder != schema.ValuesOrderNone {
			if ch, ok := buildArrayReorderChange(arr.Node(), values, hint); ok {
				*changes = append(*changes, ch)
			}
		}

		elemPath := append(append([]schema.Accessor{}, path...), schema.IndexAccessor(0))
		for _, elem := range values {
			collectValue(elem, elemPath, hints, changes)
		}

		return
	}

	if it, ok := v.InlineTable(); ok {
		collectContainer(it.Node(), it.KeyValues(), path, hints, changes)
	}
}

func accessorsOfStrings(names []string) []schema.Accessor {
	out := make([]schema.Accessor, len(names))
	for i, n := range names {
		out[i] = schema.KeyAccessor(n)
	}

	return out
}

// buildKeyReorderChange computes the permutation hint calls for and, if
// it differs from source order, returns a single ReplaceRange change
// spanning every entry from the first to the last.
func buildKeyReorderChange(node *syntax.Node, kvs []ast.KeyValue, hint Hint) (editor.Change, bool) {
	if len(kvs) < 2 {
		return editor.Change{}, false
	}

	spans := make([]text.Span, len(kvs))
	for i, kv := range kvs {
		spans[i] = entrySpan(node, kv)
	}

	order := keyOrder(kvs, hint)
	if isIdentity(order) {
		return editor.Change{}, false
	}

	return editor.Replace(unionSpan(spans), reorderedChildren(node, spans, order)), true
}

func buildArrayReorderChange(node *syntax.Node, values []ast.Value, hint Hint) (editor.Change, bool) {
	if len(values) < 2 {
		return editor.Change{}, false
	}

	spans := make([]text.Span, len(values))
	for i, v := range values {
		spans[i] = valueEntrySpan(node, v)
	}

	order := arrayOrder(values, hint)
	if isIdentity(order) {
		return editor.Change{}, false
	}

	return editor.Replace(unionSpan(spans), reorderedChildren(node, spans, order)), true
}

func unionSpan(spans []text.Span) text.Span {
	return text.Span{Start: spans[0].Start, End: spans[len(spans)-1].End}
}

func reorderedChildren(node *syntax.Node, spans []text.Span, order []int) []syntax.GreenChild {
	var out []syntax.GreenChild
	for _, idx := range order {
		out = append(out, greenChildrenInSpan(node, spans[idx])...)
	}

	return out
}

func isIdentity(order []int) bool {
	for i, v := range order {
		if i != v {
			return false
		}
	}

	return true
}

// greenChildrenInSpan collects node's direct children falling entirely
// within span, reconstructing tokens by (kind, text) and sharing node
// children's green subtrees by pointer.
func greenChildrenInSpan(node *syntax.Node, span text.Span) []syntax.GreenChild {
	var out []syntax.GreenChild

	for _, e := range node.Children() {
		s := e.Span()
		if s.Start < span.Start || s.End > span.End {
			continue
		}

		switch {
		case e.Node != nil:
			out = append(out, syntax.NewGreenNodeChild(e.Node.Green()))
		case e.Token != nil:
			out = append(out, syntax.NewGreenToken(e.Token.Kind(), e.Token.Text()))
		}
	}

	return out
}

// entrySpan extends a key-value's own span backward over its leading
// comments and forward over one trailing same-line comment plus the
// newline (and any whitespace) that ends its line, so reordering moves
// the comment along with the entry it documents.
func entrySpan(node *syntax.Node, kv ast.KeyValue) text.Span {
	start := kv.Span().Start

	for _, c := range kv.LeadingComments() {
		if c.Span().Start < start {
			start = c.Span().Start
		}
	}

	end := kv.Span().End
	if c, ok := kv.TailingComment(); ok {
		end = c.Span().End
	}

	return text.Span{Start: start, End: extendToLineEnd(node, end)}
}

// valueEntrySpan extends an array element's span forward over its
// trailing comma, one trailing same-line comment, and the line-ending
// newline. Per-element leading comments are not reattached: tracking
// those would need a comment-ownership API [ast.Value] doesn't expose.
func valueEntrySpan(node *syntax.Node, v ast.Value) text.Span {
	start := v.Span().Start
	end := v.Span().End

	for _, e := range node.Children() {
		s := e.Span()
		if s.End <= end {
			continue
		}

		if s.Start != end || e.Token == nil {
			break
		}

		switch e.Token.Kind() {
		case syntax.KindWhitespace, syntax.KindComma, syntax.KindComment:
			end = s.End

			continue
		case syntax.KindNewline:
			end = s.End
		}

		break
	}

	return text.Span{Start: start, End: end}
}

// extendToLineEnd consumes one run of trailing whitespace followed by a
// single newline immediately after end, stopping before anything else.
func extendToLineEnd(node *syntax.Node, end uint32) uint32 {
	for _, e := range node.Children() {
		s := e.Span()
		if s.End <= end {
			continue
		}

		if s.Start != end || e.Token == nil {
			break
		}

		switch e.Token.Kind() {
		case syntax.KindWhitespace:
			end = s.End

			continue
		case syntax.KindNewline:
			end = s.End
		}

		break
	}

	return end
}

func keyOrder(kvs []ast.KeyValue, hint Hint) []int {
	idx := make([]int, len(kvs))
	names := make([]string, len(kvs))

	for i, kv := range kvs {
		idx[i] = i

		if keys, ok := kv.Keys(); ok {
			items := keys.Items()
			if len(items) > 0 {
				names[i] = keyName(items[len(items)-1])
			}
		}
	}

	switch hint.TableKeysOrder {
	case schema.KeysOrderAscending:
		sort.SliceStable(idx, func(a, b int) bool { return names[idx[a]] < names[idx[b]] })
	case schema.KeysOrderDescending:
		sort.SliceStable(idx, func(a, b int) bool { return names[idx[a]] > names[idx[b]] })
	case schema.KeysOrderVersionSort:
		sort.SliceStable(idx, func(a, b int) bool { return naturalLess(names[idx[a]], names[idx[b]]) })
	case schema.KeysOrderSchema:
		rank := make(map[string]int, len(hint.PropertyOrder))
		for i, name := range hint.PropertyOrder {
			rank[name] = i
		}

		sort.SliceStable(idx, func(a, b int) bool {
			ra, oka := rank[names[idx[a]]]
			rb, okb := rank[names[idx[b]]]

			switch {
			case oka && okb:
				return ra < rb
			case oka:
				return true
			case okb:
				return false
			default:
				return false
			}
		})
	}

	return idx
}

func arrayOrder(values []ast.Value, hint Hint) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}

	switch hint.ArrayValuesOrder {
	case schema.ValuesOrderAscending:
		sort.SliceStable(idx, func(a, b int) bool { return scalarLess(values[idx[a]], values[idx[b]]) })
	case schema.ValuesOrderDescending:
		sort.SliceStable(idx, func(a, b int) bool { return scalarLess(values[idx[b]], values[idx[a]]) })
	}

	return idx
}

func scalarLess(a, b ast.Value) bool {
	ta, tb := a.Token(), b.Token()
	if ta == nil || tb == nil {
		return false
	}

	if isNumericKind(ta.Kind()) && isNumericKind(tb.Kind()) {
		fa, erra := strconv.ParseFloat(strings.ReplaceAll(ta.Text(), "_", ""), 64)
		fb, errb := strconv.ParseFloat(strings.ReplaceAll(tb.Text(), "_", ""), 64)

		if erra == nil && errb == nil {
			return fa < fb
		}
	}

	return ta.Text() < tb.Text()
}

func isNumericKind(k syntax.Kind) bool {
	switch k {
	case syntax.KindIntegerDec, syntax.KindFloat:
		return true
	default:
		return false
	}
}

// naturalLess compares strings the way a version number sorts: runs of
// digits compare numerically, everything else compares byte-wise.
func naturalLess(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0

	for i < len(ra) && j < len(rb) {
		if isDigit(ra[i]) && isDigit(rb[j]) {
			ni, ei := digitsRun(ra, i)
			nj, ej := digitsRun(rb, j)

			if ni != nj {
				return ni < nj
			}

			i, j = ei, ej

			continue
		}

		if ra[i] != rb[j] {
			return ra[i] < rb[j]
		}

		i++
		j++
	}

	return len(ra)-i < len(rb)-j
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func digitsRun(r []rune, start int) (int, int) {
	end := start
	for end < len(r) && isDigit(r[end]) {
		end++
	}

	n, _ := strconv.Atoi(string(r[start:end]))

	return n, end
}
