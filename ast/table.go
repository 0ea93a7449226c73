package ast

import (
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// KeyValue wraps a KEY_VALUE node: `Keys '=' Value`.
type KeyValue struct {
	node *syntax.Node
}

// NewKeyValue wraps n, which must be a [syntax.KindKeyValue] node.
func NewKeyValue(n *syntax.Node) KeyValue {
	return KeyValue{node: n}
}

// Keys returns the dotted key path on the left of '='.
func (kv KeyValue) Keys() (Keys, bool) {
	nodes := kv.node.ChildNodesOfKind(syntax.KindKeys)
	if len(nodes) == 0 {
		return Keys{}, false
	}

	return NewKeys(nodes[0]), true
}

// Value returns the value on the right of '='.
func (kv KeyValue) Value() (Value, bool) {
	nodes := kv.node.ChildNodesOfKind(syntax.KindValue)
	if len(nodes) == 0 {
		return Value{}, false
	}

	return NewValue(nodes[0]), true
}

// Span returns the key-value's byte span.
func (kv KeyValue) Span() text.Span {
	return kv.node.Span()
}

// Node returns the underlying syntax node.
func (kv KeyValue) Node() *syntax.Node {
	return kv.node
}

// LeadingComments returns the run of whole-line '#' comments immediately
// preceding this item (separated from it only by trivia), matching §4.6's
// "leading comments stay above the item".
func (kv KeyValue) LeadingComments() []Comment {
	return leadingComments(kv.node)
}

// TailingComment returns the single same-line trailing comment after this
// item's value, if any.
func (kv KeyValue) TailingComment() (Comment, bool) {
	return tailingComment(kv.node)
}

// Table wraps a TABLE node: `[ Keys ] NEWLINE KeyValue*`.
type Table struct {
	node *syntax.Node
}

// NewTable wraps n, which must be a [syntax.KindTable] node.
func NewTable(n *syntax.Node) Table {
	return Table{node: n}
}

// Header returns the table's dotted header path.
func (t Table) Header() (Keys, bool) {
	nodes := t.node.ChildNodesOfKind(syntax.KindKeys)
	if len(nodes) == 0 {
		return Keys{}, false
	}

	return NewKeys(nodes[0]), true
}

// KeyValues returns the table's direct entries, in source order.
func (t Table) KeyValues() []KeyValue {
	var out []KeyValue

	for _, n := range t.node.ChildNodesOfKind(syntax.KindKeyValue) {
		out = append(out, NewKeyValue(n))
	}

	return out
}

// Span returns the table's byte span, including every entry beneath its
// header — the block the formatter and folding range treat as one unit.
func (t Table) Span() text.Span {
	return t.node.Span()
}

// Node returns the underlying syntax node.
func (t Table) Node() *syntax.Node {
	return t.node
}

// LeadingComments returns the comment run preceding this table's header.
func (t Table) LeadingComments() []Comment {
	return leadingComments(t.node)
}

// ArrayOfTable wraps an ARRAY_OF_TABLE node: `[[ Keys ]] NEWLINE KeyValue*`.
type ArrayOfTable struct {
	node *syntax.Node
}

// NewArrayOfTable wraps n, which must be a [syntax.KindArrayOfTable] node.
func NewArrayOfTable(n *syntax.Node) ArrayOfTable {
	return ArrayOfTable{node: n}
}

// Header returns the array-of-tables' dotted header path.
func (t ArrayOfTable) Header() (Keys, bool) {
	nodes := t.node.ChildNodesOfKind(syntax.KindKeys)
	if len(nodes) == 0 {
		return Keys{}, false
	}

	return NewKeys(nodes[0]), true
}

// KeyValues returns this element's direct entries, in source order.
func (t ArrayOfTable) KeyValues() []KeyValue {
	var out []KeyValue

	for _, n := range t.node.ChildNodesOfKind(syntax.KindKeyValue) {
		out = append(out, NewKeyValue(n))
	}

	return out
}

// Span returns this array-of-tables element's full block span.
func (t ArrayOfTable) Span() text.Span {
	return t.node.Span()
}

// Node returns the underlying syntax node.
func (t ArrayOfTable) Node() *syntax.Node {
	return t.node
}

// LeadingComments returns the comment run preceding this header.
func (t ArrayOfTable) LeadingComments() []Comment {
	return leadingComments(t.node)
}

// Item is one top-level (or inline-table-level) construct: a KeyValue, a
// Table, or an ArrayOfTable.
type Item struct {
	KeyValue     KeyValue
	Table        Table
	ArrayOfTable ArrayOfTable
	kind         syntax.Kind
}

// Kind reports which alternative this Item holds.
func (it Item) Kind() syntax.Kind {
	return it.kind
}

// Root wraps the ROOT node: the whole parsed document.
type Root struct {
	node *syntax.Node
}

// NewRoot wraps n, which must be a [syntax.KindRoot] node.
func NewRoot(n *syntax.Node) Root {
	return Root{node: n}
}

// Node returns the underlying syntax node.
func (r Root) Node() *syntax.Node {
	return r.node
}

// Items returns every top-level KeyValue, Table, and ArrayOfTable, in
// source order. INVALID_TOKENS runs from error recovery are skipped: they
// carry no semantic content, only diagnostics already recorded by the
// parser.
func (r Root) Items() []Item {
	var out []Item

	for _, n := range r.node.ChildNodes() {
		switch n.Kind() {
		case syntax.KindKeyValue:
			out = append(out, Item{kind: n.Kind(), KeyValue: NewKeyValue(n)})
		case syntax.KindTable:
			out = append(out, Item{kind: n.Kind(), Table: NewTable(n)})
		case syntax.KindArrayOfTable:
			out = append(out, Item{kind: n.Kind(), ArrayOfTable: NewArrayOfTable(n)})
		}
	}

	return out
}
