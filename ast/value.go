package ast

import (
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// Value wraps a VALUE node: exactly one scalar token, or one nested Array
// or InlineTable node, as its only non-trivia child.
type Value struct {
	node *syntax.Node
}

// NewValue wraps n, which must be a [syntax.KindValue] node.
func NewValue(n *syntax.Node) Value {
	return Value{node: n}
}

// Node returns the underlying VALUE node.
func (v Value) Node() *syntax.Node {
	return v.node
}

// Span returns the value's byte span.
func (v Value) Span() text.Span {
	return v.node.Span()
}

// element returns the single non-trivia child element, whichever
// alternative (token or node) it is.
func (v Value) element() syntax.Element {
	for _, e := range v.node.Children() {
		switch {
		case e.Token != nil && !e.Token.Kind().IsTrivia() && e.Token.Kind() != syntax.KindNewline:
			return e
		case e.Node != nil:
			return e
		}
	}

	return syntax.Element{}
}

// Kind reports the syntax kind of the value's single child: a scalar
// token kind, or [syntax.KindArray] / [syntax.KindInlineTable].
func (v Value) Kind() syntax.Kind {
	e := v.element()

	switch {
	case e.Token != nil:
		return e.Token.Kind()
	case e.Node != nil:
		return e.Node.Kind()
	default:
		return syntax.KindInvalidToken
	}
}

// Token returns the value's scalar leaf token, or nil if the value is an
// Array or InlineTable (or is missing, e.g. after an ExpectedValue
// recovery).
func (v Value) Token() *syntax.Token {
	return v.element().Token
}

// Array returns the value as an [Array], if its kind is
// [syntax.KindArray].
func (v Value) Array() (Array, bool) {
	e := v.element()
	if e.Node != nil && e.Node.Kind() == syntax.KindArray {
		return NewArray(e.Node), true
	}

	return Array{}, false
}

// InlineTable returns the value as an [InlineTable], if its kind is
// [syntax.KindInlineTable].
func (v Value) InlineTable() (InlineTable, bool) {
	e := v.element()
	if e.Node != nil && e.Node.Kind() == syntax.KindInlineTable {
		return NewInlineTable(e.Node), true
	}

	return InlineTable{}, false
}

// IsMissing reports whether no value token or node was found at all — the
// zero-width placeholder the parser emits for ExpectedValue.
func (v Value) IsMissing() bool {
	e := v.element()
	return e.Token == nil && e.Node == nil
}

// Array wraps an ARRAY node.
type Array struct {
	node *syntax.Node
}

// NewArray wraps n, which must be a [syntax.KindArray] node.
func NewArray(n *syntax.Node) Array {
	return Array{node: n}
}

// Values returns every element [Value], in source order.
func (a Array) Values() []Value {
	var out []Value

	for _, n := range a.node.ChildNodesOfKind(syntax.KindValue) {
		out = append(out, NewValue(n))
	}

	return out
}

// Span returns the array's byte span, brackets included.
func (a Array) Span() text.Span {
	return a.node.Span()
}

// Node returns the underlying syntax node.
func (a Array) Node() *syntax.Node {
	return a.node
}

// InlineTable wraps an INLINE_TABLE node.
type InlineTable struct {
	node *syntax.Node
}

// NewInlineTable wraps n, which must be a [syntax.KindInlineTable] node.
func NewInlineTable(n *syntax.Node) InlineTable {
	return InlineTable{node: n}
}

// KeyValues returns every entry, in source order.
func (t InlineTable) KeyValues() []KeyValue {
	var out []KeyValue

	for _, n := range t.node.ChildNodesOfKind(syntax.KindKeyValue) {
		out = append(out, NewKeyValue(n))
	}

	return out
}

// Span returns the inline table's byte span, braces included.
func (t InlineTable) Span() text.Span {
	return t.node.Span()
}

// Node returns the underlying syntax node.
func (t InlineTable) Node() *syntax.Node {
	return t.node
}
