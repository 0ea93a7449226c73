package ast

import (
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// KeyKind classifies how a [Key] was spelled in source.
type KeyKind int

const (
	KeyBare KeyKind = iota
	KeyBasicString
	KeyLiteralString
)

// Key wraps a single KEY node: one BARE_KEY, BASIC_STRING, or
// LITERAL_STRING token.
type Key struct {
	node *syntax.Node
}

// NewKey wraps n, which must be a [syntax.KindKey] node.
func NewKey(n *syntax.Node) Key {
	return Key{node: n}
}

// Token returns the key's single leaf token.
func (k Key) Token() *syntax.Token {
	for _, t := range k.node.ChildTokens() {
		if !t.Kind().IsTrivia() {
			return t
		}
	}

	return nil
}

// Kind reports how this key was spelled.
func (k Key) Kind() KeyKind {
	tok := k.Token()
	if tok == nil {
		return KeyBare
	}

	switch tok.Kind() {
	case syntax.KindBasicString:
		return KeyBasicString
	case syntax.KindLiteralString:
		return KeyLiteralString
	default:
		return KeyBare
	}
}

// Raw returns the key's exact, undecoded source text.
func (k Key) Raw() string {
	tok := k.Token()
	if tok == nil {
		return ""
	}

	return tok.Text()
}

// Span returns the key's byte span.
func (k Key) Span() text.Span {
	return k.node.Span()
}

// Keys wraps a KEYS node: a dotted run of one or more [Key]s.
type Keys struct {
	node *syntax.Node
}

// NewKeys wraps n, which must be a [syntax.KindKeys] node.
func NewKeys(n *syntax.Node) Keys {
	return Keys{node: n}
}

// Items returns every dotted key segment, in order.
func (ks Keys) Items() []Key {
	var out []Key

	for _, n := range ks.node.ChildNodesOfKind(syntax.KindKey) {
		out = append(out, NewKey(n))
	}

	return out
}

// Span returns the full dotted path's byte span.
func (ks Keys) Span() text.Span {
	return ks.node.Span()
}

// Node returns the underlying syntax node.
func (ks Keys) Node() *syntax.Node {
	return ks.node
}
