package syntax

import "github.com/tombi-toml/tombi/text"

// Node is a red-tree view over a [GreenNode]: a borrowed, non-owning handle
// that knows its absolute byte offset within the document and its parent,
// computed lazily on demand rather than stored on the (shared, immutable)
// green node itself.
//
// Node values are cheap to create and are not meant to be retained past the
// lifetime of the [GreenNode] they view; like the Rust original, ownership
// stays with the document's root green node.
type Node struct {
	green  *GreenNode
	offset uint32
	parent *Node
	index  int // this node's index within parent's children, -1 at root
}

// NewRoot creates the red-tree root view over a parsed document's green
// root.
func NewRoot(green *GreenNode) *Node {
	return &Node{green: green, offset: 0, parent: nil, index: -1}
}

// Kind returns the node's syntax kind.
func (n *Node) Kind() Kind {
	return n.green.Kind
}

// Span returns the node's absolute byte span.
func (n *Node) Span() text.Span {
	return text.Span{Start: n.offset, End: n.offset + n.green.TextLen}
}

// Text returns the exact source text covered by the node.
func (n *Node) Text() string {
	return n.green.Text()
}

// Green returns the underlying green node.
func (n *Node) Green() *GreenNode {
	return n.green
}

// Parent returns the node's parent, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Element is either a [Node] or a [Token] red-tree view of one child.
type Element struct {
	Node  *Node
	Token *Token
}

// Span returns the element's absolute byte span, whichever alternative is
// set.
func (e Element) Span() text.Span {
	if e.Node != nil {
		return e.Node.Span()
	}

	if e.Token != nil {
		return e.Token.Span()
	}

	return text.Span{}
}

// Children returns red-tree views of every direct child, in order, with
// absolute offsets computed relative to n.
func (n *Node) Children() []Element {
	out := make([]Element, 0, len(n.green.Children))
	offset := n.offset

	for i, c := range n.green.Children {
		switch {
		case c.Node != nil:
			child := &Node{green: c.Node, offset: offset, parent: n, index: i}
			out = append(out, Element{Node: child})
		case c.Token != nil:
			tok := &Token{green: c.Token, offset: offset, parent: n, index: i}
			out = append(out, Element{Token: tok})
		}

		offset += c.TextLen()
	}

	return out
}

// ChildNodes returns only the node children, filtering out tokens —
// equivalent to the Rust original's `children()` accessor used throughout
// the AST layer.
func (n *Node) ChildNodes() []*Node {
	var out []*Node

	for _, e := range n.Children() {
		if e.Node != nil {
			out = append(out, e.Node)
		}
	}

	return out
}

// ChildNodesOfKind filters ChildNodes by kind.
func (n *Node) ChildNodesOfKind(kind Kind) []*Node {
	var out []*Node

	for _, c := range n.ChildNodes() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}

	return out
}

// ChildTokens returns only the token children.
func (n *Node) ChildTokens() []*Token {
	var out []*Token

	for _, e := range n.Children() {
		if e.Token != nil {
			out = append(out, e.Token)
		}
	}

	return out
}

// ChildTokensOfKind filters ChildTokens by kind.
func (n *Node) ChildTokensOfKind(kind Kind) []*Token {
	var out []*Token

	for _, t := range n.ChildTokens() {
		if t.Kind() == kind {
			out = append(out, t)
		}
	}

	return out
}

// NodeAtOffset returns the narrowest node (and, if the offset lands on a
// token, that token) covering the given absolute byte offset. Used by every
// Language-Server service to map a cursor position to a tree element.
func (n *Node) NodeAtOffset(offset uint32) (*Node, *Token) {
	for _, e := range n.Children() {
		span := e.Span()
		if offset < span.Start || offset > span.End {
			continue
		}

		if e.Node != nil {
			return e.Node.NodeAtOffset(offset)
		}

		return n, e.Token
	}

	return n, nil
}

// Token is a red-tree view of a leaf token.
type Token struct {
	green  *GreenToken
	offset uint32
	parent *Node
	index  int
}

// Kind returns the token's syntax kind.
func (t *Token) Kind() Kind {
	return t.green.Kind
}

// Text returns the token's source text.
func (t *Token) Text() string {
	return t.green.Text
}

// Span returns the token's absolute byte span.
func (t *Token) Span() text.Span {
	return text.Span{Start: t.offset, End: t.offset + t.green.TextLen()}
}

// Parent returns the node that owns this token.
func (t *Token) Parent() *Node {
	return t.parent
}
