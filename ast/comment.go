package ast

import (
	"strings"

	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// Comment wraps a single COMMENT token, whether it leads an item, trails
// one on the same line, or dangles inside an otherwise-empty bracket pair.
type Comment struct {
	tok *syntax.Token
}

// NewComment wraps a COMMENT token.
func NewComment(t *syntax.Token) Comment {
	return Comment{tok: t}
}

// Text returns the comment's exact source text, including the leading '#'.
func (c Comment) Text() string {
	if c.tok == nil {
		return ""
	}

	return c.tok.Text()
}

// Content returns the comment with its '#' marker and surrounding
// whitespace stripped.
func (c Comment) Content() string {
	return strings.TrimSpace(strings.TrimPrefix(c.Text(), "#"))
}

// Span returns the comment token's byte span.
func (c Comment) Span() text.Span {
	if c.tok == nil {
		return text.Span{}
	}

	return c.tok.Span()
}

// leadingComments walks n's children from the start, collecting every
// COMMENT token that appears before the first non-trivia content,
// stopping at the first blank line (two consecutive NEWLINEs) — a run
// separated from the item by a blank line is not "leading" it.
func leadingComments(n *syntax.Node) []Comment {
	var out []Comment

	newlineRun := 0

	for _, e := range n.Children() {
		if e.Token == nil {
			break
		}

		switch e.Token.Kind() {
		case syntax.KindComment:
			out = append(out, NewComment(e.Token))
			newlineRun = 0
		case syntax.KindWhitespace:
		case syntax.KindNewline:
			newlineRun++
			if newlineRun >= 2 {
				return nil
			}
		default:
			return out
		}
	}

	return out
}

// tailingComment returns the COMMENT token on the same source line as the
// end of n's last non-trivia content, before the next NEWLINE.
func tailingComment(n *syntax.Node) (Comment, bool) {
	children := n.Children()

	lastContent := -1

	for i, e := range children {
		if e.Token != nil && (e.Token.Kind().IsTrivia() || e.Token.Kind() == syntax.KindNewline) {
			continue
		}

		lastContent = i
	}

	if lastContent == -1 {
		return Comment{}, false
	}

	for i := lastContent + 1; i < len(children); i++ {
		e := children[i]
		if e.Token == nil {
			return Comment{}, false
		}

		switch e.Token.Kind() {
		case syntax.KindWhitespace:
			continue
		case syntax.KindComment:
			return NewComment(e.Token), true
		default:
			return Comment{}, false
		}
	}

	return Comment{}, false
}

// DanglingComments returns every COMMENT token directly inside n (an Array
// or InlineTable) when n holds no entries at all — comments that live
// inside otherwise-empty brackets, e.g.:
//
//	x = [
//	    # dangling
//	]
//
// It returns nil as soon as n holds any value or key-value. The comments
// come back as one flat run in source order; they are not split into
// begin/middle/end groups.
func DanglingComments(n *syntax.Node) []Comment {
	hasEntries := len(n.ChildNodesOfKind(syntax.KindValue)) > 0 || len(n.ChildNodesOfKind(syntax.KindKeyValue)) > 0
	if hasEntries {
		return nil
	}

	var out []Comment

	for _, tok := range n.ChildTokensOfKind(syntax.KindComment) {
		out = append(out, NewComment(tok))
	}

	return out
}
