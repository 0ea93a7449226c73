package document

import (
	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/text"
)

// Key is a single resolved key segment: its spelling kind, decoded text,
// and source span.
type Key struct {
	Kind  ast.KeyKind
	Raw   string // decoded text, used for TOML-equality comparisons
	Range text.Span
}
