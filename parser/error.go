package parser

import (
	"github.com/tombi-toml/tombi/text"
	"github.com/tombi-toml/tombi/toml"
)

// ErrorKind enumerates the parser's syntactic error taxonomy.
type ErrorKind int

// Syntactic error kinds, plus Lexical for lexer errors threaded through
// into the same diagnostic stream.
const (
	ErrLexical ErrorKind = iota
	ErrExpectedKey
	ErrExpectedValue
	ErrExpectedEqual
	ErrExpectedComma
	ErrExpectedBracketEnd
	ErrExpectedDoubleBracketEnd
	ErrExpectedBraceEnd
	ErrExpectedLineBreak
	ErrForbiddenKeysLastPeriod
	ErrInlineTableMustSingleLine
	ErrForbiddenInlineTableLastComma
)

var errorKindNames = [...]string{
	"Lexical",
	"ExpectedKey",
	"ExpectedValue",
	"ExpectedEqual",
	"ExpectedComma",
	"ExpectedBracketEnd",
	"ExpectedDoubleBracketEnd",
	"ExpectedBraceEnd",
	"ExpectedLineBreak",
	"ForbiddenKeysLastPeriod",
	"InlineTableMustSingleLine",
	"ForbiddenInlineTableLastComma",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}

	return "Unknown"
}

// Error is a single parser diagnostic. MinVersion is non-empty only for
// version-sensitive constructs (e.g. a multi-line inline table, valid only
// under v1.1.0-preview); callers filter these against the document's
// active [toml.Version] before surfacing them, exactly as the spec
// describes for version-gated diagnostics.
type Error struct {
	Kind       ErrorKind
	Span       text.Span
	Message    string
	MinVersion toml.Version
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return e.Kind.String()
}
