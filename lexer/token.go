package lexer

import (
	"strconv"

	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// Token is one lexical atom: a kind, its exact source text, and the byte
// span it covers.
type Token struct {
	Kind syntax.Kind
	Text string
	Span text.Span
}

// ErrorKind enumerates the lexical error taxonomy from the specification.
type ErrorKind int

// Lexical error kinds.
const (
	ErrInvalidKey ErrorKind = iota
	ErrInvalidBasicString
	ErrInvalidLiteralString
	ErrInvalidMultilineBasicString
	ErrInvalidMultilineLiteralString
	ErrInvalidNumber
	ErrInvalidOffsetDateTime
	ErrInvalidLocalDateTime
	ErrInvalidLocalDate
	ErrInvalidLocalTime
	ErrInvalidLineBreak
	ErrInvalidToken
)

var errorKindNames = [...]string{
	"InvalidKey",
	"InvalidBasicString",
	"InvalidLiteralString",
	"InvalidMultilineBasicString",
	"InvalidMultilineLiteralString",
	"InvalidNumber",
	"InvalidOffsetDateTime",
	"InvalidLocalDateTime",
	"InvalidLocalDate",
	"InvalidLocalTime",
	"InvalidLineBreak",
	"InvalidToken",
}

// String implements [fmt.Stringer].
func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}

	return "Unknown"
}

// Error is a lexical error with the span it was detected at. It never
// carries a nil span: the lexer always knows where it went wrong.
type Error struct {
	Kind ErrorKind
	Span text.Span
}

func (e *Error) Error() string {
	return e.Kind.String() + " at " + spanString(e.Span)
}

// spanString renders a byte span as "[start,end)". Lexer errors carry only
// byte spans, with no line/column, because building a position index for
// every lex call would be wasted work for callers (the parser, mainly) that
// only need spans.
func spanString(s text.Span) string {
	return "[" + strconv.FormatUint(uint64(s.Start), 10) + "," + strconv.FormatUint(uint64(s.End), 10) + ")"
}
