package document

import (
	"fmt"

	"github.com/tombi-toml/tombi/text"
)

// ErrorKind enumerates the semantic (document-tree) error taxonomy from
// the specification.
type ErrorKind int

const (
	ErrDuplicateKey ErrorKind = iota
	ErrConflictTable
	ErrConflictArray
	ErrIncompleteNode
	ErrParseInt
	ErrParseFloat
	ErrParseString
	ErrParseDateTime
)

var errorKindNames = [...]string{
	"DuplicateKey",
	"ConflictTable",
	"ConflictArray",
	"IncompleteNode",
	"ParseIntError",
	"ParseFloatError",
	"ParseStringError",
	"ParseDateTimeError",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}

	return "Unknown"
}

// Error is a single elaboration diagnostic. Previous holds the span of an
// earlier definition the error conflicts with; [Build] never fills it in,
// so it is the zero span on every error Build reports, ConflictTable and
// ConflictArray included.
type Error struct {
	Kind     ErrorKind
	Span     text.Span
	Previous text.Span
	Message  string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return e.Kind.String()
}

// Range returns the error's byte span. schema.Diagnostic has the same
// method; lexer and parser errors carry only a Span field.
func (e *Error) Range() text.Span {
	return e.Span
}

func newError(kind ErrorKind, span text.Span, format string, args ...any) *Error {
	msg := kind.String()
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}

	return &Error{Kind: kind, Span: span, Message: msg}
}
