package document

import "github.com/tombi-toml/tombi/text"

// Value is the sum type every document-tree node implements: the Go
// rendition of the specification's tagged `Value` union, closed by
// convention via the unexported valueNode marker method rather than
// dynamic dispatch over a shared interface of behavior.
type Value interface {
	valueNode()

	// Span returns the tight byte span of this value's concrete text.
	Span() text.Span

	// SymbolSpan returns the span a user would consider "this value" —
	// for a scalar the same as Span, for a Table/Array element the
	// entire header-and-body block.
	SymbolSpan() text.Span
}

// IntegerKind records which radix an [Integer] literal was written in.
type IntegerKind int

const (
	IntegerDec IntegerKind = iota
	IntegerHex
	IntegerOct
	IntegerBin
)

// Boolean is a `true`/`false` literal.
type Boolean struct {
	Val   bool
	Range text.Span
}

func (Boolean) valueNode()                {}
func (b Boolean) Span() text.Span         { return b.Range }
func (b Boolean) SymbolSpan() text.Span   { return b.Range }

// Integer is any of TOML's four integer literal forms.
type Integer struct {
	Kind  IntegerKind
	Val   int64
	Range text.Span
}

func (Integer) valueNode()              {}
func (i Integer) Span() text.Span       { return i.Range }
func (i Integer) SymbolSpan() text.Span { return i.Range }

// Float is a floating-point literal, including `inf`/`nan` and their
// signed forms.
type Float struct {
	Val   float64
	Range text.Span
}

func (Float) valueNode()              {}
func (f Float) Span() text.Span       { return f.Range }
func (f Float) SymbolSpan() text.Span { return f.Range }

// StringKind records which of TOML's four string literal forms produced a
// [String] value.
type StringKind int

const (
	StringBasic StringKind = iota
	StringMultiLineBasic
	StringLiteral
	StringMultiLineLiteral
)

// String is a decoded string value. Raw holds the decoded text (escapes
// interpreted, delimiters stripped) — never the original source spelling,
// which remains available from the AST/syntax layers for anything that
// needs it (the formatter, in particular).
type String struct {
	Kind  StringKind
	Raw   string
	Range text.Span
}

func (String) valueNode()              {}
func (s String) Span() text.Span       { return s.Range }
func (s String) SymbolSpan() text.Span { return s.Range }

// OffsetDateTime is a date-time literal with a UTC offset.
type OffsetDateTime struct {
	Year, Month, Day          int
	Hour, Minute, Second, Nsec int
	OffsetMinutes             int // minutes east of UTC
	Range                     text.Span
}

func (OffsetDateTime) valueNode()              {}
func (d OffsetDateTime) Span() text.Span       { return d.Range }
func (d OffsetDateTime) SymbolSpan() text.Span { return d.Range }

// LocalDateTime is a date-time literal with no offset.
type LocalDateTime struct {
	Year, Month, Day           int
	Hour, Minute, Second, Nsec int
	Range                      text.Span
}

func (LocalDateTime) valueNode()              {}
func (d LocalDateTime) Span() text.Span       { return d.Range }
func (d LocalDateTime) SymbolSpan() text.Span { return d.Range }

// LocalDate is a bare calendar date.
type LocalDate struct {
	Year, Month, Day int
	Range            text.Span
}

func (LocalDate) valueNode()              {}
func (d LocalDate) Span() text.Span       { return d.Range }
func (d LocalDate) SymbolSpan() text.Span { return d.Range }

// LocalTime is a bare time of day.
type LocalTime struct {
	Hour, Minute, Second, Nsec int
	Range                      text.Span
}

func (LocalTime) valueNode()              {}
func (t LocalTime) Span() text.Span       { return t.Range }
func (t LocalTime) SymbolSpan() text.Span { return t.Range }

// Incomplete marks a value that could not be parsed at all — the
// specification's "never participates in schema validation" placeholder.
type Incomplete struct {
	Range text.Span
}

func (Incomplete) valueNode()              {}
func (i Incomplete) Span() text.Span       { return i.Range }
func (i Incomplete) SymbolSpan() text.Span { return i.Range }
