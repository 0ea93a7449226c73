package format

import "strings"

// QuoteStyle selects the preferred quote character for strings that have
// no escape requiring one quote kind over the other.
type QuoteStyle string

const (
	QuoteDouble   QuoteStyle = "double"
	QuoteSingle   QuoteStyle = "single"
	QuotePreserve QuoteStyle = "preserve"
)

// DateTimeDelimiter selects the separator the formatter writes between a
// date and a time in an offset/local date-time literal, per RFC 3339's
// allowance of either `T` or a space.
type DateTimeDelimiter string

const (
	DelimiterT        DateTimeDelimiter = "T"
	DelimiterSpace    DateTimeDelimiter = "space"
	DelimiterPreserve DateTimeDelimiter = "preserve"
)

// IndentStyle selects spaces or tabs for indentation.
type IndentStyle string

const (
	IndentSpace IndentStyle = "space"
	IndentTab   IndentStyle = "tab"
)

// LineEnding selects the line terminator the formatter writes between
// lines. TOML permits only these two.
type LineEnding string

const (
	LineFeed       LineEnding = "lf"
	CarriageReturn LineEnding = "crlf"
)

// Options configures the formatter's freedom of choice: everything the
// grammar leaves unconstrained. The remaining layout rules (one space
// around `=`, a single space after a comma in a single-line array, one
// space inside a single-line array's brackets) are fixed, not
// configurable, matching the
// original implementation's split between FormatOptions and the
// unconditional FormatDefinitions.
type Options struct {
	IndentStyle       IndentStyle
	IndentWidth       int
	LineWidth         int
	LineEnding        LineEnding
	DateTimeDelimiter DateTimeDelimiter
	QuoteStyle        QuoteStyle
}

// Default returns the formatter's baseline configuration.
func Default() Options {
	return Options{
		IndentStyle:       IndentSpace,
		IndentWidth:       2,
		LineWidth:         80,
		LineEnding:        LineFeed,
		DateTimeDelimiter: DelimiterPreserve,
		QuoteStyle:        QuotePreserve,
	}
}

func (o Options) indentUnit() string {
	if o.IndentStyle == IndentTab {
		return "\t"
	}

	width := o.IndentWidth
	if width <= 0 {
		width = 2
	}

	return strings.Repeat(" ", width)
}

func (o Options) newline() string {
	if o.LineEnding == CarriageReturn {
		return "\r\n"
	}

	return "\n"
}
