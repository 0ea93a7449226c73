package format

import (
	"fmt"
	"strings"

	"github.com/tombi-toml/tombi/lexer"
	"github.com/tombi-toml/tombi/syntax"
)

// restyleString rewrites a single-line string token's text to the
// requested quote style, decoding through [lexer.DecodeBasicString] /
// [lexer.DecodeLiteralString] and re-encoding. Multi-line strings are left
// untouched: TOML's triple-quote delimiters carry line-folding semantics
// a simple re-quote would change.
func restyleString(kind syntax.Kind, raw string, style QuoteStyle) string {
	if style == QuotePreserve {
		return raw
	}

	switch kind {
	case syntax.KindBasicString, syntax.KindLiteralString:
	default:
		return raw
	}

	var value string

	switch kind {
	case syntax.KindBasicString:
		value, _ = lexer.DecodeBasicString(raw)
	case syntax.KindLiteralString:
		value, _ = lexer.DecodeLiteralString(raw)
	}

	if style == QuoteSingle && canBeLiteral(value) {
		return "'" + value + "'"
	}

	return `"` + encodeBasicStringBody(value) + `"`
}

// canBeLiteral reports whether value can round-trip as a TOML literal
// string: literal strings have no escapes at all, so an apostrophe or any
// control character other than tab rules it out.
func canBeLiteral(value string) bool {
	if strings.ContainsRune(value, '\'') {
		return false
	}

	for _, r := range value {
		if (r < 0x20 && r != '\t') || r == 0x7f {
			return false
		}
	}

	return true
}

// encodeBasicStringBody escapes value for a basic (double-quoted) string.
// Backslash, the quote character itself, and the handful of
// single-character controls get a short escape; every other control
// character gets a four-digit unicode escape, the same table the
// pelletier/go-toml string encoder uses.
func encodeBasicStringBody(value string) string {
	var b strings.Builder

	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}

// restyleDateTimeDelimiter rewrites the single separator character between
// a date and a time portion of an OFFSET_DATE_TIME/LOCAL_DATE_TIME token.
func restyleDateTimeDelimiter(kind syntax.Kind, raw string, delim DateTimeDelimiter) string {
	if delim == DelimiterPreserve {
		return raw
	}

	if kind != syntax.KindOffsetDateTime && kind != syntax.KindLocalDateTime {
		return raw
	}

	idx := strings.IndexAny(raw, "Tt ")
	if idx < 0 {
		return raw
	}

	want := "T"
	if delim == DelimiterSpace {
		want = " "
	}

	return raw[:idx] + want + raw[idx+1:]
}
