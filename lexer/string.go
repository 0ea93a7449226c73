package lexer

import (
	"strings"

	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// scanBasicString scans a `"..."` or `"""..."""` token starting at the
// opening quote. Escape sequences are not interpreted here; the scanner
// only needs to find the closing delimiter, tracking `\"` so an escaped
// quote never ends the string early. Decoding happens later, in
// [DecodeBasicString].
func (l *Lexer) scanBasicString(start int) Token {
	if l.peekAt(1) == '"' && l.peekAt(2) == '"' {
		return l.scanMultiLineString(start, '"', syntax.KindMultiLineBasicString, ErrInvalidMultilineBasicString)
	}

	l.advance() // opening quote

	for {
		switch l.peek() {
		case 0:
			if l.pos >= len(l.src) {
				l.addError(ErrInvalidBasicString, text.Span{Start: uint32(start), End: uint32(l.pos)})
				return l.tokenFrom(syntax.KindInvalidToken, start)
			}

			l.advance()
		case '\n', '\r':
			l.addError(ErrInvalidBasicString, text.Span{Start: uint32(start), End: uint32(l.pos)})
			return l.tokenFrom(syntax.KindInvalidToken, start)
		case '\\':
			l.advance()
			if l.pos < len(l.src) {
				l.advance()
			}
		case '"':
			l.advance()
			return l.tokenFrom(syntax.KindBasicString, start)
		default:
			l.advance()
		}
	}
}

// scanLiteralString scans a `'...'` or `'''...'''` token. Literal strings
// have no escape syntax at all, so the only thing to watch for past the
// opening run is the matching close.
func (l *Lexer) scanLiteralString(start int) Token {
	if l.peekAt(1) == '\'' && l.peekAt(2) == '\'' {
		return l.scanMultiLineString(start, '\'', syntax.KindMultiLineLiteralString, ErrInvalidMultilineLiteralString)
	}

	l.advance() // opening quote

	for {
		switch l.peek() {
		case 0:
			if l.pos >= len(l.src) {
				l.addError(ErrInvalidLiteralString, text.Span{Start: uint32(start), End: uint32(l.pos)})
				return l.tokenFrom(syntax.KindInvalidToken, start)
			}

			l.advance()
		case '\n', '\r':
			l.addError(ErrInvalidLiteralString, text.Span{Start: uint32(start), End: uint32(l.pos)})
			return l.tokenFrom(syntax.KindInvalidToken, start)
		case '\'':
			l.advance()
			return l.tokenFrom(syntax.KindLiteralString, start)
		default:
			l.advance()
		}
	}
}

// scanMultiLineString consumes a triple-quoted string body. TOML allows
// the quote character to appear unescaped inside the body as long as a run
// of three or more of it isn't mistaken for the terminator; in practice
// that means a run of 3, 4, or 5 quotes at the end closes the string (the
// last three are the delimiter, the rest are literal quote characters),
// and a run of 6 or more is malformed. basicEscapes selects whether `\`
// introduces an escape (true for `"""`, false for `'''`).
func (l *Lexer) scanMultiLineString(start int, quote byte, kind syntax.Kind, errKind ErrorKind) Token {
	basicEscapes := quote == '"'

	l.advance()
	l.advance()
	l.advance()

	// A newline immediately following the opening delimiter is part of the
	// delimiter, not the body (TOML §"multi-line basic strings").
	if l.peek() == '\r' && l.peekAt(1) == '\n' {
		l.advance()
		l.advance()
	} else if l.peek() == '\n' {
		l.advance()
	}

	for {
		if l.pos >= len(l.src) {
			l.addError(errKind, text.Span{Start: uint32(start), End: uint32(l.pos)})
			return l.tokenFrom(syntax.KindInvalidToken, start)
		}

		c := l.peek()

		if basicEscapes && c == '\\' {
			l.advance()
			if l.pos < len(l.src) {
				l.advance()
			}

			continue
		}

		if c == quote {
			run := 0
			runStart := l.pos

			for l.pos < len(l.src) && l.peek() == quote {
				l.advance()
				run++
			}

			switch {
			case run < 3:
				// A short run of quote characters is just body text.
				continue
			case run <= 5:
				// Last three quotes are the delimiter; any extra leading
				// quotes (run-3 of them) belong to the string body.
				return l.tokenFrom(kind, start)
			default:
				l.pos = runStart
				l.addError(errKind, text.Span{Start: uint32(start), End: uint32(l.pos)})
				return l.tokenFrom(syntax.KindInvalidToken, start)
			}
		}

		l.advance()
	}
}

// DecodeBasicString decodes the text of a [syntax.KindBasicString] or
// [syntax.KindMultiLineBasicString] token (quotes included) into its TOML
// string value, interpreting backslash escapes and multi-line line-ending
// backslash continuations.
func DecodeBasicString(raw string) (string, []*Error) {
	multiLine := strings.HasPrefix(raw, `"""`)

	body := raw
	if multiLine {
		body = strings.TrimSuffix(strings.TrimPrefix(body, `"""`), `"""`)

		// The newline right after the opening delimiter is not part of the
		// value.
		if strings.HasPrefix(body, "\r\n") {
			body = body[2:]
		} else {
			body = strings.TrimPrefix(body, "\n")
		}
	} else {
		body = strings.TrimSuffix(strings.TrimPrefix(body, `"`), `"`)
	}

	var out strings.Builder

	var errs []*Error

	runes := []rune(body)
	i := 0

	for i < len(runes) {
		c := runes[i]

		if c != '\\' {
			out.WriteRune(c)
			i++

			continue
		}

		if i+1 >= len(runes) {
			errs = append(errs, &Error{Kind: ErrInvalidBasicString})
			break
		}

		esc := runes[i+1]

		if multiLine && (esc == '\n' || esc == '\r' || esc == ' ' || esc == '\t') {
			j := i + 1
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t' || runes[j] == '\n' || runes[j] == '\r') {
				j++
			}

			i = j

			continue
		}

		switch esc {
		case 'b':
			out.WriteRune('\b')
			i += 2
		case 't':
			out.WriteRune('\t')
			i += 2
		case 'n':
			out.WriteRune('\n')
			i += 2
		case 'f':
			out.WriteRune('\f')
			i += 2
		case 'r':
			out.WriteRune('\r')
			i += 2
		case 'e':
			out.WriteRune('\x1b')
			i += 2
		case '"':
			out.WriteRune('"')
			i += 2
		case '\\':
			out.WriteRune('\\')
			i += 2
		case 'x':
			n, ok := decodeHexRune(runes, i+2, 2)
			if !ok {
				errs = append(errs, &Error{Kind: ErrInvalidBasicString})
				i += 2

				continue
			}

			out.WriteRune(n)
			i += 4
		case 'u':
			n, ok := decodeHexRune(runes, i+2, 4)
			if !ok {
				errs = append(errs, &Error{Kind: ErrInvalidBasicString})
				i += 2

				continue
			}

			out.WriteRune(n)
			i += 6
		case 'U':
			n, ok := decodeHexRune(runes, i+2, 8)
			if !ok {
				errs = append(errs, &Error{Kind: ErrInvalidBasicString})
				i += 2

				continue
			}

			out.WriteRune(n)
			i += 10
		default:
			errs = append(errs, &Error{Kind: ErrInvalidBasicString})
			i += 2
		}
	}

	return out.String(), errs
}

// DecodeLiteralString decodes the text of a [syntax.KindLiteralString] or
// [syntax.KindMultiLineLiteralString] token (quotes included). Literal
// strings have no escapes, so decoding is just delimiter stripping, plus
// trimming the leading newline a multi-line literal's opening delimiter
// swallows.
func DecodeLiteralString(raw string) (string, []*Error) {
	if strings.HasPrefix(raw, "'''") {
		body := strings.TrimSuffix(strings.TrimPrefix(raw, "'''"), "'''")
		body = strings.TrimPrefix(body, "\r\n")
		body = strings.TrimPrefix(body, "\n")

		return body, nil
	}

	return strings.TrimSuffix(strings.TrimPrefix(raw, "'"), "'"), nil
}

func decodeHexRune(runes []rune, start, n int) (rune, bool) {
	if start+n > len(runes) {
		return 0, false
	}

	var v rune

	for i := 0; i < n; i++ {
		c := runes[start+i]

		var d rune

		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}

		v = v*16 + d
	}

	return v, true
}
