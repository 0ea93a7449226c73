package lexer

import (
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// scanDateTime is called once scanBareOrValue's lookahead (looksLikeDateStart)
// has decided the token at start looks like a date or time. It rewinds to
// start and rescans the whole token from scratch with full date-time
// grammar, since date-times contain characters (':') outside the bare-key
// class that the initial scan could not have consumed.
func (l *Lexer) scanDateTime(start int) Token {
	l.pos = start

	hasDate := l.scanDateDigits()
	hasTime := false
	hasOffset := false

	if hasDate {
		if l.peek() == 'T' || l.peek() == 't' || l.peek() == ' ' {
			save := l.pos
			l.advance()

			if ok := l.scanTimeDigits(); ok {
				hasTime = true
			} else {
				l.pos = save
			}
		}
	} else {
		hasTime = l.scanTimeDigits()
	}

	if hasTime {
		hasOffset = l.scanOffset()
	}

	kind := l.classifyDateTimeKind(hasDate, hasTime, hasOffset, start)

	return l.tokenFrom(kind, start)
}

// scanDateDigits consumes "YYYY-MM-DD" if present at l.pos.
func (l *Lexer) scanDateDigits() bool {
	save := l.pos

	if !(l.digitsN(4) && l.consumeByte('-') && l.digitsN(2) && l.consumeByte('-') && l.digitsN(2)) {
		l.pos = save
		return false
	}

	return true
}

// scanTimeDigits consumes "HH:MM[:SS[(.|,)fff...]]" if present at l.pos.
// Seconds are optional so v1.1.0-preview's relaxed "HH:MM" local times lex
// the same as v1.0.0's; the parser accepts both, and the document
// package's elaboration rejects the shortened form when the active TOML
// version doesn't allow it.
func (l *Lexer) scanTimeDigits() bool {
	save := l.pos

	if !(l.digitsN(2) && l.consumeByte(':') && l.digitsN(2)) {
		l.pos = save
		return false
	}

	if l.peek() == ':' {
		secSave := l.pos
		l.advance()

		if !l.digitsN(2) {
			l.pos = secSave
		}
	}

	if l.peek() == '.' || l.peek() == ',' {
		fracSave := l.pos
		l.advance()

		n := 0
		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.advance()
			n++
		}

		if n == 0 {
			l.pos = fracSave
		}
	}

	return true
}

// scanOffset consumes a UTC offset ("Z", "z", or "+HH:MM"/"-HH:MM") if
// present.
func (l *Lexer) scanOffset() bool {
	switch l.peek() {
	case 'Z', 'z':
		l.advance()

		return true
	case '+', '-':
		save := l.pos
		l.advance()

		if l.digitsN(2) && l.consumeByte(':') && l.digitsN(2) {
			return true
		}

		l.pos = save

		return false
	}

	return false
}

// digitsN consumes exactly n ASCII digits, or consumes nothing and returns
// false if fewer than n are available.
func (l *Lexer) digitsN(n int) bool {
	save := l.pos

	for i := 0; i < n; i++ {
		if l.pos >= len(l.src) || l.src[l.pos] < '0' || l.src[l.pos] > '9' {
			l.pos = save
			return false
		}

		l.advance()
	}

	return true
}

func (l *Lexer) consumeByte(b byte) bool {
	if l.peek() == b {
		l.advance()
		return true
	}

	return false
}

func (l *Lexer) classifyDateTimeKind(hasDate, hasTime, hasOffset bool, start int) syntax.Kind {
	switch {
	case hasDate && hasTime && hasOffset:
		return syntax.KindOffsetDateTime
	case hasDate && hasTime:
		return syntax.KindLocalDateTime
	case hasDate:
		return syntax.KindLocalDate
	case hasTime:
		return syntax.KindLocalTime
	}

	l.addError(ErrInvalidToken, text.Span{Start: uint32(start), End: uint32(l.pos)})

	return syntax.KindInvalidToken
}
