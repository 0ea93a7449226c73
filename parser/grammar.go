package parser

import (
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/toml"
)

func isKeyStart(k syntax.Kind) bool {
	switch k {
	case syntax.KindBareKey, syntax.KindBasicString, syntax.KindLiteralString:
		return true
	default:
		return false
	}
}

func isScalarStart(k syntax.Kind) bool {
	switch k {
	case syntax.KindBasicString, syntax.KindMultiLineBasicString,
		syntax.KindLiteralString, syntax.KindMultiLineLiteralString,
		syntax.KindIntegerDec, syntax.KindIntegerHex, syntax.KindIntegerOct, syntax.KindIntegerBin,
		syntax.KindFloat, syntax.KindBoolean,
		syntax.KindOffsetDateTime, syntax.KindLocalDateTime, syntax.KindLocalDate, syntax.KindLocalTime:
		return true
	default:
		return false
	}
}

// parseRoot parses the whole document: a run of key-values, tables, and
// array-of-tables headers until EOF. It never returns early: an
// unrecognized token is wrapped in a [syntax.KindInvalidTokens] node and
// skipped so the loop always makes forward progress.
func parseRoot(p *Parser) {
	for !p.atEOF() {
		switch {
		case p.at(syntax.KindNewline):
			p.bump()
		case p.at(syntax.KindDoubleBracketStart):
			parseArrayOfTable(p)
		case p.at(syntax.KindBracketStart):
			parseTable(p)
		case isKeyStart(p.current()):
			parseKeyValue(p)
		default:
			m := p.start()
			p.errorAndBump(ErrExpectedKey)
			m.complete(p, syntax.KindInvalidTokens)
		}
	}
}

func parseTable(p *Parser) {
	m := p.start()
	p.bump() // '['
	parseKeys(p)
	p.expect(syntax.KindBracketEnd, ErrExpectedBracketEnd)
	consumeLineEnd(p)

	for {
		// A comment on its own line is trivia, so the NEWLINE after it is
		// the current token; step over it when an entry follows, so that
		// entry still belongs to this table.
		if p.at(syntax.KindNewline) && isKeyStart(p.nth(1)) {
			p.bump()

			continue
		}

		if !isKeyStart(p.current()) {
			break
		}

		parseKeyValue(p)
	}

	m.complete(p, syntax.KindTable)
}

func parseArrayOfTable(p *Parser) {
	m := p.start()
	p.bump() // '[['
	parseKeys(p)
	p.expect(syntax.KindDoubleBracketEnd, ErrExpectedDoubleBracketEnd)
	consumeLineEnd(p)

	for {
		// See parseTable: step over the NEWLINE a comment line leaves.
		if p.at(syntax.KindNewline) && isKeyStart(p.nth(1)) {
			p.bump()

			continue
		}

		if !isKeyStart(p.current()) {
			break
		}

		parseKeyValue(p)
	}

	m.complete(p, syntax.KindArrayOfTable)
}

// consumeLineEnd consumes the NEWLINE a Table/ArrayOfTable header or
// KeyValue must be followed by. EOF is an acceptable substitute (the last
// line of a file need not end in a newline). Anything else triggers
// ExpectedLineBreak and resyncs at the next newline.
func consumeLineEnd(p *Parser) {
	switch {
	case p.at(syntax.KindNewline):
		p.bump()
	case p.atEOF():
	default:
		p.error(ErrExpectedLineBreak, p.currentSpan())
		p.skipToLineBoundary()

		if p.at(syntax.KindNewline) {
			p.bump()
		}
	}
}

func parseKeys(p *Parser) CompletedMarker {
	m := p.start()

	parseKey(p)

	for p.at(syntax.KindDot) {
		p.bump()

		if !isKeyStart(p.current()) {
			p.error(ErrForbiddenKeysLastPeriod, p.currentSpan())
			break
		}

		parseKey(p)
	}

	return m.complete(p, syntax.KindKeys)
}

func parseKey(p *Parser) CompletedMarker {
	m := p.start()

	if isKeyStart(p.current()) {
		p.bump()
	} else {
		p.error(ErrExpectedKey, p.currentSpan())
	}

	return m.complete(p, syntax.KindKey)
}

func parseKeyValue(p *Parser) CompletedMarker {
	m := p.start()

	parseKeys(p)
	p.expect(syntax.KindEqual, ErrExpectedEqual)
	parseValue(p)
	consumeLineEnd(p)

	return m.complete(p, syntax.KindKeyValue)
}

// parseKeyValueInline is KeyValue without the trailing NEWLINE: inline
// table entries are separated by commas, not line endings.
func parseKeyValueInline(p *Parser) CompletedMarker {
	m := p.start()

	parseKeys(p)
	p.expect(syntax.KindEqual, ErrExpectedEqual)
	parseValue(p)

	return m.complete(p, syntax.KindKeyValue)
}

func parseValue(p *Parser) CompletedMarker {
	m := p.start()

	switch {
	case isScalarStart(p.current()):
		p.bump()
	case p.at(syntax.KindBracketStart):
		parseArray(p)
	case p.at(syntax.KindBraceStart):
		parseInlineTable(p)
	default:
		// Zero-width placeholder: a value is expected but what follows
		// (newline, comment, EOF) can't start one. No token is consumed so
		// the caller's own recovery (consumeLineEnd, a closing bracket
		// check, ...) still sees the token that triggered this.
		p.error(ErrExpectedValue, p.currentSpan())
	}

	return m.complete(p, syntax.KindValue)
}

func parseArray(p *Parser) CompletedMarker {
	m := p.start()

	p.bump() // '['
	skipNewlines(p)

	for !p.at(syntax.KindBracketEnd) && !p.atEOF() {
		parseValue(p)
		skipNewlines(p)

		if p.at(syntax.KindComma) {
			p.bump()
			skipNewlines(p)

			continue
		}

		break
	}

	p.expect(syntax.KindBracketEnd, ErrExpectedBracketEnd)

	return m.complete(p, syntax.KindArray)
}

func skipNewlines(p *Parser) {
	for p.at(syntax.KindNewline) {
		p.bump()
	}
}

// parseInlineTable implements the version-gated InlineTable grammar: a
// v1.0.0 document must keep the whole `{ ... }` on one line and may not
// end its entry list with a trailing comma; v1.1.0-preview relaxes both.
func parseInlineTable(p *Parser) CompletedMarker {
	m := p.start()

	p.bump() // '{'

	first := true

	for {
		if p.at(syntax.KindNewline) {
			if !p.version.AllowsMultiLineInlineTable() {
				p.errorVersioned(ErrInlineTableMustSingleLine, p.currentSpan(), toml.V1_1_0_Preview)
			}

			p.bump()

			continue
		}

		if p.at(syntax.KindBraceEnd) || p.atEOF() {
			break
		}

		if !first {
			if !p.at(syntax.KindComma) {
				break
			}

			p.bump()

			for p.at(syntax.KindNewline) {
				if !p.version.AllowsMultiLineInlineTable() {
					p.errorVersioned(ErrInlineTableMustSingleLine, p.currentSpan(), toml.V1_1_0_Preview)
				}

				p.bump()
			}

			if p.at(syntax.KindBraceEnd) {
				if !p.version.AllowsInlineTableTrailingComma() {
					p.errorVersioned(ErrForbiddenInlineTableLastComma, p.currentSpan(), toml.V1_1_0_Preview)
				}

				break
			}
		}

		parseKeyValueInline(p)

		first = false
	}

	p.expect(syntax.KindBraceEnd, ErrExpectedBraceEnd)

	return m.complete(p, syntax.KindInlineTable)
}
