package parser

import (
	"github.com/tombi-toml/tombi/lexer"
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
	"github.com/tombi-toml/tombi/toml"
)

// Parsed is the total output of [Parse]: a green tree covering every byte
// of the input, plus whatever errors were collected along the way. The
// parser never refuses to produce a tree.
type Parsed struct {
	Green  *syntax.GreenNode
	Errors []*Error
}

// Root returns the red-tree view of the parsed document.
func (p *Parsed) Root() *syntax.Node {
	return syntax.NewRoot(p.Green)
}

// Parser drives single-pass recursive descent over the non-trivia token
// stream, recording a flat event buffer that [build] later replays
// (interleaving trivia back in) to assemble the green tree.
type Parser struct {
	raw     []lexer.Token
	real    []int // raw index of each non-trivia token, including the final EOF
	pos     int   // index into real
	version toml.Version
	events  []event
	errs    []*Error
}

// Parse lexes and parses src under TOML edition v, producing a total
// result: every input, however malformed, yields some tree.
func Parse(src []byte, v toml.Version) *Parsed {
	raw, lexErrs := lexer.Lex(src)

	p := &Parser{raw: raw, version: v}

	for i, tok := range raw {
		if tok.Kind.IsTrivia() {
			continue
		}

		p.real = append(p.real, i)
	}

	for _, le := range lexErrs {
		p.errs = append(p.errs, &Error{Kind: ErrLexical, Span: le.Span, Message: le.Error()})
	}

	m := p.start()
	parseRoot(p)
	m.complete(p, syntax.KindRoot)

	green := build(p)

	return &Parsed{Green: green, Errors: p.errs}
}

func (p *Parser) nthRaw(n int) int {
	i := p.pos + n
	if i >= len(p.real) {
		return len(p.raw) - 1 // the lexer always terminates with an EOF token
	}

	return p.real[i]
}

// nth reports the kind of the token n positions ahead of the cursor,
// skipping trivia.
func (p *Parser) nth(n int) syntax.Kind {
	return p.raw[p.nthRaw(n)].Kind
}

func (p *Parser) current() syntax.Kind {
	return p.nth(0)
}

func (p *Parser) currentText() string {
	return p.raw[p.nthRaw(0)].Text
}

func (p *Parser) currentSpan() text.Span {
	return p.raw[p.nthRaw(0)].Span
}

func (p *Parser) at(kind syntax.Kind) bool {
	return p.current() == kind
}

func (p *Parser) atEOF() bool {
	return p.at(syntax.KindEOF)
}

// bump consumes the current token unconditionally and records it as a
// Token event.
func (p *Parser) bump() {
	if p.atEOF() {
		return
	}

	p.events = append(p.events, event{kind: eventToken, raw: p.nthRaw(0), forwardParent: -1})
	p.pos++
}

// expect consumes the current token if it matches kind, recording an error
// at the current position otherwise. It never advances past EOF.
func (p *Parser) expect(kind syntax.Kind, errKind ErrorKind) bool {
	if p.at(kind) {
		p.bump()
		return true
	}

	p.error(errKind, p.currentSpan())

	return false
}

func (p *Parser) error(kind ErrorKind, span text.Span) {
	p.errs = append(p.errs, &Error{Kind: kind, Span: span})
}

func (p *Parser) errorVersioned(kind ErrorKind, span text.Span, minVersion toml.Version) {
	p.errs = append(p.errs, &Error{Kind: kind, Span: span, MinVersion: minVersion})
}

// errorAndBump records an error at the current token's span and consumes
// it anyway, the standard single-token error-recovery step: forward
// progress is guaranteed, the malformed token still ends up in the tree.
func (p *Parser) errorAndBump(kind ErrorKind) {
	p.error(kind, p.currentSpan())

	if p.atEOF() {
		return
	}

	p.bump()
}

// skipToLineBoundary consumes tokens up to (not including) the next
// NEWLINE or EOF, used to recover from a malformed construct by resyncing
// at the next top-level boundary.
func (p *Parser) skipToLineBoundary() {
	for !p.atEOF() && p.current() != syntax.KindNewline {
		p.bump()
	}
}
