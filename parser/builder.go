package parser

import "github.com/tombi-toml/tombi/syntax"

type nodeBuilder struct {
	kind     syntax.Kind
	children []syntax.GreenChild
}

// builder replays a Parser's flat event buffer into a [syntax.GreenNode],
// interleaving the trivia tokens the event buffer itself never records
// (the grammar only ever sees non-trivia tokens; trivia is reattached here
// purely from raw token position, so no byte of input can be dropped).
type builder struct {
	raw    []tokenLike
	rawPos int
	stack  []*nodeBuilder
	result *syntax.GreenNode
}

// tokenLike is the subset of lexer.Token the builder needs; kept as its
// own type so builder.go doesn't import the lexer package just for a
// struct literal shape.
type tokenLike struct {
	Kind syntax.Kind
	Text string
}

func build(p *Parser) *syntax.GreenNode {
	raw := make([]tokenLike, len(p.raw))
	for i, tok := range p.raw {
		raw[i] = tokenLike{Kind: tok.Kind, Text: tok.Text}
	}

	b := &builder{raw: raw}
	events := p.events

	for i := 0; i < len(events); i++ {
		switch events[i].kind {
		case eventTombstone:
			continue
		case eventStart:
			b.pushChain(events, i)
		case eventFinish:
			b.finishNode()
		case eventToken:
			b.token(events[i].raw)
		case eventError:
			// Errors are collected directly on Parser.errs; nothing to
			// attach to the tree itself.
		}
	}

	if b.result == nil {
		// No grammar rule ran at all (e.g. an empty Root); synthesize an
		// empty root so callers never see a nil tree.
		return syntax.NewGreenNode(syntax.KindRoot, nil)
	}

	return b.result
}

func (b *builder) pushChain(events []event, i int) {
	if events[i].kind == eventTombstone {
		return
	}

	chain := []syntax.Kind{events[i].node}

	idx := events[i].forwardParent
	for idx != -1 {
		chain = append(chain, events[idx].node)
		next := events[idx].forwardParent
		events[idx].kind = eventTombstone
		idx = next
	}

	for j := len(chain) - 1; j >= 0; j-- {
		b.startNode(chain[j])
	}
}

func (b *builder) startNode(kind syntax.Kind) {
	b.stack = append(b.stack, &nodeBuilder{kind: kind})
}

func (b *builder) finishNode() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	if len(b.stack) == 0 {
		// Flush any trailing trivia, but never the synthetic zero-width EOF
		// token itself onto the tree.
		end := len(b.raw) - 1
		if end < 0 {
			end = 0
		}

		b.flushTriviaInto(top, end)
	}

	node := syntax.NewGreenNode(top.kind, top.children)

	if len(b.stack) == 0 {
		b.result = node
		return
	}

	parent := b.stack[len(b.stack)-1]
	parent.children = append(parent.children, syntax.NewGreenNodeChild(node))
}

func (b *builder) token(rawIdx int) {
	top := b.stack[len(b.stack)-1]
	b.flushTriviaInto(top, rawIdx)

	tok := b.raw[rawIdx]
	top.children = append(top.children, syntax.NewGreenToken(tok.Kind, tok.Text))
	b.rawPos = rawIdx + 1
}

func (b *builder) flushTriviaInto(target *nodeBuilder, upto int) {
	for b.rawPos < upto {
		tok := b.raw[b.rawPos]
		target.children = append(target.children, syntax.NewGreenToken(tok.Kind, tok.Text))
		b.rawPos++
	}
}
