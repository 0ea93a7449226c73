package parser

import "github.com/tombi-toml/tombi/syntax"

type eventKind uint8

const (
	eventTombstone eventKind = iota
	eventStart
	eventFinish
	eventToken
	eventError
)

// event is one entry in the parser's flat event buffer. Start events carry
// a forwardParent, the index of a later Start event that should wrap this
// one once the tree is built — the mechanism behind [Marker.Precede]'s
// retroactive reparenting. -1 means no forward parent.
type event struct {
	kind          eventKind
	node          syntax.Kind
	forwardParent int
	raw           int // index into Parser.raw, valid when kind == eventToken
	err           *Error
}

// Marker reserves a slot in the event buffer for a node that hasn't
// decided its kind yet. Every Marker must eventually be completed or
// abandoned.
type Marker struct {
	pos int
}

// CompletedMarker is the result of completing a Marker with a node kind.
// It can be preceded to retroactively wrap it in a new parent node.
type CompletedMarker struct {
	pos  int
	kind syntax.Kind
}

// Kind reports the node kind this marker was completed with.
func (m CompletedMarker) Kind() syntax.Kind {
	return m.kind
}

func (p *Parser) start() Marker {
	pos := len(p.events)
	p.events = append(p.events, event{kind: eventTombstone, forwardParent: -1})

	return Marker{pos: pos}
}

// complete finalizes m as a node of kind, closing it immediately (every
// event pushed since m.pos becomes its children).
func (m Marker) complete(p *Parser, kind syntax.Kind) CompletedMarker {
	p.events[m.pos].kind = eventStart
	p.events[m.pos].node = kind
	p.events = append(p.events, event{kind: eventFinish, forwardParent: -1})

	return CompletedMarker{pos: m.pos, kind: kind}
}

// abandon discards m without producing a node; anything it would have
// wrapped attaches to whatever marker is open above it instead.
func (m Marker) abandon(p *Parser) {
	if m.pos == len(p.events)-1 {
		p.events = p.events[:m.pos]
		return
	}

	p.events[m.pos].kind = eventTombstone
}

// precede opens a new marker that will wrap m once completed: m's Start
// event gets a forwardParent pointing at the new marker's slot, so the
// builder opens the new node first, then immediately re-enters m's node
// inside it.
func (m CompletedMarker) precede(p *Parser) Marker {
	newMarker := p.start()
	p.events[m.pos].forwardParent = newMarker.pos

	return newMarker
}
