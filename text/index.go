package text

import "sort"

// Index maps byte offsets to [Position]s for a single source document. Build
// one with [NewIndex] and reuse it across every range computed during a
// parse; line starts are computed once, in a single forward scan.
type Index struct {
	src        []byte
	lineStarts []uint32 // byte offset of the first byte of each line
}

// NewIndex scans src and builds an [Index] for it. The scan is O(len(src))
// and happens once; every subsequent [Index.Position] / [Index.Offset] call
// is O(log lines).
func NewIndex(src []byte) *Index {
	starts := make([]uint32, 1, 16)
	starts[0] = 0

	for i, b := range src {
		if b == '\n' {
			starts = append(starts, uint32(i+1))
		}
	}

	return &Index{src: src, lineStarts: starts}
}

// Position converts a byte offset into a line/column [Position]. The column
// is a count of UTF-8 code points since the start of the line, not bytes.
func (ix *Index) Position(offset uint32) Position {
	line := sort.Search(len(ix.lineStarts), func(i int) bool {
		return ix.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}

	lineStart := ix.lineStarts[line]

	col := uint32(0)

	for i := lineStart; i < offset && int(i) < len(ix.src); {
		_, size := decodeRuneSize(ix.src[i:])
		i += uint32(size)
		col++
	}

	return Position{Line: uint32(line), Column: col}
}

// Range converts a [Span] into a [Range].
func (ix *Index) Range(span Span) Range {
	return Range{Start: ix.Position(span.Start), End: ix.Position(span.End)}
}

// Offset converts a [Position] back into a byte offset. Positions past the
// end of the document clamp to len(src).
func (ix *Index) Offset(pos Position) uint32 {
	if int(pos.Line) >= len(ix.lineStarts) {
		return uint32(len(ix.src))
	}

	offset := ix.lineStarts[pos.Line]

	for col := uint32(0); col < pos.Column && int(offset) < len(ix.src); col++ {
		_, size := decodeRuneSize(ix.src[offset:])
		if ix.src[offset] == '\n' {
			break
		}

		offset += uint32(size)
	}

	return offset
}

// decodeRuneSize returns the byte length of the UTF-8 rune starting at b[0].
// It never fails: invalid leading bytes are treated as length 1, matching
// how the lexer itself recovers from malformed UTF-8 without panicking.
func decodeRuneSize(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}

	c := b[0]

	switch {
	case c < 0x80:
		return rune(c), 1
	case c&0xE0 == 0xC0 && len(b) >= 2:
		return 0, 2
	case c&0xF0 == 0xE0 && len(b) >= 3:
		return 0, 3
	case c&0xF8 == 0xF0 && len(b) >= 4:
		return 0, 4
	default:
		return 0, 1
	}
}
