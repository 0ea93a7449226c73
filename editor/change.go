package editor

import (
	"sort"

	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// Kind distinguishes the three shapes a [Change] can take.
type Kind int

const (
	// ReplaceRange swaps the existing content exactly covering Span for
	// New.
	ReplaceRange Kind = iota
	// Remove deletes the existing content exactly covering Span.
	Remove
	// Insert splices New in at Span's (zero-width) position, between
	// whichever two siblings currently meet there.
	Insert
)

// Change describes one edit to a green tree, expressed purely in terms of
// the absolute byte span it touches. ReplaceRange and Remove require Span
// to exactly cover one or more complete, consecutive sibling children of
// some node in the tree — [Apply] never splits a token or a single child
// midway, the same granularity rowan-style green trees edit at in the
// original implementation's formatter and code-action layers. Insert's
// Span must be zero-width (Start == End) and land exactly at an existing
// child boundary.
type Change struct {
	Kind Kind
	Span text.Span
	New  []syntax.GreenChild
}

// Replace builds a ReplaceRange change.
func Replace(span text.Span, new []syntax.GreenChild) Change {
	return Change{Kind: ReplaceRange, Span: span, New: new}
}

// RemoveSpan builds a Remove change.
func RemoveSpan(span text.Span) Change {
	return Change{Kind: Remove, Span: span}
}

// InsertAt builds an Insert change at the zero-width position offset.
func InsertAt(offset uint32, new []syntax.GreenChild) Change {
	return Change{Kind: Insert, Span: text.Span{Start: offset, End: offset}, New: new}
}

// Apply rebuilds root's tree with every change spliced in, sharing every
// subtree that no change touches. Changes may be passed in any order.
func Apply(root *syntax.Node, changes []Change) *syntax.Node {
	if len(changes) == 0 {
		return root
	}

	sorted := make([]Change, len(changes))
	copy(sorted, changes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Span.Start < sorted[j].Span.Start })

	green := rewrite(root.Green(), root.Span().Start, sorted)

	return syntax.NewRoot(green)
}

// rewrite returns n unchanged (same pointer) if no change in changes
// touches n's span — the structural-sharing property that makes repeated
// small edits to a large document cheap.
func rewrite(n *syntax.GreenNode, offset uint32, changes []Change) *syntax.GreenNode {
	span := text.Span{Start: offset, End: offset + n.TextLen}

	relevant := inRange(changes, span)
	if len(relevant) == 0 {
		return n
	}

	var out []syntax.GreenChild

	childOffset := offset
	i := 0

	for i < len(n.Children) {
		out = append(out, insertsAt(relevant, childOffset)...)

		if run, ok := findRun(relevant, childOffset); ok {
			end, j := runEnd(n.Children, i, childOffset, run.Span.End)
			if end == run.Span.End {
				if run.Kind != Remove {
					out = append(out, run.New...)
				}

				childOffset = end
				i = j

				continue
			}
		}

		c := n.Children[i]
		if c.Node != nil {
			inner := withoutBoundaryInserts(changes, childOffset, childOffset+c.TextLen())
			out = append(out, syntax.NewGreenNodeChild(rewrite(c.Node, childOffset, inner)))
		} else {
			out = append(out, c)
		}

		childOffset += c.TextLen()
		i++
	}

	out = append(out, insertsAt(relevant, span.End)...)

	return syntax.NewGreenNode(n.Kind, out)
}

// runEnd walks children starting at index i (whose first byte sits at the
// absolute offset start), accumulating byte length until it reaches or
// passes target, returning the absolute offset actually reached and the
// index just past the last child consumed.
func runEnd(children []syntax.GreenChild, i int, start, target uint32) (uint32, int) {
	offset := start

	j := i
	for j < len(children) && offset < target {
		offset += children[j].TextLen()
		j++
	}

	return offset, j
}

// findRun returns the first ReplaceRange/Remove change whose span starts
// exactly at offset.
func findRun(changes []Change, offset uint32) (Change, bool) {
	for _, c := range changes {
		if c.Kind != Insert && c.Span.Start == offset {
			return c, true
		}
	}

	return Change{}, false
}

// inRange filters changes down to those whose span falls within, or whose
// insertion point lands on the boundary of, n's span.
func inRange(changes []Change, span text.Span) []Change {
	var out []Change

	for _, c := range changes {
		if c.Span.Start >= span.Start && c.Span.End <= span.End {
			out = append(out, c)
		}
	}

	return out
}

// withoutBoundaryInserts drops Insert changes sitting exactly at start or
// end: the parent's loop already splices those in between siblings, so
// the child must not splice them a second time.
func withoutBoundaryInserts(changes []Change, start, end uint32) []Change {
	var out []Change

	for _, c := range changes {
		if c.Kind == Insert && (c.Span.Start == start || c.Span.Start == end) {
			continue
		}

		out = append(out, c)
	}

	return out
}

func insertsAt(changes []Change, offset uint32) []syntax.GreenChild {
	var out []syntax.GreenChild

	for _, c := range changes {
		if c.Kind == Insert && c.Span.Start == offset {
			out = append(out, c.New...)
		}
	}

	return out
}
