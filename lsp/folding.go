package lsp

import (
	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/syntax"
	"github.com/tombi-toml/tombi/text"
)

// FoldingRanges computes every collapsible region in uri per §4.8: one per
// Table/ArrayOfTable (the whole header-and-body block), one per array and
// inline-table literal, and one per leading-comment run of length >= 2.
func FoldingRanges(store *DocumentStore, uri string) ([]FoldingRange, bool) {
	doc, ok := store.get(uri)
	if !ok {
		return nil, false
	}

	root, _, index, _, _ := doc.snapshot()

	f := &folder{index: index}
	f.walkRoot(root)

	return f.out, true
}

type folder struct {
	index *text.Index
	out   []FoldingRange
}

func (f *folder) addRegion(span text.Span, kind FoldingRangeKind) {
	rng := f.index.Range(span)
	if rng.Start.Line >= rng.End.Line {
		return
	}

	f.out = append(f.out, FoldingRange{StartLine: rng.Start.Line, EndLine: rng.End.Line, Kind: kind})
}

func (f *folder) addComments(comments []ast.Comment) {
	if len(comments) < 2 {
		return
	}

	span := comments[0].Span().Add(comments[len(comments)-1].Span())
	f.addRegion(span, FoldingComment)
}

func (f *folder) walkRoot(root ast.Root) {
	for _, item := range root.Items() {
		switch item.Kind() {
		case syntax.KindTable:
			f.addComments(item.Table.LeadingComments())
			f.addRegion(item.Table.Span(), FoldingRegion)
			f.walkEntries(item.Table.KeyValues())
		case syntax.KindArrayOfTable:
			f.addComments(item.ArrayOfTable.LeadingComments())
			f.addRegion(item.ArrayOfTable.Span(), FoldingRegion)
			f.walkEntries(item.ArrayOfTable.KeyValues())
		case syntax.KindKeyValue:
			f.addComments(item.KeyValue.LeadingComments())
			f.walkEntry(item.KeyValue)
		}
	}
}

func (f *folder) walkEntries(kvs []ast.KeyValue) {
	for _, kv := range kvs {
		f.addComments(kv.LeadingComments())
		f.walkEntry(kv)
	}
}

func (f *folder) walkEntry(kv ast.KeyValue) {
	val, ok := kv.Value()
	if !ok {
		return
	}

	f.walkValue(val)
}

func (f *folder) walkValue(v ast.Value) {
	if arr, ok := v.Array(); ok {
		f.addRegion(arr.Span(), FoldingRegion)

		for _, elem := range arr.Values() {
			f.walkValue(elem)
		}

		return
	}

	if it, ok := v.InlineTable(); ok {
		f.addRegion(it.Span(), FoldingRegion)
		f.walkEntries(it.KeyValues())
	}
}
