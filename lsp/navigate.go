package lsp

import (
	"github.com/tombi-toml/tombi/document"
	"github.com/tombi-toml/tombi/schema"
)

// navigateValue walks path one accessor at a time from v, the document-tree
// counterpart of [schemaAt]'s schema-side descent. It returns ok=false as
// soon as any step doesn't exist or isn't a container kind that accessor
// can step into.
func navigateValue(v document.Value, path []schema.Accessor) (document.Value, bool) {
	cur := v

	for _, a := range path {
		switch t := cur.(type) {
		case *document.Table:
			if a.IsIndex {
				return nil, false
			}

			val, ok := t.Get(a.Key)
			if !ok {
				return nil, false
			}

			cur = val
		case *document.Array:
			if !a.IsIndex || a.Index < 0 || a.Index >= len(t.Values) {
				return nil, false
			}

			cur = t.Values[a.Index]
		default:
			return nil, false
		}
	}

	return cur, true
}
