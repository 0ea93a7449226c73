package format

import "github.com/tombi-toml/tombi/schema"

// Hint carries the reordering preference a JSON Schema declared for one
// accessor path, via its `x-tombi-table-keys-order`/
// `x-tombi-array-values-order` extensions.
type Hint struct {
	TableKeysOrder   schema.KeysOrder
	ArrayValuesOrder schema.ValuesOrder
	// PropertyOrder is the schema's own declared property order, used
	// when TableKeysOrder is [schema.KeysOrderSchema]: the formatter has
	// no other source for "the order the schema declared", unlike
	// ascending/descending which it can compute from the keys alone.
	PropertyOrder []string
}

// SchemaHints carries every accessor path's [Hint], keyed by the same
// dotted/bracketed string [schema.JoinAccessors] renders. The formatter
// never walks a schema document itself: a caller that already resolved
// one (the CLI, the LSP's Format service) collects just the two knobs
// formatting cares about and hands them over.
type SchemaHints map[string]Hint

func (h SchemaHints) lookup(path string) Hint {
	if h == nil {
		return Hint{}
	}

	return h[path]
}
