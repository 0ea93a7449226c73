package lsp

import (
	"context"

	"github.com/tombi-toml/tombi/document"
	"github.com/tombi-toml/tombi/format"
	"github.com/tombi-toml/tombi/schema"
)

// Format runs the formatter over uri's current syntax tree and returns a
// single replacement text for the whole document, per §4.8 ("return a
// single TextEdit replacing the whole document"). Table key and array
// value reordering hints are drawn from the resolved schema, if any.
func Format(ctx context.Context, store *DocumentStore, uri string, opts format.Options) (string, bool) {
	doc, ok := store.get(uri)
	if !ok {
		return "", false
	}

	root, table, _, _, _ := doc.snapshot()

	hints := format.SchemaHints{}

	if ds, ok := store.resolveSchema(ctx, doc); ok && table != nil {
		schemaCtx := &schema.Context{Ctx: ctx, Store: store.schemas, Strict: store.config.Schema.Strict}
		collectHints(schemaCtx, currentSchema(ds), nil, table, hints)
	}

	return format.Format(root, opts, hints), true
}

// collectHints walks table in lockstep with cur's schema, recording a
// [format.Hint] for every accessor path whose schema declares
// `x-tombi-table-keys-order`/`x-tombi-array-values-order`, and recursing
// into nested tables and arrays so nested reordering hints are collected
// too.
func collectHints(ctx *schema.Context, cur schema.CurrentSchema, path []schema.Accessor, table *document.Table, hints format.SchemaHints) {
	if cur.Value == nil || cur.Value.Raw == nil {
		return
	}

	ext := cur.Value.Extensions
	if ext.TableKeysOrder != schema.KeysOrderNone {
		var propertyOrder []string
		if ext.TableKeysOrder == schema.KeysOrderSchema {
			propertyOrder = cur.Value.Raw.PropertyOrder
		}

		hints[schema.JoinAccessors(path)] = format.Hint{TableKeysOrder: ext.TableKeysOrder, PropertyOrder: propertyOrder}
	}

	table.Each(func(name string, _ document.Key, value document.Value) bool {
		childPath := append(append([]schema.Accessor{}, path...), schema.KeyAccessor(name))

		next, ok := schema.Descend(cur, ctx, schema.KeyAccessor(name), value.Span())
		if !ok {
			return true
		}

		switch v := value.(type) {
		case *document.Table:
			collectHints(ctx, next, childPath, v, hints)
		case *document.Array:
			collectArrayHints(ctx, next, childPath, v, hints)
		}

		return true
	})
}

func collectArrayHints(ctx *schema.Context, cur schema.CurrentSchema, path []schema.Accessor, arr *document.Array, hints format.SchemaHints) {
	if cur.Value == nil || cur.Value.Raw == nil {
		return
	}

	if ext := cur.Value.Extensions.ArrayValuesOrder; ext != schema.ValuesOrderNone {
		hint := hints[schema.JoinAccessors(path)]
		hint.ArrayValuesOrder = ext
		hints[schema.JoinAccessors(path)] = hint
	}

	for i, elem := range arr.Values {
		tbl, ok := elem.(*document.Table)
		if !ok {
			continue
		}

		next, ok := schema.Descend(cur, ctx, schema.IndexAccessor(i), elem.Span())
		if !ok {
			continue
		}

		collectHints(ctx, next, append(append([]schema.Accessor{}, path...), schema.IndexAccessor(i)), tbl, hints)
	}
}
