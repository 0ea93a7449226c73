package lsp

import (
	"context"
	"fmt"

	"github.com/tombi-toml/tombi/document"
	"github.com/tombi-toml/tombi/schema"
	"github.com/tombi-toml/tombi/text"
)

// Completion proposes keys or values at pos in uri, per §4.8: at a key
// position, every property the enclosing table's schema declares that
// isn't already present; at a value position, the schema's enum values
// and default.
func Completion(ctx context.Context, store *DocumentStore, uri string, pos text.Position) ([]CompletionItem, bool) {
	doc, ok := store.get(uri)
	if !ok {
		return nil, false
	}

	root, table, index, _, _ := doc.snapshot()
	if table == nil {
		return nil, false
	}

	offset := index.Offset(pos)

	loc, ok := locate(root, offset)
	if !ok {
		return nil, false
	}

	ds, ok := store.resolveSchema(ctx, doc)
	if !ok {
		return nil, false
	}

	schemaCtx := &schema.Context{Ctx: ctx, Store: store.schemas, Strict: store.config.Schema.Strict}

	if loc.Key != nil {
		return completeKey(schemaCtx, currentSchema(ds), table, loc.Path), true
	}

	if loc.Value != nil {
		cur, ok := schemaAt(currentSchema(ds), schemaCtx, loc.Path, loc.Span())
		if !ok {
			return nil, true
		}

		return completeValue(cur), true
	}

	return nil, true
}

func completeKey(ctx *schema.Context, root schema.CurrentSchema, table *document.Table, path []schema.Accessor) []CompletionItem {
	parentPath := path[:len(path)-1]

	parentSchema, ok := schemaAt(root, ctx, parentPath, text.Span{})
	if !ok || parentSchema.Value == nil || parentSchema.Value.Raw == nil {
		return nil
	}

	parentValue, ok := navigateValue(table, parentPath)
	if !ok {
		parentValue = table
	}

	existing := map[string]bool{}

	if tbl, ok := parentValue.(*document.Table); ok {
		for _, k := range tbl.Keys() {
			existing[k.Raw] = true
		}
	}

	var out []CompletionItem

	for name, propSchema := range parentSchema.Value.Raw.Properties {
		if existing[name] {
			continue
		}

		v := schema.NewCurrentSchema(propSchema).Value

		out = append(out, CompletionItem{
			Label:         name,
			Detail:        firstType(v),
			Documentation: v.Raw.Description,
			InsertText:    name,
			Kind:          CompletionProperty,
		})
	}

	return out
}

func completeValue(cur schema.CurrentSchema) []CompletionItem {
	var out []CompletionItem

	raw := cur.Value.Raw

	for _, e := range raw.Enum {
		out = append(out, CompletionItem{
			Label:      fmt.Sprintf("%v", e),
			InsertText: fmt.Sprintf("%v", e),
			Kind:       CompletionEnumMember,
		})
	}

	if raw.Default != nil && len(raw.Enum) == 0 {
		out = append(out, CompletionItem{
			Label:      fmt.Sprintf("%v", raw.Default),
			InsertText: fmt.Sprintf("%v", raw.Default),
			Detail:     "default",
			Kind:       CompletionValue,
		})
	}

	return out
}

func firstType(v *schema.ValueSchema) string {
	types := v.Types()
	if len(types) == 0 {
		return ""
	}

	return types[0]
}
