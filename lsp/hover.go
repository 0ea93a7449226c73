package lsp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/tombi-toml/tombi/schema"
	"github.com/tombi-toml/tombi/text"
)

// Hover builds the markdown block for whatever key or value sits at pos in
// uri, per §4.8: title, description, type, constraints, default, examples,
// and a link to the governing schema's URL. It returns ok=false if the
// document isn't open, the cursor lands on pure trivia, or no schema
// resolves for the document (the specification's "empty result rather than
// an error" failure policy).
func Hover(ctx context.Context, store *DocumentStore, uri string, pos text.Position) (*Hover, bool) {
	doc, ok := store.get(uri)
	if !ok {
		return nil, false
	}

	root, _, index, _, _ := doc.snapshot()

	loc, ok := locate(root, index.Offset(pos))
	if !ok {
		return nil, false
	}

	ds, ok := store.resolveSchema(ctx, doc)
	if !ok {
		return nil, false
	}

	schemaCtx := &schema.Context{Ctx: ctx, Store: store.schemas, Strict: store.config.Schema.Strict}

	span := loc.Span()

	cur, ok := schemaAt(currentSchema(ds), schemaCtx, loc.Path, span)
	if !ok {
		return nil, false
	}

	return &Hover{Contents: renderHover(cur, schemaCtx), Span: span}, true
}

func (l location) Span() text.Span {
	if l.Key != nil {
		return l.Key.Span()
	}

	if l.Value != nil {
		return l.Value.Span()
	}

	return text.Span{}
}

// renderHover walks cur's composite structure (per §4.8: "composite
// schemas merge titles/descriptions iff all arms agree; otherwise the
// composite's own title/description is used") and renders the leaf/merged
// result as a markdown block.
func renderHover(cur schema.CurrentSchema, ctx *schema.Context) string {
	raw := cur.Value.Raw

	title, description, ok := compositeTitleDescription(cur, ctx)
	if !ok {
		title, description = raw.Title, raw.Description
	}

	var b strings.Builder

	if title != "" {
		fmt.Fprintf(&b, "**%s**\n\n", title)
	}

	if description != "" {
		fmt.Fprintf(&b, "%s\n\n", description)
	}

	if types := cur.Value.Types(); len(types) > 0 {
		fmt.Fprintf(&b, "Type: `%s`\n\n", strings.Join(types, " | "))
	}

	writeConstraints(&b, raw)

	if raw.Default != nil {
		fmt.Fprintf(&b, "Default: `%v`\n\n", raw.Default)
	}

	if len(raw.Examples) > 0 {
		b.WriteString("Examples:\n")

		for _, ex := range raw.Examples {
			fmt.Fprintf(&b, "- `%v`\n", ex)
		}

		b.WriteString("\n")
	}

	if cur.SchemaURL != nil {
		fmt.Fprintf(&b, "[Schema](%s)\n", cur.SchemaURL.String())
	}

	return strings.TrimSpace(b.String())
}

func writeConstraints(b *strings.Builder, raw *jsonschema.Schema) {
	var parts []string

	if raw.Minimum != nil {
		parts = append(parts, fmt.Sprintf("minimum: %v", *raw.Minimum))
	}

	if raw.Maximum != nil {
		parts = append(parts, fmt.Sprintf("maximum: %v", *raw.Maximum))
	}

	if raw.MinLength != nil {
		parts = append(parts, fmt.Sprintf("minLength: %d", *raw.MinLength))
	}

	if raw.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("maxLength: %d", *raw.MaxLength))
	}

	if raw.Pattern != "" {
		parts = append(parts, fmt.Sprintf("pattern: `%s`", raw.Pattern))
	}

	if len(raw.Enum) > 0 {
		vals := make([]string, len(raw.Enum))
		for i, e := range raw.Enum {
			vals[i] = fmt.Sprintf("%v", e)
		}

		parts = append(parts, "enum: "+strings.Join(vals, ", "))
	}

	if len(parts) == 0 {
		return
	}

	fmt.Fprintf(b, "%s\n\n", strings.Join(parts, " · "))
}

// compositeTitleDescription resolves every arm of a OneOf/AnyOf/AllOf
// schema and returns (title, description, true) only if it is composite
// and every arm that declares a title/description agrees with the others.
func compositeTitleDescription(cur schema.CurrentSchema, ctx *schema.Context) (string, string, bool) {
	raw := cur.Value.Raw

	var arms []*jsonschema.Schema

	switch {
	case len(raw.OneOf) > 0:
		arms = raw.OneOf
	case len(raw.AnyOf) > 0:
		arms = raw.AnyOf
	case len(raw.AllOf) > 0:
		arms = raw.AllOf
	default:
		return "", "", false
	}

	var title, description string

	for _, arm := range arms {
		resolved := arm

		if arm.Ref != "" {
			v, _, err := ctx.Store.ResolveRef(ctx.Ctx, cur, arm.Ref)
			if err != nil {
				continue
			}

			resolved = v.Raw
		}

		if resolved.Title != "" {
			if title != "" && title != resolved.Title {
				return "", "", false
			}

			title = resolved.Title
		}

		if resolved.Description != "" {
			if description != "" && description != resolved.Description {
				return "", "", false
			}

			description = resolved.Description
		}
	}

	if title == "" && description == "" {
		return "", "", false
	}

	return title, description, true
}
