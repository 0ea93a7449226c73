package lsp

import (
	"context"

	"github.com/tombi-toml/tombi/schema"
)

// Diagnostics runs the full pipeline for uri and returns every finding:
// parser errors, document-tree elaboration errors, and — if a schema
// resolves — validator diagnostics. It returns ok=false only if uri isn't
// open at all; an open document with nothing wrong yields an empty,
// non-nil slice.
func Diagnostics(ctx context.Context, store *DocumentStore, uri string) ([]Diagnostic, bool) {
	doc, ok := store.get(uri)
	if !ok {
		return nil, false
	}

	_, table, _, parsed, built := doc.snapshot()

	out := []Diagnostic{}

	for _, e := range parsed {
		out = append(out, Diagnostic{Span: e.Span, Severity: SeverityError, Message: e.Error(), Source: "syntax"})
	}

	for _, e := range built {
		out = append(out, Diagnostic{Span: e.Range(), Severity: SeverityError, Message: e.Error(), Source: "document"})
	}

	if table == nil {
		return out, true
	}

	ds, ok := store.resolveSchema(ctx, doc)
	if !ok {
		return out, true
	}

	schemaCtx := &schema.Context{Ctx: ctx, Store: store.schemas, Strict: store.config.Schema.Strict}

	diags := schema.Validate(table, nil, currentSchema(ds), schemaCtx)
	for _, d := range diags {
		sev := SeverityError
		if d.Level == schema.LevelWarn {
			sev = SeverityWarning
		}

		out = append(out, Diagnostic{Span: d.Span, Severity: sev, Message: d.Message, Source: "schema"})
	}

	return out, true
}
