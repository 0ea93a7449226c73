package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/tombi-toml/tombi/schema"
	"github.com/tombi-toml/tombi/text"
)

// virtualBuffers holds the synthesized content of every "untitled://"
// buffer a remote-schema [Definition]/[TypeDefinition] call has created so
// far, keyed by the virtual URI. An embedder exposes these the same way it
// exposes any other open buffer; this package only needs to remember what
// it handed out.
var virtualBuffers sync.Map // map[string]string

// VirtualBuffer returns the synthesized source text for a "untitled://"
// URI previously returned by [Definition]/[TypeDefinition], or ok=false if
// no such buffer has been created.
func VirtualBuffer(uri string) (string, bool) {
	v, ok := virtualBuffers.Load(uri)
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Definition resolves the schema node governing the value/key at pos to
// its defining location. For a schema loaded from a `file://` or bare
// local path, the location points at that path (span covering the whole
// document, since a JSON document's structure isn't itself a TOML syntax
// tree this module indexes). For an `http(s)://` schema, a virtual
// "untitled://" buffer is synthesized from the resolved schema fragment's
// pretty-printed JSON and the location points into that buffer instead,
// per §4.8.
func Definition(ctx context.Context, store *DocumentStore, uri string, pos text.Position) (*Location, bool) {
	return resolveDefinition(ctx, store, uri, pos)
}

// TypeDefinition is identical to [Definition] for this implementation:
// the schema node "defining" a value's shape and the schema node
// governing its type are the same resolved node, since this module's
// schema model has no separate nominal-type layer to distinguish them.
func TypeDefinition(ctx context.Context, store *DocumentStore, uri string, pos text.Position) (*Location, bool) {
	return resolveDefinition(ctx, store, uri, pos)
}

func resolveDefinition(ctx context.Context, store *DocumentStore, uri string, pos text.Position) (*Location, bool) {
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

	cur, ok := schemaAt(currentSchema(ds), schemaCtx, loc.Path, loc.Span())
	if !ok {
		return nil, false
	}

	target := cur.SchemaURL
	if target == nil {
		target = ds.URL
	}

	if target == nil {
		return nil, false
	}

	if target.Scheme == "http" || target.Scheme == "https" {
		return virtualLocationFor(target, cur)
	}

	return &Location{URI: target.String(), Span: text.Span{}}, true
}

// virtualLocationFor synthesizes an "untitled://" buffer holding the
// pretty-printed JSON of cur's resolved schema fragment and returns a
// location pointing at the start of its "title" field if one is present,
// or the start of the buffer otherwise.
func virtualLocationFor(target *url.URL, cur schema.CurrentSchema) (*Location, bool) {
	body, err := json.MarshalIndent(cur.Value.Raw, "", "  ")
	if err != nil {
		return nil, false
	}

	content := string(body) + "\n"
	virtualURI := fmt.Sprintf("untitled://%s%s.json", target.Host, strings.TrimSuffix(target.Path, ".json"))

	virtualBuffers.Store(virtualURI, content)

	span := text.Span{}
	if idx := strings.Index(content, `"title"`); idx >= 0 {
		span = text.Span{Start: uint32(idx), End: uint32(idx)}
	}

	return &Location{URI: virtualURI, Span: span}, true
}
