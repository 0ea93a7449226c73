package lsp

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/config"
	"github.com/tombi-toml/tombi/document"
	"github.com/tombi-toml/tombi/parser"
	"github.com/tombi-toml/tombi/schema"
	"github.com/tombi-toml/tombi/text"
)

// State is a document's position in the Opened -> Parsed -> Elaborated ->
// Validated pipeline.
type State int

const (
	StateOpened State = iota
	StateParsed
	StateElaborated
	StateValidated
)

// Document is one open TOML file: its source, every stage of tree the
// pipeline has built from it, and whatever schema was resolved for it.
// Every field below the mutex is read and written only while holding it.
type Document struct {
	URI     string
	Version uint64

	mu      sync.Mutex
	source  []byte
	index   *text.Index
	root    ast.Root
	table   *document.Table
	parsed  []*parser.Error
	built   []*document.Error
	state   State
	schemaURL *url.URL
	schemaDoc *schema.DocumentSchema
	schemaTried bool
}

// Stale reports whether version no longer matches the document's current
// version, letting an in-flight handler bail out once a newer edit has
// already superseded it.
func (d *Document) Stale(version uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.Version != version
}

func (d *Document) snapshot() (root ast.Root, table *document.Table, index *text.Index, parsed []*parser.Error, built []*document.Error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.root, d.table, d.index, d.parsed, d.built
}

// DocumentStore holds every open document, keyed by URI, plus the shared
// schema resolution state (the config, any loaded catalogs, and the
// [schema.Store] doing the fetching) every document's lazy validation
// pass draws on.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document

	config   *config.Config
	catalogs []schema.Catalog
	schemas  *schema.Store
}

// NewDocumentStore builds a store. cfg may be nil, in which case
// [config.Default] governs parsing and no `[[schemas]]` entries apply.
// schemas may be nil, in which case every document's schema resolves to
// "none" and only syntactic/elaboration diagnostics are ever produced.
func NewDocumentStore(cfg *config.Config, catalogs []schema.Catalog, schemas *schema.Store) *DocumentStore {
	if cfg == nil {
		cfg = config.Default()
	}

	return &DocumentStore{
		docs:     make(map[string]*Document),
		config:   cfg,
		catalogs: catalogs,
		schemas:  schemas,
	}
}

// Open parses src and registers it under uri, replacing whatever document
// previously lived there.
func (s *DocumentStore) Open(uri string, src []byte, version uint64) *Document {
	doc := &Document{URI: uri, Version: version}
	doc.reparse(s, src)

	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()

	return doc
}

// Change re-parses uri's document in place with new content, invalidating
// whatever schema resolution and diagnostics the previous version cached.
func (s *DocumentStore) Change(uri string, src []byte, version uint64) (*Document, error) {
	doc, ok := s.get(uri)
	if !ok {
		return nil, fmt.Errorf("lsp: document %q is not open", uri)
	}

	doc.mu.Lock()
	doc.Version = version
	doc.mu.Unlock()

	doc.reparse(s, src)

	return doc, nil
}

// Close drops uri's document entirely.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

func (s *DocumentStore) get(uri string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[uri]

	return doc, ok
}

func (d *Document) reparse(store *DocumentStore, src []byte) {
	v := store.config.Version()

	parsed := parser.Parse(src, v)
	root := ast.NewRoot(parsed.Root())
	table, built := document.Build(root, v)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.source = src
	d.index = text.NewIndex(src)
	d.root = root
	d.table = table
	d.parsed = parsed.Errors
	d.built = built
	d.state = StateElaborated
	d.schemaURL = nil
	d.schemaDoc = nil
	d.schemaTried = false
}

// resolveSchema loads and caches the schema document governing doc, per
// the header-comment / [[schemas]] / catalog precedence in
// [schema.Resolve]. It returns ok=false when no schema applies or the
// store has no [schema.Store] to fetch with, in which case every
// schema-dependent service degrades to syntax/elaboration-only behavior.
func (s *DocumentStore) resolveSchema(ctx context.Context, doc *Document) (*schema.DocumentSchema, bool) {
	doc.mu.Lock()
	source := doc.source
	cached := doc.schemaDoc
	tried := doc.schemaTried
	doc.mu.Unlock()

	if cached != nil {
		return cached, true
	}

	if tried || s.schemas == nil {
		return nil, false
	}

	header := headerSchemaURL(source)

	u, ok := schema.Resolve(doc.URI, header, s.config, s.catalogs)

	doc.mu.Lock()
	doc.schemaTried = true
	doc.mu.Unlock()

	if !ok {
		return nil, false
	}

	ds, err := s.schemas.Load(ctx, u.String())
	if err != nil {
		return nil, false
	}

	doc.mu.Lock()
	doc.schemaURL = u
	doc.schemaDoc = ds
	doc.state = StateValidated
	doc.mu.Unlock()

	return ds, true
}

// currentSchema builds the root [schema.CurrentSchema] for a resolved
// document schema, the entry point every per-accessor descent in this
// package starts from.
func currentSchema(ds *schema.DocumentSchema) schema.CurrentSchema {
	return schema.CurrentSchema{SchemaURL: ds.URL, Value: ds.Root, Definitions: ds.Definitions}
}

// headerSchemaURL extracts a `#:schema <url>` document header comment
// from the first line of src, if present.
func headerSchemaURL(src []byte) string {
	line := src
	if idx := bytes.IndexByte(src, '\n'); idx >= 0 {
		line = src[:idx]
	}

	line = bytes.TrimSpace(line)

	const prefix = "#:schema"

	if !bytes.HasPrefix(line, []byte(prefix)) {
		return ""
	}

	return string(bytes.TrimSpace(line[len(prefix):]))
}
