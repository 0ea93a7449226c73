package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"golang.org/x/sync/singleflight"
)

// Store caches [DocumentSchema] values by their fully-qualified URL.
// Loading is asynchronous and performed at most once per URL: a
// [sync.RWMutex] guards the cache map itself (readers never block each
// other once a document is cached) and [singleflight.Group] collapses
// concurrent first-loads of the same URL into a single fetch, the direct
// Go rendition of "single-flight per URL with an async lock".
type Store struct {
	mu      sync.RWMutex
	docs    map[string]*DocumentSchema
	group   singleflight.Group
	client  *http.Client
	Offline bool
	Strict  bool
}

// NewStore builds a Store. A nil client is only safe combined with
// Offline: true, matching "a nil client plus Offline disables all
// http(s):// fetches; file:// and local paths always work".
func NewStore(client *http.Client, offline bool) *Store {
	return &Store{
		docs:    make(map[string]*DocumentSchema),
		client:  client,
		Offline: offline,
	}
}

// Load fetches and parses the schema document at rawURL, or returns the
// cached copy if one already exists.
func (s *Store) Load(ctx context.Context, rawURL string) (*DocumentSchema, error) {
	s.mu.RLock()
	if doc, ok := s.docs[rawURL]; ok {
		s.mu.RUnlock()
		return doc, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.group.Do(rawURL, func() (any, error) {
		s.mu.RLock()
		if doc, ok := s.docs[rawURL]; ok {
			s.mu.RUnlock()
			return doc, nil
		}
		s.mu.RUnlock()

		doc, err := s.fetchAndParse(ctx, rawURL)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.docs[rawURL] = doc
		s.mu.Unlock()

		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*DocumentSchema), nil
}

func (s *Store) fetchAndParse(ctx context.Context, rawURL string) (*DocumentSchema, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("schema: invalid url %q: %w", rawURL, err)
	}

	body, err := s.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var raw jsonschema.Schema
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("schema: parse %q: %w", rawURL, err)
	}

	return buildDocumentSchema(u, &raw), nil
}

func (s *Store) fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	switch u.Scheme {
	case "", "file":
		path := u.Path
		if u.Scheme == "" {
			path = u.String()
		}

		return os.ReadFile(path) //nolint:gosec
	case "http", "https":
		if s.Offline {
			return nil, fmt.Errorf("schema: offline mode, refusing to fetch %s", u)
		}

		if s.client == nil {
			return nil, fmt.Errorf("schema: no http client configured for %s", u)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("schema: fetch %s: %w", u, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("schema: fetch %s: status %d", u, resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	default:
		return nil, fmt.Errorf("schema: unsupported url scheme %q", u.Scheme)
	}
}

// buildDocumentSchema walks raw once, lifting its `$defs` into a
// Referable tree: a definition with a `$ref` body stays Unresolved until
// first dereference, everything else is resolved immediately since it
// was already parsed in full by the json.Unmarshal above.
func buildDocumentSchema(u *url.URL, raw *jsonschema.Schema) *DocumentSchema {
	defs := make(map[string]*Referable[*ValueSchema], len(raw.Defs))

	for name, sub := range raw.Defs {
		defs[name] = schemaToReferable(sub)
	}

	return &DocumentSchema{
		URL:         u,
		Root:        newValueSchema(raw),
		Definitions: defs,
	}
}

func schemaToReferable(s *jsonschema.Schema) *Referable[*ValueSchema] {
	if s.Ref != "" {
		return NewUnresolvedRef[*ValueSchema](s.Ref)
	}

	return NewResolved(newValueSchema(s))
}

// ResolveRef dereferences ref (a JSON-pointer `$ref`, optionally prefixed
// by another document's URL) relative to cur, returning the resolved
// schema and a CurrentSchema rebased onto whichever document actually
// owns it.
func (s *Store) ResolveRef(ctx context.Context, cur CurrentSchema, ref string) (*ValueSchema, CurrentSchema, error) {
	docPart, pointer, _ := strings.Cut(ref, "#")

	defs := cur.Definitions
	docURL := cur.SchemaURL

	if docPart != "" {
		target := docPart
		if cur.SchemaURL != nil {
			if resolved, err := cur.SchemaURL.Parse(docPart); err == nil {
				target = resolved.String()
			}
		}

		doc, err := s.Load(ctx, target)
		if err != nil {
			return nil, cur, err
		}

		defs = doc.Definitions
		docURL = doc.URL

		if pointer == "" || pointer == "/" {
			return doc.Root, CurrentSchema{SchemaURL: docURL, Value: doc.Root, Definitions: defs}, nil
		}
	}

	name := strings.TrimPrefix(pointer, "/$defs/")

	slot, ok := defs[name]
	if !ok {
		return nil, cur, fmt.Errorf("schema: unresolved $ref %q", ref)
	}

	resolved, err := slot.Resolve(func(nestedRef string) (*ValueSchema, error) {
		v, _, err := s.ResolveRef(ctx, CurrentSchema{SchemaURL: docURL, Definitions: defs}, nestedRef)
		return v, err
	})
	if err != nil {
		return nil, cur, err
	}

	return resolved, CurrentSchema{SchemaURL: docURL, Value: resolved, Definitions: defs}, nil
}
