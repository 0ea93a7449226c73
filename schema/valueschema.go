package schema

import (
	"net/url"

	"github.com/google/jsonschema-go/jsonschema"
)

// ValueSchema wraps a resolved *jsonschema.Schema with the decoded
// x-tombi-* extensions that govern formatting/validation behavior beyond
// plain Draft-07.
type ValueSchema struct {
	Raw        *jsonschema.Schema
	Extensions TombiExtensions
}

func newValueSchema(raw *jsonschema.Schema) *ValueSchema {
	var extra map[string]any
	if raw != nil {
		extra = raw.Extra
	}

	return &ValueSchema{Raw: raw, Extensions: decodeTombiExtensions(extra)}
}

// IsComposite reports whether this schema node is OneOf/AnyOf/AllOf rather
// than a leaf type schema.
func (v *ValueSchema) IsComposite() bool {
	return len(v.Raw.OneOf) > 0 || len(v.Raw.AnyOf) > 0 || len(v.Raw.AllOf) > 0
}

// Types returns every JSON-Schema type name this schema accepts, whether
// spelled as the singular `Type` field or the plural `Types`.
func (v *ValueSchema) Types() []string {
	if len(v.Raw.Types) > 0 {
		return v.Raw.Types
	}

	if v.Raw.Type != "" {
		return []string{v.Raw.Type}
	}

	return nil
}

// AcceptsType reports whether jsonType is among this schema's declared
// types, or whether the schema declares no type at all (in which case
// every type is accepted, per Draft-07).
func (v *ValueSchema) AcceptsType(jsonType string) bool {
	types := v.Types()
	if len(types) == 0 {
		return true
	}

	for _, t := range types {
		if t == jsonType {
			return true
		}
	}

	return false
}

// DocumentSchema is one loaded schema document: its root ValueSchema plus
// the `#/$defs/...` definitions map, each slot lazily resolved on first
// dereference.
type DocumentSchema struct {
	URL         *url.URL
	Root        *ValueSchema
	Definitions map[string]*Referable[*ValueSchema]
}

// CurrentSchema is the `(schema_url, value_schema, definitions)` triple
// threaded through the validator so that a nested `$ref` resolves inside
// the document it was declared in, even after a composite schema has
// descended into an arm defined in a different document.
type CurrentSchema struct {
	SchemaURL   *url.URL
	Value       *ValueSchema
	Definitions map[string]*Referable[*ValueSchema]
}

// NewCurrentSchema wraps a raw *jsonschema.Schema as a root-level
// CurrentSchema with no originating document — the entry point for
// validating against a schema built in memory (tests, schemas embedded in
// a config file) rather than one loaded through a [Store].
func NewCurrentSchema(raw *jsonschema.Schema) CurrentSchema {
	return CurrentSchema{}.WithValue(newValueSchema(raw))
}

// WithValue returns a copy of cur pointing at a different ValueSchema
// within the same originating document — the cheap "clone the handles
// before descent" operation the concurrency model calls for, since the
// definitions map and URL are shared pointers, not copied.
func (cur CurrentSchema) WithValue(v *ValueSchema) CurrentSchema {
	cur.Value = v
	return cur
}
