// Package schema resolves and validates TOML documents against JSON
// Schema documents (Draft-07 subset plus x-tombi-* extensions), using
// github.com/google/jsonschema-go/jsonschema as the wire type.
package schema

import "strings"

// Accessor is one step of a concrete cursor path into a document: a table
// key or an array index.
type Accessor struct {
	Key      string
	Index    int
	IsIndex  bool
}

// KeyAccessor builds a key-valued Accessor.
func KeyAccessor(key string) Accessor { return Accessor{Key: key} }

// IndexAccessor builds an index-valued Accessor.
func IndexAccessor(i int) Accessor { return Accessor{Index: i, IsIndex: true} }

func (a Accessor) String() string {
	if a.IsIndex {
		return "[*]"
	}

	return a.Key
}

// SchemaAccessor is the schema-side counterpart of [Accessor]: it collapses
// every concrete array index to "any index", since a schema's `items`
// applies uniformly regardless of which element is being checked.
type SchemaAccessor struct {
	Key     string
	IsIndex bool
}

// SchemaKey builds a key-valued SchemaAccessor.
func SchemaKey(key string) SchemaAccessor { return SchemaAccessor{Key: key} }

// SchemaIndex is the "any index" SchemaAccessor.
var SchemaIndex = SchemaAccessor{IsIndex: true}

// Matches reports whether a concrete Accessor is compatible with this
// schema-side accessor.
func (s SchemaAccessor) Matches(a Accessor) bool {
	if s.IsIndex {
		return a.IsIndex
	}

	return !a.IsIndex && s.Key == a.Key
}

func (s SchemaAccessor) String() string {
	if s.IsIndex {
		return "[*]"
	}

	return s.Key
}

// FromAccessors collapses a concrete accessor path into its schema-side
// form.
func FromAccessors(path []Accessor) []SchemaAccessor {
	out := make([]SchemaAccessor, len(path))

	for i, a := range path {
		if a.IsIndex {
			out[i] = SchemaIndex
		} else {
			out[i] = SchemaKey(a.Key)
		}
	}

	return out
}

// JoinAccessors renders a concrete accessor path the way diagnostics and
// hover text display it: dotted keys, bracketed indices.
func JoinAccessors(path []Accessor) string {
	var b strings.Builder

	for i, a := range path {
		if a.IsIndex {
			b.WriteString("[*]")
			continue
		}

		if i > 0 {
			b.WriteByte('.')
		}

		b.WriteString(a.Key)
	}

	return b.String()
}
