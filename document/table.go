package document

import "github.com/tombi-toml/tombi/text"

// TableKind distinguishes why a [Table] node exists, per the
// specification's Table.kind field.
type TableKind int

const (
	// TableRoot is the single implicit table at the root of every
	// document.
	TableRoot TableKind = iota
	// TableExplicit is a table opened with a `[a.b.c]` header.
	TableExplicit
	// TableInline is a `{ ... }` inline table literal.
	TableInline
	// TableKeyValue is the table an inline table's entries live in —
	// structurally identical to TableInline; kept distinct only to
	// mirror the specification's own Table.kind enumeration.
	TableKeyValue
	// TableParentTable is an intermediate table implicitly created by a
	// `[a.b.c]`/`[[a.b.c]]` header walking through `a` and `b`. It may
	// later be completed by its own explicit header.
	TableParentTable
	// TableParentKey is an intermediate table implicitly created by a
	// dotted key-value's path (`a.b.c = 1` creates `a` and `b` this
	// way). Like TableParentTable it may be completed later but never
	// redefined with content of its own.
	TableParentKey
)

// entry is one (key, value) pair in a [Table], kept in insertion order
// alongside an index for O(1) lookup by normalized key text.
type entry struct {
	key   Key
	value Value
}

// Table is the document tree's table node: an ordered mapping from [Key]
// to [Value] plus the two spans the specification requires — a tight
// Range and a SymbolRange covering the whole header-and-body block a user
// would point at.
type Table struct {
	Kind        TableKind
	Range       text.Span
	SymbolRange text.Span

	order   []string
	entries map[string]*entry
}

func newTable(kind TableKind, rng, symbolRange text.Span) *Table {
	return &Table{
		Kind:        kind,
		Range:       rng,
		SymbolRange: symbolRange,
		entries:     make(map[string]*entry),
	}
}

func (Table) valueNode()              {}
func (t *Table) Span() text.Span      { return t.Range }
func (t *Table) SymbolSpan() text.Span {
	return t.SymbolRange
}

// Get looks up a direct entry by its decoded key text.
func (t *Table) Get(name string) (Value, bool) {
	e, ok := t.entries[name]
	if !ok {
		return nil, false
	}

	return e.value, true
}

// GetKey returns the [Key] a direct entry was inserted under.
func (t *Table) GetKey(name string) (Key, bool) {
	e, ok := t.entries[name]
	if !ok {
		return Key{}, false
	}

	return e.key, true
}

// Keys returns every direct key, in insertion order.
func (t *Table) Keys() []Key {
	out := make([]Key, 0, len(t.order))

	for _, name := range t.order {
		out = append(out, t.entries[name].key)
	}

	return out
}

// Len reports the number of direct entries.
func (t *Table) Len() int {
	return len(t.order)
}

// Each iterates the table's entries in insertion order, yielding (key
// text, Key, Value) triples until yield returns false.
func (t *Table) Each(yield func(name string, key Key, value Value) bool) {
	for _, name := range t.order {
		e := t.entries[name]
		if !yield(name, e.key, e.value) {
			return
		}
	}
}

func (t *Table) set(name string, key Key, value Value) {
	if _, exists := t.entries[name]; !exists {
		t.order = append(t.order, name)
	}

	t.entries[name] = &entry{key: key, value: value}
}

// ArrayKind distinguishes why an [Array] node exists.
type ArrayKind int

const (
	// ArrayLiteral is a `[1, 2, 3]` value.
	ArrayLiteral ArrayKind = iota
	// ArrayOfTables is the sequence of elements accumulated by repeated
	// `[[a.b.c]]` headers sharing the same key path.
	ArrayOfTables
	// ArrayParentOfTables is an array-of-tables reached only as an
	// intermediate step of a longer header path — kept distinct purely
	// to mirror the specification's ParentArrayOfTable kind; behaves
	// identically to ArrayOfTables otherwise.
	ArrayParentOfTables
)

// Array is the document tree's array node: an ordered sequence of
// [Value]s, used both for `[1,2,3]`-style literals and for the elements
// accumulated by an array-of-tables key path.
type Array struct {
	Kind        ArrayKind
	Range       text.Span
	SymbolRange text.Span
	Values      []Value
}

func newArray(kind ArrayKind, rng, symbolRange text.Span) *Array {
	return &Array{Kind: kind, Range: rng, SymbolRange: symbolRange}
}

func (Array) valueNode()               {}
func (a *Array) Span() text.Span       { return a.Range }
func (a *Array) SymbolSpan() text.Span { return a.SymbolRange }
