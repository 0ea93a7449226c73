package lsp

import "github.com/tombi-toml/tombi/text"

// Location points at a span of text inside a document, identified by URI.
// For a schema node reached through [Definition]/[TypeDefinition], URI may
// name a virtual "untitled://" buffer rather than a file on disk — see
// [VirtualBuffer].
type Location struct {
	URI  string
	Span text.Span
}

// Hover is the result of a [Hover] call: a markdown-formatted content
// block plus the span of source it describes.
type Hover struct {
	Contents string
	Span     text.Span
}

// SymbolKind mirrors the handful of LSP SymbolKind values the
// specification calls out for document symbols.
type SymbolKind int

const (
	SymbolObject SymbolKind = iota
	SymbolArray
	SymbolString
	SymbolNumber
	SymbolBoolean
	SymbolNull
)

// DocumentSymbol is one node of the nested outline [DocumentSymbols]
// builds from a document tree.
type DocumentSymbol struct {
	Name           string
	Detail         string
	Kind           SymbolKind
	Span           text.Span
	SelectionSpan  text.Span
	Children       []DocumentSymbol
}

// FoldingRangeKind classifies why a [FoldingRange] was produced.
type FoldingRangeKind int

const (
	FoldingRegion FoldingRangeKind = iota
	FoldingComment
)

// FoldingRange is one collapsible region, expressed in 0-based line
// numbers per the LSP FoldingRange shape.
type FoldingRange struct {
	StartLine uint32
	EndLine   uint32
	Kind      FoldingRangeKind
}

// CompletionItemKind distinguishes a key-position proposal from a
// value-position one.
type CompletionItemKind int

const (
	CompletionProperty CompletionItemKind = iota
	CompletionValue
	CompletionEnumMember
)

// CompletionItem is one proposal at a cursor position.
type CompletionItem struct {
	Label         string
	Detail        string
	Documentation string
	InsertText    string
	Kind          CompletionItemKind
}

// TextEdit is a single textual replacement, the shape every [CodeAction]
// resolves to: the span of source it replaces and the text put in its
// place.
type TextEdit struct {
	Span    text.Span
	NewText string
}

// CodeAction is one proposed refactor, already resolved to the concrete
// edits it would apply.
type CodeAction struct {
	Title string
	Edits []TextEdit
}

// DocumentLink is a clickable span resolving to another document, e.g. a
// Cargo/uv workspace member path.
type DocumentLink struct {
	Span   text.Span
	Target string
}

// Severity mirrors LSP's DiagnosticSeverity ordering (Error before Warn).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Diagnostic is the unified shape [Diagnostics] publishes, merging parser,
// elaboration, and validator findings into one stream.
type Diagnostic struct {
	Span     text.Span
	Severity Severity
	Message  string
	Source   string // "syntax", "document", or "schema"
}
