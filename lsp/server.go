package lsp

import (
	"context"
	"fmt"

	"github.com/tombi-toml/tombi/format"
	"github.com/tombi-toml/tombi/log"
	"github.com/tombi-toml/tombi/text"
)

// Server bundles a [DocumentStore] and exposes every package-level
// operation as a method, the shape a JSON-RPC transport (e.g.
// `go.lsp.dev/jsonrpc2`) wraps to answer `textDocument/*` requests. This
// package stops at the method call: wiring these onto an actual
// request/response loop, and translating URIs/positions to and from the
// wire protocol's own types, is left to that transport layer.
//
// When Publisher is set, every method writes a one-line trace of the
// request it served before returning; an embedding transport subscribes
// to that [log.Publisher] and forwards entries as `window/logMessage`
// notifications alongside whatever it writes to its own log file.
type Server struct {
	Store     *DocumentStore
	Publisher *log.Publisher
}

// NewServer wraps store. publisher may be nil, in which case Server's
// methods trace nothing.
func NewServer(store *DocumentStore, publisher *log.Publisher) *Server {
	return &Server{Store: store, Publisher: publisher}
}

func (s *Server) trace(format string, args ...any) {
	if s.Publisher == nil {
		return
	}

	fmt.Fprintf(s.Publisher, format+"\n", args...)
}

func (s *Server) Hover(ctx context.Context, uri string, pos text.Position) (*Hover, bool) {
	s.trace("hover %s %d:%d", uri, pos.Line, pos.Column)

	return Hover(ctx, s.Store, uri, pos)
}

func (s *Server) Definition(ctx context.Context, uri string, pos text.Position) (*Location, bool) {
	s.trace("definition %s %d:%d", uri, pos.Line, pos.Column)

	return Definition(ctx, s.Store, uri, pos)
}

func (s *Server) TypeDefinition(ctx context.Context, uri string, pos text.Position) (*Location, bool) {
	s.trace("typeDefinition %s %d:%d", uri, pos.Line, pos.Column)

	return TypeDefinition(ctx, s.Store, uri, pos)
}

func (s *Server) DocumentSymbols(uri string) ([]DocumentSymbol, bool) {
	s.trace("documentSymbols %s", uri)

	return DocumentSymbols(s.Store, uri)
}

func (s *Server) FoldingRanges(uri string) ([]FoldingRange, bool) {
	s.trace("foldingRanges %s", uri)

	return FoldingRanges(s.Store, uri)
}

func (s *Server) Completion(ctx context.Context, uri string, pos text.Position) ([]CompletionItem, bool) {
	s.trace("completion %s %d:%d", uri, pos.Line, pos.Column)

	return Completion(ctx, s.Store, uri, pos)
}

func (s *Server) Diagnostics(ctx context.Context, uri string) ([]Diagnostic, bool) {
	s.trace("diagnostics %s", uri)

	return Diagnostics(ctx, s.Store, uri)
}

func (s *Server) Format(ctx context.Context, uri string, opts format.Options) (string, bool) {
	s.trace("format %s", uri)

	return Format(ctx, s.Store, uri, opts)
}

func (s *Server) CodeActions(ctx context.Context, uri string, span text.Span) ([]CodeAction, bool) {
	s.trace("codeActions %s %d-%d", uri, span.Start, span.End)

	return CodeActions(ctx, s.Store, uri, span)
}

func (s *Server) DocumentLinks(uri string) ([]DocumentLink, bool) {
	s.trace("documentLinks %s", uri)

	return DocumentLinks(s.Store, uri)
}
