// Package text provides the position and range primitives shared by every
// other package in this module: the lexer, parser, syntax tree, document
// tree, schema store, and Language-Server services all report their errors
// and node spans as byte-offset [Span]s, which an [Index] turns into
// [Position] and [Range] values where a line and column are needed.
//
// Two coordinate systems are in play. [Span] is a pair of byte offsets into
// the source text, which is what the lexer and green tree actually store
// (cheap, and independent of any notion of "column"). [Position] is a
// line/column pair, 0-based, in UTF-8 code points; it is what the
// Language-Server functions take as a cursor and what the CLI's diagnostic
// printer renders. [Index] converts between the two, building a line-start
// table once per document.
//
// The Language Server protocol additionally requires UTF-16 code-unit
// columns. Neither this package nor the lsp package performs that
// conversion: lsp functions take and return [Position] and [Span] values,
// and translating them for the wire protocol is left to the transport that
// wraps them.
package text
