// Package lsp implements the operations a Language Server for TOML must
// expose, as plain functions over a [DocumentStore] rather than a JSON-RPC
// handler: Hover, Definition, TypeDefinition, DocumentSymbols,
// FoldingRanges, Completion, Diagnostics, Format, CodeActions, and
// DocumentLinks. Wiring these onto an actual transport (stdio or TCP
// JSON-RPC) is left to the embedder; this package's contract ends at the
// function call.
//
// Every document a client has open moves through the same pipeline on
// open and on every change: Opened (raw source only) -> Parsed (syntax
// tree) -> Elaborated (document tree) -> Validated (schema resolved lazily
// on the first request that needs it and cached until the next change; the
// validator itself runs again on every [Diagnostics] call). Each exported
// function is safe to call concurrently
// across different URIs; state for a single document is guarded by that
// document's own mutex, not a store-wide lock.
package lsp
