// Package document implements the document-tree elaboration pass: it
// converts a parsed [ast.Root] into the semantic TOML value tree described
// by the specification, enforcing the merge/conflict rules for tables and
// arrays of tables while carrying source ranges for diagnostics.
//
// Elaboration never aborts. [Build] always returns a usable tree; any
// malformed input instead produces one or more [*Error] values alongside
// it, mirroring how the lexer and parser are total functions over their
// input.
package document
