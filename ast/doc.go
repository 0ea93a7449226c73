// Package ast implements the typed AST layer: thin accessors over the
// lossless [syntax.Node] red tree (Root, Table, ArrayOfTable, KeyValue,
// Keys, Key, Value and its scalar/Array/InlineTable variants, plus comment
// helpers). Every type here wraps a syntax node or token and filters its
// children by [syntax.Kind]; nothing here owns memory beyond the wrapped
// tree, matching how the specification describes this layer as mechanically
// derivable from the grammar.
//
// This package is hand-written rather than generated: the code-generation
// scripts that derive typed AST nodes from a grammar file are an explicit
// non-goal of the system this module implements.
package ast
