// Package parser implements single-pass recursive descent over the
// lexer's token stream, producing a lossless green tree plus a vector of
// syntactic errors.
//
// The grammar is driven through a flat event buffer
// (StartNode/Token/FinishNode/Error) rather than building the tree
// directly, the same indirection rust-analyzer's parser uses: a
// [Marker] reserves a node's slot before its kind is known, and a
// completed marker can be [CompletedMarker.precede]d to retroactively
// wrap it in a parent discovered only after the fact. [build] replays the
// event buffer afterward, interleaving whitespace and comment trivia back
// in by raw token position so no byte of input is lost.
//
// Trivia comments are attached by position, not by a dedicated
// leading/trailing wrapper node: a comment ends up as a child of whatever
// grammar production is open when the builder reaches it. The `ast`
// package computes "the comments leading this key-value" by looking at
// adjacent token spans and line numbers directly, rather than relying on
// tree shape — simpler than threading comment ownership through every
// grammar rule, and just as exact since every comment's source span is
// still preserved verbatim somewhere in the tree.
//
// [Parse] is total: malformed input still produces a complete tree, with
// [Error] values recording what went wrong and, for version-sensitive
// constructs, the minimum TOML edition that would have allowed it.
package parser
