// Package lexer tokenizes TOML source text.
//
// It is a hand-written, byte-at-a-time scanner with lookahead rather than a
// regex-compiled one: Go's regexp package backtracks through an NFA with no
// way to express "the longest run of quotes up to but not including a
// sixth", which the multi-line string terminator rule needs (see
// scanMultiLineString). A manual scanner is also what every Go tokenizer
// in the retrieved example pack does (maurice/toml's lexer.go, cue/scanner).
//
// [Lex] never fails outright: malformed input produces [Error] values
// alongside whatever best-effort [Token] stream the scanner could recover,
// so a caller always gets a total tokenization of its input.
package lexer
