// Package format re-serializes a parsed TOML document from its AST,
// applying the layout choices [Options] leaves open (quote style, indent,
// line width, date-time delimiter) and, where a schema calls for it,
// reordering table keys or array values through the editor package rather
// than by splicing strings. Every layout decision is recomputed from the
// tree on each call, which is what makes formatting idempotent on its own
// output.
package format
