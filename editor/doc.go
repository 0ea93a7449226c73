// Package editor rebuilds a green tree with a batch of text-range edits
// applied, without mutating any existing node. It is the one place in this
// module allowed to construct a modified tree rather than a modified
// string: every caller that wants to change source text — the formatter
// reordering table keys or array values per a schema hint, a Language
// Server code action — expresses the change as a [Change] over byte
// spans and lets [Apply] do the splicing, then re-serializes.
package editor
