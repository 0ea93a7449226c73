// Package toml holds the handful of types shared across every other
// package in this module: which edition of the TOML grammar is in effect,
// and nothing else. It exists so packages that only need a version number
// (config, lexer callers, the CLI) don't have to import the parser or
// document packages just to name one.
package toml

import "strings"

// Version selects which TOML grammar edition a document is parsed and
// validated against. The parser and document elaborator both take a
// Version and gate version-sensitive grammar on it; the formatter takes
// none.
type Version string

// Supported versions.
const (
	V1_0_0        Version = "1.0.0"
	V1_1_0_Preview Version = "1.1.0-preview"
)

// Default is the version used when a document or config doesn't pin one.
const Default = V1_0_0

// IsValid reports whether v is a version this module knows how to parse.
func (v Version) IsValid() bool {
	switch v {
	case V1_0_0, V1_1_0_Preview:
		return true
	default:
		return false
	}
}

// AllowsMultiLineInlineTable reports whether v permits an inline table's
// braces to span multiple lines.
func (v Version) AllowsMultiLineInlineTable() bool {
	return v == V1_1_0_Preview
}

// AllowsInlineTableTrailingComma reports whether v permits a trailing comma
// before an inline table's closing brace.
func (v Version) AllowsInlineTableTrailingComma() bool {
	return v == V1_1_0_Preview
}

// AllowsOptionalSeconds reports whether v permits a local/offset time
// literal to omit its seconds component ("07:32" instead of "07:32:00").
func (v Version) AllowsOptionalSeconds() bool {
	return v == V1_1_0_Preview
}

// String implements [fmt.Stringer].
func (v Version) String() string {
	return string(v)
}

// ParseVersion parses the config-file/CLI spelling of a version
// ("v1.0.0", "v1.1.0-preview") into a [Version]. The leading "v" is the
// external surface's convention; internally a Version's string form omits
// it, matching the original implementation's TomlVersion::try_from.
func ParseVersion(s string) (Version, bool) {
	v := Version(strings.TrimPrefix(s, "v"))
	if !v.IsValid() {
		return "", false
	}

	return v, true
}
