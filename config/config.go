// Package config decodes tombi's project configuration file. The format
// is fixed (documented in full in the external interfaces section of the
// specification this module implements), so it is decoded by a small
// hand-written mapper rather than a general-purpose struct-tag decoder —
// and it is itself TOML, parsed with this module's own document/ast
// packages rather than any outside dependency.
package config

// Config is the decoded project configuration.
type Config struct {
	TomlVersion string
	Include     []string
	Exclude     []string

	Schema  SchemaConfig
	Schemas []SchemaEntry

	Format FormatConfig
	Lint   LintConfig
	Server ServerConfig
}

// SchemaConfig is the top-level `[schema]` table.
type SchemaConfig struct {
	Enabled bool
	Strict  bool
	Catalog CatalogConfig
}

// CatalogConfig is `[schema.catalog]`: either a single catalog URL/path or
// a list of them.
type CatalogConfig struct {
	Path  string
	Paths []string
}

// SchemaEntry is one `[[schemas]]` array-of-tables element: an explicit
// association between a schema document and the files it governs.
type SchemaEntry struct {
	TomlVersion string
	Path        string
	Include     []string
	RootKeys    string // dotted accessor path a SubSchema attaches under
}

// FormatConfig is the `[format]` table, carried through to [format.Options]
// by the CLI.
type FormatConfig struct {
	LineWidth         int
	Indent            string
	DateTimeDelimiter string
	LineEnding        string
	QuoteStyle        string
}

// LintConfig is the `[lint]` table.
type LintConfig struct {
	Enabled bool
}

// ServerConfig is the `[server]` table: which Language Server features are
// enabled.
type ServerConfig struct {
	Completion  bool
	Hover       bool
	CodeAction  bool
	Diagnostics bool
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{
		TomlVersion: "v1.0.0",
		Include:     []string{"**/*.toml"},
		Schema: SchemaConfig{
			Enabled: true,
		},
		Server: ServerConfig{
			Completion:  true,
			Hover:       true,
			CodeAction:  true,
			Diagnostics: true,
		},
	}
}
