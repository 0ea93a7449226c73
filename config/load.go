package config

import (
	"os"
	"strings"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/document"
	"github.com/tombi-toml/tombi/parser"
	"github.com/tombi-toml/tombi/toml"
)

// Version resolves the configured TOML edition, falling back to
// [toml.Default] if unset or unrecognized.
func (c *Config) Version() toml.Version {
	if v, ok := toml.ParseVersion(c.TomlVersion); ok {
		return v
	}

	return toml.Default
}

// Load reads and decodes the project configuration at path. Config files
// are themselves TOML, parsed with this module's own lexer/parser/document
// packages rather than any outside decoder.
func Load(path string) (*Config, []error) {
	src, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, []error{err}
	}

	return Parse(src, strings.HasSuffix(path, "pyproject.toml"))
}

// Parse decodes a configuration document already in memory. toolSection
// selects the `[tool.tombi]` sub-table load path used by pyproject.toml
// hosts.
func Parse(src []byte, toolSection bool) (*Config, []error) {
	parsed := parser.Parse(src, toml.Default)
	root := ast.NewRoot(parsed.Root())

	tree, docErrs := document.Build(root, toml.Default)
	if len(docErrs) > 0 {
		errs := make([]error, len(docErrs))
		for i, e := range docErrs {
			errs[i] = e
		}

		return nil, errs
	}

	if toolSection {
		return DecodeToolSection(tree)
	}

	return Decode(tree)
}
