package config

import (
	"fmt"

	"github.com/tombi-toml/tombi/document"
)

// Decode maps a parsed project-config document tree onto a [Config].
// Every field is read by direct key lookup rather than reflection, since
// the config format's shape is fixed and never needs to accommodate an
// arbitrary caller-defined struct.
func Decode(doc *document.Table) (*Config, []error) {
	cfg := Default()

	var errs []error

	if v, ok := doc.Get("toml-version"); ok {
		s, err := stringOf("toml-version", v)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.TomlVersion = s
		}
	}

	if v, ok := doc.Get("include"); ok {
		ss, err := stringArrayOf("include", v)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Include = ss
		}
	}

	if v, ok := doc.Get("exclude"); ok {
		ss, err := stringArrayOf("exclude", v)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Exclude = ss
		}
	}

	if v, ok := doc.Get("schema"); ok {
		tbl, err := tableOf("schema", v)
		if err != nil {
			errs = append(errs, err)
		} else {
			decodeSchemaConfig(tbl, &cfg.Schema, &errs)
		}
	}

	if v, ok := doc.Get("schemas"); ok {
		entries, err := decodeSchemaEntries(v)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Schemas = entries
		}
	}

	if v, ok := doc.Get("format"); ok {
		tbl, err := tableOf("format", v)
		if err != nil {
			errs = append(errs, err)
		} else {
			decodeFormatConfig(tbl, &cfg.Format, &errs)
		}
	}

	if v, ok := doc.Get("lint"); ok {
		tbl, err := tableOf("lint", v)
		if err != nil {
			errs = append(errs, err)
		} else if b, ok := tbl.Get("enabled"); ok {
			if bv, boolErr := boolOf("lint.enabled", b); boolErr != nil {
				errs = append(errs, boolErr)
			} else {
				cfg.Lint.Enabled = bv
			}
		}
	}

	if v, ok := doc.Get("server"); ok {
		tbl, err := tableOf("server", v)
		if err != nil {
			errs = append(errs, err)
		} else {
			decodeServerConfig(tbl, &cfg.Server, &errs)
		}
	}

	return cfg, errs
}

// DecodeToolSection decodes a `[tool.tombi]` sub-table, the load path used
// when a project's configuration lives inside a shared `pyproject.toml`.
func DecodeToolSection(root *document.Table) (*Config, []error) {
	toolVal, ok := root.Get("tool")
	if !ok {
		return Default(), nil
	}

	tool, err := tableOf("tool", toolVal)
	if err != nil {
		return nil, []error{err}
	}

	tombiVal, ok := tool.Get("tombi")
	if !ok {
		return Default(), nil
	}

	tombiTbl, err := tableOf("tool.tombi", tombiVal)
	if err != nil {
		return nil, []error{err}
	}

	return Decode(tombiTbl)
}

func decodeSchemaConfig(tbl *document.Table, out *SchemaConfig, errs *[]error) {
	if v, ok := tbl.Get("enabled"); ok {
		if b, err := boolOf("schema.enabled", v); err != nil {
			*errs = append(*errs, err)
		} else {
			out.Enabled = b
		}
	}

	if v, ok := tbl.Get("strict"); ok {
		if b, err := boolOf("schema.strict", v); err != nil {
			*errs = append(*errs, err)
		} else {
			out.Strict = b
		}
	}

	if v, ok := tbl.Get("catalog"); ok {
		catTbl, err := tableOf("schema.catalog", v)
		if err != nil {
			*errs = append(*errs, err)
			return
		}

		if p, ok := catTbl.Get("path"); ok {
			if s, serr := stringOf("schema.catalog.path", p); serr != nil {
				*errs = append(*errs, serr)
			} else {
				out.Catalog.Path = s
			}
		}

		if p, ok := catTbl.Get("paths"); ok {
			if ss, serr := stringArrayOf("schema.catalog.paths", p); serr != nil {
				*errs = append(*errs, serr)
			} else {
				out.Catalog.Paths = ss
			}
		}
	}
}

func decodeSchemaEntries(v document.Value) ([]SchemaEntry, error) {
	arr, ok := v.(*document.Array)
	if !ok {
		return nil, fmt.Errorf("config: %q must be an array of tables", "schemas")
	}

	entries := make([]SchemaEntry, 0, len(arr.Values))

	for i, elem := range arr.Values {
		tbl, ok := elem.(*document.Table)
		if !ok {
			return nil, fmt.Errorf("config: schemas[%d] must be a table", i)
		}

		var entry SchemaEntry

		if p, ok := tbl.Get("toml-version"); ok {
			s, err := stringOf("schemas[].toml-version", p)
			if err != nil {
				return nil, err
			}

			entry.TomlVersion = s
		}

		if p, ok := tbl.Get("path"); ok {
			s, err := stringOf("schemas[].path", p)
			if err != nil {
				return nil, err
			}

			entry.Path = s
		}

		if p, ok := tbl.Get("include"); ok {
			ss, err := stringArrayOf("schemas[].include", p)
			if err != nil {
				return nil, err
			}

			entry.Include = ss
		}

		if p, ok := tbl.Get("root-keys"); ok {
			s, err := stringOf("schemas[].root-keys", p)
			if err != nil {
				return nil, err
			}

			entry.RootKeys = s
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func decodeFormatConfig(tbl *document.Table, out *FormatConfig, errs *[]error) {
	if v, ok := tbl.Get("line-width"); ok {
		if n, err := intOf("format.line-width", v); err != nil {
			*errs = append(*errs, err)
		} else {
			out.LineWidth = n
		}
	}

	if v, ok := tbl.Get("indent"); ok {
		if s, err := stringOf("format.indent", v); err != nil {
			*errs = append(*errs, err)
		} else {
			out.Indent = s
		}
	}

	if v, ok := tbl.Get("date-time-delimiter"); ok {
		if s, err := stringOf("format.date-time-delimiter", v); err != nil {
			*errs = append(*errs, err)
		} else {
			out.DateTimeDelimiter = s
		}
	}

	if v, ok := tbl.Get("line-ending"); ok {
		if s, err := stringOf("format.line-ending", v); err != nil {
			*errs = append(*errs, err)
		} else {
			out.LineEnding = s
		}
	}

	if v, ok := tbl.Get("quote-style"); ok {
		if s, err := stringOf("format.quote-style", v); err != nil {
			*errs = append(*errs, err)
		} else {
			out.QuoteStyle = s
		}
	}
}

func decodeServerConfig(tbl *document.Table, out *ServerConfig, errs *[]error) {
	fields := []struct {
		name string
		dst  *bool
	}{
		{"completion", &out.Completion},
		{"hover", &out.Hover},
		{"code-action", &out.CodeAction},
		{"diagnostics", &out.Diagnostics},
	}

	for _, f := range fields {
		if v, ok := tbl.Get(f.name); ok {
			b, err := boolOf("server."+f.name, v)
			if err != nil {
				*errs = append(*errs, err)
				continue
			}

			*f.dst = b
		}
	}
}

func stringOf(field string, v document.Value) (string, error) {
	s, ok := v.(document.String)
	if !ok {
		return "", fmt.Errorf("config: %q must be a string", field)
	}

	return s.Raw, nil
}

func boolOf(field string, v document.Value) (bool, error) {
	b, ok := v.(document.Boolean)
	if !ok {
		return false, fmt.Errorf("config: %q must be a boolean", field)
	}

	return b.Val, nil
}

func intOf(field string, v document.Value) (int, error) {
	i, ok := v.(document.Integer)
	if !ok {
		return 0, fmt.Errorf("config: %q must be an integer", field)
	}

	return int(i.Val), nil
}

func tableOf(field string, v document.Value) (*document.Table, error) {
	t, ok := v.(*document.Table)
	if !ok {
		return nil, fmt.Errorf("config: %q must be a table", field)
	}

	return t, nil
}

func stringArrayOf(field string, v document.Value) ([]string, error) {
	arr, ok := v.(*document.Array)
	if !ok {
		return nil, fmt.Errorf("config: %q must be an array of strings", field)
	}

	out := make([]string, 0, len(arr.Values))

	for _, elem := range arr.Values {
		s, ok := elem.(document.String)
		if !ok {
			return nil, fmt.Errorf("config: %q elements must be strings", field)
		}

		out = append(out, s.Raw)
	}

	return out, nil
}
