package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tombi-toml/tombi/config"
	"github.com/tombi-toml/tombi/format"
	"github.com/tombi-toml/tombi/schema"
)

// logger builds a [slog.Logger] from a's logging flags, writing to
// stderr so stdout stays reserved for "-" format output.
func (a *app) logger() *slog.Logger {
	handler, err := a.log.NewHandler(os.Stderr)
	if err != nil {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}

	return slog.New(handler)
}

// loadConfig resolves a's configuration file: an explicit --config path,
// else "tombi.toml", else "pyproject.toml" in the working directory, else
// [config.Default].
func (a *app) loadConfig() *config.Config {
	path := a.configPath

	if path == "" {
		for _, candidate := range []string{"tombi.toml", "pyproject.toml"} {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path == "" {
		return config.Default()
	}

	cfg, errs := config.Load(path)
	if len(errs) > 0 || cfg == nil {
		a.logger().Warn("failed to load config, falling back to defaults", "path", path, "errors", errs)
		return config.Default()
	}

	return cfg
}

// schemaStore builds the [schema.Store] every schema-dependent subcommand
// shares, honoring --offline.
func (a *app) schemaStore() *schema.Store {
	return schema.NewStore(nil, a.offline)
}

// formatOptions maps the config file's `[format]` table onto
// [format.Options], falling back to [format.Default] for anything unset.
func formatOptions(cfg *config.Config) format.Options {
	opts := format.Default()

	fc := cfg.Format

	if fc.LineWidth > 0 {
		opts.LineWidth = fc.LineWidth
	}

	switch fc.Indent {
	case "":
		// Keep the default.
	case "tab":
		opts.IndentStyle = format.IndentTab
	default:
		if n, err := strconv.Atoi(fc.Indent); err == nil && n > 0 {
			opts.IndentStyle = format.IndentSpace
			opts.IndentWidth = n
		}
	}

	switch strings.ToLower(fc.LineEnding) {
	case "crlf":
		opts.LineEnding = format.CarriageReturn
	case "lf":
		opts.LineEnding = format.LineFeed
	}

	switch strings.ToLower(fc.DateTimeDelimiter) {
	case "t":
		opts.DateTimeDelimiter = format.DelimiterT
	case "space":
		opts.DateTimeDelimiter = format.DelimiterSpace
	case "preserve":
		opts.DateTimeDelimiter = format.DelimiterPreserve
	}

	switch strings.ToLower(fc.QuoteStyle) {
	case "double":
		opts.QuoteStyle = format.QuoteDouble
	case "single":
		opts.QuoteStyle = format.QuoteSingle
	case "preserve":
		opts.QuoteStyle = format.QuotePreserve
	}

	return opts
}
