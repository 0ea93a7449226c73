package schema

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tombi-toml/tombi/config"
)

// Catalog is a loaded schema catalog: a JSON document listing
// `{ url, fileMatch[] }` entries, the third tier of source-to-schema
// resolution.
type Catalog struct {
	Entries []CatalogEntry
}

// CatalogEntry is one catalog listing.
type CatalogEntry struct {
	URL       string
	FileMatch []string
}

// Resolve implements the three-tier mapping from a source file to the
// schema document that governs it:
//  1. A `#:schema <url>` document header comment wins outright.
//  2. Otherwise, the first configured `[[schemas]]` entry whose `include`
//     glob matches docPath.
//  3. Otherwise, the first catalog entry whose fileMatch glob matches
//     docPath.
func Resolve(docPath string, headerURL string, cfg *config.Config, catalogs []Catalog) (*url.URL, bool) {
	if headerURL != "" {
		if u, err := url.Parse(headerURL); err == nil {
			return u, true
		}
	}

	if cfg != nil {
		for _, entry := range cfg.Schemas {
			if matchesAny(docPath, entry.Include) {
				if u, err := url.Parse(entry.Path); err == nil {
					return u, true
				}
			}
		}
	}

	for _, cat := range catalogs {
		for _, entry := range cat.Entries {
			if matchesAny(docPath, entry.FileMatch) {
				if u, err := url.Parse(entry.URL); err == nil {
					return u, true
				}
			}
		}
	}

	return nil, false
}

// matchesAny reports whether docPath matches any of patterns, each a
// filepath.Match-style glob relative to the project root. "**" is
// normalized to "*" first since filepath.Match has no recursive-wildcard
// concept; this accepts a slightly wider match than a true doublestar glob
// but never a narrower one, which is the safer direction for a schema
// association (it's better to offer a schema than to silently miss one).
func matchesAny(docPath string, patterns []string) bool {
	clean := filepath.ToSlash(docPath)

	for _, pattern := range patterns {
		p := strings.ReplaceAll(filepath.ToSlash(pattern), "**", "*")
		if ok, err := filepath.Match(p, clean); err == nil && ok {
			return true
		}

		if strings.HasSuffix(clean, strings.TrimPrefix(p, "*")) && strings.Contains(pattern, "**") {
			return true
		}
	}

	return false
}
