// Package config provides configuration structures for the search engine:
// per-index settings and the server configuration loaded from YAML.
package config

import (
	"strings"
)

// IndexSettings contains all configuration options for a search index.
type IndexSettings struct {
	Name             string   `json:"name"`              // Unique name for the index
	SearchableFields []string `json:"searchable_fields"` // Document fields whose text is tokenized and indexed
	AllowAll         bool     `json:"allow_all"`         // Whether queries may iterate the full document set (required for standalone negation)
}

// Validate checks the settings for basic requirements and returns a list of
// problems, empty when the settings are usable.
func (settings *IndexSettings) Validate() []string {
	var conflicts []string

	if strings.TrimSpace(settings.Name) == "" {
		conflicts = append(conflicts, "Index name cannot be empty or whitespace-only")
	}

	seen := make(map[string]bool)
	for _, field := range settings.SearchableFields {
		if strings.TrimSpace(field) == "" {
			conflicts = append(conflicts, "Field name cannot be empty or whitespace-only")
			continue
		}
		if strings.Contains(field, ":") {
			conflicts = append(conflicts, "Field '"+field+"' must not contain ':' (reserved for qualified query terms)")
		}
		if seen[field] {
			conflicts = append(conflicts, "Duplicate field '"+field+"' found in searchable_fields")
		}
		seen[field] = true
	}

	return conflicts
}

// ApplyDefaults applies default values to the index settings
func (settings *IndexSettings) ApplyDefaults() {
	// Initialize empty slices if nil to prevent nil pointer issues
	if settings.SearchableFields == nil {
		settings.SearchableFields = []string{}
	}
}
