// Package memory provides an in-memory driven.PropertySource, used in tests
// and as the empty source when no configuration file can be loaded.
package memory

import (
	"sort"
	"strings"

	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
)

// Ensure PropertySource implements the interface.
var _ driven.PropertySource = (*PropertySource)(nil)

// PropertySource is an immutable in-memory implementation of driven.PropertySource.
type PropertySource struct {
	values map[string]string
}

// New creates a source holding a copy of values. A nil map gives an empty source.
func New(values map[string]string) *PropertySource {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &PropertySource{values: copied}
}

// Empty returns a source with no keys.
func Empty() *PropertySource {
	return New(nil)
}

// GetString retrieves a value by key.
func (s *PropertySource) GetString(key string) (string, bool) {
	val, ok := s.values[key]
	return val, ok
}

// GetStringSet splits a comma-separated value, trimming entries and
// dropping empty ones.
func (s *PropertySource) GetStringSet(key string) ([]string, bool) {
	val, ok := s.values[key]
	if !ok {
		return nil, false
	}
	parts := strings.Split(val, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result, true
}

// Keys returns every key, sorted.
func (s *PropertySource) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
