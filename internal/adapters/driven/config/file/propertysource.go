package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
)

// Ensure PropertySource implements the interface.
var _ driven.PropertySource = (*PropertySource)(nil)

// PropertySource is a read-only, file-backed implementation of
// driven.PropertySource. Files ending in .toml are parsed as TOML with
// nested tables flattened to dotted keys; anything else is parsed as a
// Java properties file.
type PropertySource struct {
	filePath string
	data     map[string]any
}

// Open loads the configuration file at path.
// The file is read once; later changes on disk are not observed.
func Open(path string) (*PropertySource, error) {
	s := &PropertySource{filePath: path}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		s.data, err = loadTOML(path)
	default:
		s.data, err = loadProperties(path)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultPath returns ~/.mlpub/mlpub.properties.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mlpub", "mlpub.properties"), nil
}

func loadProperties(path string) (map[string]any, error) {
	// Expansion stays off so passwords containing ${...} load verbatim.
	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load properties %s: %w", path, err)
	}

	data := make(map[string]any, p.Len())
	for _, key := range p.Keys() {
		if v, ok := p.Get(key); ok {
			data[key] = v
		}
	}
	return data, nil
}

func loadTOML(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var loaded map[string]any
	if err := toml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if loaded == nil {
		return make(map[string]any), nil
	}

	// Flatten nested maps into dot-notation keys so [ml.auth] enabled = true
	// and "ml.auth.enabled" = true are read the same way.
	return flattenMap(loaded, ""), nil
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// GetString retrieves a value by key, rendering TOML booleans, numbers and
// arrays as text. Arrays are joined with commas.
func (s *PropertySource) GetString(key string) (string, bool) {
	val, ok := s.data[key]
	if !ok {
		return "", false
	}
	return stringify(val), true
}

// GetStringSet retrieves a list value. TOML arrays are used as-is;
// strings are split on commas. Entries are trimmed and empty ones dropped.
func (s *PropertySource) GetStringSet(key string) ([]string, bool) {
	val, ok := s.data[key]
	if !ok {
		return nil, false
	}

	var items []string
	switch v := val.(type) {
	case []any:
		for _, item := range v {
			items = append(items, stringify(item))
		}
	case []string:
		items = v
	default:
		items = strings.Split(stringify(v), ",")
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result, true
}

// Keys returns every key in the file, sorted.
func (s *PropertySource) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the configuration file path.
func (s *PropertySource) Path() string {
	return s.filePath
}

func stringify(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
