package driven

// PropertySource provides read-only access to connector configuration.
// Implementations handle the file format (e.g., Java properties, TOML).
type PropertySource interface {
	// GetString retrieves a value by key.
	// Returns the value and a boolean indicating if the key exists.
	// Non-string values are rendered in their natural text form.
	GetString(key string) (string, bool)

	// GetStringSet retrieves a list value by key.
	// Comma-separated strings are split and trimmed; empty entries are dropped.
	GetStringSet(key string) ([]string, bool)

	// Keys returns every key present in the source.
	Keys() []string
}
