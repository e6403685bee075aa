// Package file provides file-based implementations of driven port interfaces.
// These adapters read connector configuration from the local filesystem.
//
// Adapters:
//   - PropertySource: Java-style .properties or TOML configuration
package file
