// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - PropertySource: Key/value configuration lookups (properties or TOML files)
//   - Decryptor: Turns stored credential values into plaintext
//   - Document: The byte stream, MIME type and identifier being published
//   - Publisher: Sends one publish or unpublish request to the document server
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
