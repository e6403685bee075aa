// Package domain defines the core entities of the MarkLogic publishing channel.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ChannelProperties: Per-call publishing target (host, port, credentials)
//   - ConnectorConfig: Process-wide, read-only connector settings
//   - MimeTypeSet: The MIME types advertised by the channel
//   - RequestBuildError, TransportError, RemoteRejectionError: Call outcomes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
