// Package content provides driven.Document implementations for content the
// CLI hands to the channel.
//
// Adapters:
//   - File: content already on local disk (read in place)
//   - Stream: content from a reader or byte slice (copied to a temp file by the connector)
package content
