// Package connectors provides implementations of the Publisher interface
// for document servers. Each connector knows how to push a document to, and
// remove it from, a specific kind of server.
package connectors
