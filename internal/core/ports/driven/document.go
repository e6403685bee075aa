package driven

import "io"

// Document is the content the host platform asks the channel to publish.
// The host owns it for the duration of the call.
type Document interface {
	// ID returns the opaque identifier, forwarded verbatim to the server.
	ID() string

	// MimeType returns the declared content type. May be empty.
	MimeType() string

	// Exists returns false if the document has no content to send.
	Exists() bool

	// Open returns the document bytes. The caller closes the reader.
	Open() (io.ReadCloser, error)
}

// FileBacked is implemented by documents that already live in a local file.
// The connector reads that file directly instead of copying it.
type FileBacked interface {
	// LocalPath returns the file path, or "" if the content is not on disk.
	LocalPath() string
}
