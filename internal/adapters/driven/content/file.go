package content

import (
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
)

// Ensure File implements the Document and FileBacked interfaces.
var (
	_ driven.Document   = (*File)(nil)
	_ driven.FileBacked = (*File)(nil)
)

// File is a document whose content is a local file.
type File struct {
	path     string
	id       string
	mimeType string
}

// NewFile creates a file-backed document. When id is empty the file's base
// name is used. When mimeType is empty it is guessed from the extension;
// unknown extensions leave it empty.
func NewFile(path, id, mimeType string) *File {
	if id == "" {
		id = filepath.Base(path)
	}
	if mimeType == "" {
		mimeType = TypeByExtension(path)
	}
	return &File{path: path, id: id, mimeType: mimeType}
}

// TypeByExtension returns the media type for the file extension without
// parameters, e.g. "text/xml" rather than "text/xml; charset=utf-8".
func TypeByExtension(path string) string {
	full := mime.TypeByExtension(filepath.Ext(path))
	if full == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(full)
	if err != nil {
		return full
	}
	return mediaType
}

// ID returns the document identifier.
func (f *File) ID() string { return f.id }

// MimeType returns the declared content type.
func (f *File) MimeType() string { return f.mimeType }

// LocalPath returns the file path.
func (f *File) LocalPath() string { return f.path }

// Exists returns true if the path is a regular file.
func (f *File) Exists() bool {
	info, err := os.Stat(f.path)
	return err == nil && info.Mode().IsRegular()
}

// Open opens the file for reading.
func (f *File) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}
