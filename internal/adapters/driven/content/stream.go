package content

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
)

// Ensure Stream implements the Document interface.
var _ driven.Document = (*Stream)(nil)

// ErrConsumed indicates a single-use stream was opened twice.
var ErrConsumed = errors.New("content: stream already consumed")

// Stream is a document that is not backed by a local file.
type Stream struct {
	id       string
	mimeType string
	exists   bool
	open     func() (io.ReadCloser, error)
}

// NewStream wraps a reader that can be consumed once, such as stdin.
func NewStream(id, mimeType string, r io.Reader) *Stream {
	var once sync.Once
	return &Stream{
		id:       id,
		mimeType: mimeType,
		exists:   r != nil,
		open: func() (io.ReadCloser, error) {
			var rc io.ReadCloser
			once.Do(func() { rc = io.NopCloser(r) })
			if rc == nil {
				return nil, ErrConsumed
			}
			return rc, nil
		},
	}
}

// NewBytes wraps an in-memory payload. It can be opened any number of times.
func NewBytes(id, mimeType string, data []byte) *Stream {
	return &Stream{
		id:       id,
		mimeType: mimeType,
		exists:   data != nil,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// ID returns the document identifier.
func (s *Stream) ID() string { return s.id }

// MimeType returns the declared content type.
func (s *Stream) MimeType() string { return s.mimeType }

// Exists returns false for a nil reader or nil payload.
func (s *Stream) Exists() bool { return s.exists }

// Open returns the content.
func (s *Stream) Open() (io.ReadCloser, error) {
	if !s.exists {
		return nil, ErrConsumed
	}
	return s.open()
}
