package marklogic

import (
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
	"github.com/custodia-labs/marklogic-publisher/internal/logger"
)

// tempPattern names materialised payloads inside the temp directory.
const tempPattern = "marklogic-*"

// payload is the on-disk form of a document for the duration of one request.
type payload struct {
	file *os.File
	path string
	size int64
	temp bool
}

// openPayload returns a readable file for doc. File-backed documents are
// opened in place; anything else is copied into a new file under dir, which
// release deletes.
func openPayload(doc driven.Document, dir string) (*payload, error) {
	if fb, ok := doc.(driven.FileBacked); ok && fb.LocalPath() != "" {
		return openLocal(fb.LocalPath())
	}
	return materialise(doc, dir)
}

func openLocal(path string) (*payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentUnavailable, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentUnavailable, err)
	}
	return &payload{file: f, path: path, size: info.Size()}, nil
}

func materialise(doc driven.Document, dir string) (p *payload, err error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	p = &payload{file: tmp, path: tmp.Name(), temp: true}

	// From here on the temp file is ours; drop it on any failure.
	defer func() {
		if err != nil {
			p.release()
			p = nil
		}
	}()

	rc, err := doc.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentUnavailable, err)
	}
	defer rc.Close()

	n, err := io.Copy(tmp, rc)
	if err != nil {
		return nil, fmt.Errorf("%w: copy content: %v", domain.ErrDocumentUnavailable, err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind temp file: %w", err)
	}
	p.size = n
	return p, nil
}

// detectMimeType sniffs the content type from the payload bytes.
func (p *payload) detectMimeType() string {
	mt, err := mimetype.DetectFile(p.path)
	if err != nil {
		return domain.MimeTypeBinary
	}
	return mt.String()
}

// release closes the file and, for materialised payloads, deletes it.
// The HTTP transport may already have closed the file; that is not an error.
func (p *payload) release() {
	_ = p.file.Close()
	if !p.temp {
		return
	}
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		logger.Warn("remove temp file %s: %v", p.path, err)
	}
}
