package domain

import (
	"sort"
	"strings"
)

// Built-in MIME types advertised when no supportedMimeTypes property is set.
const (
	MimeTypeXML                = "text/xml"
	MimeTypeXHTML              = "application/xhtml+xml"
	MimeTypeJSON               = "application/json"
	MimeTypePDF                = "application/pdf"
	MimeTypeWord               = "application/msword"
	MimeTypeExcel              = "application/vnd.ms-excel"
	MimeTypeTextPlain          = "text/plain"
	MimeTypePowerPoint         = "application/vnd.ms-powerpoint"
	MimeTypeHTML               = "text/html"
	MimeTypeOpenXMLSpreadsheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeTypeOpenXMLSlides      = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MimeTypeOpenXMLDocument    = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypeBinary             = "application/octet-stream"
	MimeTypeGIF                = "image/gif"
	MimeTypeJPEG               = "image/jpeg"
	MimeTypePNG                = "image/png"
	MimeTypeOutlookMsg         = "application/vnd.ms-outlook"
	MimeTypeZip                = "application/zip"
)

// MimeTypeSet is an immutable set of MIME type strings.
type MimeTypeSet struct {
	types map[string]struct{}
}

// NewMimeTypeSet builds a set from the given types, skipping empty strings.
func NewMimeTypeSet(types ...string) MimeTypeSet {
	set := MimeTypeSet{types: make(map[string]struct{}, len(types))}
	for _, t := range types {
		if t != "" {
			set.types[t] = struct{}{}
		}
	}
	return set
}

// ParseMimeTypes parses a comma-separated list, trimming each token.
// Empty tokens are dropped, so "a, ,b," yields {a, b}.
func ParseMimeTypes(s string) MimeTypeSet {
	parts := strings.Split(s, ",")
	types := make([]string, 0, len(parts))
	for _, part := range parts {
		types = append(types, strings.TrimSpace(part))
	}
	return NewMimeTypeSet(types...)
}

// DefaultMimeTypes returns the document, office, text and image types the
// channel accepts when none are configured.
func DefaultMimeTypes() MimeTypeSet {
	return NewMimeTypeSet(
		MimeTypeXML, MimeTypeXHTML, MimeTypeJSON,
		MimeTypePDF, MimeTypeWord, MimeTypeExcel,
		MimeTypeTextPlain, MimeTypePowerPoint, MimeTypeHTML,
		MimeTypeOpenXMLSpreadsheet, MimeTypeOpenXMLSlides, MimeTypeOpenXMLDocument,
		MimeTypeBinary, MimeTypeGIF, MimeTypeJPEG, MimeTypePNG,
		MimeTypeOutlookMsg, MimeTypeZip,
	)
}

// Contains reports whether the MIME type is in the set.
func (s MimeTypeSet) Contains(mimeType string) bool {
	_, ok := s.types[mimeType]
	return ok
}

// Len returns the number of types in the set.
func (s MimeTypeSet) Len() int {
	return len(s.types)
}

// IsEmpty returns true if the set has no types.
func (s MimeTypeSet) IsEmpty() bool {
	return len(s.types) == 0
}

// Sorted returns the types in lexical order.
func (s MimeTypeSet) Sorted() []string {
	out := make([]string, 0, len(s.types))
	for t := range s.types {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s MimeTypeSet) String() string {
	return strings.Join(s.Sorted(), ", ")
}
