package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMimeTypes(t *testing.T) {
	t.Run("trims tokens", func(t *testing.T) {
		set := ParseMimeTypes("application/json, text/plain")

		assert.Equal(t, []string{"application/json", "text/plain"}, set.Sorted())
	})

	t.Run("drops empty tokens and duplicates", func(t *testing.T) {
		set := ParseMimeTypes(" text/xml ,, text/xml, ")

		assert.Equal(t, 1, set.Len())
		assert.True(t, set.Contains("text/xml"))
	})

	t.Run("empty input yields empty set", func(t *testing.T) {
		assert.True(t, ParseMimeTypes("").IsEmpty())
		assert.True(t, ParseMimeTypes(" , ").IsEmpty())
	})
}

func TestDefaultMimeTypes(t *testing.T) {
	set := DefaultMimeTypes()

	assert.Equal(t, 18, set.Len())
	for _, mt := range []string{
		MimeTypeXML, MimeTypeJSON, MimeTypePDF, MimeTypeOpenXMLDocument,
		MimeTypeTextPlain, MimeTypePNG, MimeTypeZip, MimeTypeBinary,
	} {
		assert.True(t, set.Contains(mt), mt)
	}
	assert.False(t, set.Contains("application/rss+xml"))
}

func TestMimeTypeSet_ZeroValue(t *testing.T) {
	var set MimeTypeSet

	assert.True(t, set.IsEmpty())
	assert.False(t, set.Contains("text/xml"))
	assert.Empty(t, set.Sorted())
	assert.Equal(t, "", set.String())
}
