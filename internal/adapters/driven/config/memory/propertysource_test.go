package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertySource(t *testing.T) {
	values := map[string]string{
		"ml.user":            "admin",
		"supportedMimeTypes": "text/xml, ,application/json ",
	}
	src := New(values)

	// Later changes to the caller's map are not observed.
	values["ml.user"] = "changed"

	v, ok := src.GetString("ml.user")
	assert.True(t, ok)
	assert.Equal(t, "admin", v)

	set, ok := src.GetStringSet("supportedMimeTypes")
	assert.True(t, ok)
	assert.Equal(t, []string{"text/xml", "application/json"}, set)

	assert.Equal(t, []string{"ml.user", "supportedMimeTypes"}, src.Keys())
}

func TestEmpty(t *testing.T) {
	src := Empty()

	_, ok := src.GetString("ml.user")
	assert.False(t, ok)

	set, ok := src.GetStringSet("supportedMimeTypes")
	assert.False(t, ok)
	assert.Nil(t, set)
	assert.Empty(t, src.Keys())
}
