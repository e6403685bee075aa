package marklogic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
)

func TestPublishURI(t *testing.T) {
	props := domain.ChannelProperties{Host: "ml.example.com", Port: 8010}

	t.Run("plain identifier", func(t *testing.T) {
		u, err := PublishURI(props, "doc-1")

		require.NoError(t, err)
		assert.Equal(t, "http://ml.example.com:8010/alfrescopub/publish?uri=doc-1", u.String())
	})

	t.Run("node reference is query escaped", func(t *testing.T) {
		u, err := PublishURI(props, "workspace://SpacesStore/8f2c a&b=c")

		require.NoError(t, err)
		assert.Equal(t,
			"http://ml.example.com:8010/alfrescopub/publish?uri=workspace%3A%2F%2FSpacesStore%2F8f2c+a%26b%3Dc",
			u.String())
		assert.Equal(t, "workspace://SpacesStore/8f2c a&b=c", u.Query().Get(QueryKey))
	})

	t.Run("ipv6 host is bracketed", func(t *testing.T) {
		u, err := PublishURI(domain.ChannelProperties{Host: "::1", Port: 8000}, "d")

		require.NoError(t, err)
		assert.Equal(t, "http://[::1]:8000/alfrescopub/publish?uri=d", u.String())
	})
}

func TestUnpublishURI(t *testing.T) {
	u, err := UnpublishURI(domain.ChannelProperties{Host: "localhost", Port: 8000}, "workspace://SpacesStore/1")

	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "localhost:8000", u.Host)
	assert.Equal(t, UnpublishPath, u.Path)
	assert.Equal(t, "uri=workspace%3A%2F%2FSpacesStore%2F1", u.RawQuery)
}

func TestBuildURI_Invalid(t *testing.T) {
	cases := []domain.ChannelProperties{
		{Host: "", Port: 8000},
		{Host: "localhost", Port: 0},
		{Host: "localhost", Port: 70000},
		{Host: "bad host", Port: 8000},
	}
	for _, props := range cases {
		_, err := PublishURI(props, "d")

		require.Error(t, err, "%+v", props)
		assert.True(t, domain.IsRequestBuildFailure(err), "%+v", props)
		assert.ErrorIs(t, err, domain.ErrInvalidChannel)
	}
}
