package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannelProperties(t *testing.T) {
	t.Run("accepts integer port", func(t *testing.T) {
		props, err := ParseChannelProperties(map[string]any{
			"host": "ml.example.com",
			"port": 8010,
		})

		require.NoError(t, err)
		assert.Equal(t, "ml.example.com", props.Host)
		assert.Equal(t, 8010, props.Port)
	})

	t.Run("accepts int64, float64 and string ports", func(t *testing.T) {
		for _, port := range []any{int64(8000), float64(8000), "8000", " 8000 "} {
			props, err := ParseChannelProperties(map[string]any{"host": "h", "port": port})
			require.NoError(t, err, "port %#v", port)
			assert.Equal(t, 8000, props.Port)
		}
	})

	t.Run("carries channel credentials", func(t *testing.T) {
		props, err := ParseChannelProperties(map[string]any{
			"host":     "h",
			"port":     1,
			"user":     "channel-user",
			"password": "channel-pass",
		})

		require.NoError(t, err)
		assert.Equal(t, "channel-user", props.User)
		assert.Equal(t, "channel-pass", props.Password)
	})

	t.Run("credentials are optional", func(t *testing.T) {
		props, err := ParseChannelProperties(map[string]any{"host": "h", "port": 65535})

		require.NoError(t, err)
		assert.Empty(t, props.User)
		assert.Empty(t, props.Password)
	})

	t.Run("missing host is a build failure", func(t *testing.T) {
		_, err := ParseChannelProperties(map[string]any{"port": 8000})

		require.Error(t, err)
		assert.True(t, IsRequestBuildFailure(err))
		assert.ErrorIs(t, err, ErrInvalidChannel)
		assert.ErrorIs(t, err, ErrPublishingFailed)
	})

	t.Run("missing port is a build failure", func(t *testing.T) {
		_, err := ParseChannelProperties(map[string]any{"host": "h"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidChannel)
	})

	t.Run("rejects out of range ports", func(t *testing.T) {
		for _, port := range []any{0, -1, 65536, "99999"} {
			_, err := ParseChannelProperties(map[string]any{"host": "h", "port": port})
			assert.ErrorIs(t, err, ErrInvalidChannel, "port %#v", port)
		}
	})

	t.Run("rejects malformed ports", func(t *testing.T) {
		for _, port := range []any{"eighty", 80.5, true} {
			_, err := ParseChannelProperties(map[string]any{"host": "h", "port": port})
			assert.ErrorIs(t, err, ErrInvalidChannel, "port %#v", port)
		}
	})

	t.Run("rejects non-string host", func(t *testing.T) {
		_, err := ParseChannelProperties(map[string]any{"host": 42, "port": 80})

		var buildErr *RequestBuildError
		require.True(t, errors.As(err, &buildErr))
		assert.Equal(t, "parse channel", buildErr.Op)
	})
}

func TestChannelProperties_Address(t *testing.T) {
	assert.Equal(t, "localhost:8000", ChannelProperties{Host: "localhost", Port: 8000}.Address())
	assert.Equal(t, "[::1]:8000", ChannelProperties{Host: "::1", Port: 8000}.Address())
}
