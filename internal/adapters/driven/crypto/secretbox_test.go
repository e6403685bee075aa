package crypto

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBox(t *testing.T) *SecretBox {
	t.Helper()
	encoded, err := GenerateKey()
	require.NoError(t, err)
	key, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	sb, err := NewSecretBox(key)
	require.NoError(t, err)
	return sb
}

func TestPlaintext_Decrypt(t *testing.T) {
	v, err := Plaintext{}.Decrypt("ml.password", "enc:whatever")

	require.NoError(t, err)
	assert.Equal(t, "enc:whatever", v)
}

func TestSecretBox_RoundTrip(t *testing.T) {
	sb := newTestBox(t)

	sealed, err := sb.Encrypt("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, EncryptedPrefix))
	assert.NotContains(t, sealed, "s3cret")

	plain, err := sb.Decrypt("ml.password", sealed)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", plain)
}

func TestSecretBox_NoncesDiffer(t *testing.T) {
	sb := newTestBox(t)

	a, err := sb.Encrypt("same")
	require.NoError(t, err)
	b, err := sb.Encrypt("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSecretBox_PlainValuesPassThrough(t *testing.T) {
	sb := newTestBox(t)

	v, err := sb.Decrypt("ml.user", "admin")

	require.NoError(t, err)
	assert.Equal(t, "admin", v)
}

func TestSecretBox_WrongKey(t *testing.T) {
	sealed, err := newTestBox(t).Encrypt("s3cret")
	require.NoError(t, err)

	_, err = newTestBox(t).Decrypt("ml.password", sealed)

	assert.ErrorIs(t, err, ErrDecrypt)
	assert.Contains(t, err.Error(), "ml.password")
}

func TestSecretBox_Malformed(t *testing.T) {
	sb := newTestBox(t)

	_, err := sb.Decrypt("k", "enc:not base64!")
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = sb.Decrypt("k", "enc:"+base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestNewSecretBox_InvalidKey(t *testing.T) {
	_, err := NewSecretBox([]byte("too short"))

	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestLoadSecretBoxKey(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads base64 key with trailing newline", func(t *testing.T) {
		encoded, err := GenerateKey()
		require.NoError(t, err)
		path := filepath.Join(dir, "good.key")
		require.NoError(t, os.WriteFile(path, []byte(encoded+"\n"), 0600))

		sb, err := LoadSecretBoxKey(path)
		require.NoError(t, err)

		sealed, err := sb.Encrypt("x")
		require.NoError(t, err)
		plain, err := sb.Decrypt("k", sealed)
		require.NoError(t, err)
		assert.Equal(t, "x", plain)
	})

	t.Run("rejects non-base64 content", func(t *testing.T) {
		path := filepath.Join(dir, "bad.key")
		require.NoError(t, os.WriteFile(path, []byte("%%%"), 0600))

		_, err := LoadSecretBoxKey(path)
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSecretBoxKey(filepath.Join(dir, "absent.key"))
		assert.Error(t, err)
	})
}
