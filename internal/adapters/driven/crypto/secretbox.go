package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
)

// Ensure SecretBox implements the Decryptor interface.
var _ driven.Decryptor = (*SecretBox)(nil)

const (
	// EncryptedPrefix marks a property value as secretbox ciphertext.
	EncryptedPrefix = "enc:"

	// KeySize is the secretbox key length in bytes.
	KeySize = 32

	nonceSize = 24
)

var (
	// ErrInvalidKey indicates a key that is not 32 bytes of base64.
	ErrInvalidKey = errors.New("crypto: invalid secretbox key")

	// ErrDecrypt indicates ciphertext that is malformed or was sealed with another key.
	ErrDecrypt = errors.New("crypto: cannot decrypt value")
)

// SecretBox decrypts values of the form "enc:<base64(nonce || box)>".
// Values without the prefix are treated as plaintext, so a configuration
// can mix encrypted and unencrypted entries.
type SecretBox struct {
	key [KeySize]byte
}

// NewSecretBox creates a decryptor from a raw 32-byte key.
func NewSecretBox(key []byte) (*SecretBox, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), KeySize)
	}
	sb := &SecretBox{}
	copy(sb.key[:], key)
	return sb, nil
}

// LoadSecretBoxKey reads a base64-encoded key from path.
func LoadSecretBoxKey(path string) (*SecretBox, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return NewSecretBox(key)
}

// GenerateKey returns a new random key, base64 encoded.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (s *SecretBox) Encrypt(plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key)
	return EncryptedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens an "enc:" value. key is the property name, used in errors.
func (s *SecretBox) Decrypt(key, value string) (string, error) {
	encoded, ok := strings.CutPrefix(value, EncryptedPrefix)
	if !ok {
		return value, nil
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrDecrypt, key, err)
	}
	if len(sealed) < nonceSize+secretbox.Overhead {
		return "", fmt.Errorf("%w %s: ciphertext too short", ErrDecrypt, key)
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", fmt.Errorf("%w %s: authentication failed", ErrDecrypt, key)
	}
	return string(plain), nil
}
