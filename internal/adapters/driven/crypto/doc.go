// Package crypto provides driven.Decryptor implementations for the
// technical credentials stored in the connector configuration.
//
// Adapters:
//   - Plaintext: values are stored unencrypted
//   - SecretBox: values prefixed with "enc:" are NaCl secretbox ciphertexts
package crypto
