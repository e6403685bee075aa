package crypto

import "github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"

// Ensure Plaintext implements the Decryptor interface.
var _ driven.Decryptor = Plaintext{}

// Plaintext is for configurations that store credentials unencrypted.
type Plaintext struct{}

// Decrypt returns value unchanged.
func (Plaintext) Decrypt(_, value string) (string, error) {
	return value, nil
}
