package driven

// Decryptor turns a stored credential value into plaintext.
// The scheme is supplied by the host environment; the connector never
// assumes one.
type Decryptor interface {
	// Decrypt returns the plaintext for value. key names the property the
	// value came from, for schemes that bind ciphertext to a property.
	Decrypt(key, value string) (string, error)
}
