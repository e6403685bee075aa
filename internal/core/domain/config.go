package domain

import "time"

// Connector configuration keys read from the properties source.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAuthEnabled        = "ml.auth.enabled"
	KeyUser               = "ml.user"
	KeyPassword           = "ml.password"
	KeySupportedMimeTypes = "supportedMimeTypes"
	KeyConnectTimeout     = "ml.connect.timeout"
	KeyResponseTimeout    = "ml.response.timeout"
	KeyRateLimit          = "ml.rate.limit"
)

// ConnectorConfig holds process-wide connector settings.
// It is built once at startup and never mutated, so it is safe to share
// between concurrent publish and unpublish calls.
type ConnectorConfig struct {
	// AuthEnabled turns on HTTP Basic authentication with the technical account.
	AuthEnabled bool

	// TechnicalUser is the shared service account user name (possibly encrypted).
	TechnicalUser string

	// TechnicalPassword is the shared service account password (possibly encrypted).
	TechnicalPassword string

	// SupportedMimeTypes is advertised to the host platform; it is not
	// enforced by the connector.
	SupportedMimeTypes MimeTypeSet

	// ConnectTimeout bounds connection establishment. Zero means no limit.
	ConnectTimeout time.Duration

	// ResponseTimeout bounds the wait for response headers. Zero means no limit.
	ResponseTimeout time.Duration

	// RateLimit caps outgoing requests per second. Zero means unlimited.
	RateLimit float64
}

// DefaultConnectorConfig returns the configuration used when no properties
// could be loaded: authentication off and the built-in MIME types.
func DefaultConnectorConfig() ConnectorConfig {
	return ConnectorConfig{
		SupportedMimeTypes: DefaultMimeTypes(),
	}
}

// HasTechnicalCredentials returns true if a technical user is configured.
// An empty user means requests go out unauthenticated.
func (c *ConnectorConfig) HasTechnicalCredentials() bool {
	return c.TechnicalUser != ""
}
