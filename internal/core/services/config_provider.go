package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
	"github.com/custodia-labs/marklogic-publisher/internal/logger"
)

// ConfigProvider exposes process-wide connector settings as read-only lookups.
// Every key is read once at construction; the provider never goes back to
// the source, so it is safe for concurrent use.
type ConfigProvider struct {
	config domain.ConnectorConfig
}

// LoadConfigProvider opens the property source and builds a provider from it.
// A failure to open the source is logged and treated as an empty
// configuration: authentication off, default MIME types.
func LoadConfigProvider(open func() (driven.PropertySource, error)) *ConfigProvider {
	src, err := open()
	if err != nil {
		logger.Error("load connector configuration: %v (using defaults)", err)
		return NewConfigProvider(nil)
	}
	return NewConfigProvider(src)
}

// NewConfigProvider reads connector settings from src. A nil source yields
// the defaults.
func NewConfigProvider(src driven.PropertySource) *ConfigProvider {
	cfg := domain.DefaultConnectorConfig()
	if src == nil {
		return &ConfigProvider{config: cfg}
	}

	r := reader{src: src}
	cfg.AuthEnabled = r.getBool(domain.KeyAuthEnabled)
	cfg.TechnicalUser = r.getString(domain.KeyUser)
	cfg.TechnicalPassword = r.getString(domain.KeyPassword)
	cfg.ConnectTimeout = r.getDuration(domain.KeyConnectTimeout)
	cfg.ResponseTimeout = r.getDuration(domain.KeyResponseTimeout)
	cfg.RateLimit = r.getFloat(domain.KeyRateLimit)

	if types, ok := src.GetStringSet(domain.KeySupportedMimeTypes); ok {
		if set := domain.NewMimeTypeSet(types...); !set.IsEmpty() {
			cfg.SupportedMimeTypes = set
			logger.Info("supported MIME types: %s", set)
		}
	}

	return &ConfigProvider{config: cfg}
}

// IsAuthEnabled returns true iff ml.auth.enabled holds a true boolean.
func (p *ConfigProvider) IsAuthEnabled() bool {
	return p.config.AuthEnabled
}

// TechnicalCredentials returns the configured service account, possibly empty.
func (p *ConfigProvider) TechnicalCredentials() (user, password string) {
	return p.config.TechnicalUser, p.config.TechnicalPassword
}

// SupportedMimeTypes returns the configured MIME types, or the defaults.
func (p *ConfigProvider) SupportedMimeTypes() domain.MimeTypeSet {
	return p.config.SupportedMimeTypes
}

// Config returns a copy of the full connector configuration.
func (p *ConfigProvider) Config() domain.ConnectorConfig {
	return p.config
}

type reader struct {
	src driven.PropertySource
}

func (r reader) getString(key string) string {
	v, _ := r.src.GetString(key)
	return v
}

func (r reader) getBool(key string) bool {
	v, ok := r.src.GetString(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		logger.Warn("config %s=%q is not a boolean, treating as false", key, v)
		return false
	}
	return b
}

// getDuration accepts Go durations ("30s", "1m") or plain seconds ("30").
func (r reader) getDuration(key string) time.Duration {
	v, ok := r.src.GetString(key)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return 0
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	if secs, err := strconv.ParseFloat(v, 64); err == nil && secs >= 0 {
		return time.Duration(secs * float64(time.Second))
	}
	logger.Warn("config %s=%q is not a duration, ignoring", key, v)
	return 0
}

func (r reader) getFloat(key string) float64 {
	v, ok := r.src.GetString(key)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		logger.Warn("config %s=%q is not a non-negative number, ignoring", key, v)
		return 0
	}
	return f
}
