package domain

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Channel property keys supplied by the host platform.
//
//nolint:gosec // G101: These are property names, not actual credentials.
const (
	PropHost     = "host"
	PropPort     = "port"
	PropUser     = "user"
	PropPassword = "password"
)

// ChannelProperties describes where a single publish or unpublish call goes.
// A fresh value is supplied per call and never retained by the connector.
type ChannelProperties struct {
	// Host is the MarkLogic server host name or address.
	Host string

	// Port is the MarkLogic REST port, 1-65535.
	Port int

	// User is the channel-level user name, if the channel was configured with one.
	// It is never used for authentication; the connector sends the
	// technical account from ConnectorConfig instead.
	User string

	// Password is the channel-level password. See User.
	Password string
}

// ParseChannelProperties converts the host platform's loosely typed
// property map into ChannelProperties and validates it.
// The port may be supplied as an int, int64, float64 or decimal string.
func ParseChannelProperties(raw map[string]any) (ChannelProperties, error) {
	var props ChannelProperties

	if v, ok := raw[PropHost]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return props, newBuildError("parse channel", fmt.Errorf("%w: host must be a string, got %T", ErrInvalidChannel, v))
		}
		props.Host = strings.TrimSpace(s)
	}

	if v, ok := raw[PropPort]; ok && v != nil {
		port, err := parsePort(v)
		if err != nil {
			return props, newBuildError("parse channel", err)
		}
		props.Port = port
	}

	props.User, _ = raw[PropUser].(string)
	props.Password, _ = raw[PropPassword].(string)

	if err := props.Validate(); err != nil {
		return props, err
	}
	return props, nil
}

func parsePort(v any) (int, error) {
	switch p := v.(type) {
	case int:
		return p, nil
	case int32:
		return int(p), nil
	case int64:
		return int(p), nil
	case float64:
		if p != float64(int(p)) {
			return 0, fmt.Errorf("%w: port %v is not an integer", ErrInvalidChannel, p)
		}
		return int(p), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("%w: port %q is not a number", ErrInvalidChannel, p)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: port must be a number, got %T", ErrInvalidChannel, v)
	}
}

// Validate checks that a URI can be built from the properties.
func (p ChannelProperties) Validate() error {
	if p.Host == "" {
		return newBuildError("validate channel", fmt.Errorf("%w: host is required", ErrInvalidChannel))
	}
	if p.Port < 1 || p.Port > 65535 {
		return newBuildError("validate channel", fmt.Errorf("%w: port %d out of range 1-65535", ErrInvalidChannel, p.Port))
	}
	return nil
}

// Address returns the host:port pair the channel points at.
func (p ChannelProperties) Address() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}
