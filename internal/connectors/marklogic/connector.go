package marklogic

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
	"github.com/custodia-labs/marklogic-publisher/internal/logger"
)

const (
	// StatusDocumentInserted is the only status accepted for a publish.
	StatusDocumentInserted = http.StatusNoContent

	// StatusDocumentDeleted is the only status accepted for an unpublish.
	StatusDocumentDeleted = http.StatusOK

	// maxResponseBody limits how much of a response body is drained.
	maxResponseBody = 1 << 20 // 1 MB
)

// Ensure Connector implements the interface.
var _ driven.Publisher = (*Connector)(nil)

// Connector publishes documents to a MarkLogic server.
type Connector struct {
	config    domain.ConnectorConfig
	decryptor driven.Decryptor
	transport http.RoundTripper
	limiter   *RateLimiter
	tempDir   string
}

// Option configures the connector.
type Option func(*Connector)

// WithTransport replaces the base HTTP transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Connector) {
		if rt != nil {
			c.transport = rt
		}
	}
}

// WithTempDir sets where non file-backed documents are materialised.
// Default: <os.TempDir>/marklogic.
func WithTempDir(dir string) Option {
	return func(c *Connector) {
		if dir != "" {
			c.tempDir = dir
		}
	}
}

// New creates a connector. A nil decryptor treats stored credentials as plaintext.
func New(config domain.ConnectorConfig, decryptor driven.Decryptor, opts ...Option) *Connector {
	c := &Connector{
		config:    config,
		decryptor: decryptor,
		transport: newTransport(config),
		limiter:   NewRateLimiter(config.RateLimit),
		tempDir:   filepath.Join(os.TempDir(), "marklogic"),
	}
	if c.decryptor == nil {
		c.decryptor = plaintext{}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// newTransport clones the default transport and applies the configured
// timeouts. The transport pools connections and is safe for concurrent use.
func newTransport(config domain.ConnectorConfig) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	dialer := &net.Dialer{
		Timeout:   config.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	t.DialContext = dialer.DialContext
	t.ResponseHeaderTimeout = config.ResponseTimeout
	return t
}

// Publish uploads doc with a PUT. Only 204 counts as success.
func (c *Connector) Publish(ctx context.Context, doc driven.Document, props domain.ChannelProperties) error {
	const op = "publish"

	target, err := PublishURI(props, doc.ID())
	if err != nil {
		return err
	}

	log := requestLog(op, doc.ID(), target.Host)
	if !doc.Exists() {
		log.Warn("document has no content, nothing to publish")
		return nil
	}

	client, err := c.client(op, props)
	if err != nil {
		return err
	}

	p, err := openPayload(doc, c.tempDir)
	if err != nil {
		return domain.NewRequestBuildError(op, err)
	}
	defer p.release()

	mimeType := doc.MimeType()
	if mimeType == "" {
		mimeType = p.detectMimeType()
		log.Debugf("no declared MIME type, detected %s", mimeType)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target.String(), p.file)
	if err != nil {
		return domain.NewRequestBuildError(op, err)
	}
	req.ContentLength = p.size
	if p.size == 0 {
		req.Body = http.NoBody
	}
	req.Header.Set("Content-Type", mimeType)

	log.Debugf("Publishing document (%d bytes, %s, temp=%t)", p.size, mimeType, p.temp)
	return c.execute(op, client, req, StatusDocumentInserted, log)
}

// Unpublish removes a document with a DELETE. Only 200 counts as success.
func (c *Connector) Unpublish(ctx context.Context, documentID string, props domain.ChannelProperties) error {
	const op = "unpublish"

	target, err := UnpublishURI(props, documentID)
	if err != nil {
		return err
	}

	log := requestLog(op, documentID, target.Host)

	client, err := c.client(op, props)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target.String(), nil)
	if err != nil {
		return domain.NewRequestBuildError(op, err)
	}

	log.Debug("Unpublishing document")
	return c.execute(op, client, req, StatusDocumentDeleted, log)
}

// client returns an HTTP client for one call. With authentication enabled
// and a technical user configured, requests to the channel's host:port carry
// Basic credentials; otherwise they go out unauthenticated.
func (c *Connector) client(op string, props domain.ChannelProperties) (*http.Client, error) {
	rt := c.transport

	if c.config.AuthEnabled && c.config.HasTechnicalCredentials() {
		user, err := c.decryptor.Decrypt(domain.KeyUser, c.config.TechnicalUser)
		if err != nil {
			return nil, domain.NewRequestBuildError(op, fmt.Errorf("%w: %v", domain.ErrCredentials, err))
		}
		password, err := c.decryptor.Decrypt(domain.KeyPassword, c.config.TechnicalPassword)
		if err != nil {
			return nil, domain.NewRequestBuildError(op, fmt.Errorf("%w: %v", domain.ErrCredentials, err))
		}
		if user != "" {
			rt = newBasicAuthTransport(rt, props.Address(), user, password)
		}
	}

	return &http.Client{
		Transport: rt,
		// Redirects are reported as rejections, not followed.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}, nil
}

func (c *Connector) execute(op string, client *http.Client, req *http.Request, expected int, log *logrus.Entry) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return &domain.TransportError{Op: op, URL: req.URL.String(), Cause: err}
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return &domain.TransportError{Op: op, URL: req.URL.String(), Cause: err}
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))

	reason := reasonPhrase(resp)
	log.WithField("elapsed", time.Since(start)).
		Debugf("Response Status: %d - Message: %s", resp.StatusCode, reason)

	if resp.StatusCode != expected {
		return &domain.RemoteRejectionError{
			Op:         op,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Expected:   expected,
			Reason:     reason,
		}
	}
	return nil
}

// reasonPhrase extracts the text after the code in the status line,
// falling back to the standard text for the code.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

func requestLog(op, documentID, host string) *logrus.Entry {
	return logger.WithFields(map[string]any{
		"request_id": uuid.NewString(),
		"op":         op,
		"document":   documentID,
		"host":       host,
	})
}

type plaintext struct{}

func (plaintext) Decrypt(_, value string) (string, error) { return value, nil }
