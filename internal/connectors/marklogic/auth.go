package marklogic

import (
	"net/http"
	"strings"
)

// basicAuthTransport adds HTTP Basic credentials to requests for exactly one
// host:port. Requests to any other address pass through untouched.
type basicAuthTransport struct {
	base     http.RoundTripper
	scope    string
	user     string
	password string
}

func newBasicAuthTransport(base http.RoundTripper, scope, user, password string) *basicAuthTransport {
	return &basicAuthTransport{base: base, scope: scope, user: user, password: password}
}

// RoundTrip implements http.RoundTripper.
func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !strings.EqualFold(req.URL.Host, t.scope) {
		return t.base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	authed := req.Clone(req.Context())
	authed.SetBasicAuth(t.user, t.password)
	return t.base.RoundTrip(authed)
}
