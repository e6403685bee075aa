package marklogic

import (
	"fmt"
	"net/url"

	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
)

const (
	// Scheme is the protocol used to reach the server.
	Scheme = "http"

	// PublishPath is the REST endpoint that inserts or overwrites a document.
	PublishPath = "/alfrescopub/publish"

	// UnpublishPath is the REST endpoint that deletes a document.
	UnpublishPath = "/alfrescopub/unpublish"

	// QueryKey carries the document identifier.
	QueryKey = "uri"
)

// PublishURI returns the PUT target for a document.
func PublishURI(props domain.ChannelProperties, documentID string) (*url.URL, error) {
	return buildURI(props, PublishPath, documentID)
}

// UnpublishURI returns the DELETE target for a document.
func UnpublishURI(props domain.ChannelProperties, documentID string) (*url.URL, error) {
	return buildURI(props, UnpublishPath, documentID)
}

func buildURI(props domain.ChannelProperties, path, documentID string) (*url.URL, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}

	u := &url.URL{
		Scheme:   Scheme,
		Host:     props.Address(),
		Path:     path,
		RawQuery: url.Values{QueryKey: {documentID}}.Encode(),
	}

	// Round trip through the parser so hosts with illegal characters fail
	// here rather than inside the HTTP client.
	parsed, err := url.Parse(u.String())
	if err != nil {
		return nil, domain.NewRequestBuildError("build uri", fmt.Errorf("%w: %v", domain.ErrInvalidChannel, err))
	}
	return parsed, nil
}
