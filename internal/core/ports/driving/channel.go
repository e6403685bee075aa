package driving

import (
	"context"

	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
)

// ChannelType is the contract a publishing channel exposes to the host
// platform: two operations plus capability queries.
type ChannelType interface {
	// ID returns the channel type identifier.
	ID() string

	// CanPublish reports whether documents can be published.
	CanPublish() bool

	// CanUnpublish reports whether published documents can be removed.
	CanUnpublish() bool

	// CanPublishStatusUpdates reports whether status updates are supported.
	CanPublishStatusUpdates() bool

	// SupportedMimeTypes returns the MIME types the channel accepts.
	// The host filters documents against this set before calling Publish.
	SupportedMimeTypes() domain.MimeTypeSet

	// Publish sends doc to the server described by the channel properties.
	Publish(ctx context.Context, doc driven.Document, channelProperties map[string]any) error

	// Unpublish removes the document with the given identifier.
	Unpublish(ctx context.Context, documentID string, channelProperties map[string]any) error
}
