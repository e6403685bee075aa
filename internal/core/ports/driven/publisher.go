package driven

import (
	"context"

	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
)

// Publisher performs one publish or unpublish round trip against a
// document server. Implementations must be safe for concurrent use.
type Publisher interface {
	// Publish uploads the document to the server addressed by props.
	// Returns nil only when the server confirms the insert.
	Publish(ctx context.Context, doc Document, props domain.ChannelProperties) error

	// Unpublish removes the document with the given identifier.
	// Returns nil only when the server confirms the delete.
	Unpublish(ctx context.Context, documentID string, props domain.ChannelProperties) error
}
