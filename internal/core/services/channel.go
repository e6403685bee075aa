package services

import (
	"context"

	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driving"
	"github.com/custodia-labs/marklogic-publisher/internal/logger"
)

// Ensure ChannelService implements the interface.
var _ driving.ChannelType = (*ChannelService)(nil)

// ChannelTypeID identifies the MarkLogic channel to the host platform.
const ChannelTypeID = "marklogic"

// ChannelService is the MarkLogic channel type as seen by the host platform.
// It turns the host's raw channel properties into a validated target and
// hands the work to a Publisher.
type ChannelService struct {
	publisher driven.Publisher
	config    *ConfigProvider
}

// NewChannelService creates a new channel service.
// A nil config advertises the default MIME types.
func NewChannelService(publisher driven.Publisher, config *ConfigProvider) *ChannelService {
	if config == nil {
		config = NewConfigProvider(nil)
	}
	return &ChannelService{
		publisher: publisher,
		config:    config,
	}
}

// ID returns the channel type identifier.
func (s *ChannelService) ID() string {
	return ChannelTypeID
}

// CanPublish returns true.
func (s *ChannelService) CanPublish() bool {
	return true
}

// CanUnpublish returns true.
func (s *ChannelService) CanUnpublish() bool {
	return true
}

// CanPublishStatusUpdates returns false; MarkLogic has no status feed.
func (s *ChannelService) CanPublishStatusUpdates() bool {
	return false
}

// SupportedMimeTypes returns the configured MIME types. They are advertised
// only; Publish does not filter on them.
func (s *ChannelService) SupportedMimeTypes() domain.MimeTypeSet {
	return s.config.SupportedMimeTypes()
}

// Publish sends doc to the target described by channelProperties.
func (s *ChannelService) Publish(ctx context.Context, doc driven.Document, channelProperties map[string]any) error {
	if doc == nil {
		return domain.NewRequestBuildError("publish", domain.ErrDocumentUnavailable)
	}

	props, err := domain.ParseChannelProperties(channelProperties)
	if err != nil {
		return err
	}

	logger.Section("Publish")
	logger.Debug("Document: %s (%s)", doc.ID(), doc.MimeType())
	logger.Debug("Target: %s", props.Address())

	return s.publisher.Publish(ctx, doc, props)
}

// Unpublish removes documentID from the target described by channelProperties.
func (s *ChannelService) Unpublish(ctx context.Context, documentID string, channelProperties map[string]any) error {
	props, err := domain.ParseChannelProperties(channelProperties)
	if err != nil {
		return err
	}

	logger.Section("Unpublish")
	logger.Debug("Document: %s", documentID)
	logger.Debug("Target: %s", props.Address())

	return s.publisher.Unpublish(ctx, documentID, props)
}
