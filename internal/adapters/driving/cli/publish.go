package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marklogic-publisher/internal/adapters/driven/content"
	"github.com/custodia-labs/marklogic-publisher/internal/connectors/marklogic"
	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
)

var (
	publishTarget   targetFlags
	publishID       string
	publishMimeType string
)

var publishCmd = &cobra.Command{
	Use:   "publish <file|->",
	Short: "Publish a document to MarkLogic",
	Long: `Uploads a document with an HTTP PUT to /alfrescopub/publish.

The document identifier defaults to the file name. Use "-" to read the
document from stdin; --id is then required. The Content-Type is taken from
--mime, then from the file extension, then detected from the content.`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

func init() {
	publishTarget.register(publishCmd)
	publishCmd.Flags().StringVar(&publishID, "id", "", "document identifier sent as the uri parameter")
	publishCmd.Flags().StringVar(&publishMimeType, "mime", "", "document MIME type")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	doc, err := publishDocument(cmd, args[0])
	if err != nil {
		return err
	}

	if publishTarget.dryRun {
		props, err := domain.ParseChannelProperties(publishTarget.properties())
		if err != nil {
			return err
		}
		target, err := marklogic.PublishURI(props, doc.ID())
		if err != nil {
			return err
		}
		cmd.Printf("PUT %s\n", target)
		cmd.Printf("Content-Type: %s\n", doc.MimeType())
		return nil
	}

	ch, err := channelType()
	if err != nil {
		return err
	}
	if err := ch.Publish(cmd.Context(), doc, publishTarget.properties()); err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	cmd.Printf("Published %s to %s:%d\n", doc.ID(), publishTarget.host, publishTarget.port)
	return nil
}

func publishDocument(cmd *cobra.Command, arg string) (driven.Document, error) {
	if arg == "-" {
		if publishID == "" {
			return nil, errors.New("--id is required when reading from stdin")
		}
		return content.NewStream(publishID, publishMimeType, cmd.InOrStdin()), nil
	}

	doc := content.NewFile(arg, publishID, publishMimeType)
	if !doc.Exists() {
		return nil, fmt.Errorf("%s: not a regular file", arg)
	}
	return doc, nil
}
