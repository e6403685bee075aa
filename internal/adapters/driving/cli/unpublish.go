package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marklogic-publisher/internal/connectors/marklogic"
	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
)

var unpublishTarget targetFlags

var unpublishCmd = &cobra.Command{
	Use:   "unpublish <document-id>",
	Short: "Remove a published document from MarkLogic",
	Long:  `Sends an HTTP DELETE to /alfrescopub/unpublish for the given document identifier.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUnpublish,
}

func init() {
	unpublishTarget.register(unpublishCmd)
	rootCmd.AddCommand(unpublishCmd)
}

func runUnpublish(cmd *cobra.Command, args []string) error {
	documentID := args[0]

	if unpublishTarget.dryRun {
		props, err := domain.ParseChannelProperties(unpublishTarget.properties())
		if err != nil {
			return err
		}
		target, err := marklogic.UnpublishURI(props, documentID)
		if err != nil {
			return err
		}
		cmd.Printf("DELETE %s\n", target)
		return nil
	}

	ch, err := channelType()
	if err != nil {
		return err
	}
	if err := ch.Unpublish(cmd.Context(), documentID, unpublishTarget.properties()); err != nil {
		return fmt.Errorf("unpublish failed: %w", err)
	}

	cmd.Printf("Unpublished %s from %s:%d\n", documentID, unpublishTarget.host, unpublishTarget.port)
	return nil
}
