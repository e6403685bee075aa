package cli

import (
	"github.com/spf13/cobra"
)

var mimetypesCmd = &cobra.Command{
	Use:   "mimetypes",
	Short: "List the MIME types the channel advertises",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ch, err := channelType()
		if err != nil {
			return err
		}
		for _, mt := range ch.SupportedMimeTypes().Sorted() {
			cmd.Println(mt)
		}
		return nil
	},
}

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Show the channel type and what it supports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ch, err := channelType()
		if err != nil {
			return err
		}
		cmd.Printf("Channel: %s\n", ch.ID())
		cmd.Printf("  Publish:                %s\n", yesNo(ch.CanPublish()))
		cmd.Printf("  Unpublish:              %s\n", yesNo(ch.CanUnpublish()))
		cmd.Printf("  Publish status updates: %s\n", yesNo(ch.CanPublishStatusUpdates()))
		cmd.Printf("  MIME types:             %d\n", ch.SupportedMimeTypes().Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mimetypesCmd)
	rootCmd.AddCommand(capabilitiesCmd)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
