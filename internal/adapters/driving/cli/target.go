package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/marklogic-publisher/internal/core/domain"
)

// targetFlags are the channel properties a command sends to the host-facing
// channel. They stand in for the host platform's per-channel settings.
type targetFlags struct {
	host   string
	port   int
	dryRun bool
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.host, "host", "localhost", "MarkLogic server host")
	cmd.Flags().IntVar(&f.port, "port", 8000, "MarkLogic REST port")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print the request without sending it")
}

// properties returns the raw channel property map, as the host platform
// would supply it.
func (f *targetFlags) properties() map[string]any {
	return map[string]any{
		domain.PropHost: f.host,
		domain.PropPort: f.port,
	}
}
