// Command mlpub publishes documents to a MarkLogic server.
package main

import (
	"os"

	"github.com/custodia-labs/marklogic-publisher/internal/adapters/driving/cli"
)

// Set by the release build with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
