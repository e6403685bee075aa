package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marklogic-publisher/internal/adapters/driven/config/file"
	"github.com/custodia-labs/marklogic-publisher/internal/adapters/driven/crypto"
	"github.com/custodia-labs/marklogic-publisher/internal/connectors/marklogic"
	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driven"
	"github.com/custodia-labs/marklogic-publisher/internal/core/ports/driving"
	"github.com/custodia-labs/marklogic-publisher/internal/core/services"
	"github.com/custodia-labs/marklogic-publisher/internal/logger"
)

var version = "dev"

// Root flags.
var (
	configPath    string
	verbose       bool
	secretKeyFile string
)

// channel is built on first use from the root flags. Tests replace it.
var channel driving.ChannelType

var rootCmd = &cobra.Command{
	Use:   "mlpub",
	Short: "Publish documents to a MarkLogic server",
	Long: `mlpub publishes documents to, and removes them from, a MarkLogic
server exposing the alfrescopub REST endpoints.

Connector settings (authentication, technical account, supported MIME types,
timeouts) are read once from a .properties or .toml file.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"connector configuration file (default ~/.mlpub/mlpub.properties)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&secretKeyFile, "secret-key-file", "",
		"file holding the base64 key used to decrypt enc: credentials")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. Interrupts cancel in-flight requests.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// channelType returns the configured channel, building it on first use.
func channelType() (driving.ChannelType, error) {
	if channel != nil {
		return channel, nil
	}

	decryptor, err := loadDecryptor()
	if err != nil {
		return nil, err
	}

	provider := services.LoadConfigProvider(openConfig)
	connector := marklogic.New(provider.Config(), decryptor)
	channel = services.NewChannelService(connector, provider)
	return channel, nil
}

func openConfig() (driven.PropertySource, error) {
	path := configPath
	if path == "" {
		p, err := file.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	logger.Debug("Loading configuration from %s", path)

	src, err := file.Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}

func loadDecryptor() (driven.Decryptor, error) {
	if secretKeyFile == "" {
		return crypto.Plaintext{}, nil
	}
	return loadSecretBox()
}

func loadSecretBox() (*crypto.SecretBox, error) {
	if secretKeyFile == "" {
		return nil, errors.New("--secret-key-file is required")
	}
	box, err := crypto.LoadSecretBoxKey(secretKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load secret key: %w", err)
	}
	return box, nil
}
