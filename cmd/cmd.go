package cmd

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/internal/config"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the anjoli root command with all sub-commands registered.
func NewRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:  "anjoli",
		Long: `Anjoli Token custody and exchange contract service`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration
			config := config.Parse(configFile)

			// Initialize logger
			if err := logger.Init(config.Logger); err != nil {
				logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", config.Logger))
			}
		},
		SilenceUsage: true,
	}

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("network", "localnet", "network the contract is deployed on, E.g. `mainnet`, `testnet` or `localnet`")

	// Bind flags to configuration
	config.BindPFlag("network", flags.Lookup("network"))

	// Register sub-commands
	cmd.AddCommand(
		NewRunCommand(),
		NewMigrateCommand(),
		NewVersionCommand(),
	)

	return cmd
}

// Execute runs the root command. Cobra has already printed the error when one is returned.
func Execute(ctx context.Context) error {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to execute command", err)
		return errors.WithStack(err)
	}
	return nil
}
