package commands

import (
	"os"

	"github.com/LovationAdmin/expense-api/config"
	"github.com/LovationAdmin/expense-api/utils"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "expense-api",
		Short:   "Personal expense tracking API",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newSeedCommand())

	return rootCmd
}

// loadConfig reads and validates the environment and installs the logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	utils.ConfigureLogging(os.Stdout, cfg.LogLevel, cfg.Production)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
