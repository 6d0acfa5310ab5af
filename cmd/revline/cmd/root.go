/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/revline/pkg/config"
	"github.com/ssargent/revline/pkg/di"
	"github.com/ssargent/revline/pkg/logging"
)

var container *di.Container

// SetContainer injects the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

type configKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "revline",
		Short: "revline - reverse-order file transcoder",
		Long: `revline reads a file from its last byte to its first using seek-based
access only and writes its records in reverse order.

Records are separated by '\n' or '\r'; runs of separators never produce
empty records and every record is written with a single '\n'.

Modes:
  lines   records reversed, bytes inside each record kept in scan order
  tokens  records reversed, bytes inside each record in original order`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadSettings,
	}

	root.PersistentFlags().String("config", "", "Config file (default "+config.GetDefaultConfigPath()+")")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "Log format: text, json")
	root.PersistentFlags().String("metrics-file", "", "Write Prometheus textfile metrics to this path after each run")

	root.AddCommand(newReverseCmd())
	root.AddCommand(newModeCmd("lines"))
	root.AddCommand(newModeCmd("tokens"))
	root.AddCommand(newCountCmd())
	root.AddCommand(newInitCmd())

	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings resolves the configuration (file, then flags), builds the
// logger and stores the configuration in the command context.
func loadSettings(cmd *cobra.Command, args []string) error {
	if container == nil {
		return fmt.Errorf("dependency container not initialized")
	}

	configPath, _ := cmd.Flags().GetString("config")
	explicit := configPath != ""
	if !explicit {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if explicit || config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format, _ = cmd.Flags().GetString("log-format")
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.Metrics.Textfile, _ = cmd.Flags().GetString("metrics-file")
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	container.SetLogger(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
	return nil
}

// settings returns the configuration resolved by loadSettings
func settings(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg
		}
	}
	return config.DefaultConfig()
}
