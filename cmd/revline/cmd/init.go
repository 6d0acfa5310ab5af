/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/revline/pkg/config"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Init writes the default configuration to the path given by --config,
or to the platform default path when --config is not set.

An existing file is left untouched unless --force is given.

Examples:
  revline init
  revline init --config ./revline.yaml --force`,
		Args: cobra.NoArgs,
		// The config being created may not exist or parse yet
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			if configPath == "" {
				configPath = config.GetDefaultConfigPath()
			}

			_, created, err := config.BootstrapConfig(configPath, force)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			if !created {
				cmd.Printf("Configuration already exists at %s. Use --force to overwrite.\n", configPath)
				return nil
			}

			cmd.Printf("Configuration written to %s\n", configPath)
			return nil
		},
	}

	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")

	return initCmd
}
