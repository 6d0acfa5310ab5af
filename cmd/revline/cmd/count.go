/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ssargent/revline/pkg/transcode"
)

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <source>",
		Short: "Count the records of a file without writing anything",
		Long: `Count scans <source> backward and prints the number of records a
reverse run would emit. Blank lines and separator runs are not counted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container == nil {
				return fmt.Errorf("dependency container not initialized")
			}

			source, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("invalid source path: %w", err)
			}

			n, err := transcode.CountFile(container.GetFilesystem(), source)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", n)
			return nil
		},
	}
}
