/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/revline/pkg/config"
	"github.com/ssargent/revline/pkg/transcode"
)

// runRequest describes a single transcode invocation
type runRequest struct {
	Source      string
	Destination string
	Mode        transcode.Mode
	Append      bool
	Sync        bool
}

func newReverseCmd() *cobra.Command {
	reverseCmd := &cobra.Command{
		Use:   "reverse <source> <destination>",
		Short: "Write the records of a file in reverse order",
		Long: `Reverse reads <source> backward and writes its records to <destination>.

The mode defaults to the one set in the config file (lines unless changed).

Examples:
  revline reverse entrada.txt salida.txt
  revline reverse --mode tokens entrada.txt salida.txt
  revline reverse --append --sync entrada.txt salida.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings(cmd)

			req := runRequest{
				Source:      args[0],
				Destination: args[1],
				Mode:        cfg.Mode,
				Append:      cfg.Append,
				Sync:        cfg.Sync,
			}

			if cmd.Flags().Changed("mode") {
				value, _ := cmd.Flags().GetString("mode")
				mode, err := transcode.ParseMode(value)
				if err != nil {
					return err
				}
				req.Mode = mode
			}
			if cmd.Flags().Changed("append") {
				req.Append, _ = cmd.Flags().GetBool("append")
			}
			if cmd.Flags().Changed("sync") {
				req.Sync, _ = cmd.Flags().GetBool("sync")
			}

			return runTranscode(cmd, cfg, req)
		},
	}

	reverseCmd.Flags().StringP("mode", "m", "", "Reversal mode: lines or tokens")
	reverseCmd.Flags().Bool("append", false, "Append to the destination instead of truncating it")
	reverseCmd.Flags().Bool("sync", false, "Fsync the destination before closing it")

	return reverseCmd
}

// newModeCmd builds a shortcut command that always runs in the named mode
func newModeCmd(name string) *cobra.Command {
	mode, _ := transcode.ParseMode(name)

	modeCmd := &cobra.Command{
		Use:   name + " <source> <destination>",
		Short: fmt.Sprintf("Shortcut for reverse --mode %s", name),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings(cmd)

			req := runRequest{
				Source:      args[0],
				Destination: args[1],
				Mode:        mode,
				Append:      cfg.Append,
				Sync:        cfg.Sync,
			}
			if cmd.Flags().Changed("append") {
				req.Append, _ = cmd.Flags().GetBool("append")
			}
			if cmd.Flags().Changed("sync") {
				req.Sync, _ = cmd.Flags().GetBool("sync")
			}

			return runTranscode(cmd, cfg, req)
		},
	}

	modeCmd.Flags().Bool("append", false, "Append to the destination instead of truncating it")
	modeCmd.Flags().Bool("sync", false, "Fsync the destination before closing it")

	return modeCmd
}

// runTranscode executes one run against the container filesystem, records
// its metrics and reports the outcome.
func runTranscode(cmd *cobra.Command, cfg *config.Config, req runRequest) error {
	if container == nil {
		return fmt.Errorf("dependency container not initialized")
	}

	source, err := filepath.Abs(req.Source)
	if err != nil {
		return fmt.Errorf("invalid source path: %w", err)
	}
	destination, err := filepath.Abs(req.Destination)
	if err != nil {
		return fmt.Errorf("invalid destination path: %w", err)
	}

	runID := ksuid.New().String()
	logger := container.GetLogger().With("run_id", runID)

	stats, err := transcode.TranscodeFile(container.GetFilesystem(), transcode.FileConfig{
		SourcePath: source,
		DestPath:   destination,
		Append:     req.Append,
		Options: transcode.Options{
			Mode:   req.Mode,
			Sink:   transcode.SinkConfig{Sync: req.Sync},
			Logger: logger,
		},
	})

	container.GetMetrics().RecordTranscode(runID, stats, err)
	if cfg.Metrics.Textfile != "" {
		if werr := container.GetMetrics().WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			logger.Warn("failed to write metrics textfile", "path", cfg.Metrics.Textfile, "error", werr)
		}
	}

	if err != nil {
		logger.Error("transcode failed",
			"mode", req.Mode.String(),
			"source", source,
			"destination", destination,
			"records", stats.Records,
			"error", err)
		return err
	}

	logger.Info("transcode finished",
		"mode", req.Mode.String(),
		"source", source,
		"destination", destination,
		"records", stats.Records,
		"bytes_read", stats.BytesRead,
		"bytes_written", stats.BytesWritten,
		"duration", stats.Duration)

	cmd.Printf("Wrote %d records (%d bytes) to %s\n", stats.Records, stats.BytesWritten, destination)
	return nil
}
