package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	caelix "github.com/code-sm-27/Adobe-India-Hackathon25-Team-Caelix-Round-1A"
)

func extractCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "extract <file.pdf>",
		Short: "Extract one document's outline and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			result, warnings, err := caelix.Open(args[0]).WithLogger(logger).Outline()
			if err != nil {
				return fmt.Errorf("extract %s: %w", args[0], err)
			}
			if len(warnings) > 0 {
				logger.Warn("extraction warnings", "file", args[0], "warnings", caelix.FormatWarnings(warnings))
			}

			data, err := result.ToJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// newLogger builds the command's structured logger. Debug level is
// gated behind --verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
