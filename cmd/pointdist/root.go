package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = newLogger(slog.LevelInfo)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "pointdist",
	Short:         "Measure and plot the distance between two 3D points",
	Long:          `pointdist computes the Euclidean distance between two points in 3D space and can plot both points with the segment joining them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = newLogger(slog.LevelDebug)
		}
	},
}

// Execute runs the root command and exits with status 1 on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(
		distanceCommand(),
		plotCommand(),
	)
}
