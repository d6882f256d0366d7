// Package cli provides the hbnsc command-line tool for inspecting icon sets
// and the license catalog without starting the UI.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/huessenbergnetz/hbnsc/internal/logging"
)

// Version is set by the main package at startup
var Version = "dev"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var verbose bool
	logger := zerolog.Nop()

	rootCmd := &cobra.Command{
		Use:   "hbnsc",
		Short: "Inspect density matched icon sets and third-party licenses",
		Long: `hbnsc ` + Version + `
Resolves icons the way the UI does for a given pixel ratio and screen size,
and prints the third-party license catalog of this build.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetDebug(verbose)
			logger = logging.New(cmd.ErrOrStderr(), "cli")
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	rootCmd.AddCommand(
		newScaleCmd(&logger),
		newIconCmd(&logger),
		newLicensesCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
