// Package cli provides the Cobra command structure for treelint.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/treelint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root treelint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "treelint",
		Short: "Language-agnostic static analysis over a generic syntax tree",
		Long: `treelint parses Go and JavaScript sources into one generic syntax tree
and runs a catalogue of checks over it.

Each front end maps its grammar onto shared node kinds. Checks, metrics
and copy-paste tokens are computed from that tree without knowing which
language it came from.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := logging.LevelFromEnv("info")
			if globals.debug {
				level = "debug"
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logger))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newAnalyzeCommand(info, globals))
	rootCmd.AddCommand(newChecksCommand())
	rootCmd.AddCommand(newConfigCommand(globals))
	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(globals.color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
