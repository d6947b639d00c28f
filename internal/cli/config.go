package cli

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/yaklabco/treelint/internal/configloader"
	"github.com/yaklabco/treelint/internal/logging"
	"github.com/yaklabco/treelint/pkg/check"
)

// ErrNoConfigFile is returned by config validate when there is nothing to check.
var ErrNoConfigFile = errors.New("no configuration file found")

func newConfigCommand(globals *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect treelint configuration",
		Long: `Inspect how treelint resolves its configuration.

Configuration is layered from lowest to highest precedence: system file,
user file, project file, --config file, TREELINT_* environment variables
and command line flags.`,
		Args: cobra.NoArgs,
	}

	cmd.AddCommand(newConfigShowCommand(globals))
	cmd.AddCommand(newConfigPathsCommand())
	cmd.AddCommand(newConfigValidateCommand(globals))

	return cmd
}

func newConfigShowCommand(globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
				ExplicitPath:   globals.configPath,
				NonInteractive: true,
			})
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger := logging.FromContext(cmd.Context())
			for _, warning := range result.Warnings {
				logger.Warn(warning)
			}

			header := []string{"# effective treelint configuration"}
			if len(result.LoadedFrom) == 0 {
				header = append(header, "# sources: defaults only")
			}
			for _, path := range result.LoadedFrom {
				header = append(header, "# source: "+path)
			}

			data, err := result.Config.ToYAMLWithHeader(strings.Join(header, "\n"))
			if err != nil {
				return fmt.Errorf("encode configuration: %w", err)
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
}

func newConfigPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List configuration locations and environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			paths, err := configloader.DiscoverPaths(cmd.Context(), workDir)
			if err != nil {
				return fmt.Errorf("discover paths: %w", err)
			}

			files := table.NewWriter()
			files.SetOutputMirror(cmd.OutOrStdout())
			files.SetStyle(table.StyleLight)
			files.AppendHeader(table.Row{"Layer", "Path"})
			files.AppendRows([]table.Row{
				{"system", orNone(paths.System)},
				{"user", orNone(paths.User)},
				{"user directory", orNone(configloader.UserConfigDir())},
				{"project", orNone(paths.Project)},
			})
			files.Render()

			vars := configloader.ListEnvVars()
			env := table.NewWriter()
			env.SetOutputMirror(cmd.OutOrStdout())
			env.SetStyle(table.StyleLight)
			env.AppendHeader(table.Row{"Variable", "Set", "Description"})
			for _, name := range slices.Sorted(maps.Keys(vars)) {
				_, set := os.LookupEnv(name)
				env.AppendRow(table.Row{name, yesNo(set), vars[name]})
			}
			env.Render()

			return nil
		},
	}
}

func newConfigValidateCommand(globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a configuration file",
		Long: `Validate a configuration file against the registered checks.

Without an argument the --config file is used, then the project file found
by searching upward from the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := globals.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				found, err := configloader.FindProjectConfig(cmd.Context(), "")
				if err != nil {
					return err
				}
				path = found
			}
			if path == "" {
				return ErrNoConfigFile
			}

			cfg, err := configloader.LoadFile(path)
			if err != nil {
				return err
			}

			result := configloader.ValidateWithFile(cfg, check.DefaultRegistry, path)
			for _, message := range result.AllMessages() {
				fmt.Fprintln(cmd.OutOrStdout(), message)
			}
			if !result.Valid() {
				return &result.Errors[0]
			}

			logging.FromContext(cmd.Context()).Info("configuration is valid", logging.FieldPath, path)
			return nil
		},
	}
}

func orNone(path string) string {
	if path == "" {
		return "(none)"
	}
	return path
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
