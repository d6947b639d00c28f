package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yaklabco/treelint/internal/configloader"
	"github.com/yaklabco/treelint/internal/logging"
	"github.com/yaklabco/treelint/pkg/check"
	_ "github.com/yaklabco/treelint/pkg/checks" // register built-in checks
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/frontend"
	"github.com/yaklabco/treelint/pkg/frontend/golang"
	"github.com/yaklabco/treelint/pkg/frontend/javascript"
	"github.com/yaklabco/treelint/pkg/fsutil"
	"github.com/yaklabco/treelint/pkg/reporter"
	"github.com/yaklabco/treelint/pkg/runner"
)

type analyzeFlags struct {
	format       string
	checkFormat  string
	summaryOrder string
	output       string
	ignore       []string
	include      []string
	enable       []string
	disable      []string
	languages    []string
	jobs         int
	metrics      bool
	strict       bool
	noContext    bool
	compact      bool
}

const analyzeLongDescription = `Analyze Go and JavaScript sources with the enabled checks.

By default, analyzes every file with a supported extension in the current
directory and its subdirectories. Hidden directories are skipped.

Examples:
  treelint analyze                         # Analyze current directory
  treelint analyze ./pkg web/app.js        # Analyze specific paths
  treelint analyze --format sarif -o out.sarif
  treelint analyze --disable todo-comment  # Turn off a check
  treelint analyze --languages go --metrics`

func newAnalyzeCommand(info BuildInfo, globals *globalFlags) *cobra.Command {
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Analyze source files",
		Long:  analyzeLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, info, globals, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, sarif, summary")
	cmd.Flags().StringVar(&flags.checkFormat, "check-format", "name",
		"check identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", "checks",
		"order of tables in summary output: checks, files")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "only analyze files matching these glob patterns")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "check IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "check IDs or names to disable")
	cmd.Flags().StringSliceVar(&flags.languages, "languages", nil, "languages to analyze: go, javascript")
	cmd.Flags().BoolVar(&flags.metrics, "metrics", false, "include per-file metrics in the report")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail when a file cannot be parsed")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")

	return cmd
}

// cliConfig turns the flags into the highest-precedence config layer.
// Zero values leave the lower layers in place.
func (f *analyzeFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("check-format") {
		cfg.CheckFormat = config.CheckFormat(f.checkFormat)
	}
	cfg.Jobs = f.jobs
	cfg.Metrics = f.metrics
	cfg.Ignore = f.ignore
	cfg.Languages = f.languages
	cfg.EnableChecks = f.enable
	cfg.DisableChecks = f.disable
	return cfg
}

func runAnalyze(cmd *cobra.Command, args []string, info BuildInfo, globals *globalFlags, flags *analyzeFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: globals.configPath,
		CLIConfig:    flags.cliConfig(cmd),
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	for _, hint := range loadResult.Hints {
		logger.Info(hint)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldFiles, loadResult.LoadedFrom,
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldLanguages, cfg.Languages,
	)

	resolved, err := check.ResolveChecks(check.DefaultRegistry, cfg)
	if err != nil {
		return fmt.Errorf("resolve checks: %w", err)
	}
	engine := check.NewEngineFromResolved(resolved)
	logger.Debug("checks resolved", logging.FieldChecks, len(resolved))

	frontends := newFrontends()
	defer func() {
		if err := frontends.TerminateAll(); err != nil {
			logger.Warn("release front ends", logging.FieldError, err)
		}
	}()

	logger.Debug("starting analysis", logging.FieldPaths, args, logging.FieldWorkingDir, workDir)
	result, err := runner.New(frontends, engine).Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		IncludeGlobs: flags.include,
		Jobs:         cfg.Jobs,
		Metrics:      cfg.Metrics,
		Config:       cfg,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	out := cmd.OutOrStdout()
	var buf bytes.Buffer
	if flags.output != "" {
		out = &buf
	}

	rep, err := reporter.New(reporter.Options{
		Writer:       out,
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        colorFor(globals.color, flags.output),
		ShowContext:  !flags.noContext,
		ShowSummary:  true,
		GroupByFile:  true,
		Compact:      flags.compact,
		CheckFormat:  cfg.CheckFormat,
		SummaryOrder: reporter.SummaryOrder(flags.summaryOrder),
		WorkingDir:   workDir,
		ToolVersion:  info.Version,
		Checks:       engine.Checks(),
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if flags.output != "" {
		if err := fsutil.WriteAtomic(ctx, afero.NewOsFs(), flags.output, buf.Bytes(), 0); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written", logging.FieldPath, flags.output)
	}

	switch ExitCodeFromResult(result, flags.strict) {
	case ExitIssues:
		return ErrIssuesFound
	case ExitFileErrors:
		return ErrFilesFailed
	default:
		return nil
	}
}

// newFrontends returns the registry of every built-in front end.
func newFrontends() *frontend.Registry {
	return frontend.NewRegistry(golang.New(), javascript.New())
}

// colorFor disables color when the report goes to a file.
func colorFor(mode, output string) string {
	if output != "" {
		return "never"
	}
	return mode
}

// writeJSON is shared by the commands with JSON output.
func writeJSON(w io.Writer, data []byte) error {
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
