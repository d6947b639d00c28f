package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/treelint/internal/logging"
	"github.com/yaklabco/treelint/pkg/langdetect"
	"github.com/yaklabco/treelint/pkg/metrics"
	"github.com/yaklabco/treelint/pkg/tree"
	"github.com/yaklabco/treelint/pkg/validate"
)

// ErrUnknownLanguage is returned when no front end handles a dumped file.
var ErrUnknownLanguage = errors.New("unknown language")

type dumpFlags struct {
	format   string
	language string
	validate bool
}

// Dump formats.
const (
	dumpTree      = "tree"
	dumpJSON      = "json"
	dumpTokens    = "tokens"
	dumpHighlight = "highlight"
	dumpMetrics   = "metrics"
)

func newDumpCommand() *cobra.Command {
	flags := &dumpFlags{}

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the generic syntax tree of a file",
		Long: `Parse a single file and print what the front end produced.

Formats:
  tree       one node per line, indented by depth
  json       the tree with kinds, ranges and leaf values
  tokens     copy-paste detection tokens
  highlight  syntax highlighting ranges
  metrics    per-file measures

With --validate the tree is also checked against the source: tokens and
comments must rebuild the text and no two siblings may claim a token.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", dumpTree, "output format: tree, json, tokens, highlight, metrics")
	cmd.Flags().StringVar(&flags.language, "language", "", "front end to use instead of detection: go, javascript")
	cmd.Flags().BoolVar(&flags.validate, "validate", false, "validate the tree against the source")

	return cmd
}

func runDump(cmd *cobra.Command, path string, flags *dumpFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	language := flags.language
	if language == "" {
		language = langdetect.Detect(path, content)
	}

	frontends := newFrontends()
	defer func() {
		if err := frontends.TerminateAll(); err != nil {
			logger.Warn("release front ends", logging.FieldError, err)
		}
	}()

	producer, ok := frontends.ForLanguage(language)
	if !ok {
		return fmt.Errorf("%w for %s", ErrUnknownLanguage, path)
	}

	root, err := producer.Parse(ctx, path, content)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Debug("parsed file",
		logging.FieldPath, path,
		logging.FieldLanguage, language,
		logging.FieldTokens, len(root.MetaData().Tokens()),
	)

	if flags.validate {
		if err := validate.Tree(root, string(content), validate.DefaultOptions()); err != nil {
			return fmt.Errorf("validate %s: %w", path, err)
		}
		logger.Info("tree is valid", logging.FieldPath, path)
	}

	return writeDump(cmd.OutOrStdout(), root, flags.format)
}

func writeDump(w io.Writer, root *tree.TopLevel, format string) error {
	var value any

	switch format {
	case dumpTree:
		if _, err := io.WriteString(w, tree.Print(root)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	case dumpJSON:
		data, err := tree.ToJSON(root)
		if err != nil {
			return err
		}
		return writeJSON(w, data)
	case dumpTokens:
		value = metrics.CPDTokens(root)
	case dumpHighlight:
		value = metrics.Highlight(root)
	case dumpMetrics:
		value = metrics.Compute(root)
	default:
		return fmt.Errorf("invalid format %q: must be tree, json, tokens, highlight or metrics", format)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", format, err)
	}
	return writeJSON(w, data)
}
