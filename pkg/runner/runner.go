package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/treelint/internal/logging"
	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/frontend"
	"github.com/yaklabco/treelint/pkg/langdetect"
	"github.com/yaklabco/treelint/pkg/metrics"
)

// ErrNoFrontend is reported when a detected language has no registered front end.
var ErrNoFrontend = errors.New("no front end for language")

// Runner orchestrates multi-file analysis: discovery, language detection,
// parsing and check dispatch.
type Runner struct {
	// Fs is the filesystem files are discovered on and read from.
	Fs afero.Fs

	// Frontends maps languages to tree producers.
	Frontends *frontend.Registry

	// Engine runs the enabled checks over each parsed tree.
	Engine *check.Engine
}

// New creates a Runner reading from the OS filesystem.
func New(frontends *frontend.Registry, engine *check.Engine) *Runner {
	return &Runner{
		Fs:        afero.NewOsFs(),
		Frontends: frontends,
		Engine:    engine,
	}
}

// Run discovers files under opts.Paths and analyzes them concurrently.
// Outcomes are returned in discovery order regardless of completion order.
// Per-file failures are recorded in the outcome; only discovery errors and
// cancellation abort the run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	if len(opts.Extensions) == 0 {
		opts.Extensions = r.Frontends.Extensions()
	}
	if opts.Config != nil {
		opts.ExcludeGlobs = append(slices.Clone(opts.ExcludeGlobs), opts.Config.Ignore...)
	}

	files, err := Discover(ctx, r.Fs, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	logger.Debug("starting analysis",
		logging.FieldFilesDiscovered, len(files),
		logging.FieldJobs, jobs)

	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.processFile(groupCtx, path, opts)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	logger.Debug("analysis complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldIssuesTotal, result.Stats.IssuesTotal,
		logging.FieldDuration, time.Since(start))

	return result, nil
}

// processFile reads, parses and analyzes a single file.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	ctx = logging.WithFields(ctx, logging.FieldPath, path)
	logger := logging.FromContext(ctx)
	start := time.Now()
	outcome := FileOutcome{Path: path}

	content, err := afero.ReadFile(r.Fs, path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}
	outcome.Content = content

	outcome.Language = langdetect.Detect(path, content)
	if outcome.Language == langdetect.Unknown || !opts.Config.LanguageEnabled(outcome.Language) {
		outcome.Skipped = true
		logger.Debug("skipping file", logging.FieldLanguage, outcome.Language)
		return outcome
	}

	producer, ok := r.Frontends.ForLanguage(outcome.Language)
	if !ok {
		outcome.Error = fmt.Errorf("%w %q: %s", ErrNoFrontend, outcome.Language, path)
		return outcome
	}

	root, err := producer.Parse(ctx, path, content)
	if err != nil {
		outcome.Error = fmt.Errorf("parse %s: %w", path, err)
		return outcome
	}

	fileResult, err := r.Engine.Analyze(ctx, check.InputFile{Filename: path, Content: content}, root)
	if err != nil {
		outcome.Error = fmt.Errorf("analyze %s: %w", path, err)
		return outcome
	}

	fileMetrics := metrics.Compute(root)
	outcome.Issues, outcome.Suppressed = filterNosonar(fileResult.Issues, fileMetrics.NosonarLines)
	if opts.Metrics {
		outcome.Metrics = &fileMetrics
	}

	logger.Debug("processed file",
		logging.FieldLanguage, outcome.Language,
		logging.FieldIssues, len(outcome.Issues),
		logging.FieldDuration, time.Since(start))

	return outcome
}

// filterNosonar drops the issues starting on a NOSONAR line. File-level
// issues are kept.
func filterNosonar(issues []check.Issue, nosonarLines []int) ([]check.Issue, int) {
	if len(nosonarLines) == 0 {
		return issues, 0
	}

	kept := make([]check.Issue, 0, len(issues))
	for _, issue := range issues {
		if !issue.IsFileLevel() && slices.Contains(nosonarLines, issue.Line()) {
			continue
		}
		kept = append(kept, issue)
	}
	return kept, len(issues) - len(kept)
}
