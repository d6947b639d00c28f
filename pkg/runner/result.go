package runner

import (
	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/metrics"
)

// FileOutcome is the analysis result of one discovered file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Language is the detected language, empty when unknown.
	Language string

	// Content is the file content, kept for source context in reports.
	Content []byte

	// Issues lists the reported issues, NOSONAR lines excluded.
	Issues []check.Issue

	// Suppressed is the number of issues dropped by NOSONAR comments.
	Suppressed int

	// Metrics is set when metrics were requested and the file was parsed.
	Metrics *metrics.FileMetrics

	// Skipped is true when no enabled front end handles the file.
	Skipped bool

	// Error is set if the file could not be read, parsed or analyzed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully analyzed.
	FilesProcessed int

	// FilesSkipped is the number of files of an unknown or disabled language.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// IssuesTotal is the total number of issues across all files.
	IssuesTotal int

	// IssuesSuppressed is the number of issues dropped by NOSONAR comments.
	IssuesSuppressed int

	// IssuesBySeverity maps severity levels to counts.
	IssuesBySeverity map[config.Severity]int

	// FilesWithIssues is the number of files with at least one issue.
	FilesWithIssues int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each discovered file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any issue with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesBySeverity[config.SeverityError] > 0
}

// HasIssues reports whether any issue was found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesTotal > 0
}

// HasErrors reports whether any file could not be analyzed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{
		IssuesBySeverity: make(map[config.Severity]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.Skipped:
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.IssuesSuppressed += outcome.Suppressed

	if len(outcome.Issues) == 0 {
		return
	}

	r.Stats.FilesWithIssues++
	r.Stats.IssuesTotal += len(outcome.Issues)
	for _, issue := range outcome.Issues {
		severity := issue.Severity
		if severity == "" {
			severity = config.SeverityWarning
		}
		r.Stats.IssuesBySeverity[severity]++
	}
}
