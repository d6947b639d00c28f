package analysis

import (
	"time"

	"github.com/yaklabco/treelint/pkg/metrics"
)

// Report contains pre-computed views of analysis results.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Issues is the flat list for detailed output, in file order.
	Issues []IssueEntry `json:"issues"`

	// Failures lists the files that could not be analyzed.
	Failures []FailureEntry `json:"failures,omitempty"`

	// ByFile groups issues by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByCheck groups issues by check.
	ByCheck []CheckAnalysis `json:"byCheck,omitempty"`

	// Metrics holds per-file measures when they were computed.
	Metrics []FileMetricsEntry `json:"metrics,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// IssueEntry represents a single issue in the report.
// Columns are 1-based; EndColumn is exclusive.
type IssueEntry struct {
	FilePath    string           `json:"filePath"`
	Language    string           `json:"language"`
	CheckID     string           `json:"checkId"`
	CheckName   string           `json:"checkName"`
	Check       string           `json:"check"`
	Severity    string           `json:"severity"`
	Message     string           `json:"message"`
	FileLevel   bool             `json:"fileLevel,omitempty"`
	StartLine   int              `json:"startLine,omitempty"`
	StartColumn int              `json:"startColumn,omitempty"`
	EndLine     int              `json:"endLine,omitempty"`
	EndColumn   int              `json:"endColumn,omitempty"`
	Secondaries []SecondaryEntry `json:"secondaries,omitempty"`
	Gap         *float64         `json:"gap,omitempty"`

	// SourceLine is the text of StartLine, set with Options.IncludeSource.
	SourceLine string `json:"-"`
}

// SecondaryEntry is a related location of an issue.
type SecondaryEntry struct {
	Message     string `json:"message,omitempty"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     int    `json:"endLine"`
	EndColumn   int    `json:"endColumn"`
}

// FailureEntry is a file that could not be read, parsed or analyzed.
type FailureEntry struct {
	FilePath string `json:"filePath"`
	Error    string `json:"error"`
}

// FileMetricsEntry pairs a file with its measures.
type FileMetricsEntry struct {
	FilePath string               `json:"filePath"`
	Metrics  *metrics.FileMetrics `json:"metrics"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesFailed     int `json:"filesFailed"`
	FilesWithIssues int `json:"filesWithIssues"`
	Issues          int `json:"totalIssues"`
	Suppressed      int `json:"suppressed"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Infos           int `json:"infos"`
}

// HasIssues returns true if there are any issues.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// HasErrors returns true if there are any error-severity issues.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Checks   []string `json:"checks,omitempty"`
}

// CheckAnalysis contains aggregated data for a single check.
type CheckAnalysis struct {
	CheckID   string   `json:"checkId"`
	CheckName string   `json:"checkName"`
	Issues    int      `json:"issues"`
	Errors    int      `json:"errors"`
	Warnings  int      `json:"warnings"`
	Infos     int      `json:"infos"`
	Files     []string `json:"files,omitempty"`
}
