// Package analysis turns runner results into report views shared by every
// output format: a flat issue list, per-file and per-check aggregates and
// totals.
package analysis

import "github.com/yaklabco/treelint/pkg/config"

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by issue count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
	// SortBySeverity sorts by severity (errors first).
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeIssues includes the flat issue list.
	IncludeIssues bool

	// IncludeByFile includes the per-file analysis.
	IncludeByFile bool

	// IncludeByCheck includes the per-check analysis.
	IncludeByCheck bool

	// IncludeSource attaches the source line of each issue.
	IncludeSource bool

	// SortBy specifies how to sort ByFile and ByCheck.
	SortBy SortField

	// SortDesc sorts in descending order (highest first).
	SortDesc bool

	// CheckFormat controls how check identifiers appear.
	CheckFormat config.CheckFormat

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeIssues:  true,
		IncludeByFile:  true,
		IncludeByCheck: true,
		SortBy:         SortByCount,
		SortDesc:       true,
		CheckFormat:    config.CheckFormatName,
	}
}
