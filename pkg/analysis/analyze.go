package analysis

import (
	"bytes"
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/runner"
	"github.com/yaklabco/treelint/pkg/tree"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	checkMap    map[string]*CheckAnalysis
	fileMap     map[string]*FileAnalysis
	checkFiles  map[string]map[string]bool
	fileChecks  map[string]map[string]bool
	checkFormat config.CheckFormat
}

func newAnalysisContext(opts Options) *analysisContext {
	return &analysisContext{
		checkMap:    make(map[string]*CheckAnalysis),
		fileMap:     make(map[string]*FileAnalysis),
		checkFiles:  make(map[string]map[string]bool),
		fileChecks:  make(map[string]map[string]bool),
		checkFormat: opts.CheckFormat,
	}
}

// normalizeSeverity returns the severity string, defaulting to warning.
func normalizeSeverity(sev config.Severity) config.Severity {
	if sev == "" {
		return config.SeverityWarning
	}
	return sev
}

// severityCounts is implemented by the aggregates counting issues per severity.
type severityCounts interface {
	counters() (errors, warnings, infos *int)
}

func (t *Totals) counters() (errors, warnings, infos *int) {
	return &t.Errors, &t.Warnings, &t.Infos
}

func (fa *FileAnalysis) counters() (errors, warnings, infos *int) {
	return &fa.Errors, &fa.Warnings, &fa.Infos
}

func (ca *CheckAnalysis) counters() (errors, warnings, infos *int) {
	return &ca.Errors, &ca.Warnings, &ca.Infos
}

func incrementSeverity(severity config.Severity, targets ...severityCounts) {
	for _, target := range targets {
		errors, warnings, infos := target.counters()
		switch severity {
		case config.SeverityError:
			*errors++
		case config.SeverityWarning:
			*warnings++
		case config.SeverityInfo:
			*infos++
		}
	}
}

func (ctx *analysisContext) getOrCreateFileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileChecks[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) getOrCreateCheckAnalysis(checkID, checkName string) *CheckAnalysis {
	if _, ok := ctx.checkMap[checkID]; !ok {
		ctx.checkMap[checkID] = &CheckAnalysis{
			CheckID:   checkID,
			CheckName: checkName,
		}
		ctx.checkFiles[checkID] = make(map[string]bool)
	}
	return ctx.checkMap[checkID]
}

// createIssueEntry builds an IssueEntry from a check issue.
func (ctx *analysisContext) createIssueEntry(path, language string, severity config.Severity, issue *check.Issue) IssueEntry {
	entry := IssueEntry{
		FilePath:  path,
		Language:  language,
		CheckID:   issue.CheckID,
		CheckName: issue.CheckName,
		Check:     config.FormatCheckID(ctx.checkFormat, issue.CheckID, issue.CheckName),
		Severity:  string(severity),
		Message:   issue.Message,
		FileLevel: issue.IsFileLevel(),
		Gap:       issue.Gap,
	}
	if issue.Range != nil {
		entry.StartLine, entry.StartColumn, entry.EndLine, entry.EndColumn = columns(*issue.Range)
	}
	for _, sec := range issue.Secondaries {
		se := SecondaryEntry{Message: sec.Message}
		se.StartLine, se.StartColumn, se.EndLine, se.EndColumn = columns(sec.Range)
		entry.Secondaries = append(entry.Secondaries, se)
	}
	return entry
}

// sourceLine returns the 1-based line of content without its line terminator.
func sourceLine(content []byte, line int) string {
	if line < 1 {
		return ""
	}
	for i := 1; i < line; i++ {
		idx := bytes.IndexByte(content, '\n')
		if idx < 0 {
			return ""
		}
		content = content[idx+1:]
	}
	if idx := bytes.IndexByte(content, '\n'); idx >= 0 {
		content = content[:idx]
	}
	return string(bytes.TrimRight(content, "\r"))
}

// columns converts a range with 0-based offsets to 1-based columns.
func columns(rng tree.TextRange) (startLine, startColumn, endLine, endColumn int) {
	return rng.Start.Line, rng.Start.LineOffset + 1, rng.End.Line, rng.End.LineOffset + 1
}

func (ctx *analysisContext) buildByCheck(opts Options) []CheckAnalysis {
	result := make([]CheckAnalysis, 0, len(ctx.checkMap))
	for checkID, ca := range ctx.checkMap {
		for f := range ctx.checkFiles[checkID] {
			ca.Files = append(ca.Files, f)
		}
		slices.Sort(ca.Files)
		result = append(result, *ca)
	}
	sortAggregates(result, opts.SortBy, opts.SortDesc, func(ca CheckAnalysis) (string, int, int, int) {
		return ca.CheckID, ca.Issues, ca.Errors, ca.Warnings
	})
	return result
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Issues == 0 {
			continue
		}
		for c := range ctx.fileChecks[path] {
			fa.Checks = append(fa.Checks, c)
		}
		slices.Sort(fa.Checks)
		result = append(result, *fa)
	}
	sortAggregates(result, opts.SortBy, opts.SortDesc, func(fa FileAnalysis) (string, int, int, int) {
		return fa.Path, fa.Issues, fa.Errors, fa.Warnings
	})
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through issues to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Issues:    []IssueEntry{},
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext(opts)

	for _, file := range result.Files {
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		switch {
		case file.Error != nil:
			report.Totals.FilesFailed++
			report.Failures = append(report.Failures, FailureEntry{FilePath: displayPath, Error: file.Error.Error()})
			continue
		case file.Skipped:
			report.Totals.FilesSkipped++
			continue
		}

		report.Totals.Files++
		report.Totals.Suppressed += file.Suppressed
		if file.Metrics != nil {
			report.Metrics = append(report.Metrics, FileMetricsEntry{FilePath: displayPath, Metrics: file.Metrics})
		}
		if len(file.Issues) == 0 {
			continue
		}
		report.Totals.FilesWithIssues++

		fa := ctx.getOrCreateFileAnalysis(displayPath)

		for i := range file.Issues {
			issue := &file.Issues[i]
			severity := normalizeSeverity(issue.Severity)

			report.Totals.Issues++
			fa.Issues++
			ctx.fileChecks[displayPath][issue.CheckID] = true

			ca := ctx.getOrCreateCheckAnalysis(issue.CheckID, issue.CheckName)
			ca.Issues++
			ctx.checkFiles[issue.CheckID][displayPath] = true

			incrementSeverity(severity, &report.Totals, fa, ca)

			if opts.IncludeIssues {
				entry := ctx.createIssueEntry(displayPath, file.Language, severity, issue)
				if opts.IncludeSource {
					entry.SourceLine = sourceLine(file.Content, entry.StartLine)
				}
				report.Issues = append(report.Issues, entry)
			}
		}
	}

	if opts.IncludeByCheck {
		report.ByCheck = ctx.buildByCheck(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

// sortAggregates orders per-file or per-check aggregates. key extracts the
// name, issue count, error count and warning count of an element.
func sortAggregates[T any](items []T, sortBy SortField, desc bool, key func(T) (string, int, int, int)) {
	slices.SortFunc(items, func(left, right T) int {
		leftName, leftIssues, leftErrors, leftWarnings := key(left)
		rightName, rightIssues, rightErrors, rightWarnings := key(right)

		var result int
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(leftName, rightName)
		case SortBySeverity:
			result = cmp.Or(
				cmp.Compare(rightErrors, leftErrors),
				cmp.Compare(rightWarnings, leftWarnings),
				cmp.Compare(rightIssues, leftIssues),
			)
		default: // SortByCount
			result = cmp.Compare(leftIssues, rightIssues)
			if desc {
				result = -result
			}
		}
		return cmp.Or(result, cmp.Compare(leftName, rightName))
	})
}
