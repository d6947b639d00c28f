package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/metrics"
	"github.com/yaklabco/treelint/pkg/runner"
	"github.com/yaklabco/treelint/pkg/tree"
)

func rangePtr(rng tree.TextRange) *tree.TextRange {
	return &rng
}

func issue(id, name string, severity config.Severity, line int) check.Issue {
	return check.Issue{
		CheckID:   id,
		CheckName: name,
		Severity:  severity,
		Message:   "message " + id,
		Range:     rangePtr(tree.NewTextRange(line, 2, line, 6)),
	}
}

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:     "/proj/a.go",
				Language: config.LanguageGo,
				Issues: []check.Issue{
					issue("S1764", "identical-binary-operands", config.SeverityError, 3),
					issue("S1764", "identical-binary-operands", config.SeverityError, 5),
					issue("S1135", "todo-comment", config.SeverityInfo, 7),
				},
				Suppressed: 1,
			},
			{
				Path:     "/proj/b.js",
				Language: config.LanguageJavaScript,
				Issues: []check.Issue{
					{CheckID: "S104", CheckName: "too-long-file", Message: "too long"},
				},
				Metrics: &metrics.FileMetrics{LinesOfCode: []int{1}},
			},
			{Path: "/proj/c.go", Language: config.LanguageGo},
			{Path: "/proj/d.go", Error: errors.New("parse /proj/d.go: boom")},
			{Path: "/proj/e.js", Skipped: true},
		},
	}
}

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	report := Analyze(&runner.Result{}, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Issues)
	assert.Empty(t, report.Issues)
	assert.NotNil(t, report.Issues, "an empty list, not null, in JSON output")
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByCheck)
	assert.Equal(t, ReportVersion, report.Version)
}

func TestAnalyze_NilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())
	require.NotNil(t, report)
	assert.Equal(t, Totals{}, report.Totals)
}

func TestAnalyze_CountsTotals(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	assert.Equal(t, Totals{
		Files:           3,
		FilesSkipped:    1,
		FilesFailed:     1,
		FilesWithIssues: 2,
		Issues:          4,
		Suppressed:      1,
		Errors:          2,
		Warnings:        1,
		Infos:           1,
	}, report.Totals)

	assert.Equal(t, []FailureEntry{{FilePath: "/proj/d.go", Error: "parse /proj/d.go: boom"}}, report.Failures)
	require.Len(t, report.Metrics, 1)
	assert.Equal(t, "/proj/b.js", report.Metrics[0].FilePath)
}

func TestAnalyze_IssueEntries(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.WorkingDir = "/proj"
	opts.CheckFormat = config.CheckFormatCombined

	report := Analyze(sampleResult(), opts)
	require.Len(t, report.Issues, 4)

	first := report.Issues[0]
	assert.Equal(t, "a.go", first.FilePath)
	assert.Equal(t, config.LanguageGo, first.Language)
	assert.Equal(t, "S1764/identical-binary-operands", first.Check)
	assert.Equal(t, "error", first.Severity)
	assert.Equal(t, 3, first.StartLine)
	assert.Equal(t, 3, first.StartColumn)
	assert.Equal(t, 7, first.EndColumn)
	assert.False(t, first.FileLevel)

	fileLevel := report.Issues[3]
	assert.Equal(t, "b.js", fileLevel.FilePath)
	assert.True(t, fileLevel.FileLevel)
	assert.Equal(t, "warning", fileLevel.Severity, "an empty severity defaults to warning")
	assert.Zero(t, fileLevel.StartLine)
}

func TestAnalyze_Secondaries(t *testing.T) {
	t.Parallel()

	iss := issue("S1871", "duplicate-branch", config.SeverityWarning, 4)
	iss.Secondaries = []check.SecondaryLocation{{Range: tree.NewTextRange(1, 0, 2, 1), Message: "Original"}}

	report := Analyze(&runner.Result{Files: []runner.FileOutcome{{Path: "x.go", Issues: []check.Issue{iss}}}}, DefaultOptions())

	require.Len(t, report.Issues, 1)
	assert.Equal(t, []SecondaryEntry{
		{Message: "Original", StartLine: 1, StartColumn: 1, EndLine: 2, EndColumn: 2},
	}, report.Issues[0].Secondaries)
}

func TestAnalyze_GroupsByCheck(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	require.Len(t, report.ByCheck, 3)
	assert.Equal(t, "S1764", report.ByCheck[0].CheckID)
	assert.Equal(t, 2, report.ByCheck[0].Issues)
	assert.Equal(t, 2, report.ByCheck[0].Errors)
	assert.Equal(t, []string{"/proj/a.go"}, report.ByCheck[0].Files)

	// Equal counts fall back to alphabetical order.
	assert.Equal(t, "S104", report.ByCheck[1].CheckID)
	assert.Equal(t, "S1135", report.ByCheck[2].CheckID)
}

func TestAnalyze_GroupsByFile(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	require.Len(t, report.ByFile, 2, "files without issues are omitted")
	assert.Equal(t, FileAnalysis{
		Path:   "/proj/a.go",
		Issues: 3,
		Errors: 2,
		Infos:  1,
		Checks: []string{"S1135", "S1764"},
	}, report.ByFile[0])
	assert.Equal(t, "/proj/b.js", report.ByFile[1].Path)
}

func TestAnalyze_Sorting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sortBy SortField
		desc   bool
		want   []string
	}{
		{name: "count descending", sortBy: SortByCount, desc: true, want: []string{"S1764", "S104", "S1135"}},
		{name: "count ascending", sortBy: SortByCount, desc: false, want: []string{"S104", "S1135", "S1764"}},
		{name: "alpha", sortBy: SortByAlpha, want: []string{"S104", "S1135", "S1764"}},
		{name: "severity", sortBy: SortBySeverity, want: []string{"S1764", "S104", "S1135"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := DefaultOptions()
			opts.SortBy = tt.sortBy
			opts.SortDesc = tt.desc

			report := Analyze(sampleResult(), opts)

			got := make([]string, 0, len(report.ByCheck))
			for _, ca := range report.ByCheck {
				got = append(got, ca.CheckID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyze_ExcludeViews(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), Options{})

	assert.Empty(t, report.Issues)
	assert.Nil(t, report.ByFile)
	assert.Nil(t, report.ByCheck)
	assert.Equal(t, 4, report.Totals.Issues)
}

func TestAnalyze_IncludeSource(t *testing.T) {
	t.Parallel()

	result := &runner.Result{Files: []runner.FileOutcome{{
		Path:    "x.go",
		Content: []byte("package p\r\n\nvar a = b == b\n"),
		Issues: []check.Issue{
			issue("S1764", "identical-binary-operands", config.SeverityError, 3),
			issue("S1764", "identical-binary-operands", config.SeverityError, 1),
			issue("S1764", "identical-binary-operands", config.SeverityError, 9),
		},
	}}}

	opts := DefaultOptions()
	opts.IncludeSource = true

	report := Analyze(result, opts)
	require.Len(t, report.Issues, 3)
	assert.Equal(t, "var a = b == b", report.Issues[0].SourceLine)
	assert.Equal(t, "package p", report.Issues[1].SourceLine)
	assert.Empty(t, report.Issues[2].SourceLine)
}
