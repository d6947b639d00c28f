package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/treelint/pkg/analysis"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

// FormatSummaryOneLine formats run totals as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files, 2 suppressed".
func (s *Styles) FormatSummaryOneLine(totals analysis.Totals) string {
	var parts []string

	if totals.Issues == 0 {
		parts = append(parts, s.Success.Render("No issues found")+
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", totals.Files, plural(totals.Files, wordFile, wordFiles))))
	} else {
		var severityParts []string
		if totals.Errors > 0 {
			severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", totals.Errors, plural(totals.Errors, "error", "errors"))))
		}
		if totals.Warnings > 0 {
			severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", totals.Warnings, plural(totals.Warnings, "warning", "warnings"))))
		}
		if totals.Infos > 0 {
			severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", totals.Infos)))
		}

		main := fmt.Sprintf("%d %s", totals.Issues, plural(totals.Issues, "issue", "issues"))
		if len(severityParts) > 0 {
			main += " (" + strings.Join(severityParts, ", ") + ")"
		}
		parts = append(parts, main+fmt.Sprintf(" in %d %s", totals.FilesWithIssues, plural(totals.FilesWithIssues, wordFile, wordFiles)))
	}

	if totals.Suppressed > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d suppressed", totals.Suppressed)))
	}
	if totals.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed", totals.FilesFailed, plural(totals.FilesFailed, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run totals as a summary block.
func (s *Styles) FormatSummary(totals analysis.Totals) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(totals.Files)) + "\n")

	if totals.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(totals.FilesWithIssues)) + "\n")
	}
	if totals.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.Dim.Render(strconv.Itoa(totals.FilesSkipped)) + "\n")
	}
	if totals.FilesFailed > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(totals.FilesFailed)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(totals.Issues)) + "\n")

	if totals.Errors > 0 {
		builder.WriteString("    Errors:          " +
			s.Error.Render(strconv.Itoa(totals.Errors)) + "\n")
	}
	if totals.Warnings > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(totals.Warnings)) + "\n")
	}
	if totals.Infos > 0 {
		builder.WriteString("    Info:            " +
			s.Info.Render(strconv.Itoa(totals.Infos)) + "\n")
	}
	if totals.Suppressed > 0 {
		builder.WriteString("  Suppressed:        " +
			s.Dim.Render(strconv.Itoa(totals.Suppressed)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case totals.Errors > 0 || totals.FilesFailed > 0:
		builder.WriteString(s.Failure.Render("Analysis failed with errors"))
	case totals.Warnings > 0:
		builder.WriteString(s.Warning.Render("Analysis completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Analysis passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
