package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/treelint/pkg/analysis"
	"github.com/yaklabco/treelint/pkg/config"
)

// FormatIssue formats a single issue for terminal output:
//
//	path:line:col  severity  message  (check)
//
// followed by the source line with a caret when showContext is set, and one
// line per secondary location.
func (s *Styles) FormatIssue(issue *analysis.IssueEntry, showContext bool) string {
	var builder strings.Builder

	location := s.FilePath.Render(issue.FilePath)
	if !issue.FileLevel {
		location = fmt.Sprintf("%s:%d:%d", location, issue.StartLine, issue.StartColumn)
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(config.Severity(issue.Severity)),
		s.Message.Render(issue.Message),
		s.CheckID.Render("("+issue.Check+")"),
	))

	if showContext && issue.SourceLine != "" {
		builder.WriteString(s.FormatSourceContext(issue.SourceLine, issue.StartColumn))
	}

	for _, sec := range issue.Secondaries {
		text := fmt.Sprintf("%d:%d", sec.StartLine, sec.StartColumn)
		if sec.Message != "" {
			text += " " + sec.Message
		}
		builder.WriteString("    " + s.Dim.Render("related:") + " " + s.Secondary.Render(text) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
// Tabs are expanded to single spaces so the caret lines up.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(strings.ReplaceAll(line, "\t", " ")) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case issueCount == 1:
		header += s.Dim.Render(" (1 issue)")
	case issueCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
