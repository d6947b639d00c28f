package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/yaklabco/treelint/pkg/analysis"
	"github.com/yaklabco/treelint/pkg/config"
)

// Table formatting constants.
const (
	minMessageWidth  = 35
	defaultTermWidth = 100
	// tableChrome is the width taken by borders and padding of the five columns.
	tableChrome = 16
)

// TableRow represents a single row in the issue table.
type TableRow struct {
	File     string
	Location string
	Severity config.Severity
	Message  string
	Check    string
}

// IssueToTableRow converts a report issue to a table row.
func IssueToTableRow(issue *analysis.IssueEntry) TableRow {
	location := "-"
	if !issue.FileLevel {
		location = fmt.Sprintf("%d:%d", issue.StartLine, issue.StartColumn)
	}
	return TableRow{
		File:     issue.FilePath,
		Location: location,
		Severity: config.Severity(issue.Severity),
		Message:  issue.Message,
		Check:    issue.Check,
	}
}

// TableFormatter formats issues as a table, one separator between files.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTable formats the issues of a report. It returns an empty string
// when there is nothing to show.
func (t *TableFormatter) FormatTable(report *analysis.Report) string {
	if report == nil || len(report.Issues) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(report.Issues))
	for i := range report.Issues {
		rows = append(rows, IssueToTableRow(&report.Issues[i]))
	}
	messageWidth := t.messageWidth(rows)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{
		t.styles.TableHeader.Render("FILE"),
		t.styles.TableHeader.Render("LOC"),
		t.styles.TableHeader.Render("SEVERITY"),
		t.styles.TableHeader.Render("MESSAGE"),
		t.styles.TableHeader.Render("CHECK"),
	})

	for i, row := range rows {
		if i > 0 && row.File != rows[i-1].File {
			tw.AppendSeparator()
		}
		style := t.rowStyle(row.Severity)
		tw.AppendRow(table.Row{
			style.Render(row.File),
			style.Render(row.Location),
			style.Render(string(row.Severity)),
			style.Render(truncateString(row.Message, messageWidth)),
			style.Render(row.Check),
		})
	}

	return tw.Render() + "\n"
}

// messageWidth returns the widest message that keeps the table within the
// terminal width, never below minMessageWidth.
func (t *TableFormatter) messageWidth(rows []TableRow) int {
	var other int
	for _, row := range rows {
		other = max(other, len(row.File)+len(row.Location)+len(row.Severity)+len(row.Check))
	}
	return max(minMessageWidth, t.termWidth-other-tableChrome)
}

func (t *TableFormatter) rowStyle(severity config.Severity) lipgloss.Style {
	switch severity {
	case config.SeverityError:
		return t.styles.TableErrorRow
	case config.SeverityWarning:
		return t.styles.TableWarnRow
	case config.SeverityInfo:
		return t.styles.TableInfoRow
	default:
		return lipgloss.NewStyle()
	}
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(totals analysis.Totals, duration string) string {
	parts := []string{strconv.Itoa(totals.Files) + " files checked"}

	if totals.Errors > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errors", totals.Errors)))
	}
	if totals.Warnings > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d warnings", totals.Warnings)))
	}
	if totals.Infos > 0 {
		parts = append(parts, t.styles.Info.Render(fmt.Sprintf("%d info", totals.Infos)))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
