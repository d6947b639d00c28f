package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/yaklabco/treelint/internal/ui/pretty"
	"github.com/yaklabco/treelint/pkg/analysis"
)

const (
	maxCheckNameLength = 30
	maxFilePathLength  = 60
)

// SummaryRenderer formats reports as aggregated per-check and per-file tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report.Totals.Issues == 0 {
		fmt.Fprintln(bw, r.styles.Success.Render("No issues found"))
		return nil
	}

	if r.opts.SummaryOrder == SummaryOrderFiles {
		r.renderFileTable(bw, report.ByFile)
		fmt.Fprintln(bw)
		r.renderCheckTable(bw, report.ByCheck)
	} else {
		r.renderCheckTable(bw, report.ByCheck)
		fmt.Fprintln(bw)
		r.renderFileTable(bw, report.ByFile)
	}

	fmt.Fprintln(bw)
	fmt.Fprint(bw, r.styles.Bold.Render("Total: ")+r.styles.FormatSummaryOneLine(report.Totals))

	return nil
}

func newSummaryTable(w io.Writer, title string, header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(title)
	tw.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, len(header))
	for i := 2; i <= len(header); i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	tw.SetColumnConfigs(configs)
	return tw
}

func (r *SummaryRenderer) renderCheckTable(w io.Writer, checks []analysis.CheckAnalysis) {
	if len(checks) == 0 {
		return
	}

	tw := newSummaryTable(w, "Checks Summary", table.Row{"Check", "Count", "Errors", "Warnings", "Info"})
	for _, chk := range checks {
		name := chk.CheckName
		if name == "" {
			name = chk.CheckID
		}
		tw.AppendRow(table.Row{
			r.severityStyled(truncateEnd(name, maxCheckNameLength), chk.Errors, chk.Warnings),
			chk.Issues, chk.Errors, chk.Warnings, chk.Infos,
		})
	}
	tw.Render()
}

func (r *SummaryRenderer) renderFileTable(w io.Writer, files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	tw := newSummaryTable(w, "Files Summary", table.Row{"File", "Count", "Errors", "Warnings", "Info"})
	for _, file := range files {
		tw.AppendRow(table.Row{
			r.severityStyled(truncateStart(file.Path, maxFilePathLength), file.Errors, file.Warnings),
			file.Issues, file.Errors, file.Warnings, file.Infos,
		})
	}
	tw.Render()
}

func (r *SummaryRenderer) severityStyled(s string, errors, warnings int) string {
	switch {
	case errors > 0:
		return r.styles.TableErrorRow.Render(s)
	case warnings > 0:
		return r.styles.TableWarnRow.Render(s)
	default:
		return s
	}
}

// truncateEnd shortens s to maxLen runes, marking the cut with an ellipsis.
func truncateEnd(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}

// truncateStart keeps the end of s, which holds the file name of a path.
func truncateStart(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return "…" + string(runes[len(runes)-maxLen+1:])
}
