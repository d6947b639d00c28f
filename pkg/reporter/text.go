package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/treelint/internal/ui/pretty"
	"github.com/yaklabco/treelint/pkg/analysis"
)

// TextRenderer formats reports as styled terminal output.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	for _, failure := range report.Failures {
		fmt.Fprintf(bw, "%s: %s\n",
			r.styles.FilePath.Render(failure.FilePath),
			r.styles.Error.Render("error: "+failure.Error),
		)
	}

	if r.opts.GroupByFile {
		r.renderGrouped(bw, report)
	} else {
		for i := range report.Issues {
			fmt.Fprint(bw, r.styles.FormatIssue(&report.Issues[i], r.opts.ShowContext))
		}
	}

	if r.opts.ShowSummary {
		if report.Totals.Files == 0 && report.Totals.FilesFailed == 0 {
			fmt.Fprintln(bw, r.styles.Success.Render("No files to check."))
			return nil
		}
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(report.Totals))
	}

	return nil
}

// renderGrouped writes issues under one header per file. Issues arrive in
// file order, so a group ends when the path changes.
func (r *TextRenderer) renderGrouped(bw *bufio.Writer, report *analysis.Report) {
	issues := report.Issues
	for start := 0; start < len(issues); {
		end := start + 1
		for end < len(issues) && issues[end].FilePath == issues[start].FilePath {
			end++
		}

		fmt.Fprintln(bw, r.styles.FormatFileHeader(issues[start].FilePath, end-start))
		for i := start; i < end; i++ {
			fmt.Fprint(bw, r.styles.FormatIssue(&issues[i], r.opts.ShowContext))
		}
		fmt.Fprintln(bw)

		start = end
	}
}
