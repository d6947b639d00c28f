package check

import (
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/tree"
)

// InputFile is a source file handed to the engine.
type InputFile struct {
	// Filename is the path used in reports.
	Filename string

	// Content is the raw file content.
	Content []byte
}

// Context is the reporting context handed to check callbacks.
// It is bound to one check and one file.
type Context struct {
	*TreeContext

	check    Check
	file     InputFile
	severity config.Severity
	issues   []Issue
}

func newContext(tc *TreeContext, chk Check, file InputFile, severity config.Severity) *Context {
	return &Context{TreeContext: tc, check: chk, file: file, severity: severity}
}

// Filename returns the name of the analyzed file.
func (c *Context) Filename() string {
	return c.file.Filename
}

// FileContent returns the content of the analyzed file.
func (c *Context) FileContent() string {
	return string(c.file.Content)
}

// ReportIssue reports an issue covering n.
func (c *Context) ReportIssue(n tree.Node, message string, secondaries ...SecondaryLocation) {
	c.ReportIssueAt(n.Range(), message, secondaries...)
}

// ReportIssueAt reports an issue covering rng.
func (c *Context) ReportIssueAt(rng tree.TextRange, message string, secondaries ...SecondaryLocation) {
	c.report(&rng, message, secondaries, nil)
}

// ReportIssueWithGap reports an issue covering n with a remediation effort.
func (c *Context) ReportIssueWithGap(n tree.Node, message string, gap float64, secondaries ...SecondaryLocation) {
	rng := n.Range()
	c.report(&rng, message, secondaries, &gap)
}

// ReportFileIssue reports an issue about the whole file.
func (c *Context) ReportFileIssue(message string) {
	c.report(nil, message, nil, nil)
}

// ReportFileIssueWithGap reports a file-level issue with a remediation effort.
func (c *Context) ReportFileIssueWithGap(message string, gap float64) {
	c.report(nil, message, nil, &gap)
}

func (c *Context) report(rng *tree.TextRange, message string, secondaries []SecondaryLocation, gap *float64) {
	var copied []SecondaryLocation
	if len(secondaries) > 0 {
		copied = append(copied, secondaries...)
	}
	c.issues = append(c.issues, Issue{
		CheckID:     c.check.ID(),
		CheckName:   c.check.Name(),
		Severity:    c.severity,
		Message:     message,
		Range:       rng,
		Secondaries: copied,
		Gap:         gap,
	})
}
