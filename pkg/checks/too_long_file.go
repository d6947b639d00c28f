package checks

import (
	"fmt"
	"path/filepath"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/tree"
)

const defaultMaxLinesOfCode = 1000

// TooLongFileCheck reports files with more lines of code than the "max"
// option allows. Blank and comment-only lines are not counted.
type TooLongFileCheck struct {
	check.BaseCheck
	max int
}

// NewTooLongFileCheck creates a new too-long-file check.
func NewTooLongFileCheck() *TooLongFileCheck {
	return &TooLongFileCheck{
		BaseCheck: check.NewBaseCheck(
			"S104",
			"too-long-file",
			"Files should not have too many lines of code",
			[]string{"brain-overload"},
		),
		max: defaultMaxLinesOfCode,
	}
}

// Configure returns a copy using the "max" option.
func (c *TooLongFileCheck) Configure(options check.Options) (check.Check, error) {
	maxLines := options.Int("max", defaultMaxLinesOfCode)
	if maxLines < 1 {
		return nil, fmt.Errorf("%s: max must be positive, got %d", c.ID(), maxLines)
	}
	configured := *c
	configured.max = maxLines
	return &configured, nil
}

// Initialize registers the top-level callback.
func (c *TooLongFileCheck) Initialize(init check.InitContext) error {
	init.Register(tree.KindTopLevel, func(ctx *check.Context, n tree.Node) error {
		lines := len(n.MetaData().LinesOfCode())
		if lines > c.max {
			ctx.ReportFileIssue(fmt.Sprintf(
				"File %q has %d lines, which is greater than %d authorized. Split it into smaller files.",
				filepath.Base(ctx.Filename()), lines, c.max))
		}
		return nil
	})
	return nil
}
