package checks

import (
	"fmt"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/tree"
)

// CodeAfterJumpCheck reports jump, return and throw statements followed by
// more statements of the same block.
type CodeAfterJumpCheck struct {
	check.BaseCheck
}

// NewCodeAfterJumpCheck creates a new code-after-jump check.
func NewCodeAfterJumpCheck() *CodeAfterJumpCheck {
	return &CodeAfterJumpCheck{
		BaseCheck: check.NewBaseCheck(
			"S1763",
			"code-after-jump",
			"All code should be reachable",
			[]string{"unused"},
		),
	}
}

// DefaultSeverity returns error.
func (c *CodeAfterJumpCheck) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Initialize registers the block callback.
func (c *CodeAfterJumpCheck) Initialize(init check.InitContext) error {
	init.Register(tree.KindBlock, func(ctx *check.Context, n tree.Node) error {
		statements := n.(*tree.Block).Statements
		if len(statements) < 2 {
			return nil
		}
		for _, stmt := range statements[:len(statements)-1] {
			if keyword, ok := jumpKeyword(stmt); ok {
				ctx.ReportIssue(stmt,
					fmt.Sprintf("Refactor this piece of code to not have any dead code after this %q.", keyword.Text))
			}
		}
		return nil
	})
	return nil
}

func jumpKeyword(n tree.Node) (tree.Token, bool) {
	switch stmt := n.(type) {
	case *tree.Jump:
		return stmt.Keyword, true
	case *tree.Return:
		return stmt.Keyword, true
	case *tree.Throw:
		return stmt.Keyword, true
	default:
		return tree.Token{}, false
	}
}
