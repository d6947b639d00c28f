package checks

import (
	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/tree"
)

const emptyBlockMessage = "Either remove or fill this block of code."

// EmptyBlockCheck reports nested blocks and match statements that hold
// neither code nor a comment. Function bodies are left to dedicated checks.
type EmptyBlockCheck struct {
	check.BaseCheck
}

// NewEmptyBlockCheck creates a new empty-block check.
func NewEmptyBlockCheck() *EmptyBlockCheck {
	return &EmptyBlockCheck{
		BaseCheck: check.NewBaseCheck(
			"S108",
			"empty-block",
			"Nested blocks of code should not be left empty",
			[]string{"suspicious"},
		),
	}
}

// Initialize registers the block and match callbacks.
func (c *EmptyBlockCheck) Initialize(init check.InitContext) error {
	init.Register(tree.KindBlock, func(ctx *check.Context, n tree.Node) error {
		switch ctx.Parent().(type) {
		case *tree.FunctionDeclaration, *tree.Native:
			return nil
		}
		if len(n.(*tree.Block).Statements) == 0 {
			reportUncommented(ctx, n)
		}
		return nil
	})

	init.Register(tree.KindMatch, func(ctx *check.Context, n tree.Node) error {
		if len(n.(*tree.Match).Cases) == 0 {
			reportUncommented(ctx, n)
		}
		return nil
	})
	return nil
}

func reportUncommented(ctx *check.Context, n tree.Node) {
	if len(n.MetaData().CommentsInside()) == 0 {
		ctx.ReportIssue(n, emptyBlockMessage)
	}
}
