package checks

import (
	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/equivalence"
	"github.com/yaklabco/treelint/pkg/tree"
)

const identicalOperandsMessage = "Correct one of the identical sub-expressions on both sides this operator"

// IdenticalBinaryOperandsCheck reports binary expressions whose operands
// are syntactically equivalent, such as "a == a" or "x - x".
type IdenticalBinaryOperandsCheck struct {
	check.BaseCheck
}

// NewIdenticalBinaryOperandsCheck creates a new identical-binary-operands check.
func NewIdenticalBinaryOperandsCheck() *IdenticalBinaryOperandsCheck {
	return &IdenticalBinaryOperandsCheck{
		BaseCheck: check.NewBaseCheck(
			"S1764",
			"identical-binary-operands",
			"Identical expressions should not be used on both sides of a binary operator",
			[]string{"bug", "suspicious"},
		),
	}
}

// DefaultSeverity returns error.
func (c *IdenticalBinaryOperandsCheck) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Initialize registers the binary expression callback.
func (c *IdenticalBinaryOperandsCheck) Initialize(init check.InitContext) error {
	init.Register(tree.KindBinaryExpression, func(ctx *check.Context, n tree.Node) error {
		expr := n.(*tree.BinaryExpression)

		// "x + x" and "x * x" are legitimate.
		if expr.Operator == tree.OpPlus || expr.Operator == tree.OpTimes || containsPlaceHolder(expr) {
			return nil
		}

		if equivalence.AreEquivalent(tree.SkipParentheses(expr.Left), tree.SkipParentheses(expr.Right)) {
			ctx.ReportIssue(expr.Right, identicalOperandsMessage, check.NewSecondaryLocation(expr.Left, ""))
		}
		return nil
	})
	return nil
}

func containsPlaceHolder(n tree.Node) bool {
	return tree.FindFirst(n, func(d tree.Node) bool { return d.Kind() == tree.KindPlaceHolder }) != nil
}
