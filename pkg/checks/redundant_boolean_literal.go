package checks

import (
	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/tree"
)

const redundantBooleanMessage = "Remove the unnecessary Boolean literal."

// RedundantBooleanLiteralCheck reports boolean literals used as operands of
// "&&", "||" and "!", or as a branch of a simple if-else expression.
type RedundantBooleanLiteralCheck struct {
	check.BaseCheck
}

// NewRedundantBooleanLiteralCheck creates a new redundant-boolean-literal check.
func NewRedundantBooleanLiteralCheck() *RedundantBooleanLiteralCheck {
	return &RedundantBooleanLiteralCheck{
		BaseCheck: check.NewBaseCheck(
			"S1125",
			"redundant-boolean-literal",
			"Boolean literals should not be redundant",
			[]string{"clumsy"},
		),
	}
}

// Initialize registers the if, binary and unary callbacks.
func (c *RedundantBooleanLiteralCheck) Initialize(init check.InitContext) error {
	init.Register(tree.KindIf, func(ctx *check.Context, n tree.Node) error {
		ifNode := n.(*tree.If)
		if isElseIf(ctx.Parent(), ifNode) || hasElseIf(ifNode) || hasBlockBranch(ifNode) {
			return nil
		}
		reportFirstBooleanLiteral(ctx, ifNode.Then, ifNode.Else)
		return nil
	})

	init.Register(tree.KindBinaryExpression, func(ctx *check.Context, n tree.Node) error {
		expr := n.(*tree.BinaryExpression)
		if expr.Operator.IsLogical() {
			reportFirstBooleanLiteral(ctx, expr.Left, expr.Right)
		}
		return nil
	})

	init.Register(tree.KindUnaryExpression, func(ctx *check.Context, n tree.Node) error {
		expr := n.(*tree.UnaryExpression)
		if expr.Operator == tree.OpNegate {
			reportFirstBooleanLiteral(ctx, expr.Operand)
		}
		return nil
	})
	return nil
}

func isElseIf(parent tree.Node, n *tree.If) bool {
	parentIf, ok := parent.(*tree.If)
	return ok && tree.Same(parentIf.Else, n)
}

func hasElseIf(n *tree.If) bool {
	_, ok := n.Else.(*tree.If)
	return ok
}

func hasBlockBranch(n *tree.If) bool {
	_, thenBlock := n.Then.(*tree.Block)
	_, elseBlock := n.Else.(*tree.Block)
	return thenBlock || elseBlock
}

func reportFirstBooleanLiteral(ctx *check.Context, nodes ...tree.Node) {
	for _, n := range nodes {
		if tree.IsNil(n) {
			continue
		}
		if literal := tree.SkipParentheses(n); isBooleanLiteral(literal) {
			ctx.ReportIssue(literal, redundantBooleanMessage)
			return
		}
	}
}

func isBooleanLiteral(n tree.Node) bool {
	literal, ok := n.(*tree.Literal)
	if !ok {
		return false
	}
	switch literal.Value() {
	case "true", "false", "TRUE", "FALSE":
		return true
	default:
		return false
	}
}
