package checks

import (
	"math/big"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/tree"
)

const (
	octalMessage = "Use decimal values instead of octal ones."

	// fileModeDigits is the length of a Unix permission mask such as 0644.
	fileModeDigits = 3
)

// OctalValuesCheck reports octal integer literals. Values below eight and
// three-digit file modes are accepted.
type OctalValuesCheck struct {
	check.BaseCheck
}

// NewOctalValuesCheck creates a new octal-values check.
func NewOctalValuesCheck() *OctalValuesCheck {
	return &OctalValuesCheck{
		BaseCheck: check.NewBaseCheck(
			"S1314",
			"octal-values",
			"Octal values should not be used",
			[]string{"pitfall"},
		),
	}
}

// Initialize registers the integer literal callback.
func (c *OctalValuesCheck) Initialize(init check.InitContext) error {
	eight := big.NewInt(int64(tree.BaseOctal.Radix()))

	init.Register(tree.KindIntegerLiteral, func(ctx *check.Context, n tree.Node) error {
		literal := n.(*tree.IntegerLiteral)
		if literal.Base() != tree.BaseOctal || len(literal.NumericPart()) == fileModeDigits {
			return nil
		}
		if value, ok := literal.IntegerValue(); ok && value.Cmp(eight) < 0 {
			return nil
		}
		ctx.ReportIssue(literal, octalMessage)
		return nil
	})
	return nil
}
