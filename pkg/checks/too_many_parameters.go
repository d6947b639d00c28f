package checks

import (
	"fmt"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/tree"
)

const defaultMaxParameters = 7

// TooManyParametersCheck reports functions declaring more parameters than
// the "max" option allows. Overriding functions are skipped.
type TooManyParametersCheck struct {
	check.BaseCheck
	max int
}

// NewTooManyParametersCheck creates a new too-many-parameters check.
func NewTooManyParametersCheck() *TooManyParametersCheck {
	return &TooManyParametersCheck{
		BaseCheck: check.NewBaseCheck(
			"S107",
			"too-many-parameters",
			"Functions should not have too many parameters",
			[]string{"brain-overload"},
		),
		max: defaultMaxParameters,
	}
}

// Configure returns a copy using the "max" option.
func (c *TooManyParametersCheck) Configure(options check.Options) (check.Check, error) {
	maxParameters := options.Int("max", defaultMaxParameters)
	if maxParameters < 0 {
		return nil, fmt.Errorf("%s: max must not be negative, got %d", c.ID(), maxParameters)
	}
	configured := *c
	configured.max = maxParameters
	return &configured, nil
}

// Initialize registers the function callback.
func (c *TooManyParametersCheck) Initialize(init check.InitContext) error {
	init.Register(tree.KindFunctionDeclaration, func(ctx *check.Context, n tree.Node) error {
		fn := n.(*tree.FunctionDeclaration)
		if len(fn.FormalParameters) <= c.max || isOverride(fn) {
			return nil
		}

		message := fmt.Sprintf("This function has %d parameters, which is greater than the %d authorized.",
			len(fn.FormalParameters), c.max)

		secondaries := make([]check.SecondaryLocation, 0, len(fn.FormalParameters)-c.max)
		for _, param := range fn.FormalParameters[c.max:] {
			secondaries = append(secondaries, check.NewSecondaryLocation(param, ""))
		}

		if fn.Name == nil {
			ctx.ReportIssueAt(fn.RangeToHighlight(), message, secondaries...)
		} else {
			ctx.ReportIssue(fn.Name, message, secondaries...)
		}
		return nil
	})
	return nil
}

func isOverride(fn *tree.FunctionDeclaration) bool {
	for _, n := range fn.Modifiers {
		if modifier, ok := n.(*tree.Modifier); ok && modifier.Modifier == tree.ModifierOverride {
			return true
		}
	}
	return false
}
