package checks

import "github.com/yaklabco/treelint/pkg/check"

// RegisterAll registers all built-in checks with the given registry.
func RegisterAll(registry *check.Registry) {
	// Structure
	registry.Register(NewTooLongFileCheck())       // S104
	registry.Register(NewTooManyParametersCheck()) // S107
	registry.Register(NewEmptyBlockCheck())        // S108

	// Expressions
	registry.Register(NewRedundantBooleanLiteralCheck()) // S1125
	registry.Register(NewOctalValuesCheck())             // S1314
	registry.Register(NewIdenticalBinaryOperandsCheck()) // S1764

	// Control flow
	registry.Register(NewCodeAfterJumpCheck())   // S1763
	registry.Register(NewDuplicateBranchCheck()) // S1871

	// Comments
	registry.Register(NewTodoCommentCheck()) // S1135
}

// init registers all built-in checks with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic check registration
func init() {
	RegisterAll(check.DefaultRegistry)
}
