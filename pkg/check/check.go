// Package check provides the check dispatch engine: the generic tree visitor,
// the Check contract, issue reporting, and the registry of known checks.
package check

import (
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/tree"
)

// Check defines the interface that all checks must implement.
type Check interface {
	// ID returns the unique identifier for this check (e.g., "S107").
	ID() string

	// Name returns the human-readable name of the check.
	Name() string

	// Description returns a detailed description of what the check finds.
	Description() string

	// DefaultEnabled returns whether the check runs without configuration.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this check.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this check.
	Tags() []string

	// Initialize registers the check's callbacks.
	//
	// It is called once per analyzed file, so state captured by the
	// registered closures is private to that file. The check value itself
	// must not be mutated.
	Initialize(init InitContext) error
}

// InitContext is handed to Check.Initialize to register callbacks.
type InitContext interface {
	// Register adds a callback for nodes of exactly the given kind.
	Register(kind tree.Kind, fn func(ctx *Context, n tree.Node) error)
}

// Configurable is implemented by checks that accept options.
type Configurable interface {
	Check

	// Configure returns a copy of the check with the options applied.
	Configure(options Options) (Check, error)
}
