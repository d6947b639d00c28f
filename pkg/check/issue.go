package check

import (
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/tree"
)

// SecondaryLocation is an additional range attached to an issue.
type SecondaryLocation struct {
	Range   tree.TextRange
	Message string
}

// NewSecondaryLocation creates a secondary location covering n.
func NewSecondaryLocation(n tree.Node, message string) SecondaryLocation {
	return SecondaryLocation{Range: n.Range(), Message: message}
}

// Issue is a single finding reported by a check.
type Issue struct {
	// CheckID is the identifier of the check that reported the issue.
	CheckID string

	// CheckName is the human-readable name of that check.
	CheckName string

	// Severity is the resolved severity.
	Severity config.Severity

	// Message is the human-readable description of the issue.
	Message string

	// Range is the primary location. Nil means the issue is about the whole file.
	Range *tree.TextRange

	// Secondaries lists related locations, in report order.
	Secondaries []SecondaryLocation

	// Gap is the estimated remediation effort, when the check provides one.
	Gap *float64
}

// IsFileLevel returns true if the issue has no primary location.
func (i *Issue) IsFileLevel() bool {
	return i.Range == nil
}

// Line returns the 1-based start line, or 0 for file-level issues.
func (i *Issue) Line() int {
	if i.Range == nil {
		return 0
	}
	return i.Range.Start.Line
}
