package check

import "github.com/yaklabco/treelint/pkg/config"

// BaseCheck provides the metadata part of the Check interface.
// Embed this in check implementations and add Initialize.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseCheck struct {
	id   string
	name string
	desc string
	tags []string
}

// NewBaseCheck creates a BaseCheck with the given properties.
func NewBaseCheck(id, name, desc string, tags []string) BaseCheck {
	return BaseCheck{
		id:   id,
		name: name,
		desc: desc,
		tags: tags,
	}
}

// ID returns the unique identifier for this check.
func (c *BaseCheck) ID() string {
	return c.id
}

// Name returns the human-readable name of the check.
func (c *BaseCheck) Name() string {
	return c.name
}

// Description returns a detailed description of what the check finds.
func (c *BaseCheck) Description() string {
	return c.desc
}

// DefaultEnabled returns whether the check is enabled by default.
// Override this method to change the default.
func (c *BaseCheck) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this check.
// Override this method to change the default.
func (c *BaseCheck) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Tags returns categorization tags for this check.
func (c *BaseCheck) Tags() []string {
	return c.tags
}
