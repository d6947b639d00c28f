// Package config defines core configuration types for treelint.
// These types are pure data structures with no dependency on the loader.
package config

import "slices"

// Severity represents the severity level of an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// CheckConfig holds per-check configuration.
type CheckConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	Options  map[string]any `yaml:"options"`
}

// OutputFormat specifies the output format for issues.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatSARIF, FormatSummary:
		return true
	default:
		return false
	}
}

// CheckFormat controls how check identifiers appear in output.
type CheckFormat string

const (
	CheckFormatName     CheckFormat = "name"     // "too-many-parameters"
	CheckFormatID       CheckFormat = "id"       // "S107"
	CheckFormatCombined CheckFormat = "combined" // "S107/too-many-parameters"
)

// Language names accepted in the languages list.
const (
	LanguageGo         = "go"
	LanguageJavaScript = "javascript"
)

// KnownLanguages returns the languages with a front end.
func KnownLanguages() []string {
	return []string{LanguageGo, LanguageJavaScript}
}

// Config is the root configuration structure for treelint.
type Config struct {
	// SeverityDefault is the severity for checks that don't specify one.
	// Empty means each check's own default.
	SeverityDefault string `yaml:"severity_default,omitempty"`

	// Checks contains per-check configuration keyed by check ID.
	Checks map[string]CheckConfig `yaml:"checks"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// Languages restricts analysis to the listed languages.
	// Empty means every language with a front end.
	Languages []string `yaml:"languages"`

	// Metrics enables per-file metrics in reports.
	Metrics bool `yaml:"metrics"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// CheckFormat controls how check identifiers appear in output.
	CheckFormat CheckFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableChecks contains check IDs to explicitly enable.
	EnableChecks []string `yaml:"-"`

	// DisableChecks contains check IDs to explicitly disable.
	DisableChecks []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Checks:      make(map[string]CheckConfig),
		Ignore:      nil,
		Format:      FormatText,
		CheckFormat: CheckFormatName,
		Jobs:        0, // 0 means use GOMAXPROCS
	}
}

// LanguageEnabled reports whether files of the given language are analyzed.
func (c *Config) LanguageEnabled(language string) bool {
	if c == nil || len(c.Languages) == 0 {
		return true
	}
	return slices.Contains(c.Languages, language)
}
