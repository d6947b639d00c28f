package configloader

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "checks.S107.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues such as unknown check keys.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks cfg against the checks known to registry. A nil registry
// means check.DefaultRegistry.
func Validate(cfg *config.Config, registry *check.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}
	if registry == nil {
		registry = check.DefaultRegistry
	}

	if cfg.SeverityDefault != "" && !IsValidSeverity(cfg.SeverityDefault) {
		result.addError("severity_default", cfg.SeverityDefault,
			fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", cfg.SeverityDefault))
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.addError("format", cfg.Format,
			fmt.Sprintf("invalid format %q; must be one of: text, table, json, sarif, summary", cfg.Format))
	}

	switch cfg.CheckFormat {
	case "", config.CheckFormatName, config.CheckFormatID, config.CheckFormatCombined:
	default:
		result.addError("check_format", cfg.CheckFormat,
			fmt.Sprintf("invalid check format %q; must be one of: name, id, combined", cfg.CheckFormat))
	}

	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	for i, lang := range cfg.Languages {
		if !slices.Contains(config.KnownLanguages(), lang) {
			result.addError(fmt.Sprintf("languages[%d]", i), lang,
				fmt.Sprintf("unknown language %q; must be one of: %s", lang, strings.Join(config.KnownLanguages(), ", ")))
		}
	}

	validateChecks(cfg, registry, result)
	validateSelection(cfg, registry, result)
	validateIgnorePatterns(cfg, result)

	return result
}

func (r *ValidationResult) addError(field string, value any, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: message})
}

func (r *ValidationResult) addWarning(field string, value any, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: message})
}

// validateChecks reports unknown check keys as warnings and bad severities
// or options as errors. Keys are visited in sorted order.
func validateChecks(cfg *config.Config, registry *check.Registry, result *ValidationResult) {
	for _, key := range sortedKeys(cfg.Checks) {
		checkCfg := cfg.Checks[key]
		field := "checks." + key

		chk, exists := registry.Get(key)
		if !exists {
			result.addWarning(field, key, fmt.Sprintf("unknown check %q; it will be ignored", key))
		}

		if checkCfg.Severity != nil && !IsValidSeverity(*checkCfg.Severity) {
			result.addError(field+".severity", *checkCfg.Severity,
				fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", *checkCfg.Severity))
		}

		if exists {
			if _, err := check.ApplyOptions(chk, checkCfg.Options); err != nil {
				result.addError(field+".options", checkCfg.Options, err.Error())
			}
		}
	}
}

func validateSelection(cfg *config.Config, registry *check.Registry, result *ValidationResult) {
	for _, key := range cfg.EnableChecks {
		if _, ok := registry.Get(key); !ok {
			result.addWarning("enable", key, fmt.Sprintf("unknown check %q; it will be ignored", key))
		}
	}
	for _, key := range cfg.DisableChecks {
		if _, ok := registry.Get(key); !ok {
			result.addWarning("disable", key, fmt.Sprintf("unknown check %q; it will be ignored", key))
		}
	}
}

// validateIgnorePatterns compiles ignore patterns the way file discovery does.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(filepath.ToSlash(pattern), '/'); err != nil {
			result.addError(fmt.Sprintf("ignore[%d]", i), pattern, fmt.Sprintf("invalid glob pattern: %v", err))
		}
	}
}

// ValidateWithFile validates cfg and attributes every finding to filePath.
func ValidateWithFile(cfg *config.Config, registry *check.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// IsValidSeverity returns true if the severity string is valid.
func IsValidSeverity(s string) bool {
	return config.Severity(s).IsValid()
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return f.IsValid()
}

func sortedKeys(m map[string]config.CheckConfig) []string {
	return slices.Sorted(maps.Keys(m))
}
