package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every check with its documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// Checks describes the available checks.
	Checks []CheckInfo

	// IncludeChecks limits the full template to these check IDs.
	// If empty, all checks are included.
	IncludeChecks []string
}

// CheckInfo contains check metadata for template generation.
// It mirrors the check package so that config stays free of that import.
type CheckInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# treelint configuration
# Place this file at the repository root as .treelint.yml`
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	checks := selectChecks(opts)

	if opts.Format == "json" {
		return templateToJSON(checks, opts.Full)
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")

	if !opts.Full {
		buf.WriteString(minimalBody)
		return buf.Bytes(), nil
	}

	buf.WriteString(fullBody)
	for _, chk := range checks {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", chk.ID, chk.Name)
		if chk.Description != "" {
			fmt.Fprintf(&buf, "  # %s\n", wrapComment(chk.Description, commentWrapWidth))
		}
		if len(chk.Tags) > 0 {
			fmt.Fprintf(&buf, "  # Tags: %s\n", strings.Join(chk.Tags, ", "))
		}
		fmt.Fprintf(&buf, "  %s:\n", chk.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", chk.Enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", chk.Severity)
		buf.WriteString("    # options:\n")
		buf.WriteString("    #   max: 10\n")
	}

	return buf.Bytes(), nil
}

const minimalBody = `# Default severity for all checks: error, warning, or info
# severity_default: warning

# Languages to analyze (default: every supported language)
# languages:
#   - go
#   - javascript

# Include per-file metrics in reports
# metrics: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Check-specific configuration, keyed by ID or name
# checks:
#   S107:
#     enabled: true
#     severity: warning
#     options:
#       max: 7
#   todo-comment:
#     enabled: false
`

const fullBody = `# Default severity for all checks: error, warning, or info
# An empty value keeps each check's own default.
severity_default: ""

# Languages to analyze (empty means every supported language)
languages: []

# Include per-file metrics in reports
metrics: false

# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"

# Check-specific configuration
checks:
`

func selectChecks(opts TemplateOptions) []CheckInfo {
	checks := slices.Clone(opts.Checks)
	if len(opts.IncludeChecks) > 0 {
		checks = slices.DeleteFunc(checks, func(c CheckInfo) bool {
			return !slices.Contains(opts.IncludeChecks, c.ID)
		})
	}
	slices.SortFunc(checks, func(a, b CheckInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return checks
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON renders the template as JSON. JSON has no comments, so the
// minimal form only carries the top-level keys.
func templateToJSON(checks []CheckInfo, full bool) ([]byte, error) {
	checksMap := make(map[string]any)
	if full {
		for _, c := range checks {
			checksMap[c.ID] = map[string]any{
				"enabled":  c.Enabled,
				"severity": string(c.Severity),
			}
		}
	}

	cfg := map[string]any{
		"severity_default": "",
		"languages":        []string{},
		"metrics":          false,
		"ignore":           []string{"vendor/**", "node_modules/**"},
		"checks":           checksMap,
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(jsonBytes, '\n'), nil
}
