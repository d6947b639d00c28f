package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/yaklabco/treelint/pkg/analysis"
	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
)

// SARIF version used by this renderer.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

const toolName = "treelint"

const toolInformationURI = "https://github.com/yaklabco/treelint"

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool              SARIFTool              `json:"tool"`
	AutomationDetails SARIFAutomationDetails `json:"automationDetails"`
	Results           []SARIFResult          `json:"results"`
}

// SARIFAutomationDetails identifies the run.
type SARIFAutomationDetails struct {
	GUID string `json:"guid"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a check.
type SARIFRule struct {
	ID               string               `json:"id"`
	Name             string               `json:"name,omitempty"`
	ShortDescription SARIFMultiformatText `json:"shortDescription"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any       `json:"properties,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single issue.
type SARIFResult struct {
	RuleID           string          `json:"ruleId"`
	Level            string          `json:"level"`
	Message          SARIFMessage    `json:"message"`
	Locations        []SARIFLocation `json:"locations"`
	RelatedLocations []SARIFLocation `json:"relatedLocations,omitempty"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	ID               *int                  `json:"id,omitempty"`
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
	Message          *SARIFMessage         `json:"message,omitempty"`
}

// SARIFPhysicalLocation contains file path and region. File-level results
// carry no region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           *SARIFRegion          `json:"region,omitempty"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region. Columns are 1-based and
// EndColumn is exclusive.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// SARIFRenderer formats reports as SARIF.
type SARIFRenderer struct {
	opts  Options
	newID func() string
}

// NewSARIFRenderer creates a new SARIF renderer.
func NewSARIFRenderer(opts Options) *SARIFRenderer {
	return &SARIFRenderer{
		opts:  opts,
		newID: func() string { return uuid.NewString() },
	}
}

// Render implements Renderer.
func (r *SARIFRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(r.buildOutput(report)); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func (r *SARIFRenderer) buildOutput(report *analysis.Report) *SARIFOutput {
	version := r.opts.ToolVersion
	if version == "" {
		version = DefaultOptions().ToolVersion
	}

	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           toolName,
				Version:        version,
				InformationURI: toolInformationURI,
				Rules:          r.rules(report),
			},
		},
		AutomationDetails: SARIFAutomationDetails{GUID: r.newID()},
		Results:           make([]SARIFResult, 0, len(report.Issues)),
	}

	for _, issue := range report.Issues {
		uri := filepath.ToSlash(issue.FilePath)

		result := SARIFResult{
			RuleID:  issue.CheckID,
			Level:   severityToSARIFLevel(config.Severity(issue.Severity)),
			Message: SARIFMessage{Text: issue.Message},
			Locations: []SARIFLocation{{
				PhysicalLocation: SARIFPhysicalLocation{ArtifactLocation: SARIFArtifactLocation{URI: uri}},
			}},
		}
		if !issue.FileLevel {
			result.Locations[0].PhysicalLocation.Region = &SARIFRegion{
				StartLine:   issue.StartLine,
				StartColumn: issue.StartColumn,
				EndLine:     issue.EndLine,
				EndColumn:   issue.EndColumn,
			}
		}

		for i, sec := range issue.Secondaries {
			location := SARIFLocation{
				ID: new(int),
				PhysicalLocation: SARIFPhysicalLocation{
					ArtifactLocation: SARIFArtifactLocation{URI: uri},
					Region: &SARIFRegion{
						StartLine:   sec.StartLine,
						StartColumn: sec.StartColumn,
						EndLine:     sec.EndLine,
						EndColumn:   sec.EndColumn,
					},
				},
			}
			*location.ID = i
			if sec.Message != "" {
				location.Message = &SARIFMessage{Text: sec.Message}
			}
			result.RelatedLocations = append(result.RelatedLocations, location)
		}

		run.Results = append(run.Results, result)
	}

	return &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SARIFRun{run},
	}
}

// rules describes the configured checks, or the checks that reported an
// issue when none are configured.
func (r *SARIFRenderer) rules(report *analysis.Report) []SARIFRule {
	if len(r.opts.Checks) > 0 {
		rules := make([]SARIFRule, 0, len(r.opts.Checks))
		for _, chk := range r.opts.Checks {
			rules = append(rules, checkToSARIFRule(chk))
		}
		return rules
	}

	rules := make([]SARIFRule, 0, len(report.ByCheck))
	seen := make(map[string]bool)
	for _, issue := range report.Issues {
		if seen[issue.CheckID] {
			continue
		}
		seen[issue.CheckID] = true
		rules = append(rules, SARIFRule{
			ID:               issue.CheckID,
			Name:             issue.CheckName,
			ShortDescription: SARIFMultiformatText{Text: issue.CheckName},
		})
	}
	return rules
}

func checkToSARIFRule(chk check.Check) SARIFRule {
	rule := SARIFRule{
		ID:               chk.ID(),
		Name:             chk.Name(),
		ShortDescription: SARIFMultiformatText{Text: chk.Description()},
		DefaultConfig:    &SARIFRuleConfig{Level: severityToSARIFLevel(chk.DefaultSeverity())},
	}
	if tags := chk.Tags(); len(tags) > 0 {
		rule.Properties = map[string]any{"tags": tags}
	}
	return rule
}

// severityToSARIFLevel converts a severity to a SARIF level.
func severityToSARIFLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "error"
	case config.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
