package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/checks"
	"github.com/yaklabco/treelint/pkg/config"
)

func builtinRegistry() *check.Registry {
	registry := check.NewRegistry()
	checks.RegisterAll(registry)
	return registry
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cfg          *config.Config
		wantErrors   []string
		wantWarnings []string
	}{
		{name: "nil", cfg: nil},
		{name: "defaults", cfg: config.NewConfig()},
		{
			name:       "check format",
			cfg:        &config.Config{CheckFormat: "short"},
			wantErrors: []string{"check_format"},
		},
		{
			name:       "negative jobs",
			cfg:        &config.Config{Jobs: -1},
			wantErrors: []string{"jobs"},
		},
		{
			name: "check severity",
			cfg: &config.Config{Checks: map[string]config.CheckConfig{
				"S107": {Severity: ptr("critical")},
			}},
			wantErrors: []string{"checks.S107.severity"},
		},
		{
			name: "unknown check keys",
			cfg: &config.Config{
				Checks:        map[string]config.CheckConfig{"nope": {}},
				EnableChecks:  []string{"S1"},
				DisableChecks: []string{"S1764"},
			},
			wantWarnings: []string{"checks.nope", "enable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := Validate(tt.cfg, builtinRegistry())

			fields := func(list []ValidationError) []string {
				var out []string
				for _, e := range list {
					out = append(out, e.Field)
				}
				return out
			}
			assert.Equal(t, tt.wantErrors, fields(result.Errors))
			assert.Equal(t, tt.wantWarnings, fields(result.Warnings))
			assert.Equal(t, len(tt.wantErrors) == 0, result.Valid())
			assert.Equal(t, len(tt.wantWarnings) > 0, result.HasWarnings())
		})
	}
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{SeverityDefault: "loud", Checks: map[string]config.CheckConfig{"zzz": {}}}
	result := ValidateWithFile(cfg, builtinRegistry(), ".treelint.yml")

	require.Len(t, result.Errors, 1)
	assert.Equal(t,
		`.treelint.yml: severity_default: invalid severity "loud"; must be one of: error, warning, info`,
		result.Errors[0].Error())

	messages := result.AllMessages()
	require.Len(t, messages, 2)
	assert.Equal(t, `warning: .treelint.yml: checks.zzz: unknown check "zzz"; it will be ignored`, messages[1])
}

func TestIsValidHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidSeverity("warning"))
	assert.False(t, IsValidSeverity("Warning"))
	assert.True(t, IsValidFormat(config.FormatSummary))
	assert.False(t, IsValidFormat("diff"))
}
