package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/yaklabco/treelint/pkg/config"
)

func sampleCheckInfos() []config.CheckInfo {
	return []config.CheckInfo{
		{
			ID: "S1135", Name: "todo-comment", Enabled: true, Severity: config.SeverityInfo,
			Description: "Track uses of TODO tags", Tags: []string{"convention"},
		},
		{
			ID: "S107", Name: "too-many-parameters", Enabled: true, Severity: config.SeverityWarning,
			Description: "Functions should not have too many parameters",
		},
	}
}

func TestGenerateTemplate_Minimal(t *testing.T) {
	t.Parallel()

	out, err := config.GenerateTemplate(config.TemplateOptions{Checks: sampleCheckInfos()})
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# treelint configuration")
	assert.Contains(t, text, "# checks:")
	assert.NotContains(t, text, "S1135:", "minimal template lists no checks")

	cfg, err := config.FromYAML(out)
	require.NoError(t, err)
	assert.Empty(t, cfg.Checks)
}

func TestGenerateTemplate_Full(t *testing.T) {
	t.Parallel()

	out, err := config.GenerateTemplate(config.TemplateOptions{Full: true, Checks: sampleCheckInfos()})
	require.NoError(t, err)

	text := string(out)
	assert.Less(t, strings.Index(text, "S107:"), strings.Index(text, "S1135:"), "checks sorted by ID")
	assert.Contains(t, text, "# Tags: convention")

	cfg, err := config.FromYAML(out)
	require.NoError(t, err)
	require.Contains(t, cfg.Checks, "S1135")
	require.NotNil(t, cfg.Checks["S1135"].Severity)
	assert.Equal(t, "info", *cfg.Checks["S1135"].Severity)
	assert.Equal(t, []string{"vendor/**", "node_modules/**"}, cfg.Ignore)
}

func TestGenerateTemplate_IncludeChecks(t *testing.T) {
	t.Parallel()

	out, err := config.GenerateTemplate(config.TemplateOptions{
		Full:          true,
		Checks:        sampleCheckInfos(),
		IncludeChecks: []string{"S107"},
	})
	require.NoError(t, err)

	cfg, err := config.FromYAML(out)
	require.NoError(t, err)
	assert.Len(t, cfg.Checks, 1)
	assert.Contains(t, cfg.Checks, "S107")
}

func TestGenerateTemplate_JSON(t *testing.T) {
	t.Parallel()

	out, err := config.GenerateTemplate(config.TemplateOptions{Full: true, Format: "json", Checks: sampleCheckInfos()})
	require.NoError(t, err)

	require.True(t, gjson.ValidBytes(out))
	assert.Equal(t, "warning", gjson.GetBytes(out, "checks.S107.severity").String())
	assert.False(t, gjson.GetBytes(out, "metrics").Bool())
}
