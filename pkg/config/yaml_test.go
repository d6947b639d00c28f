package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/treelint/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		t.Parallel()

		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies Checks map", func(t *testing.T) {
		t.Parallel()

		enabled := true
		severity := "error"
		original := &config.Config{
			Checks: map[string]config.CheckConfig{
				"S107": {
					Enabled:  &enabled,
					Severity: &severity,
					Options:  map[string]any{"max": 3},
				},
			},
		}

		clone := original.Clone()
		require.Contains(t, clone.Checks, "S107")
		assert.True(t, *clone.Checks["S107"].Enabled)
		assert.Equal(t, "error", *clone.Checks["S107"].Severity)
		assert.Equal(t, 3, clone.Checks["S107"].Options["max"])

		newSeverity := "warning"
		clone.Checks["S107"] = config.CheckConfig{Severity: &newSeverity}
		assert.Equal(t, "error", *original.Checks["S107"].Severity)
	})

	t.Run("deep copies slices", func(t *testing.T) {
		t.Parallel()

		original := &config.Config{
			Ignore:    []string{"vendor/**", "*.min.js"},
			Languages: []string{"go"},
		}

		clone := original.Clone()
		assert.Equal(t, original.Ignore, clone.Ignore)

		clone.Ignore[0] = "changed"
		clone.Languages[0] = "javascript"
		assert.Equal(t, "vendor/**", original.Ignore[0])
		assert.Equal(t, "go", original.Languages[0])
	})

	t.Run("preserves all fields", func(t *testing.T) {
		t.Parallel()

		original := &config.Config{
			SeverityDefault: "warning",
			Metrics:         true,
			Format:          config.FormatJSON,
			CheckFormat:     config.CheckFormatCombined,
			Jobs:            4,
			EnableChecks:    []string{"S107", "S104"},
			DisableChecks:   []string{"S1135"},
		}

		clone := original.Clone()
		assert.Equal(t, original, clone)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{SeverityDefault: "warning", Metrics: true, Format: config.FormatSARIF}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "severity_default: warning")
		assert.Contains(t, string(data), "metrics: true")
		assert.NotContains(t, string(data), "sarif", "CLI-only fields are not persisted")
	})

	t.Run("header is prepended", func(t *testing.T) {
		t.Parallel()

		data, err := config.NewConfig().ToYAMLWithHeader("# treelint")
		require.NoError(t, err)
		assert.Contains(t, string(data), "# treelint\n\n")
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses valid YAML", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte(`
severity_default: error
languages: [go]
metrics: true
checks:
  S107:
    enabled: true
    options:
      max: 4
`))
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.SeverityDefault)
		assert.Equal(t, []string{"go"}, cfg.Languages)
		assert.True(t, cfg.Metrics)
		require.Contains(t, cfg.Checks, "S107")
		assert.True(t, *cfg.Checks["S107"].Enabled)
		assert.Equal(t, 4, cfg.Checks["S107"].Options["max"])
	})

	t.Run("initializes empty Checks map", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte(`metrics: false`))
		require.NoError(t, err)
		assert.NotNil(t, cfg.Checks)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("checks: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})
}
