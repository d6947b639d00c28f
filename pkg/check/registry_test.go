package check_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
)

func noop(check.InitContext) error { return nil }

func TestRegistry_GetByIDOrName(t *testing.T) {
	t.Parallel()

	reg := check.NewRegistry()
	reg.Register(newFuncCheck("S107", noop))

	got, ok := reg.Get("S107")
	require.True(t, ok)
	assert.Equal(t, "S107", got.ID())

	got, ok = reg.Get("S107-name")
	require.True(t, ok)
	assert.Equal(t, "S107", got.ID())

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_ChecksSortedByID(t *testing.T) {
	t.Parallel()

	reg := check.NewRegistry()
	reg.Register(newFuncCheck("S2", noop))
	reg.Register(newFuncCheck("S1", noop))
	reg.Register(newFuncCheck("S3", noop))

	ids := make([]string, 0, 3)
	for _, chk := range reg.Checks() {
		ids = append(ids, chk.ID())
	}
	assert.Equal(t, []string{"S1", "S2", "S3"}, ids)
	assert.Equal(t, []string{"S1", "S2", "S3"}, reg.IDs())
}

func TestRegistry_ReplaceDropsOldName(t *testing.T) {
	t.Parallel()

	reg := check.NewRegistry()
	reg.Register(newFuncCheck("S1", noop))

	replacement := &funcCheck{BaseCheck: check.NewBaseCheck("S1", "renamed", "", nil), init: noop}
	reg.Register(replacement)

	_, ok := reg.Get("S1-name")
	assert.False(t, ok)
	got, ok := reg.Get("renamed")
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Len(t, reg.Checks(), 1)
}

// maxCheck is a configurable test check.
type maxCheck struct {
	check.BaseCheck
	max int
}

func (c *maxCheck) Initialize(check.InitContext) error { return nil }

func (c *maxCheck) Configure(options check.Options) (check.Check, error) {
	value := options.Int("max", c.max)
	if value <= 0 {
		return nil, errors.New("max must be positive")
	}
	configured := *c
	configured.max = value
	return &configured, nil
}

func newMaxCheck() *maxCheck {
	return &maxCheck{BaseCheck: check.NewBaseCheck("S107", "too-many", "", nil), max: 7}
}

func TestApplyOptions(t *testing.T) {
	t.Parallel()

	original := newMaxCheck()

	configured, err := check.ApplyOptions(original, map[string]any{"max": 3})
	require.NoError(t, err)
	assert.Equal(t, 3, configured.(*maxCheck).max)
	assert.Equal(t, 7, original.max, "original is not mutated")

	same, err := check.ApplyOptions(original, nil)
	require.NoError(t, err)
	assert.Same(t, original, same)

	plain := newFuncCheck("PLAIN", noop)
	unchanged, err := check.ApplyOptions(plain, map[string]any{"max": 3})
	require.NoError(t, err)
	assert.Same(t, plain, unchanged)

	_, err = check.ApplyOptions(original, map[string]any{"max": -1})
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	options := check.Options{
		"int":     4,
		"float":   2.0,
		"uint":    uint64(9),
		"string":  "x",
		"bool":    true,
		"strings": []any{"a", 1, "b"},
		"typed":   []string{"c"},
	}

	assert.Equal(t, 4, options.Int("int", 0))
	assert.Equal(t, 2, options.Int("float", 0))
	assert.Equal(t, 9, options.Int("uint", 0))
	assert.Equal(t, 5, options.Int("string", 5))
	assert.Equal(t, 5, options.Int("missing", 5))
	assert.Equal(t, "x", options.String("string", "d"))
	assert.Equal(t, "d", options.String("int", "d"))
	assert.True(t, options.Bool("bool", false))
	assert.False(t, options.Bool("missing", false))
	assert.Equal(t, []string{"a", "b"}, options.StringSlice("strings", nil))
	assert.Equal(t, []string{"c"}, options.StringSlice("typed", nil))
	assert.Equal(t, []string{"z"}, options.StringSlice("missing", []string{"z"}))
}

func TestResolveChecks(t *testing.T) {
	t.Parallel()

	newRegistry := func() *check.Registry {
		reg := check.NewRegistry()
		reg.Register(newMaxCheck())
		reg.Register(newFuncCheck("S1135", noop))
		return reg
	}

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()

		resolved, err := check.ResolveChecks(newRegistry(), nil)
		require.NoError(t, err)
		require.Len(t, resolved, 2)
		assert.Equal(t, "S107", resolved[0].Check.ID())
		assert.Equal(t, config.SeverityWarning, resolved[0].Severity)
	})

	t.Run("config disables and configures", func(t *testing.T) {
		t.Parallel()

		disabled := false
		severity := "error"
		cfg := config.NewConfig()
		cfg.SeverityDefault = "info"
		cfg.Checks["S1135"] = config.CheckConfig{Enabled: &disabled}
		cfg.Checks["too-many"] = config.CheckConfig{Severity: &severity, Options: map[string]any{"max": 2}}

		resolved, err := check.ResolveChecks(newRegistry(), cfg)
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, config.SeverityError, resolved[0].Severity)
		assert.Equal(t, 2, resolved[0].Check.(*maxCheck).max)
	})

	t.Run("severity default applies", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.SeverityDefault = "info"

		resolved, err := check.ResolveChecks(newRegistry(), cfg)
		require.NoError(t, err)
		for _, rc := range resolved {
			assert.Equal(t, config.SeverityInfo, rc.Severity)
		}
	})

	t.Run("CLI selection wins over config", func(t *testing.T) {
		t.Parallel()

		disabled := false
		cfg := config.NewConfig()
		cfg.Checks["S1135"] = config.CheckConfig{Enabled: &disabled}
		cfg.EnableChecks = []string{"S1135"}
		cfg.DisableChecks = []string{"too-many"}

		resolved, err := check.ResolveChecks(newRegistry(), cfg)
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, "S1135", resolved[0].Check.ID())
	})

	t.Run("invalid options are reported", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Checks["S107"] = config.CheckConfig{Options: map[string]any{"max": 0}}

		resolved, err := check.ResolveChecks(newRegistry(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configure check S107")
		require.Len(t, resolved, 1)
	})
}
