// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/treelint/internal/logging"
	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
)

// DefaultProjectConfig is the preferred project config file name.
const DefaultProjectConfig = ".treelint.yml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Registry resolves check keys. Nil means check.DefaultRegistry.
	Registry *check.Registry

	// NonInteractive suppresses hints meant for a user at a terminal.
	NonInteractive bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config

	getenv      func(string) string
	interactive func() bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string

	// Hints contains suggestions for an interactive user.
	Hints []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (TREELINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.treelint.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/treelint/config.yaml)
//  6. System config (/etc/treelint/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	registry := opts.Registry
	if registry == nil {
		registry = check.DefaultRegistry
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	layers := []*config.Config{config.NewConfig()}

	sources := []struct {
		name    string
		path    string
		skipped bool
	}{
		{name: "system", path: paths.System, skipped: opts.IgnoreSystemConfig},
		{name: "user", path: paths.User, skipped: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, skipped: opts.IgnoreProjectConfig},
		{name: "explicit", path: paths.Explicit},
	}

	for _, src := range sources {
		if src.skipped || src.path == "" {
			continue
		}
		fileCfg, err := LoadFile(src.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", src.name, err)
		}
		if validation := ValidateWithFile(fileCfg, registry, src.path); !validation.Valid() {
			return nil, &validation.Errors[0]
		}
		layers = append(layers, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, src.path)
		logger.Debug("loaded config", logging.FieldPath, src.path, logging.FieldConfig, src.name)
	}

	cfg := MergeAll(layers...)

	if !opts.IgnoreEnv {
		applyEnv := LoadFromEnv
		if opts.getenv != nil {
			applyEnv = func(cfg *config.Config) error { return loadFromEnv(cfg, opts.getenv) }
		}
		if err := applyEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = MergeAll(cfg, opts.CLIConfig)
	}

	normalizeCheckKeys(cfg, registry, result)

	validation := Validate(cfg, registry)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	if paths.Project == "" && paths.Explicit == "" && !opts.NonInteractive {
		interactive := opts.interactive
		if interactive == nil {
			interactive = isInteractive
		}
		if interactive() {
			result.Hints = append(result.Hints,
				"no "+DefaultProjectConfig+" found; run 'treelint init' to create one")
		}
	}

	result.Config = cfg
	return result, nil
}

// isInteractive reports whether stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// LoadFile reads one configuration file. JSON files parse as YAML.
func LoadFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// normalizeCheckKeys rewrites check names to canonical IDs so that
// "too-many-parameters" and "S107" configure the same check. When both
// forms are present the last one visited wins and a warning is recorded.
func normalizeCheckKeys(cfg *config.Config, registry *check.Registry, result *LoadResult) {
	if len(cfg.Checks) == 0 {
		return
	}

	normalized := make(map[string]config.CheckConfig, len(cfg.Checks))
	seenIDs := make(map[string]string)

	for _, key := range sortedKeys(cfg.Checks) {
		checkCfg := cfg.Checks[key]

		chk, found := registry.Get(key)
		if !found {
			normalized[key] = checkCfg
			continue
		}

		id := chk.ID()
		if originalKey, exists := seenIDs[id]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate check configuration: %q and %q both refer to %s; using %q",
					originalKey, key, id, key))
		}
		seenIDs[id] = key
		normalized[id] = checkCfg
	}

	cfg.Checks = normalized
}
