package check

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/treelint/pkg/config"
)

// ResolvedCheck pairs a Check with its resolved configuration.
type ResolvedCheck struct {
	// Check is the configured check.
	Check Check

	// Severity is the resolved severity for issues from this check.
	Severity config.Severity
}

// ResolveChecks determines which checks to run based on registry and config.
// Returns only enabled checks, in ID order, with options applied.
func ResolveChecks(registry *Registry, cfg *config.Config) ([]ResolvedCheck, error) {
	var (
		resolved []ResolvedCheck
		errs     []error
	)

	for _, chk := range registry.Checks() {
		rc, enabled, err := resolveCheck(chk, cfg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if enabled {
			resolved = append(resolved, rc)
		}
	}

	return resolved, errors.Join(errs...)
}

func resolveCheck(chk Check, cfg *config.Config) (ResolvedCheck, bool, error) {
	rc := ResolvedCheck{Check: chk, Severity: chk.DefaultSeverity()}
	enabled := chk.DefaultEnabled()

	if cfg == nil {
		return rc, enabled, nil
	}

	if cfg.SeverityDefault != "" {
		rc.Severity = config.Severity(cfg.SeverityDefault)
	}

	checkCfg, ok := cfg.Checks[chk.ID()]
	if !ok {
		checkCfg, ok = cfg.Checks[chk.Name()]
	}
	if ok {
		if checkCfg.Enabled != nil {
			enabled = *checkCfg.Enabled
		}
		if checkCfg.Severity != nil {
			rc.Severity = config.Severity(*checkCfg.Severity)
		}

		configured, err := ApplyOptions(chk, checkCfg.Options)
		if err != nil {
			return rc, false, fmt.Errorf("configure check %s: %w", chk.ID(), err)
		}
		rc.Check = configured
	}

	// Explicit CLI selection wins over configuration files.
	if slices.Contains(cfg.EnableChecks, chk.ID()) || slices.Contains(cfg.EnableChecks, chk.Name()) {
		enabled = true
	}
	if slices.Contains(cfg.DisableChecks, chk.ID()) || slices.Contains(cfg.DisableChecks, chk.Name()) {
		enabled = false
	}

	return rc, enabled, nil
}
