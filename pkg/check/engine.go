package check

import (
	"context"
	"fmt"

	"github.com/yaklabco/treelint/internal/logging"
	"github.com/yaklabco/treelint/pkg/tree"
)

// FileResult contains the issues found in a single file.
type FileResult struct {
	// File is the analyzed file.
	File InputFile

	// Issues lists the issues grouped by check, in engine order, and then
	// in report order.
	Issues []Issue
}

// HasIssues returns true if any issues were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Issues) > 0
}

// IssueCount returns the total number of issues.
func (fr *FileResult) IssueCount() int {
	return len(fr.Issues)
}

// Engine runs a fixed set of checks over syntax trees.
// An Engine is safe for concurrent use; each Analyze call initializes the
// checks against fresh per-file contexts.
type Engine struct {
	checks []ResolvedCheck
}

// NewEngine creates an Engine running the given checks with their default
// severities.
func NewEngine(checks ...Check) *Engine {
	resolved := make([]ResolvedCheck, 0, len(checks))
	for _, chk := range checks {
		resolved = append(resolved, ResolvedCheck{Check: chk, Severity: chk.DefaultSeverity()})
	}
	return &Engine{checks: resolved}
}

// NewEngineFromResolved creates an Engine from configuration-resolved checks.
func NewEngineFromResolved(resolved []ResolvedCheck) *Engine {
	return &Engine{checks: append([]ResolvedCheck(nil), resolved...)}
}

// Checks returns the checks run by the engine, in order.
func (e *Engine) Checks() []Check {
	checks := make([]Check, len(e.checks))
	for i, rc := range e.checks {
		checks[i] = rc.Check
	}
	return checks
}

// Analyze runs every check over root and collects the reported issues.
//
// A failing callback aborts the file; the returned error wraps
// ErrCheckFailed and names the check.
func (e *Engine) Analyze(ctx context.Context, file InputFile, root tree.Node) (*FileResult, error) {
	logger := logging.FromContext(ctx)

	tc := NewTreeContext()
	visitor := NewVisitor[*TreeContext]()
	contexts := make([]*Context, 0, len(e.checks))

	for _, rc := range e.checks {
		checkCtx := newContext(tc, rc.Check, file, rc.Severity)
		contexts = append(contexts, checkCtx)

		init := &initContext{visitor: visitor, ctx: checkCtx}
		if err := rc.Check.Initialize(init); err != nil {
			return nil, fmt.Errorf("initialize check %s: %w: %w", rc.Check.ID(), ErrCheckFailed, err)
		}
	}

	if err := visitor.Scan(tc, root); err != nil {
		return nil, err
	}

	result := &FileResult{File: file}
	for _, checkCtx := range contexts {
		if len(checkCtx.issues) > 0 {
			logger.Debug("check reported issues",
				logging.FieldCheck, checkCtx.check.ID(),
				logging.FieldIssues, len(checkCtx.issues))
		}
		result.Issues = append(result.Issues, checkCtx.issues...)
	}

	logger.Debug("checks complete",
		logging.FieldChecks, len(e.checks),
		logging.FieldIssues, len(result.Issues))

	return result, nil
}

// initContext binds the callbacks of one check to its reporting context.
type initContext struct {
	visitor *Visitor[*TreeContext]
	ctx     *Context
}

func (i *initContext) Register(kind tree.Kind, fn func(ctx *Context, n tree.Node) error) {
	checkCtx := i.ctx
	i.visitor.Register(kind, func(_ *TreeContext, n tree.Node) error {
		if err := fn(checkCtx, n); err != nil {
			return fmt.Errorf("check %s: %w: %w", checkCtx.check.ID(), ErrCheckFailed, err)
		}
		return nil
	})
}
