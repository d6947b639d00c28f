// Package metrics computes per-file measures, copy-paste detection tokens
// and syntax highlighting from a generic tree. It never looks at a specific
// grammar: everything is derived from node kinds, tokens and comments.
package metrics

import (
	"slices"
	"strings"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/tree"
)

// NosonarPrefix marks a comment that suppresses issues on its line.
const NosonarPrefix = "NOSONAR"

// FileMetrics holds the measures of one file.
type FileMetrics struct {
	// LinesOfCode lists the lines holding at least one token.
	LinesOfCode []int `json:"linesOfCode"`

	// CommentLines lists the non-blank comment lines, file header excluded.
	CommentLines []int `json:"commentLines"`

	// NosonarLines lists the lines of NOSONAR comments.
	NosonarLines []int `json:"nosonarLines"`

	// ExecutableLines lists the start lines of statements.
	ExecutableLines []int `json:"executableLines"`

	Functions            int `json:"functions"`
	Classes              int `json:"classes"`
	Statements           int `json:"statements"`
	CyclomaticComplexity int `json:"cyclomaticComplexity"`
}

// NCLOC returns the number of lines of code.
func (m *FileMetrics) NCLOC() int {
	return len(m.LinesOfCode)
}

type lineSet map[int]struct{}

func (s lineSet) add(line int) {
	s[line] = struct{}{}
}

func (s lineSet) sorted() []int {
	lines := make([]int, 0, len(s))
	for line := range s {
		lines = append(lines, line)
	}
	slices.Sort(lines)
	return lines
}

// metricsContext carries the accumulators of one Compute call.
type metricsContext struct {
	*check.TreeContext

	commentLines    lineSet
	nosonarLines    lineSet
	executableLines lineSet
	result          FileMetrics
}

// Compute measures root.
func Compute(root *tree.TopLevel) FileMetrics {
	ctx := &metricsContext{
		TreeContext:     check.NewTreeContext(),
		commentLines:    make(lineSet),
		nosonarLines:    make(lineSet),
		executableLines: make(lineSet),
	}

	visitor := check.NewVisitor[*metricsContext]().
		Register(tree.KindTopLevel, func(ctx *metricsContext, n tree.Node) error {
			top := n.(*tree.TopLevel)
			firstTokenLine := top.Range().End.Line
			if len(top.Declarations) > 0 {
				firstTokenLine = top.Declarations[0].Range().Start.Line
			}
			for _, c := range top.AllComments {
				ctx.addComment(c, firstTokenLine)
			}
			for _, decl := range top.Declarations {
				if !isDeclaration(decl) && decl.Kind() != tree.KindNative && decl.Kind() != tree.KindBlock {
					ctx.result.Statements++
					ctx.executableLines.add(decl.Range().Start.Line)
				}
			}
			ctx.result.LinesOfCode = top.MetaData().LinesOfCode()
			return nil
		}).
		Register(tree.KindBlock, func(ctx *metricsContext, n tree.Node) error {
			for _, stmt := range n.(*tree.Block).Statements {
				if !isDeclaration(stmt) {
					ctx.result.Statements++
					ctx.executableLines.add(stmt.Range().Start.Line)
				}
			}
			return nil
		}).
		Register(tree.KindFunctionDeclaration, func(ctx *metricsContext, n tree.Node) error {
			if fn := n.(*tree.FunctionDeclaration); fn.Name != nil && fn.Body != nil {
				ctx.result.Functions++
			}
			return nil
		}).
		Register(tree.KindClassDeclaration, func(ctx *metricsContext, _ tree.Node) error {
			ctx.result.Classes++
			return nil
		})

	//nolint:errcheck,revive // callbacks never fail
	visitor.Scan(ctx, root)

	ctx.result.CommentLines = ctx.commentLines.sorted()
	ctx.result.NosonarLines = ctx.nosonarLines.sorted()
	ctx.result.ExecutableLines = ctx.executableLines.sorted()
	ctx.result.CyclomaticComplexity = len(ComplexityTrees(root))
	return ctx.result
}

func isDeclaration(n tree.Node) bool {
	switch n.Kind() {
	case tree.KindClassDeclaration, tree.KindFunctionDeclaration, tree.KindPackageDeclaration, tree.KindImport:
		return true
	default:
		return false
	}
}

// addComment records the non-blank lines of a comment. Comments ending
// before the first declaration form the file header and are skipped.
func (ctx *metricsContext) addComment(c tree.Comment, firstTokenLine int) {
	if c.Range.End.Line < firstTokenLine {
		return
	}

	lines := ctx.commentLines
	if IsNosonarComment(c) {
		lines = ctx.nosonarLines
	}

	start := c.ContentRange.Start.Line
	if start == c.ContentRange.End.Line {
		if isNotBlank(c.ContentText) {
			lines.add(start)
		}
		return
	}

	for i, line := range splitLines(c.ContentText) {
		if isNotBlank(line) {
			lines.add(start + i)
		}
	}
}

// IsNosonarComment reports whether the comment content starts with NOSONAR,
// ignoring case and surrounding blanks.
func IsNosonarComment(c tree.Comment) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(c.ContentText)), NosonarPrefix)
}

// isNotBlank treats control characters, spaces and the decoration
// characters "*#-=|" as blank.
func isNotBlank(line string) bool {
	for _, r := range line {
		if r > ' ' && !strings.ContainsRune("*#-=|", r) {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// ComplexityTrees returns the nodes that add one to cyclomatic complexity:
// named functions with a body, conditionals, loops, non-default match cases
// and short-circuit operators.
func ComplexityTrees(root tree.Node) []tree.Node {
	var nodes []tree.Node

	add := func(_ *check.TreeContext, n tree.Node) error {
		nodes = append(nodes, n)
		return nil
	}

	visitor := check.NewVisitor[*check.TreeContext]().
		Register(tree.KindFunctionDeclaration, func(ctx *check.TreeContext, n tree.Node) error {
			if fn := n.(*tree.FunctionDeclaration); fn.Name != nil && fn.Body != nil {
				return add(ctx, n)
			}
			return nil
		}).
		Register(tree.KindIf, add).
		Register(tree.KindLoop, add).
		Register(tree.KindMatchCase, func(ctx *check.TreeContext, n tree.Node) error {
			if !tree.IsNil(n.(*tree.MatchCase).Expression) {
				return add(ctx, n)
			}
			return nil
		}).
		Register(tree.KindBinaryExpression, func(ctx *check.TreeContext, n tree.Node) error {
			if n.(*tree.BinaryExpression).Operator.IsLogical() {
				return add(ctx, n)
			}
			return nil
		})

	//nolint:errcheck,revive // callbacks never fail
	visitor.Scan(check.NewTreeContext(), root)
	return nodes
}
