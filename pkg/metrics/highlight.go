package metrics

import (
	"slices"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/tree"
)

// HighlightType is the kind of text a highlighted range holds.
type HighlightType string

// Highlight types.
const (
	HighlightComment  HighlightType = "COMMENT"
	HighlightKeyword  HighlightType = "KEYWORD"
	HighlightString   HighlightType = "STRING"
	HighlightConstant HighlightType = "CONSTANT"
)

// Highlighting is one highlighted range.
type Highlighting struct {
	Range tree.TextRange `json:"range"`
	Type  HighlightType  `json:"type"`
}

type highlightContext struct {
	*check.TreeContext
	entries []Highlighting
}

func (ctx *highlightContext) add(rng tree.TextRange, typ HighlightType) {
	ctx.entries = append(ctx.entries, Highlighting{Range: rng, Type: typ})
}

func (ctx *highlightContext) literal(n tree.Node, typ HighlightType) error {
	ctx.add(n.Range(), typ)
	return nil
}

// Highlight returns the highlighting of root sorted by range: comments,
// keyword tokens, string literals and other literals.
func Highlight(root *tree.TopLevel) []Highlighting {
	ctx := &highlightContext{TreeContext: check.NewTreeContext()}

	constant := func(ctx *highlightContext, n tree.Node) error {
		return ctx.literal(n, HighlightConstant)
	}

	visitor := check.NewVisitor[*highlightContext]().
		Register(tree.KindTopLevel, func(ctx *highlightContext, n tree.Node) error {
			top := n.(*tree.TopLevel)
			for _, c := range top.AllComments {
				ctx.add(c.Range, HighlightComment)
			}
			for _, tok := range top.MetaData().Tokens() {
				if tok.IsKeyword() {
					ctx.add(tok.Range, HighlightKeyword)
				}
			}
			return nil
		}).
		Register(tree.KindStringLiteral, func(ctx *highlightContext, n tree.Node) error {
			return ctx.literal(n, HighlightString)
		}).
		Register(tree.KindIntegerLiteral, constant).
		Register(tree.KindLiteral, constant)

	//nolint:errcheck,revive // callbacks never fail
	visitor.Scan(ctx, root)

	slices.SortStableFunc(ctx.entries, func(a, b Highlighting) int {
		if c := a.Range.Start.Compare(b.Range.Start); c != 0 {
			return c
		}
		return a.Range.End.Compare(b.Range.End)
	})
	return ctx.entries
}
