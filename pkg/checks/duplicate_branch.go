package checks

import (
	"fmt"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/equivalence"
	"github.com/yaklabco/treelint/pkg/tree"
)

// DuplicateBranchCheck reports branches of a conditional structure whose
// body repeats an earlier branch. Single-line branches are ignored, as are
// structures whose branches are all identical.
type DuplicateBranchCheck struct {
	check.BaseCheck
}

// NewDuplicateBranchCheck creates a new duplicate-branch check.
func NewDuplicateBranchCheck() *DuplicateBranchCheck {
	return &DuplicateBranchCheck{
		BaseCheck: check.NewBaseCheck(
			"S1871",
			"duplicate-branch",
			"Branches should not have the same implementation",
			[]string{"design", "suspicious"},
		),
	}
}

// Initialize registers the if and match callbacks.
func (c *DuplicateBranchCheck) Initialize(init check.InitContext) error {
	init.Register(tree.KindIf, func(ctx *check.Context, n tree.Node) error {
		// An "else if" is part of the structure of its outermost if.
		if parent, ok := ctx.Parent().(*tree.If); ok && tree.Same(parent.Else, n) {
			return nil
		}
		checkBranches(ctx, ifStructure(n.(*tree.If)))
		return nil
	})

	init.Register(tree.KindMatch, func(ctx *check.Context, n tree.Node) error {
		checkBranches(ctx, matchStructure(n.(*tree.Match)))
		return nil
	})
	return nil
}

// conditionalStructure lists the branches of an if chain or a match.
type conditionalStructure struct {
	branches []tree.Node

	// exhaustive is set when a final else or a default case exists.
	exhaustive bool
}

func ifStructure(n *tree.If) conditionalStructure {
	s := conditionalStructure{branches: []tree.Node{n.Then}}
	for elseBranch := n.Else; !tree.IsNil(elseBranch); {
		elseIf, ok := elseBranch.(*tree.If)
		if !ok {
			s.branches = append(s.branches, elseBranch)
			s.exhaustive = true
			break
		}
		s.branches = append(s.branches, elseIf.Then)
		elseBranch = elseIf.Else
	}
	return s
}

func matchStructure(n *tree.Match) conditionalStructure {
	var s conditionalStructure
	for _, matchCase := range n.Cases {
		s.branches = append(s.branches, matchCase.Body)
		if tree.IsNil(matchCase.Expression) {
			s.exhaustive = true
		}
	}
	return s
}

func (s conditionalStructure) allIdentical() bool {
	if len(s.branches) < 2 {
		return false
	}
	for _, branch := range s.branches[1:] {
		if !equivalence.AreEquivalent(s.branches[0], branch) {
			return false
		}
	}
	return true
}

func checkBranches(ctx *check.Context, s conditionalStructure) {
	if s.exhaustive && s.allIdentical() {
		return
	}

	for _, group := range equivalence.FindDuplicatedGroups(s.branches) {
		original := group[0]
		if tree.IsNil(original) {
			continue
		}
		originalRange := original.Range()
		for _, duplicated := range group[1:] {
			if !spansMultipleLines(duplicated) {
				continue
			}
			ctx.ReportIssue(duplicated,
				fmt.Sprintf("This branch's code block is the same as the block for the branch on line %d.",
					originalRange.Start.Line),
				check.SecondaryLocation{Range: originalRange, Message: "Original"})
		}
	}
}

// spansMultipleLines reports whether the statements of a branch, or the
// branch itself when it is not a block, cover more than one line.
func spansMultipleLines(n tree.Node) bool {
	if tree.IsNil(n) {
		return false
	}
	if block, ok := n.(*tree.Block); ok {
		if len(block.Statements) == 0 {
			return false
		}
		first := block.Statements[0].Range()
		last := block.Statements[len(block.Statements)-1].Range()
		return first.Start.Line != last.End.Line
	}
	rng := n.Range()
	return rng.Start.Line < rng.End.Line
}
