// Package equivalence compares syntax trees by structure, ignoring positions,
// tokens and comments.
package equivalence

import (
	"hash/fnv"

	"github.com/yaklabco/treelint/pkg/tree"
)

// AreEquivalent reports whether a and b have the same shape.
//
// Two nodes are equivalent when both are nil, or when they have the same kind,
// the same leaf values and pairwise equivalent children.
func AreEquivalent(a, b tree.Node) bool {
	aNil, bNil := tree.IsNil(a), tree.IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if !sameLeaf(a, b) {
		return false
	}
	return AreEquivalentLists(a.Children(), b.Children())
}

// AreEquivalentLists reports whether a and b have the same length and
// pairwise equivalent elements.
func AreEquivalentLists(a, b []tree.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !AreEquivalent(a[i], b[i]) {
			return false
		}
	}
	return true
}

// sameLeaf compares the values a node carries besides its children.
// Both nodes have the same kind.
func sameLeaf(a, b tree.Node) bool {
	switch x := a.(type) {
	case *tree.Identifier:
		return x.Name == b.(*tree.Identifier).Name
	case tree.LiteralNode:
		return x.Value() == b.(tree.LiteralNode).Value()
	case *tree.PlaceHolder:
		return x.Name() == b.(*tree.PlaceHolder).Name()
	case *tree.Native:
		return x.NativeKind.Equal(b.(*tree.Native).NativeKind)
	case *tree.BinaryExpression:
		return x.Operator == b.(*tree.BinaryExpression).Operator
	case *tree.UnaryExpression:
		return x.Operator == b.(*tree.UnaryExpression).Operator
	case *tree.AssignmentExpression:
		return x.Operator == b.(*tree.AssignmentExpression).Operator
	case *tree.Loop:
		return x.LoopKind == b.(*tree.Loop).LoopKind
	case *tree.Jump:
		return x.JumpKind == b.(*tree.Jump).JumpKind
	case *tree.Modifier:
		return x.Modifier == b.(*tree.Modifier).Modifier
	case *tree.VariableDeclaration:
		return x.IsVal == b.(*tree.VariableDeclaration).IsVal
	default:
		return true
	}
}

// FindDuplicatedGroups groups equivalent nodes and returns the groups with
// more than one member. Groups appear in the order their first member is
// seen, and members keep their input order.
func FindDuplicatedGroups(nodes []tree.Node) [][]tree.Node {
	type group struct {
		members []tree.Node
	}

	var groups []*group
	buckets := make(map[uint64][]*group)

	for _, n := range nodes {
		key := hashOf(n)

		var target *group
		for _, candidate := range buckets[key] {
			if AreEquivalent(candidate.members[0], n) {
				target = candidate
				break
			}
		}
		if target == nil {
			target = &group{}
			buckets[key] = append(buckets[key], target)
			groups = append(groups, target)
		}
		target.members = append(target.members, n)
	}

	var duplicated [][]tree.Node
	for _, g := range groups {
		if len(g.members) > 1 {
			duplicated = append(duplicated, g.members)
		}
	}
	return duplicated
}

// hashOf returns a structural hash consistent with AreEquivalent.
func hashOf(n tree.Node) uint64 {
	if tree.IsNil(n) {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(tree.Print(n)))
	return h.Sum64()
}
