package tree

import (
	"strconv"
	"strings"
)

// indentWidth is the number of spaces per depth level in Print output.
const indentWidth = 2

// Print renders a tree with one line per node, indented by depth.
// Each line holds the kind name followed by the node's leaf value, if any.
func Print(root Node) string {
	var sb strings.Builder

	//nolint:errcheck,revive // callbacks never fail
	WalkWithAncestors(root, func(n Node, ancestors []Node) error {
		sb.WriteString(strings.Repeat(" ", indentWidth*len(ancestors)))
		sb.WriteString(n.Kind().String())
		if label := LeafLabel(n); label != "" {
			sb.WriteByte(' ')
			sb.WriteString(label)
		}
		sb.WriteByte('\n')
		return nil
	}, nil)

	return sb.String()
}

// PrintAll renders several trees, one after the other.
func PrintAll(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(Print(n))
	}
	return sb.String()
}

// LeafLabel returns the leaf value of a node as text, or "" for nodes
// without one.
func LeafLabel(n Node) string {
	switch v := n.(type) {
	case *Identifier:
		return v.Name
	case LiteralNode:
		return v.Value()
	case *PlaceHolder:
		return v.Name()
	case *Native:
		return v.NativeKind.String()
	case *BinaryExpression:
		return v.Operator.String()
	case *UnaryExpression:
		return v.Operator.String()
	case *AssignmentExpression:
		return v.Operator.String()
	case *Loop:
		return v.LoopKind.String()
	case *Jump:
		return v.JumpKind.String()
	case *Modifier:
		return v.Modifier.String()
	case *VariableDeclaration:
		return "val=" + strconv.FormatBool(v.IsVal)
	default:
		return ""
	}
}
