// Package tree defines the language-agnostic syntax tree shared by every
// front end, together with the text range primitives and the per-file
// metadata provider that maps tokens and comments onto node ranges.
package tree

// Kind identifies which variant of the tree model a node is.
type Kind uint16

// Node kinds. The set is closed; grammar-specific constructs use KindNative.
const (
	KindTopLevel Kind = iota
	KindPackageDeclaration
	KindImport
	KindBlock

	// Declarations.
	KindFunctionDeclaration
	KindClassDeclaration
	KindParameter
	KindVariableDeclaration
	KindModifier

	// Expressions.
	KindIdentifier
	KindIntegerLiteral
	KindStringLiteral
	KindLiteral
	KindBinaryExpression
	KindUnaryExpression
	KindAssignmentExpression
	KindMemberSelect
	KindFunctionInvocation
	KindParenthesizedExpression
	KindPlaceHolder

	// Statements.
	KindIf
	KindMatch
	KindMatchCase
	KindLoop
	KindJump
	KindReturn
	KindThrow
	KindCatch
	KindExceptionHandling

	// Escape hatch for constructs without a generic mapping.
	KindNative

	kindCount
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [kindCount]string{
	KindTopLevel:                "TopLevel",
	KindPackageDeclaration:      "PackageDeclaration",
	KindImport:                  "Import",
	KindBlock:                   "Block",
	KindFunctionDeclaration:     "FunctionDeclaration",
	KindClassDeclaration:        "ClassDeclaration",
	KindParameter:               "Parameter",
	KindVariableDeclaration:     "VariableDeclaration",
	KindModifier:                "Modifier",
	KindIdentifier:              "Identifier",
	KindIntegerLiteral:          "IntegerLiteral",
	KindStringLiteral:           "StringLiteral",
	KindLiteral:                 "Literal",
	KindBinaryExpression:        "BinaryExpression",
	KindUnaryExpression:         "UnaryExpression",
	KindAssignmentExpression:    "AssignmentExpression",
	KindMemberSelect:            "MemberSelect",
	KindFunctionInvocation:      "FunctionInvocation",
	KindParenthesizedExpression: "ParenthesizedExpression",
	KindPlaceHolder:             "PlaceHolder",
	KindIf:                      "If",
	KindMatch:                   "Match",
	KindMatchCase:               "MatchCase",
	KindLoop:                    "Loop",
	KindJump:                    "Jump",
	KindReturn:                  "Return",
	KindThrow:                   "Throw",
	KindCatch:                   "Catch",
	KindExceptionHandling:       "ExceptionHandling",
	KindNative:                  "Native",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(unknown)"
}

// Kinds returns every node kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := range kindCount {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Node is a syntax tree node.
//
// A node owns its children and never references its parent. Children returns
// the complete, order-preserving list of immediate substructure and never
// contains nil entries.
type Node interface {
	Kind() Kind
	MetaData() *TreeMetaData
	Range() TextRange
	Children() []Node

	sealed()
}

// base carries the metadata shared by every node.
type base struct {
	meta *TreeMetaData
}

func (b *base) MetaData() *TreeMetaData {
	return b.meta
}

func (b *base) Range() TextRange {
	return b.meta.Range()
}

func (b *base) sealed() {}

// Same reports whether a and b are the same node instance.
// It never compares structure; see package equivalence for that.
func Same(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// appendNonNil appends the given nodes, skipping nil ones.
func appendNonNil(children []Node, nodes ...Node) []Node {
	for _, n := range nodes {
		if !isNil(n) {
			children = append(children, n)
		}
	}
	return children
}

// IsNil reports whether n is nil or wraps a nil pointer of a node type.
func IsNil(n Node) bool {
	return isNil(n)
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Identifier:
		return v == nil
	case *Block:
		return v == nil
	case *MatchCase:
		return v == nil
	case *Catch:
		return v == nil
	case *Native:
		return v == nil
	}
	return false
}

// nodesOf converts a typed slice to a node slice.
func nodesOf[T Node](items []T) []Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, item)
	}
	return nodes
}
