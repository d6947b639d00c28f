package equivalence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/treelint/pkg/equivalence"
	"github.com/yaklabco/treelint/pkg/tree"
)

func literal(value string) tree.Node {
	return tree.NewLiteral(nil, value)
}

func identifier(name string) *tree.Identifier {
	return tree.NewIdentifier(nil, name)
}

func binary(op tree.BinaryOperator, left, right tree.Node) tree.Node {
	return tree.NewBinaryExpression(nil, op, tree.Token{}, left, right)
}

func assignment(op tree.AssignmentOperator, left, right tree.Node) tree.Node {
	return tree.NewAssignmentExpression(nil, op, left, right)
}

func native(kind tree.NativeKind, children ...tree.Node) tree.Node {
	return tree.NewNative(nil, kind, children)
}

func jump(kind tree.JumpKind, label *tree.Identifier) tree.Node {
	return tree.NewJump(nil, kind, label, tree.Token{})
}

func TestAreEquivalent(t *testing.T) {
	t.Parallel()

	literal1 := literal("1")
	identifierA := identifier("a")
	binaryAEquals1 := binary(tree.OpEqualTo, identifierA, literal1)
	assignmentAPlus1 := assignment(tree.OpPlusAssign, identifierA, literal1)
	kind := tree.NewNativeKind("kind")
	native1 := native(kind)

	tests := []struct {
		name     string
		a, b     tree.Node
		expected bool
	}{
		{name: "both nil", a: nil, b: nil, expected: true},
		{name: "nil second", a: literal1, b: nil, expected: false},
		{name: "nil first", a: nil, b: literal1, expected: false},
		{name: "same literal", a: literal1, b: literal1, expected: true},
		{name: "equal literal", a: literal1, b: literal("1"), expected: true},
		{name: "different literal", a: literal1, b: literal("2"), expected: false},
		{name: "same identifier", a: identifierA, b: identifierA, expected: true},
		{name: "equal identifier", a: identifierA, b: identifier("a"), expected: true},
		{name: "different identifier", a: identifierA, b: identifier("b"), expected: false},
		{name: "identifier vs literal", a: identifierA, b: literal1, expected: false},
		{name: "equal binary", a: binaryAEquals1, b: binary(tree.OpEqualTo, identifier("a"), literal("1")), expected: true},
		{name: "binary operand differs", a: binaryAEquals1, b: binary(tree.OpEqualTo, identifierA, literal("2")), expected: false},
		{name: "binary operator differs", a: binaryAEquals1, b: binary(tree.OpGreaterThanOrEqualTo, identifierA, literal1), expected: false},
		{name: "equal assignment", a: assignmentAPlus1, b: assignment(tree.OpPlusAssign, identifierA, literal1), expected: true},
		{name: "assignment operand differs", a: assignmentAPlus1, b: assignment(tree.OpPlusAssign, identifierA, literal("2")), expected: false},
		{name: "assignment operator differs", a: assignmentAPlus1, b: assignment(tree.OpTimesAssign, identifierA, literal1), expected: false},
		{name: "assignment vs binary", a: assignmentAPlus1, b: binaryAEquals1, expected: false},
		{name: "equal native", a: native1, b: native(tree.NewNativeKind("kind")), expected: true},
		{name: "native children differ", a: native1, b: native(kind, literal1), expected: false},
		{name: "native kind differs", a: native1, b: native(tree.NewNativeKind("other")), expected: false},
		{name: "native payload differs", a: native(kind), b: native(tree.NewNativeKind("kind", "x")), expected: false},
		{name: "native vs literal", a: native1, b: literal1, expected: false},
		{name: "integer 42 vs 43", a: tree.NewIntegerLiteral(nil, "42"), b: tree.NewIntegerLiteral(nil, "43"), expected: false},
		{name: "integer text matters", a: tree.NewIntegerLiteral(nil, "0x10"), b: tree.NewIntegerLiteral(nil, "16"), expected: false},
		{name: "break vs continue", a: jump(tree.JumpBreak, identifier("foo")), b: jump(tree.JumpContinue, identifier("foo")), expected: false},
		{name: "break label vs none", a: jump(tree.JumpBreak, identifier("foo")), b: jump(tree.JumpBreak, nil), expected: false},
		{name: "equal break", a: jump(tree.JumpBreak, identifier("foo")), b: jump(tree.JumpBreak, identifier("foo")), expected: true},
		{name: "unary operator differs", a: tree.NewUnaryExpression(nil, tree.OpNegate, identifierA), b: tree.NewUnaryExpression(nil, tree.OpUnaryMinus, identifierA), expected: false},
		{name: "loop kind differs", a: tree.NewLoop(nil, tree.LoopFor, nil, identifierA, tree.Token{}), b: tree.NewLoop(nil, tree.LoopWhile, nil, identifierA, tree.Token{}), expected: false},
		{name: "modifier differs", a: tree.NewModifier(nil, tree.ModifierPublic), b: tree.NewModifier(nil, tree.ModifierPrivate), expected: false},
		{name: "val vs var", a: tree.NewVariableDeclaration(nil, identifierA, nil, nil, true), b: tree.NewVariableDeclaration(nil, identifierA, nil, nil, false), expected: false},
		{name: "equal parameter", a: tree.NewParameter(nil, identifier("x"), nil, nil, nil), b: tree.NewParameter(nil, identifier("x"), nil, nil, nil), expected: true},
		{name: "parameter name differs", a: tree.NewParameter(nil, identifier("x"), nil, nil, nil), b: tree.NewParameter(nil, identifier("y"), nil, nil, nil), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, equivalence.AreEquivalent(tt.a, tt.b))
			assert.Equal(t, tt.expected, equivalence.AreEquivalent(tt.b, tt.a), "symmetric")
		})
	}
}

func TestAreEquivalent_TypedNil(t *testing.T) {
	t.Parallel()

	var nilIdentifier *tree.Identifier
	assert.True(t, equivalence.AreEquivalent(nilIdentifier, nil))
	assert.False(t, equivalence.AreEquivalent(nilIdentifier, identifier("a")))
}

func TestAreEquivalent_IgnoresPosition(t *testing.T) {
	t.Parallel()

	provider := tree.NewProvider(nil, []tree.Token{
		tree.NewToken(tree.NewTextRange(1, 0, 1, 1), "a", tree.TokenOther),
		tree.NewToken(tree.NewTextRange(7, 4, 7, 5), "a", tree.TokenOther),
	})

	first := tree.NewIdentifier(provider.MetaData(tree.NewTextRange(1, 0, 1, 1)), "a")
	second := tree.NewIdentifier(provider.MetaData(tree.NewTextRange(7, 4, 7, 5)), "a")

	assert.True(t, equivalence.AreEquivalent(first, second))
	assert.False(t, tree.Same(first, second))
}

func TestAreEquivalent_Reflexive(t *testing.T) {
	t.Parallel()

	nodes := []tree.Node{
		literal("x"),
		binary(tree.OpPlus, identifier("a"), binary(tree.OpTimes, literal("2"), identifier("b"))),
		native(tree.NewNativeKind("go", "defer"), identifier("f")),
		tree.NewBlock(nil, []tree.Node{jump(tree.JumpBreak, nil), literal("1")}),
	}

	for _, n := range nodes {
		assert.True(t, equivalence.AreEquivalent(n, n), tree.Print(n))
	}
}

func TestAreEquivalentLists(t *testing.T) {
	t.Parallel()

	list1 := []tree.Node{identifier("a"), literal("2")}
	list2 := []tree.Node{identifier("a"), literal("2")}
	list3 := []tree.Node{identifier("a"), literal("3")}
	list4 := []tree.Node{identifier("a")}

	assert.True(t, equivalence.AreEquivalentLists(nil, nil))
	assert.False(t, equivalence.AreEquivalentLists(list1, nil))
	assert.False(t, equivalence.AreEquivalentLists(nil, list1))
	assert.True(t, equivalence.AreEquivalentLists(list1, list1))
	assert.True(t, equivalence.AreEquivalentLists(list1, list2))
	assert.False(t, equivalence.AreEquivalentLists(list1, list3))
	assert.False(t, equivalence.AreEquivalentLists(list1, list4))
}

func TestFindDuplicatedGroups(t *testing.T) {
	t.Parallel()

	a1 := identifier("a")
	a2 := identifier("a")
	a3 := a1
	b1 := identifier("b")

	groups := equivalence.FindDuplicatedGroups([]tree.Node{a1, b1, a2, a3})
	require.Len(t, groups, 1)
	assert.Equal(t, []tree.Node{a1, a2, a3}, groups[0])

	assert.Empty(t, equivalence.FindDuplicatedGroups([]tree.Node{a1, b1, nil}))
}

func TestFindDuplicatedGroups_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	b1 := literal("b")
	a1 := literal("a")
	b2 := literal("b")
	a2 := literal("a")
	c := literal("c")

	groups := equivalence.FindDuplicatedGroups([]tree.Node{b1, a1, c, b2, a2})
	require.Len(t, groups, 2)
	assert.Equal(t, []tree.Node{b1, b2}, groups[0])
	assert.Equal(t, []tree.Node{a1, a2}, groups[1])
}

func TestFindDuplicatedGroups_NilMembers(t *testing.T) {
	t.Parallel()

	groups := equivalence.FindDuplicatedGroups([]tree.Node{nil, literal("x"), nil})
	require.Len(t, groups, 1)
	assert.Equal(t, []tree.Node{nil, nil}, groups[0])
}
