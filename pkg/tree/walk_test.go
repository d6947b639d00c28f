package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/treelint/pkg/tree"
)

// sampleTree builds "a = b + 1" wrapped in a TopLevel.
func sampleTree() *tree.TopLevel {
	provider := tree.NewProvider(nil, []tree.Token{
		tok(rng(1, 0, 1, 1), "a", tree.TokenOther),
		tok(rng(1, 2, 1, 3), "=", tree.TokenOther),
		tok(rng(1, 4, 1, 5), "b", tree.TokenOther),
		tok(rng(1, 6, 1, 7), "+", tree.TokenOther),
		tok(rng(1, 8, 1, 9), "1", tree.TokenOther),
	})

	left := tree.NewIdentifier(provider.MetaData(rng(1, 0, 1, 1)), "a")
	sum := tree.NewBinaryExpression(provider.MetaData(rng(1, 4, 1, 9)), tree.OpPlus,
		tok(rng(1, 6, 1, 7), "+", tree.TokenOther),
		tree.NewIdentifier(provider.MetaData(rng(1, 4, 1, 5)), "b"),
		tree.NewIntegerLiteral(provider.MetaData(rng(1, 8, 1, 9)), "1"))
	assignment := tree.NewAssignmentExpression(provider.MetaData(rng(1, 0, 1, 9)), tree.OpAssign, left, sum)

	return tree.NewTopLevel(provider.MetaData(rng(1, 0, 1, 9)), []tree.Node{assignment}, nil, nil)
}

func kindsOf(nodes []tree.Node) []tree.Kind {
	kinds := make([]tree.Kind, len(nodes))
	for i, n := range nodes {
		kinds[i] = n.Kind()
	}
	return kinds
}

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	var visited []tree.Node
	err := tree.Walk(sampleTree(), func(n tree.Node) error {
		visited = append(visited, n)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []tree.Kind{
		tree.KindTopLevel,
		tree.KindAssignmentExpression,
		tree.KindIdentifier,
		tree.KindBinaryExpression,
		tree.KindIdentifier,
		tree.KindIntegerLiteral,
	}, kindsOf(visited))
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	count := 0
	err := tree.Walk(sampleTree(), func(n tree.Node) error {
		count++
		if n.Kind() == tree.KindBinaryExpression {
			return errBoom
		}
		return nil
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 4, count)
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	var nilBlock *tree.Block
	require.NoError(t, tree.Walk(nil, func(tree.Node) error { return errors.New("unreachable") }))
	require.NoError(t, tree.Walk(nilBlock, func(tree.Node) error { return errors.New("unreachable") }))
}

func TestWalkWithAncestors(t *testing.T) {
	t.Parallel()

	var events []string
	depths := map[tree.Kind][]int{}

	err := tree.WalkWithAncestors(sampleTree(),
		func(n tree.Node, ancestors []tree.Node) error {
			events = append(events, "enter "+n.Kind().String())
			depths[n.Kind()] = append(depths[n.Kind()], len(ancestors))
			return nil
		},
		func(n tree.Node, _ []tree.Node) error {
			events = append(events, "leave "+n.Kind().String())
			return nil
		})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"enter TopLevel",
		"enter AssignmentExpression",
		"enter Identifier",
		"leave Identifier",
		"enter BinaryExpression",
		"enter Identifier",
		"leave Identifier",
		"enter IntegerLiteral",
		"leave IntegerLiteral",
		"leave BinaryExpression",
		"leave AssignmentExpression",
		"leave TopLevel",
	}, events)
	assert.Equal(t, []int{0}, depths[tree.KindTopLevel])
	assert.Equal(t, []int{2, 3}, depths[tree.KindIdentifier])
	assert.Equal(t, []int{3}, depths[tree.KindIntegerLiteral])
}

func TestWalkWithAncestors_LeaveSeesParentChain(t *testing.T) {
	t.Parallel()

	var parentOfLiteral tree.Node
	err := tree.WalkWithAncestors(sampleTree(), nil, func(n tree.Node, ancestors []tree.Node) error {
		if n.Kind() == tree.KindIntegerLiteral {
			parentOfLiteral = ancestors[len(ancestors)-1]
		}
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, parentOfLiteral)
	assert.Equal(t, tree.KindBinaryExpression, parentOfLiteral.Kind())
}

func TestFindHelpers(t *testing.T) {
	t.Parallel()

	root := sampleTree()

	identifiers := tree.FindByKind(root, tree.KindIdentifier)
	require.Len(t, identifiers, 2)
	assert.Equal(t, "a", identifiers[0].(*tree.Identifier).Name)
	assert.Equal(t, "b", identifiers[1].(*tree.Identifier).Name)

	first := tree.FindFirst(root, func(n tree.Node) bool { return n.Kind() == tree.KindIdentifier })
	assert.Same(t, identifiers[0], first)

	assert.Nil(t, tree.FindFirst(root, func(n tree.Node) bool { return n.Kind() == tree.KindLoop }))

	descendants := tree.Descendants(root)
	assert.Len(t, descendants, 5)
	assert.NotContains(t, descendants, tree.Node(root))
}
