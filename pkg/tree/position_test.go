package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/treelint/pkg/tree"
)

func TestTextPointer_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     tree.TextPointer
		expected int
	}{
		{name: "equal", a: tree.NewTextPointer(1, 2), b: tree.NewTextPointer(1, 2), expected: 0},
		{name: "earlier line", a: tree.NewTextPointer(1, 9), b: tree.NewTextPointer(2, 0), expected: -1},
		{name: "later line", a: tree.NewTextPointer(3, 0), b: tree.NewTextPointer(2, 7), expected: 1},
		{name: "same line earlier offset", a: tree.NewTextPointer(2, 1), b: tree.NewTextPointer(2, 4), expected: -1},
		{name: "same line later offset", a: tree.NewTextPointer(2, 5), b: tree.NewTextPointer(2, 4), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.expected, tt.b.Compare(tt.a))
		})
	}
}

func TestTextRange_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TextRange[1, 3, 1, 4]", tree.NewTextRange(1, 3, 1, 4).String())
	assert.Equal(t, "TextPointer[2, 0]", tree.NewTextPointer(2, 0).String())
}

func TestTextRange_IsInside(t *testing.T) {
	t.Parallel()

	outer := tree.NewTextRange(1, 2, 3, 4)

	assert.True(t, outer.IsInside(outer))
	assert.True(t, tree.NewTextRange(1, 2, 1, 5).IsInside(outer))
	assert.True(t, tree.NewTextRange(2, 0, 3, 4).IsInside(outer))
	assert.False(t, tree.NewTextRange(1, 1, 1, 5).IsInside(outer))
	assert.False(t, tree.NewTextRange(3, 0, 3, 5).IsInside(outer))
	assert.False(t, outer.IsInside(tree.NewTextRange(1, 2, 1, 5)))
}

func TestTextRange_Overlaps(t *testing.T) {
	t.Parallel()

	r := tree.NewTextRange(1, 0, 1, 3)

	assert.True(t, r.Overlaps(tree.NewTextRange(1, 2, 1, 5)))
	assert.False(t, r.Overlaps(tree.NewTextRange(1, 3, 1, 5)))
	assert.True(t, r.Overlaps(r))
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("spans min start and max end", func(t *testing.T) {
		t.Parallel()

		merged, err := tree.Merge(
			tree.NewTextRange(2, 4, 2, 6),
			tree.NewTextRange(1, 8, 1, 9),
			tree.NewTextRange(5, 0, 7, 1),
			tree.NewTextRange(3, 1, 3, 2),
		)
		require.NoError(t, err)
		assert.Equal(t, tree.NewTextRange(1, 8, 7, 1), merged)
	})

	t.Run("single range", func(t *testing.T) {
		t.Parallel()

		r := tree.NewTextRange(4, 1, 4, 9)
		merged, err := tree.Merge(r)
		require.NoError(t, err)
		assert.Equal(t, r, merged)
	})

	t.Run("nested range", func(t *testing.T) {
		t.Parallel()

		merged, err := tree.Merge(tree.NewTextRange(1, 0, 9, 0), tree.NewTextRange(2, 0, 3, 0))
		require.NoError(t, err)
		assert.Equal(t, tree.NewTextRange(1, 0, 9, 0), merged)
	})

	t.Run("empty fails", func(t *testing.T) {
		t.Parallel()

		_, err := tree.Merge()
		require.ErrorIs(t, err, tree.ErrEmptyMerge)
		assert.Panics(t, func() { tree.MustMerge() })
	})
}

func TestMerge_Property(t *testing.T) {
	t.Parallel()

	ranges := []tree.TextRange{
		tree.NewTextRange(3, 3, 3, 9),
		tree.NewTextRange(1, 5, 2, 0),
		tree.NewTextRange(1, 4, 1, 6),
		tree.NewTextRange(8, 0, 8, 2),
		tree.NewTextRange(6, 2, 9, 1),
	}

	for n := 1; n <= len(ranges); n++ {
		subset := ranges[:n]
		merged, err := tree.Merge(subset...)
		require.NoError(t, err)

		for _, r := range subset {
			assert.LessOrEqual(t, merged.Start.Compare(r.Start), 0)
			assert.GreaterOrEqual(t, merged.End.Compare(r.End), 0)
			assert.True(t, r.IsInside(merged))
		}
	}
}
