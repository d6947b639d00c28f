package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/treelint/pkg/tree"
)

func rng(startLine, startOffset, endLine, endOffset int) tree.TextRange {
	return tree.NewTextRange(startLine, startOffset, endLine, endOffset)
}

func tok(r tree.TextRange, text string, typ tree.TokenType) tree.Token {
	return tree.NewToken(r, text, typ)
}

func TestProvider_CommentsInside(t *testing.T) {
	t.Parallel()

	comment := tree.NewComment("// comment1", "comment1", rng(2, 5, 2, 12), rng(2, 7, 2, 12))
	provider := tree.NewProvider([]tree.Comment{comment}, nil)

	assert.Len(t, provider.AllComments(), 1)
	assert.Empty(t, provider.MetaData(rng(1, 1, 1, 20)).CommentsInside())
	assert.Equal(t, []tree.Comment{comment}, provider.MetaData(rng(2, 1, 2, 20)).CommentsInside())
	assert.Equal(t, []tree.Comment{comment}, provider.MetaData(rng(2, 5, 2, 20)).CommentsInside())
	assert.Empty(t, provider.MetaData(rng(2, 6, 2, 20)).CommentsInside())
}

func TestProvider_Tokens(t *testing.T) {
	t.Parallel()

	token1 := tok(rng(1, 3, 1, 6), "abc", tree.TokenOther)
	token2 := tok(rng(1, 9, 1, 12), "abc", tree.TokenOther)
	provider := tree.NewProvider(nil, []tree.Token{token2, token1})

	assert.Len(t, provider.AllTokens(), 2)
	assert.Equal(t, []tree.Token{token1, token2}, provider.AllTokens(), "tokens are sorted by start")
	assert.Equal(t, []tree.Token{token1, token2}, provider.MetaData(rng(1, 1, 1, 20)).Tokens())
	assert.Equal(t, []tree.Token{token1}, provider.MetaData(rng(1, 3, 1, 8)).Tokens())
	assert.Equal(t, []tree.Token{token1}, provider.MetaData(rng(1, 3, 1, 6)).Tokens(), "exact range is included")
	assert.Empty(t, provider.MetaData(rng(1, 4, 1, 6)).Tokens(), "one column outside is excluded")
	assert.Empty(t, provider.MetaData(rng(1, 3, 1, 5)).Tokens())
	assert.Empty(t, provider.Tokens(rng(3, 0, 4, 0)))
}

func TestProvider_TokensStopAtFirstMiss(t *testing.T) {
	t.Parallel()

	tokens := []tree.Token{
		tok(rng(1, 0, 1, 1), "a", tree.TokenOther),
		tok(rng(1, 2, 1, 3), "b", tree.TokenOther),
		tok(rng(1, 4, 1, 9), "c", tree.TokenOther),
		tok(rng(1, 10, 1, 11), "d", tree.TokenOther),
	}
	provider := tree.NewProvider(nil, tokens)

	got := provider.Tokens(rng(1, 2, 1, 11))
	assert.Equal(t, tokens[1:], got)

	got = provider.Tokens(rng(1, 2, 1, 5))
	assert.Equal(t, tokens[1:2], got)
}

func TestTreeMetaData_LinesOfCode(t *testing.T) {
	t.Parallel()

	provider := tree.NewProvider(nil, []tree.Token{
		tok(rng(1, 3, 1, 6), "abc", tree.TokenOther),
		tok(rng(1, 9, 1, 12), "def", tree.TokenOther),
		tok(rng(2, 1, 2, 4), "abc", tree.TokenOther),
		tok(rng(4, 1, 6, 2), "ab\ncd\nef", tree.TokenOther),
	})

	meta := provider.MetaData(rng(1, 1, 1, 20))
	assert.Equal(t, []int{1}, meta.LinesOfCode())
	assert.Equal(t, []int{1}, meta.LinesOfCode(), "cached value is stable")
	assert.Equal(t, "TextRange[1, 1, 1, 20]", meta.Range().String())

	assert.Equal(t, []int{1, 2}, provider.MetaData(rng(1, 1, 2, 20)).LinesOfCode())
	assert.Equal(t, []int{1, 2}, provider.MetaData(rng(1, 1, 3, 20)).LinesOfCode())
	assert.Equal(t, []int{1, 2, 4, 5, 6}, provider.MetaData(rng(1, 1, 6, 20)).LinesOfCode())
	assert.Equal(t, []int{1, 2, 4, 5, 6}, provider.LinesOfCode(rng(1, 1, 6, 20)))
}

func TestProvider_Keyword(t *testing.T) {
	t.Parallel()

	token1 := tok(rng(1, 1, 1, 3), "ab", tree.TokenKeyword)
	token2 := tok(rng(1, 4, 1, 6), "cd", tree.TokenKeyword)
	token3 := tok(rng(1, 6, 1, 7), "{", tree.TokenOther)
	token4 := tok(rng(1, 7, 1, 8), "ef", tree.TokenOther)
	provider := tree.NewProvider(nil, []tree.Token{token1, token2, token3, token4})

	keyword, err := provider.Keyword(rng(1, 3, 1, 7))
	require.NoError(t, err)
	assert.Equal(t, token2, keyword)

	keyword, err = provider.Keyword(rng(1, 3, 1, 8))
	require.NoError(t, err)
	assert.Equal(t, token2, keyword)

	_, err = provider.Keyword(rng(1, 3, 1, 4))
	require.ErrorIs(t, err, tree.ErrKeywordNotFound)
	assert.EqualError(t, err, "Cannot find single keyword in TextRange[1, 3, 1, 4]")

	_, err = provider.Keyword(rng(1, 1, 1, 7))
	require.ErrorIs(t, err, tree.ErrKeywordNotFound)
	assert.EqualError(t, err, "Cannot find single keyword in TextRange[1, 1, 1, 7]")

	var keywordErr *tree.KeywordError
	require.ErrorAs(t, err, &keywordErr)
	assert.Equal(t, 2, keywordErr.Found)
}

func TestProvider_KeywordWithOnlyOtherTokens(t *testing.T) {
	t.Parallel()

	provider := tree.NewProvider(nil, []tree.Token{
		tok(rng(1, 0, 1, 2), "ab", tree.TokenOther),
		tok(rng(1, 3, 1, 4), "{", tree.TokenOther),
	})

	_, err := provider.Keyword(rng(1, 0, 1, 4))
	assert.EqualError(t, err, "Cannot find single keyword in TextRange[1, 0, 1, 4]")
}

func TestProvider_IndexOfFirstToken(t *testing.T) {
	t.Parallel()

	provider := tree.NewProvider(nil, []tree.Token{
		tok(rng(1, 1, 1, 3), "ab", tree.TokenKeyword),
		tok(rng(1, 4, 1, 6), "cd", tree.TokenKeyword),
	})

	tests := []struct {
		query    tree.TextRange
		expected int
	}{
		{rng(1, 0, 1, 1), -1},
		{rng(1, 0, 1, 2), -1},
		{rng(1, 0, 1, 3), 0},
		{rng(1, 1, 1, 3), 0},
		{rng(1, 2, 1, 3), -1},
		{rng(1, 2, 1, 6), 1},
		{rng(1, 4, 1, 6), 1},
		{rng(1, 4, 2, 0), 1},
		{rng(1, 4, 1, 5), -1},
		{rng(1, 5, 1, 10), -1},
		{rng(1, 20, 1, 22), -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, provider.IndexOfFirstToken(tt.query), tt.query.String())
	}
}

func TestProvider_FirstAndPreviousToken(t *testing.T) {
	t.Parallel()

	provider := tree.NewProvider(nil, []tree.Token{
		tok(rng(1, 1, 1, 3), "ab", tree.TokenKeyword),
		tok(rng(1, 4, 1, 6), "cd", tree.TokenKeyword),
	})

	_, ok := provider.FirstToken(rng(1, 0, 1, 1))
	assert.False(t, ok)

	first, ok := provider.FirstToken(rng(1, 1, 1, 3))
	require.True(t, ok)
	assert.Equal(t, "ab", first.Text)

	first, ok = provider.FirstToken(rng(1, 2, 1, 20))
	require.True(t, ok)
	assert.Equal(t, "cd", first.Text)

	_, ok = provider.FirstToken(rng(1, 5, 1, 20))
	assert.False(t, ok)

	_, ok = provider.PreviousToken(rng(1, 0, 1, 1))
	assert.False(t, ok)

	_, ok = provider.PreviousToken(rng(1, 1, 1, 3))
	assert.False(t, ok)

	previous, ok := provider.PreviousToken(rng(1, 2, 1, 20))
	require.True(t, ok)
	assert.Equal(t, "ab", previous.Text)

	_, ok = provider.PreviousToken(rng(1, 5, 1, 20))
	assert.False(t, ok)
}

func TestProvider_UpdateTokenType(t *testing.T) {
	t.Parallel()

	token1 := tok(rng(1, 1, 1, 3), "ab", tree.TokenOther)
	token2 := tok(rng(1, 4, 1, 6), "cd", tree.TokenOther)
	provider := tree.NewProvider(nil, []tree.Token{token1, token2})
	meta := provider.MetaData(rng(1, 0, 1, 10))

	require.NoError(t, provider.UpdateTokenType(token1, tree.TokenKeyword))

	allTokens := provider.AllTokens()
	require.Len(t, allTokens, 2)
	assert.Equal(t, "ab", allTokens[0].Text)
	assert.Equal(t, tree.TokenKeyword, allTokens[0].Type)
	assert.Equal(t, "cd", allTokens[1].Text)
	assert.Equal(t, tree.TokenOther, allTokens[1].Type)

	assert.Equal(t, tree.TokenKeyword, meta.Tokens()[0].Type, "metadata reads the updated slot")

	keyword, err := provider.Keyword(rng(1, 0, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, "ab", keyword.Text)
}

func TestProvider_UpdateTokenTypeNotFound(t *testing.T) {
	t.Parallel()

	provider := tree.NewProvider(nil, []tree.Token{tok(rng(1, 1, 1, 3), "ab", tree.TokenOther)})

	err := provider.UpdateTokenType(tok(rng(1, 0, 1, 3), "xyz", tree.TokenOther), tree.TokenKeyword)
	require.ErrorIs(t, err, tree.ErrTokenNotFound)
	assert.EqualError(t, err, "token 'xyz' not found in metadata, TextRange[1, 0, 1, 3]")

	err = provider.UpdateTokenType(tok(rng(1, 20, 1, 23), "xyz", tree.TokenOther), tree.TokenKeyword)
	assert.EqualError(t, err, "token 'xyz' not found in metadata, TextRange[1, 20, 1, 23]")

	err = provider.UpdateTokenType(tok(rng(1, 1, 1, 3), "ab", tree.TokenKeyword), tree.TokenOther)
	require.ErrorIs(t, err, tree.ErrTokenNotFound, "a stale copy with another type is not the registered token")

	require.ErrorIs(t, provider.UpdateTokenTypeByID(5, tree.TokenKeyword), tree.ErrTokenNotFound)
	require.NoError(t, provider.UpdateTokenTypeByID(0, tree.TokenKeyword))
}

func TestTreeMetaData_OriginalTreeKind(t *testing.T) {
	t.Parallel()

	provider := tree.NewProvider(nil, nil)

	assert.Equal(t, tree.DefaultOriginalTreeKind, provider.MetaData(rng(1, 0, 1, 1)).OriginalTreeKind())
	assert.Equal(t, "*ast.FuncDecl", provider.MetaDataWithKind(rng(1, 0, 1, 1), "*ast.FuncDecl").OriginalTreeKind())
}
