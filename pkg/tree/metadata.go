package tree

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
)

// DefaultOriginalTreeKind is the grammar tag of nodes built without one.
const DefaultOriginalTreeKind = "NA_KIND"

// Sentinel errors for metadata lookups.
var (
	ErrKeywordNotFound = errors.New("cannot find single keyword")
	ErrTokenNotFound   = errors.New("token not found in metadata")
)

// KeywordError reports a range that does not hold exactly one keyword.
type KeywordError struct {
	Range TextRange
	Found int
}

func (e *KeywordError) Error() string {
	return "Cannot find single keyword in " + e.Range.String()
}

func (e *KeywordError) Unwrap() error {
	return ErrKeywordNotFound
}

// TokenNotFoundError reports a token that is not registered in a Provider.
type TokenNotFoundError struct {
	Token Token
}

func (e *TokenNotFoundError) Error() string {
	return fmt.Sprintf("token '%s' not found in metadata, %s", e.Token.Text, e.Token.Range)
}

func (e *TokenNotFoundError) Unwrap() error {
	return ErrTokenNotFound
}

// Provider indexes every token and comment of one file.
//
// Tokens live in an arena sorted by start position. The slot index of a token
// is its TokenID and stays stable for the lifetime of the provider. The only
// mutation allowed after construction is UpdateTokenType, and it must happen
// before the tree is handed to checks.
type Provider struct {
	tokens   []Token
	comments []Comment
}

// NewProvider builds a provider from unsorted comments and tokens.
// The inputs are copied; later changes to the slices do not affect the provider.
func NewProvider(comments []Comment, tokens []Token) *Provider {
	sortedTokens := slices.Clone(tokens)
	slices.SortStableFunc(sortedTokens, func(a, b Token) int {
		return a.Range.Start.Compare(b.Range.Start)
	})

	sortedComments := slices.Clone(comments)
	slices.SortStableFunc(sortedComments, func(a, b Comment) int {
		return a.Range.Start.Compare(b.Range.Start)
	})

	return &Provider{tokens: sortedTokens, comments: sortedComments}
}

// AllTokens returns every token in source order.
func (p *Provider) AllTokens() []Token {
	return slices.Clone(p.tokens)
}

// AllComments returns every comment in source order.
func (p *Provider) AllComments() []Comment {
	return slices.Clone(p.comments)
}

// Token returns the token stored in the given slot.
func (p *Provider) Token(id TokenID) (Token, bool) {
	if id < 0 || int(id) >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[id], true
}

// firstTokenFrom returns the index of the first token starting at or after ptr.
func (p *Provider) firstTokenFrom(ptr TextPointer) int {
	return sort.Search(len(p.tokens), func(i int) bool {
		return p.tokens[i].Range.Start.Compare(ptr) >= 0
	})
}

// firstCommentFrom returns the index of the first comment starting at or after ptr.
func (p *Provider) firstCommentFrom(ptr TextPointer) int {
	return sort.Search(len(p.comments), func(i int) bool {
		return p.comments[i].Range.Start.Compare(ptr) >= 0
	})
}

// tokenSpan returns the half-open index span of the tokens inside rng.
// The scan stops at the first token that is not inside rng.
func (p *Provider) tokenSpan(rng TextRange) (int, int) {
	first := p.firstTokenFrom(rng.Start)
	last := first
	for last < len(p.tokens) && p.tokens[last].Range.IsInside(rng) {
		last++
	}
	return first, last
}

// Tokens returns the tokens inside rng, in source order.
func (p *Provider) Tokens(rng TextRange) []Token {
	first, last := p.tokenSpan(rng)
	return slices.Clone(p.tokens[first:last])
}

// TokenIDs returns the slot identities of the tokens inside rng.
func (p *Provider) TokenIDs(rng TextRange) []TokenID {
	first, last := p.tokenSpan(rng)
	ids := make([]TokenID, 0, last-first)
	for i := first; i < last; i++ {
		ids = append(ids, TokenID(i))
	}
	return ids
}

// CommentsInside returns the comments inside rng, in source order.
func (p *Provider) CommentsInside(rng TextRange) []Comment {
	first := p.firstCommentFrom(rng.Start)
	last := first
	for last < len(p.comments) && p.comments[last].Range.IsInside(rng) {
		last++
	}
	return slices.Clone(p.comments[first:last])
}

// Keyword returns the single keyword token inside rng.
// Zero or several keywords is a mapping defect of the front end and is
// reported as a *KeywordError.
func (p *Provider) Keyword(rng TextRange) (Token, error) {
	var (
		keyword Token
		found   int
	)
	for _, tok := range p.Tokens(rng) {
		if tok.IsKeyword() {
			keyword = tok
			found++
		}
	}
	if found != 1 {
		return Token{}, &KeywordError{Range: rng, Found: found}
	}
	return keyword, nil
}

// UpdateTokenType changes the type of a registered token in place.
// The token is located by value (range, text and type) in the arena.
func (p *Provider) UpdateTokenType(tok Token, typ TokenType) error {
	for i := p.firstTokenFrom(tok.Range.Start); i < len(p.tokens); i++ {
		current := p.tokens[i]
		if current.Range.Start != tok.Range.Start {
			break
		}
		if current == tok {
			p.tokens[i].Type = typ
			return nil
		}
	}
	return &TokenNotFoundError{Token: tok}
}

// UpdateTokenTypeByID changes the type of the token in slot id.
func (p *Provider) UpdateTokenTypeByID(id TokenID, typ TokenType) error {
	if id < 0 || int(id) >= len(p.tokens) {
		return fmt.Errorf("%w: slot %d", ErrTokenNotFound, id)
	}
	p.tokens[id].Type = typ
	return nil
}

// IndexOfFirstToken returns the index of the first token inside rng, or -1.
func (p *Provider) IndexOfFirstToken(rng TextRange) int {
	first, last := p.tokenSpan(rng)
	if first == last {
		return -1
	}
	return first
}

// FirstToken returns the first token inside rng.
func (p *Provider) FirstToken(rng TextRange) (Token, bool) {
	idx := p.IndexOfFirstToken(rng)
	if idx < 0 {
		return Token{}, false
	}
	return p.tokens[idx], true
}

// PreviousToken returns the token just before the first token inside rng.
// It returns false when rng holds no token or starts at the first token.
func (p *Provider) PreviousToken(rng TextRange) (Token, bool) {
	idx := p.IndexOfFirstToken(rng)
	if idx <= 0 {
		return Token{}, false
	}
	return p.tokens[idx-1], true
}

// LinesOfCode returns the sorted set of lines spanned by the tokens inside rng.
func (p *Provider) LinesOfCode(rng TextRange) []int {
	first, last := p.tokenSpan(rng)
	return linesOf(p.tokens[first:last])
}

// MetaData returns the metadata of the node covering rng.
func (p *Provider) MetaData(rng TextRange) *TreeMetaData {
	first, last := p.tokenSpan(rng)
	return &TreeMetaData{
		provider:         p,
		rng:              rng,
		firstToken:       first,
		lastToken:        last,
		comments:         p.CommentsInside(rng),
		originalTreeKind: DefaultOriginalTreeKind,
	}
}

// MetaDataWithKind is like MetaData and records the originating grammar rule.
func (p *Provider) MetaDataWithKind(rng TextRange, originalTreeKind string) *TreeMetaData {
	meta := p.MetaData(rng)
	meta.originalTreeKind = originalTreeKind
	return meta
}

func linesOf(tokens []Token) []int {
	set := make(map[int]struct{})
	for _, tok := range tokens {
		for line := tok.Range.Start.Line; line <= tok.Range.End.Line; line++ {
			set[line] = struct{}{}
		}
	}
	lines := make([]int, 0, len(set))
	for line := range set {
		lines = append(lines, line)
	}
	slices.Sort(lines)
	return lines
}

// TreeMetaData describes the source region of one node.
type TreeMetaData struct {
	provider         *Provider
	rng              TextRange
	firstToken       int
	lastToken        int
	comments         []Comment
	originalTreeKind string

	linesOnce sync.Once
	lines     []int
}

// Range returns the node's range.
func (m *TreeMetaData) Range() TextRange {
	return m.rng
}

// Tokens returns the node's tokens with their current types.
func (m *TreeMetaData) Tokens() []Token {
	if m.provider == nil {
		return nil
	}
	return slices.Clone(m.provider.tokens[m.firstToken:m.lastToken])
}

// TokenIDs returns the arena identities of the node's tokens.
func (m *TreeMetaData) TokenIDs() []TokenID {
	ids := make([]TokenID, 0, m.lastToken-m.firstToken)
	for i := m.firstToken; i < m.lastToken; i++ {
		ids = append(ids, TokenID(i))
	}
	return ids
}

// CommentsInside returns the comments inside the node's range.
func (m *TreeMetaData) CommentsInside() []Comment {
	return slices.Clone(m.comments)
}

// LinesOfCode returns the sorted lines spanned by the node's tokens.
// The set is computed on first use and cached.
func (m *TreeMetaData) LinesOfCode() []int {
	m.linesOnce.Do(func() {
		m.lines = linesOf(m.Tokens())
	})
	return slices.Clone(m.lines)
}

// OriginalTreeKind returns the grammar rule the node was built from.
func (m *TreeMetaData) OriginalTreeKind() string {
	return m.originalTreeKind
}

// Provider returns the provider the metadata was built from.
func (m *TreeMetaData) Provider() *Provider {
	return m.provider
}
