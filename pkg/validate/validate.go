// Package validate checks that a front end produced a faithful tree: its
// tokens and comments reconstitute the source, and every token belongs to
// exactly one node.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/yaklabco/treelint/pkg/tree"
)

// ErrInvalidTree matches every *Error.
var ErrInvalidTree = errors.New("invalid tree")

// Error reports the first validation failure.
type Error struct {
	Message string

	// Position is where the failure was detected, or nil.
	Position *tree.TextPointer
}

func (e *Error) Error() string {
	if e.Position == nil {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Position)
}

func (e *Error) Unwrap() error {
	return ErrInvalidTree
}

func newError(position *tree.TextPointer, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Position: position}
}

// TokenPredicate reports whether a node may own a token that none of its
// children claims.
type TokenPredicate func(tok tree.Token) bool

// Options configures which leftover tokens each node kind accepts.
type Options struct {
	predicates map[tree.Kind]TokenPredicate
}

// NewOptions creates options where no kind accepts leftover tokens.
func NewOptions() *Options {
	return &Options{predicates: make(map[tree.Kind]TokenPredicate)}
}

// PatternFor lets the given kinds own leftover tokens whose whole text
// matches pattern.
func (o *Options) PatternFor(pattern string, kinds ...tree.Kind) *Options {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return o.AcceptFor(func(tok tree.Token) bool { return re.MatchString(tok.Text) }, kinds...)
}

// AnyFor lets the given kinds own any leftover token.
func (o *Options) AnyFor(kinds ...tree.Kind) *Options {
	return o.AcceptFor(func(tree.Token) bool { return true }, kinds...)
}

// AcceptFor sets the leftover predicate of the given kinds.
func (o *Options) AcceptFor(predicate TokenPredicate, kinds ...tree.Kind) *Options {
	for _, kind := range kinds {
		o.predicates[kind] = predicate
	}
	return o
}

// DefaultOptions accepts the leftovers produced by the bundled front ends:
// punctuation and keywords, which belong to the construct rather than to a
// child.
func DefaultOptions() *Options {
	return NewOptions().
		AcceptFor(func(tok tree.Token) bool {
			return tok.IsKeyword() || !isWordish(tok.Text)
		}, tree.Kinds()...)
}

func isWordish(text string) bool {
	for _, r := range text {
		if r == '_' || r == '$' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// Tree validates root against the source it was parsed from.
// The first failure is returned as an *Error.
func Tree(root *tree.TopLevel, source string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := matchSource(root, source); err != nil {
		return err
	}
	_, err := opts.accept(root)
	return err
}

// accept checks that the children of n claim disjoint subsets of n's tokens
// and that the remaining tokens are accepted for n's kind. It returns the
// tokens claimed by descendants outside n's range through a documented
// containment exception; an ancestor must own them. A leaf owns all of its
// tokens.
func (o *Options) accept(n tree.Node) ([]tree.Token, error) {
	if len(n.Children()) == 0 {
		return nil, nil
	}

	owned := make(map[tree.Token]struct{})
	for _, tok := range n.MetaData().Tokens() {
		owned[tok] = struct{}{}
	}

	var escaped []tree.Token
	for _, child := range n.Children() {
		childEscaped, err := o.accept(child)
		if err != nil {
			return nil, err
		}

		for _, tok := range child.MetaData().Tokens() {
			if _, ok := owned[tok]; ok {
				delete(owned, tok)
				continue
			}
			if tree.IsContainmentException(n.Kind(), child.Kind()) {
				escaped = append(escaped, tok)
				continue
			}
			return nil, missingToken(tok)
		}

		for _, tok := range childEscaped {
			if _, ok := owned[tok]; ok {
				delete(owned, tok)
				continue
			}
			escaped = append(escaped, tok)
		}
	}

	if predicate, ok := o.predicates[n.Kind()]; ok {
		for tok := range owned {
			if predicate(tok) {
				delete(owned, tok)
			}
		}
	}

	if len(owned) > 0 {
		return nil, unexpectedTokens(n, owned)
	}
	return escaped, nil
}

func missingToken(tok tree.Token) error {
	start := tok.Range.Start
	return newError(&start, "Token '%s' missing from parent tokens or already used by another child.", tok.Text)
}

func unexpectedTokens(n tree.Node, owned map[tree.Token]struct{}) error {
	tokens := make([]tree.Token, 0, len(owned))
	for tok := range owned {
		tokens = append(tokens, tok)
	}
	slices.SortFunc(tokens, func(a, b tree.Token) int {
		return a.Range.Start.Compare(b.Range.Start)
	})

	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}

	start := n.Range().Start
	return newError(&start, "Token(s) '%s' unexpected in %s", strings.Join(texts, "', '"), n.Kind())
}

// matchSource rebuilds the source from tokens and comments and compares it
// line by line. Tabs count as spaces and trailing blanks are ignored.
func matchSource(root *tree.TopLevel, source string) error {
	var code codeBuilder
	comments := root.MetaData().CommentsInside()
	next := 0

	for _, tok := range root.MetaData().Tokens() {
		for next < len(comments) && comments[next].Range.Start.Before(tok.Range.Start) {
			code.addAt(comments[next].Text, comments[next].Range)
			next++
		}
		code.addAt(tok.Text, tok.Range)
	}
	for ; next < len(comments); next++ {
		code.addAt(comments[next].Text, comments[next].Range)
	}

	actual := sourceLines(code.String())
	expected := sourceLines(source)
	for i := 0; i < len(actual) && i < len(expected); i++ {
		if actual[i] != expected[i] {
			pos := tree.NewTextPointer(i+1, 0)
			return newError(&pos, "Unexpected AST difference at line: %d\nActual   : %s\nExpected : %s\n",
				i+1, actual[i], expected[i])
		}
	}
	if len(actual) != len(expected) {
		return newError(nil, "Unexpected AST number of lines actual: %d, expected: %d", len(actual), len(expected))
	}
	return nil
}

type codeBuilder struct {
	sb         strings.Builder
	line       int
	lineOffset int
}

func (c *codeBuilder) addAt(text string, rng tree.TextRange) {
	if c.line == 0 {
		c.line = 1
	}
	for c.line < rng.Start.Line {
		c.sb.WriteByte('\n')
		c.line++
		c.lineOffset = 0
	}
	for c.lineOffset < rng.Start.LineOffset {
		c.sb.WriteByte(' ')
		c.lineOffset++
	}
	c.sb.WriteString(text)
	c.line = rng.End.Line
	c.lineOffset = rng.End.LineOffset
}

func (c *codeBuilder) String() string {
	return c.sb.String()
}

var (
	trailingBlanks = regexp.MustCompile(`[\r\n ]+$`)
	lineBreak      = regexp.MustCompile(` *(\r\n|\n|\r)`)
)

func sourceLines(code string) []string {
	code = strings.ReplaceAll(code, "\t", " ")
	code = trailingBlanks.ReplaceAllString(code, "")
	return lineBreak.Split(code, -1)
}
