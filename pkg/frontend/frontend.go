// Package frontend defines the contract between language front ends and the
// analysis core. A front end turns source bytes into a *tree.TopLevel whose
// metadata provider indexes every token and comment of the file.
package frontend

import (
	"context"

	"github.com/yaklabco/treelint/pkg/tree"
)

// Producer parses one language into the generic tree.
//
// Implementations must be:
//   - deterministic for a given (filename, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, content is never mutated).
type Producer interface {
	// Language returns the language key, such as "go".
	Language() string

	// Extensions returns the file extensions handled, with the leading dot.
	Extensions() []string

	// Parse converts content into a tree.
	//
	// On a syntax error it returns a *ParseError. A file without any token or
	// comment fails with ErrNoASTNode. No partial tree is ever returned.
	Parse(ctx context.Context, filename string, content []byte) (*tree.TopLevel, error)
}

// Terminator is implemented by producers holding native resources.
type Terminator interface {
	Terminate() error
}

// TopLevelRange returns the range spanning the first to the last token or
// comment. It fails with ErrNoASTNode when there are neither.
func TopLevelRange(tokens []tree.Token, comments []tree.Comment) (tree.TextRange, error) {
	ranges := tree.TokenRanges(tokens)
	for _, c := range comments {
		ranges = append(ranges, c.Range)
	}
	rng, err := tree.Merge(ranges...)
	if err != nil {
		return tree.TextRange{}, ErrNoASTNode
	}
	return rng, nil
}
