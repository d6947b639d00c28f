// Package golang is the Go front end. It scans tokens with go/scanner,
// parses with go/parser and maps the go/ast tree onto the generic tree.
package golang

import (
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"

	"github.com/yaklabco/treelint/pkg/frontend"
	"github.com/yaklabco/treelint/pkg/tree"
)

// Language is the language key of this front end.
const Language = "go"

// Producer parses Go source files. It holds no state and is safe for
// concurrent use.
type Producer struct{}

// New creates a Go producer.
func New() *Producer {
	return &Producer{}
}

// Language returns "go".
func (*Producer) Language() string {
	return Language
}

// Extensions returns the Go file extensions.
func (*Producer) Extensions() []string {
	return []string{".go"}
}

// Parse converts a complete Go file into a tree.
func (*Producer) Parse(ctx context.Context, filename string, content []byte) (*tree.TopLevel, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	lx := lex(filename, content)
	rng, err := frontend.TopLevelRange(lx.tokens, lx.comments)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, content, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, toParseError(err)
	}

	return newMapper(fset, lx).mapFile(file, rng), nil
}

// toParseError converts a go/parser failure, keeping the first position.
func toParseError(err error) error {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		first := list[0]
		pos := tree.NewTextPointer(first.Pos.Line, first.Pos.Column-1)
		return frontend.NewParseError(first.Msg, &pos, err)
	}
	return frontend.NewParseError(err.Error(), nil, err)
}
