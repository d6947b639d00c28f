// Package javascript is the JavaScript front end. It parses with the
// tree-sitter JavaScript grammar and maps the concrete syntax tree onto the
// generic tree.
package javascript

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/yaklabco/treelint/pkg/frontend"
	"github.com/yaklabco/treelint/pkg/tree"
)

// Language is the language key of this front end.
const Language = "javascript"

// ErrTerminated is returned by Parse after Terminate.
var ErrTerminated = errors.New("javascript parser terminated")

// Producer parses JavaScript files.
//
// A tree-sitter parser is not safe for concurrent use, so the producer owns
// one parser guarded by a mutex. Call Terminate once all files are parsed.
type Producer struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// New creates a JavaScript producer.
func New() *Producer {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	return &Producer{parser: parser}
}

// Language returns "javascript".
func (*Producer) Language() string {
	return Language
}

// Extensions returns the JavaScript file extensions.
func (*Producer) Extensions() []string {
	return []string{".js", ".mjs", ".cjs", ".jsx"}
}

// Parse converts a JavaScript file into a tree.
func (p *Producer) Parse(ctx context.Context, _ string, content []byte) (*tree.TopLevel, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.parser == nil {
		return nil, ErrTerminated
	}

	syntaxTree, err := p.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter: %w", err)
	}
	defer syntaxTree.Close()

	root := syntaxTree.RootNode()

	lx := lex(root, content)
	rng, err := frontend.TopLevelRange(lx.tokens, lx.comments)
	if err != nil {
		return nil, err
	}

	if root.HasError() {
		return nil, syntaxError(root)
	}

	return newMapper(content, lx).mapProgram(root, rng), nil
}

// Terminate releases the tree-sitter parser. Later calls to Parse fail
// with ErrTerminated.
func (p *Producer) Terminate() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.parser != nil {
		p.parser.Close()
		p.parser = nil
	}
	return nil
}

// syntaxError reports the first ERROR or MISSING node in pre-order.
func syntaxError(root *sitter.Node) error {
	bad := firstError(root)
	if bad == nil {
		return frontend.NewParseError("syntax error", nil, nil)
	}

	pos := pointer(bad.StartPoint())
	message := "unexpected syntax"
	if bad.IsMissing() {
		message = fmt.Sprintf("missing %q", bad.Type())
	}
	return frontend.NewParseError(message, &pos, nil)
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}

func pointer(p sitter.Point) tree.TextPointer {
	return tree.NewTextPointer(int(p.Row)+1, int(p.Column))
}

func rangeOf(n *sitter.Node) tree.TextRange {
	return tree.TextRange{Start: pointer(n.StartPoint()), End: pointer(n.EndPoint())}
}
