package javascript

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/treelint/pkg/frontend"
	"github.com/yaklabco/treelint/pkg/tree"
)

// atomicTypes are node types lexed as one token even though tree-sitter
// gives them inner structure.
//
//nolint:gochecknoglobals // Read-only lookup table.
var atomicTypes = map[string]tree.TokenType{
	"string":          tree.TokenStringLiteral,
	"template_string": tree.TokenStringLiteral,
	"regex":           tree.TokenOther,
}

// lexer collects the tokens and comments of a syntax tree.
type lexer struct {
	tokens   []tree.Token
	comments []tree.Comment
	byStart  map[tree.TextPointer]tree.Token
}

// lex walks the leaves of root. Zero-width leaves, such as inserted
// semicolons and missing nodes, own no text and are skipped.
func lex(root *sitter.Node, content []byte) *lexer {
	lx := &lexer{byStart: make(map[tree.TextPointer]tree.Token)}
	for i := range int(root.ChildCount()) {
		if child := root.Child(i); child != nil {
			lx.collect(child, content)
		}
	}
	return lx
}

func (lx *lexer) collect(n *sitter.Node, content []byte) {
	if n.StartByte() == n.EndByte() {
		return
	}

	if n.Type() == "comment" {
		lx.comments = append(lx.comments, frontend.SplitComment(n.Content(content), rangeOf(n)))
		return
	}

	if typ, ok := atomicTypes[n.Type()]; ok {
		lx.add(n, content, typ)
		return
	}

	if n.ChildCount() == 0 {
		lx.add(n, content, leafType(n))
		return
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil {
			lx.collect(child, content)
		}
	}
}

func (lx *lexer) add(n *sitter.Node, content []byte, typ tree.TokenType) {
	t := tree.NewToken(rangeOf(n), n.Content(content), typ)
	lx.tokens = append(lx.tokens, t)
	lx.byStart[t.Range.Start] = t
}

// tokenAt returns the token starting at ptr.
func (lx *lexer) tokenAt(ptr tree.TextPointer) (tree.Token, bool) {
	t, ok := lx.byStart[ptr]
	return t, ok
}

// leafType classifies a leaf. Anonymous leaves spelled with letters are
// grammar keywords such as "if", "function" or "of".
func leafType(n *sitter.Node) tree.TokenType {
	if n.IsNamed() {
		return tree.TokenOther
	}
	text := n.Type()
	if text == "" {
		return tree.TokenOther
	}
	for _, r := range text {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return tree.TokenOther
		}
	}
	return tree.TokenKeyword
}
