package golang

import (
	"bytes"
	"go/scanner"
	"go/token"
	"strings"

	"github.com/yaklabco/treelint/pkg/frontend"
	"github.com/yaklabco/treelint/pkg/tree"
)

// lexer converts the go/scanner token stream into tree tokens and comments.
type lexer struct {
	content  []byte
	tokens   []tree.Token
	comments []tree.Comment
	byStart  map[tree.TextPointer]tree.Token
}

// lex scans content and collects every token and comment.
// Automatic semicolons are dropped; explicit ones are kept.
func lex(filename string, content []byte) *lexer {
	lx := &lexer{content: content, byStart: make(map[tree.TextPointer]tree.Token)}

	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(content))

	var s scanner.Scanner
	// Errors are reported by go/parser, which runs first.
	s.Init(file, content, nil, scanner.ScanComments)

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit != ";" {
			continue
		}

		position := fset.PositionFor(pos, false)
		start := tree.NewTextPointer(position.Line, position.Column-1)
		text := lx.sourceText(position.Offset, tok, lit)
		rng := rangeFor(start, text)

		if tok == token.COMMENT {
			lx.comments = append(lx.comments, frontend.SplitComment(text, rng))
			continue
		}

		t := tree.NewToken(rng, text, tokenType(tok))
		lx.tokens = append(lx.tokens, t)
		lx.byStart[start] = t
	}

	return lx
}

// tokenAt returns the token starting at ptr.
func (lx *lexer) tokenAt(ptr tree.TextPointer) (tree.Token, bool) {
	t, ok := lx.byStart[ptr]
	return t, ok
}

// sourceText returns the exact source text of a token.
// The scanner strips carriage returns from comments and raw strings, so
// those are read back from content.
func (lx *lexer) sourceText(offset int, tok token.Token, lit string) string {
	rest := lx.content[offset:]

	switch {
	case tok == token.COMMENT && bytes.HasPrefix(rest, []byte("/*")):
		if end := bytes.Index(rest[2:], []byte("*/")); end >= 0 {
			return string(rest[:end+4])
		}
	case tok == token.COMMENT:
		end := bytes.IndexByte(rest, '\n')
		if end < 0 {
			end = len(rest)
		}
		return strings.TrimSuffix(string(rest[:end]), "\r")
	case tok == token.STRING && bytes.HasPrefix(rest, []byte("`")):
		if end := bytes.IndexByte(rest[1:], '`'); end >= 0 {
			return string(rest[:end+2])
		}
	}

	if lit != "" {
		return lit
	}
	return tok.String()
}

// rangeFor returns the range of text starting at start.
func rangeFor(start tree.TextPointer, text string) tree.TextRange {
	lines := strings.Count(text, "\n")
	if lines == 0 {
		return tree.TextRange{Start: start, End: tree.NewTextPointer(start.Line, start.LineOffset+len(text))}
	}
	lastLine := text[strings.LastIndexByte(text, '\n')+1:]
	return tree.TextRange{Start: start, End: tree.NewTextPointer(start.Line+lines, len(lastLine))}
}

func tokenType(tok token.Token) tree.TokenType {
	switch {
	case tok.IsKeyword():
		return tree.TokenKeyword
	case tok == token.STRING || tok == token.CHAR:
		return tree.TokenStringLiteral
	default:
		return tree.TokenOther
	}
}
