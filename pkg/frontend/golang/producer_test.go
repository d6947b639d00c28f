package golang_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/treelint/pkg/frontend"
	"github.com/yaklabco/treelint/pkg/frontend/golang"
	"github.com/yaklabco/treelint/pkg/tree"
)

func parse(t *testing.T, src string) *tree.TopLevel {
	t.Helper()

	root, err := golang.New().Parse(context.Background(), "test.go", []byte(src))
	require.NoError(t, err)
	require.NotNil(t, root)
	return root
}

// first returns the first node of kind in pre-order.
func first(t *testing.T, root tree.Node, kind tree.Kind) tree.Node {
	t.Helper()

	nodes := tree.FindByKind(root, kind)
	require.NotEmpty(t, nodes, "no %s in tree", kind)
	return nodes[0]
}

func natives(root tree.Node) []tree.NativeKind {
	var kinds []tree.NativeKind
	for _, n := range tree.FindByKind(root, tree.KindNative) {
		kinds = append(kinds, n.(*tree.Native).NativeKind)
	}
	return kinds
}

func TestProducer_Metadata(t *testing.T) {
	t.Parallel()

	p := golang.New()
	assert.Equal(t, "go", p.Language())
	assert.Equal(t, []string{".go"}, p.Extensions())

	var _ frontend.Producer = p
}

func TestParse_Function(t *testing.T) {
	t.Parallel()

	root := parse(t, "package p\n\nfunc f(a, b int) int {\n\treturn a + b\n}\n")

	expected := `TopLevel
  PackageDeclaration
    Identifier p
  FunctionDeclaration
    Native FieldList
      Native Field
        Identifier int
    Identifier f
    Parameter
      Identifier a
    Parameter
      Identifier b
      Identifier int
    Block
      Return
        BinaryExpression PLUS
          Identifier a
          Identifier b
`
	assert.Equal(t, expected, tree.Print(root))

	fn := first(t, root, tree.KindFunctionDeclaration).(*tree.FunctionDeclaration)
	assert.Equal(t, "FuncDecl", fn.MetaData().OriginalTreeKind())
	assert.Equal(t, tree.NewTextRange(3, 0, 5, 1), fn.Range())
	assert.Equal(t, tree.NewTextRange(3, 5, 3, 6), fn.RangeToHighlight())

	params := fn.FormalParameters
	require.Len(t, params, 2)
	assert.Equal(t, tree.NewTextRange(3, 7, 3, 8), params[0].Range())
	assert.Equal(t, tree.NewTextRange(3, 10, 3, 15), params[1].Range())

	binary := first(t, root, tree.KindBinaryExpression).(*tree.BinaryExpression)
	assert.Equal(t, "+", binary.OperatorToken.Text)
	assert.Equal(t, tree.NewTextRange(4, 10, 4, 11), binary.OperatorToken.Range)
}

func TestParse_TokensAndComments(t *testing.T) {
	t.Parallel()

	root := parse(t, "package p\nvar x = \"s\" // c\n")
	provider := root.MetaData().Provider()

	tokens := provider.AllTokens()
	texts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"package", "p", "var", "x", "=", `"s"`}, texts, "automatic semicolons are dropped")

	assert.Equal(t, tree.TokenKeyword, tokens[0].Type)
	assert.Equal(t, tree.TokenOther, tokens[1].Type)
	assert.Equal(t, tree.TokenKeyword, tokens[2].Type)
	assert.Equal(t, tree.TokenStringLiteral, tokens[5].Type)
	assert.Equal(t, tree.NewTextRange(2, 8, 2, 11), tokens[5].Range)

	require.Len(t, root.AllComments, 1)
	comment := root.AllComments[0]
	assert.Equal(t, "// c", comment.Text)
	assert.Equal(t, " c", comment.ContentText)
	assert.Equal(t, tree.NewTextRange(2, 12, 2, 16), comment.Range)
	assert.Equal(t, tree.NewTextRange(2, 14, 2, 16), comment.ContentRange)

	assert.Equal(t, tree.NewTextRange(1, 0, 2, 16), root.Range(), "top level spans tokens and comments")

	decl := first(t, root, tree.KindVariableDeclaration).(*tree.VariableDeclaration)
	assert.Equal(t, "x", decl.Identifier.Name)
	assert.False(t, decl.IsVal)
	assert.Equal(t, `"s"`, decl.Initializer.(*tree.StringLiteral).Value())
	assert.Equal(t, "s", decl.Initializer.(*tree.StringLiteral).Content())
}

func TestParse_MultiLineTokens(t *testing.T) {
	t.Parallel()

	root := parse(t, "package p\n\n/* a\nb */\nvar s = `x\ny`\n")

	require.Len(t, root.AllComments, 1)
	comment := root.AllComments[0]
	assert.Equal(t, tree.NewTextRange(3, 0, 4, 4), comment.Range)
	assert.Equal(t, " a\nb ", comment.ContentText)
	assert.Equal(t, tree.NewTextRange(3, 2, 4, 2), comment.ContentRange)

	str := first(t, root, tree.KindStringLiteral)
	assert.Equal(t, tree.NewTextRange(5, 8, 6, 2), str.Range())
	assert.Equal(t, []int{5, 6}, str.MetaData().LinesOfCode())
}

func TestParse_Statements(t *testing.T) {
	t.Parallel()

	src := `package p

import "fmt"

const c = 0755

type S struct{ a int }

func g(n int, m map[string]int) {
	if x := n; x > 0 {
		fmt.Println(x)
	} else {
		panic("no")
	}
	switch n {
	case 1, 2:
		n++
	default:
	}
	for i := 0; i < n; i++ {
		continue
	}
	for k, v := range m {
		_ = k
		_, _ = k, v
		break
	}
	y := n &^ 1
	n += (y)
	f := func() bool { return true }
	goto end
end:
	f()
}
`
	root := parse(t, src)

	t.Run("import and preamble", func(t *testing.T) {
		t.Parallel()

		imp := first(t, root, tree.KindImport)
		assert.Equal(t, tree.NewTextRange(3, 0, 3, 12), imp.Range())
		require.NotNil(t, root.FirstCPDToken)
		assert.Equal(t, "const", root.FirstCPDToken.Text)
	})

	t.Run("constant", func(t *testing.T) {
		t.Parallel()

		decl := first(t, root, tree.KindVariableDeclaration).(*tree.VariableDeclaration)
		assert.True(t, decl.IsVal)
		lit := decl.Initializer.(*tree.IntegerLiteral)
		assert.Equal(t, tree.BaseOctal, lit.Base())
		assert.Equal(t, "755", lit.NumericPart())
	})

	t.Run("struct", func(t *testing.T) {
		t.Parallel()

		class := first(t, root, tree.KindClassDeclaration).(*tree.ClassDeclaration)
		require.NotNil(t, class.Identifier)
		assert.Equal(t, "S", class.Identifier.Name)
		assert.Same(t, class.Identifier, class.ClassTree.Children()[0])
	})

	t.Run("if with init", func(t *testing.T) {
		t.Parallel()

		ifNode := first(t, root, tree.KindIf).(*tree.If)
		assert.Equal(t, tree.NewNativeKind("IfHeader"), ifNode.Condition.(*tree.Native).NativeKind)
		assert.Equal(t, "if", ifNode.IfKeyword.Text)
		require.NotNil(t, ifNode.ElseKeyword)
		assert.Equal(t, "else", ifNode.ElseKeyword.Text)
		assert.Equal(t, tree.KindBlock, ifNode.Else.Kind())

		call := first(t, ifNode.Then, tree.KindFunctionInvocation).(*tree.FunctionInvocation)
		assert.Equal(t, tree.KindMemberSelect, call.Callee.Kind())

		panicCall := first(t, ifNode.Else, tree.KindFunctionInvocation).(*tree.FunctionInvocation)
		assert.Equal(t, "panic", panicCall.Callee.(*tree.Identifier).Name)
	})

	t.Run("switch", func(t *testing.T) {
		t.Parallel()

		match := first(t, root, tree.KindMatch).(*tree.Match)
		assert.Equal(t, "switch", match.Keyword.Text)
		assert.Equal(t, "n", match.Expression.(*tree.Identifier).Name)
		require.Len(t, match.Cases, 2)

		assert.Equal(t, tree.NewNativeKind("CaseList"), match.Cases[0].Expression.(*tree.Native).NativeKind)
		unary := first(t, match.Cases[0].Body, tree.KindUnaryExpression).(*tree.UnaryExpression)
		assert.Equal(t, tree.OpIncrement, unary.Operator)

		assert.Nil(t, match.Cases[1].Expression)
		assert.Nil(t, match.Cases[1].Body)
	})

	t.Run("loops and jumps", func(t *testing.T) {
		t.Parallel()

		loops := tree.FindByKind(root, tree.KindLoop)
		require.Len(t, loops, 2)
		forLoop := loops[0].(*tree.Loop)
		assert.Equal(t, tree.LoopFor, forLoop.LoopKind)
		assert.Equal(t, tree.NewNativeKind("ForHeader"), forLoop.Condition.(*tree.Native).NativeKind)
		rangeLoop := loops[1].(*tree.Loop)
		assert.Equal(t, tree.NewNativeKind("RangeHeader", ":="), rangeLoop.Condition.(*tree.Native).NativeKind)

		jumps := tree.FindByKind(root, tree.KindJump)
		require.Len(t, jumps, 2)
		assert.Equal(t, tree.JumpContinue, jumps[0].(*tree.Jump).JumpKind)
		assert.Equal(t, tree.JumpBreak, jumps[1].(*tree.Jump).JumpKind)
	})

	t.Run("assignments", func(t *testing.T) {
		t.Parallel()

		assignments := tree.FindByKind(root, tree.KindAssignmentExpression)
		require.Len(t, assignments, 2)

		blank := assignments[0].(*tree.AssignmentExpression)
		assert.Equal(t, tree.OpAssign, blank.Operator)
		assert.Equal(t, tree.KindPlaceHolder, blank.Left.Kind())

		compound := assignments[1].(*tree.AssignmentExpression)
		assert.Equal(t, tree.OpPlusAssign, compound.Operator)
		assert.Equal(t, tree.KindParenthesizedExpression, compound.Right.Kind())
	})

	t.Run("native fallbacks", func(t *testing.T) {
		t.Parallel()

		kinds := natives(root)
		assert.Contains(t, kinds, tree.NewNativeKind("AssignStmt", "="))
		assert.Contains(t, kinds, tree.NewNativeKind("AssignStmt", ":="))
		assert.Contains(t, kinds, tree.NewNativeKind("BinaryExpr", "&^"))
		assert.Contains(t, kinds, tree.NewNativeKind("BranchStmt", "goto"))
		assert.Contains(t, kinds, tree.NewNativeKind("LabeledStmt"))
		assert.Contains(t, kinds, tree.NewNativeKind("GenDecl", "const"))
		assert.Contains(t, kinds, tree.NewNativeKind("MapType"))
	})

	t.Run("function literal", func(t *testing.T) {
		t.Parallel()

		fns := tree.FindByKind(root, tree.KindFunctionDeclaration)
		require.Len(t, fns, 2)
		lit := fns[1].(*tree.FunctionDeclaration)
		assert.Nil(t, lit.Name)
		assert.Equal(t, "FuncLit", lit.MetaData().OriginalTreeKind())
		ret := first(t, lit, tree.KindReturn).(*tree.Return)
		assert.Equal(t, tree.KindLiteral, ret.Body.Kind())
	})
}

func TestParse_LineDirectivesIgnored(t *testing.T) {
	t.Parallel()

	root := parse(t, "package p\n\n//line other.go:100\nvar x = 1\n")

	decl := first(t, root, tree.KindVariableDeclaration)
	assert.Equal(t, 4, decl.Range().Start.Line)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		noNode  bool
		errLine int
	}{
		{name: "empty", src: "", noNode: true},
		{name: "blank", src: "\n \n\t\n", noNode: true},
		{name: "syntax error", src: "package p\nfunc {\n", errLine: 2},
		{name: "comment only", src: "// nothing here", errLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := golang.New().Parse(context.Background(), "bad.go", []byte(tt.src))
			require.Error(t, err)
			assert.Nil(t, root)

			if tt.noNode {
				require.ErrorIs(t, err, frontend.ErrNoASTNode)
				return
			}

			require.ErrorIs(t, err, frontend.ErrParse)
			var parseErr *frontend.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.NotNil(t, parseErr.Position)
			assert.Equal(t, tt.errLine, parseErr.Position.Line)
			assert.Contains(t, err.Error(), "parse error at line")
		})
	}
}

func TestParse_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := golang.New().Parse(ctx, "x.go", []byte("package p\n"))
	require.ErrorIs(t, err, context.Canceled)
}
