package golang

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/yaklabco/treelint/pkg/tree"
)

//nolint:gochecknoglobals // Read-only lookup table.
var binaryOperators = map[token.Token]tree.BinaryOperator{
	token.LAND: tree.OpConditionalAnd,
	token.LOR:  tree.OpConditionalOr,
	token.EQL:  tree.OpEqualTo,
	token.NEQ:  tree.OpNotEqualTo,
	token.GTR:  tree.OpGreaterThan,
	token.GEQ:  tree.OpGreaterThanOrEqualTo,
	token.LSS:  tree.OpLessThan,
	token.LEQ:  tree.OpLessThanOrEqualTo,
	token.ADD:  tree.OpPlus,
	token.SUB:  tree.OpMinus,
	token.MUL:  tree.OpTimes,
	token.QUO:  tree.OpDividedBy,
	token.REM:  tree.OpRemainder,
	token.AND:  tree.OpBitwiseAnd,
	token.OR:   tree.OpBitwiseOr,
	token.XOR:  tree.OpBitwiseXor,
	token.SHL:  tree.OpBitwiseShiftLeft,
	token.SHR:  tree.OpBitwiseShiftRight,
}

//nolint:gochecknoglobals // Read-only lookup table.
var unaryOperators = map[token.Token]tree.UnaryOperator{
	token.NOT: tree.OpNegate,
	token.SUB: tree.OpUnaryMinus,
	token.ADD: tree.OpUnaryPlus,
	token.XOR: tree.OpBitwiseComplement,
}

//nolint:gochecknoglobals // Read-only lookup table.
var assignmentOperators = map[token.Token]tree.AssignmentOperator{
	token.ASSIGN:     tree.OpAssign,
	token.ADD_ASSIGN: tree.OpPlusAssign,
	token.SUB_ASSIGN: tree.OpMinusAssign,
	token.MUL_ASSIGN: tree.OpTimesAssign,
	token.QUO_ASSIGN: tree.OpDividedByAssign,
	token.REM_ASSIGN: tree.OpRemainderAssign,
}

// mapper converts a go/ast file into the generic tree.
type mapper struct {
	fset     *token.FileSet
	lexer    *lexer
	provider *tree.Provider
}

func newMapper(fset *token.FileSet, lx *lexer) *mapper {
	return &mapper{
		fset:     fset,
		lexer:    lx,
		provider: tree.NewProvider(lx.comments, lx.tokens),
	}
}

// pointer converts a go/token position. Line directives are ignored.
func (m *mapper) pointer(p token.Pos) tree.TextPointer {
	position := m.fset.PositionFor(p, false)
	return tree.NewTextPointer(position.Line, position.Column-1)
}

func (m *mapper) rangeOf(n ast.Node) tree.TextRange {
	return tree.TextRange{Start: m.pointer(n.Pos()), End: m.pointer(n.End())}
}

func (m *mapper) meta(n ast.Node) *tree.TreeMetaData {
	return m.provider.MetaDataWithKind(m.rangeOf(n), typeName(n))
}

func (m *mapper) token(p token.Pos) tree.Token {
	t, _ := m.lexer.tokenAt(m.pointer(p))
	return t
}

// mapFile builds the TopLevel of a parsed file.
func (m *mapper) mapFile(file *ast.File, rng tree.TextRange) *tree.TopLevel {
	pkgRange := tree.TextRange{Start: m.pointer(file.Package), End: m.pointer(file.Name.End())}
	declarations := []tree.Node{
		tree.NewPackageDeclaration(
			m.provider.MetaDataWithKind(pkgRange, "PackageClause"),
			[]tree.Node{m.identifier(file.Name)},
		),
	}

	preambleEnd := pkgRange.End
	for _, decl := range file.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
			declarations = append(declarations, tree.NewImport(m.meta(gen), m.mapSpecs(gen.Specs)))
			preambleEnd = m.pointer(gen.End())
			continue
		}
		declarations = append(declarations, m.mapNode(decl))
	}

	var firstCPDToken *tree.Token
	for _, t := range m.provider.AllTokens() {
		if !t.Range.Start.Before(preambleEnd) {
			firstCPDToken = &t
			break
		}
	}

	return tree.NewTopLevel(m.provider.MetaDataWithKind(rng, "File"), declarations,
		m.provider.AllComments(), firstCPDToken)
}

// mapNode maps one AST node. It returns nil for nil input and for implicit
// statements that own no token.
//
//nolint:gocyclo,cyclop,funlen // One case per mapped construct.
func (m *mapper) mapNode(n ast.Node) tree.Node {
	switch n := n.(type) {
	case nil:
		return nil
	case *ast.Ident:
		if n == nil {
			return nil
		}
		return m.mapIdent(n)
	case *ast.BasicLit:
		return m.mapBasicLit(n)
	case *ast.BlockStmt:
		return m.block(n)
	case *ast.FuncDecl:
		return m.mapFuncDecl(n)
	case *ast.FuncLit:
		return m.function(n, nil, n.Type, n.Body, nil)
	case *ast.BinaryExpr:
		return m.mapBinaryExpr(n)
	case *ast.UnaryExpr:
		if op, ok := unaryOperators[n.Op]; ok {
			return tree.NewUnaryExpression(m.meta(n), op, m.mapNode(n.X))
		}
		return m.native(n, n.Op.String())
	case *ast.IncDecStmt:
		op := tree.OpIncrement
		if n.Tok == token.DEC {
			op = tree.OpDecrement
		}
		return tree.NewUnaryExpression(m.meta(n), op, m.mapNode(n.X))
	case *ast.AssignStmt:
		return m.mapAssignStmt(n)
	case *ast.IfStmt:
		return m.mapIfStmt(n)
	case *ast.SwitchStmt:
		return m.match(n, n.Switch, m.wrap("SwitchHeader", n.Init, n.Tag), n.Body)
	case *ast.TypeSwitchStmt:
		return m.match(n, n.Switch, m.wrap("TypeSwitchHeader", n.Init, n.Assign), n.Body)
	case *ast.ForStmt:
		condition := m.mapNode(n.Cond)
		if n.Init != nil || n.Post != nil {
			condition = m.wrap("ForHeader", n.Init, n.Cond, n.Post)
		}
		return tree.NewLoop(m.meta(n), tree.LoopFor, condition, m.block(n.Body), m.token(n.For))
	case *ast.RangeStmt:
		return m.mapRangeStmt(n)
	case *ast.BranchStmt:
		return m.mapBranchStmt(n)
	case *ast.ReturnStmt:
		return tree.NewReturn(m.meta(n), m.wrap("ReturnResults", exprNodes(n.Results)...), m.token(n.Return))
	case *ast.CallExpr:
		return tree.NewFunctionInvocation(m.meta(n), m.mapNode(n.Fun), m.mapExprs(n.Args))
	case *ast.SelectorExpr:
		return tree.NewMemberSelect(m.meta(n), m.mapNode(n.X), m.identifier(n.Sel))
	case *ast.ParenExpr:
		return tree.NewParenthesizedExpression(m.meta(n), m.mapNode(n.X), m.token(n.Lparen), m.token(n.Rparen))
	case *ast.GenDecl:
		return m.mapGenDecl(n)
	case *ast.TypeSpec:
		return m.mapTypeSpec(n)
	case *ast.DeclStmt:
		return m.mapNode(n.Decl)
	case *ast.ExprStmt:
		return m.mapNode(n.X)
	case *ast.EmptyStmt:
		if n.Implicit {
			return nil
		}
		return m.native(n)
	case *ast.ChanType:
		return m.native(n, chanDir(n.Dir))
	default:
		return m.native(n)
	}
}

func (m *mapper) mapIdent(id *ast.Ident) tree.Node {
	switch id.Name {
	case "_":
		return tree.NewPlaceHolder(m.meta(id), m.token(id.Pos()))
	case "true", "false", "nil":
		return tree.NewLiteral(m.meta(id), id.Name)
	default:
		return m.identifier(id)
	}
}

func (m *mapper) identifier(id *ast.Ident) *tree.Identifier {
	if id == nil {
		return nil
	}
	return tree.NewIdentifier(m.meta(id), id.Name)
}

func (m *mapper) mapBasicLit(lit *ast.BasicLit) tree.Node {
	switch lit.Kind {
	case token.INT:
		return tree.NewIntegerLiteral(m.meta(lit), lit.Value)
	case token.STRING:
		value := lit.Value
		if t, ok := m.lexer.tokenAt(m.pointer(lit.ValuePos)); ok {
			value = t.Text
		}
		return tree.NewStringLiteral(m.meta(lit), value)
	default:
		return tree.NewLiteral(m.meta(lit), lit.Value)
	}
}

func (m *mapper) block(b *ast.BlockStmt) *tree.Block {
	if b == nil {
		return nil
	}
	return tree.NewBlock(m.meta(b), m.mapStmts(b.List))
}

func (m *mapper) mapFuncDecl(decl *ast.FuncDecl) tree.Node {
	var nativeChildren []tree.Node
	if decl.Recv != nil {
		nativeChildren = append(nativeChildren, m.mapNode(decl.Recv))
	}
	if decl.Type.TypeParams != nil {
		nativeChildren = append(nativeChildren, m.mapNode(decl.Type.TypeParams))
	}
	return m.function(decl, decl.Name, decl.Type, decl.Body, nativeChildren)
}

// function builds a FunctionDeclaration for declarations and literals.
func (m *mapper) function(
	n ast.Node,
	name *ast.Ident,
	typ *ast.FuncType,
	body *ast.BlockStmt,
	nativeChildren []tree.Node,
) *tree.FunctionDeclaration {
	var returnType tree.Node
	if typ.Results != nil {
		returnType = m.mapNode(typ.Results)
	}
	return tree.NewFunctionDeclaration(
		m.meta(n),
		nil,
		returnType,
		m.identifier(name),
		m.parameters(typ.Params),
		m.block(body),
		nativeChildren,
	)
}

// parameters maps a parameter list to one Parameter per name.
// In "a, b int" the type belongs to the last name only, so that sibling
// parameters never share tokens.
func (m *mapper) parameters(list *ast.FieldList) []tree.Node {
	if list == nil {
		return nil
	}

	var params []tree.Node
	for _, field := range list.List {
		if len(field.Names) == 0 {
			params = append(params, tree.NewParameter(m.meta(field), nil, m.mapNode(field.Type), nil, nil))
			continue
		}

		last := len(field.Names) - 1
		for i, name := range field.Names {
			if i < last {
				params = append(params, tree.NewParameter(m.meta(name), m.identifier(name), nil, nil, nil))
				continue
			}
			rng := tree.TextRange{Start: m.pointer(name.Pos()), End: m.pointer(field.Type.End())}
			params = append(params, tree.NewParameter(
				m.provider.MetaDataWithKind(rng, typeName(field)),
				m.identifier(name),
				m.mapNode(field.Type),
				nil,
				nil,
			))
		}
	}
	return params
}

func (m *mapper) mapBinaryExpr(expr *ast.BinaryExpr) tree.Node {
	op, ok := binaryOperators[expr.Op]
	if !ok {
		return m.native(expr, expr.Op.String())
	}
	return tree.NewBinaryExpression(m.meta(expr), op, m.token(expr.OpPos), m.mapNode(expr.X), m.mapNode(expr.Y))
}

func (m *mapper) mapAssignStmt(stmt *ast.AssignStmt) tree.Node {
	op, ok := assignmentOperators[stmt.Tok]
	if !ok || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
		return m.native(stmt, stmt.Tok.String())
	}
	return tree.NewAssignmentExpression(m.meta(stmt), op, m.mapNode(stmt.Lhs[0]), m.mapNode(stmt.Rhs[0]))
}

func (m *mapper) mapIfStmt(stmt *ast.IfStmt) tree.Node {
	condition := m.mapNode(stmt.Cond)
	if stmt.Init != nil {
		condition = m.wrap("IfHeader", stmt.Init, stmt.Cond)
	}

	elseBranch := m.mapNode(stmt.Else)
	var elseKeyword *tree.Token
	if elseBranch != nil {
		if t, ok := m.provider.PreviousToken(elseBranch.Range()); ok {
			elseKeyword = &t
		}
	}

	return tree.NewIf(m.meta(stmt), condition, m.block(stmt.Body), elseBranch, m.token(stmt.If), elseKeyword)
}

func (m *mapper) match(n ast.Node, keyword token.Pos, expression tree.Node, body *ast.BlockStmt) tree.Node {
	cases := make([]*tree.MatchCase, 0, len(body.List))
	for _, stmt := range body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}
		cases = append(cases, tree.NewMatchCase(
			m.meta(clause),
			m.wrap("CaseList", exprNodes(clause.List)...),
			m.statements(clause, clause.Body),
		))
	}
	return tree.NewMatch(m.meta(n), expression, cases, m.token(keyword))
}

func (m *mapper) mapRangeStmt(stmt *ast.RangeStmt) tree.Node {
	start := stmt.Range
	if stmt.Key != nil {
		start = stmt.Key.Pos()
	}
	rng := tree.TextRange{Start: m.pointer(start), End: m.pointer(stmt.X.End())}

	header := tree.NewNative(
		m.provider.MetaDataWithKind(rng, "RangeHeader"),
		tree.NewNativeKind("RangeHeader", stmt.Tok.String()),
		[]tree.Node{m.mapNode(stmt.Key), m.mapNode(stmt.Value), m.mapNode(stmt.X)},
	)
	return tree.NewLoop(m.meta(stmt), tree.LoopFor, header, m.block(stmt.Body), m.token(stmt.For))
}

func (m *mapper) mapBranchStmt(stmt *ast.BranchStmt) tree.Node {
	var kind tree.JumpKind
	switch stmt.Tok {
	case token.BREAK:
		kind = tree.JumpBreak
	case token.CONTINUE:
		kind = tree.JumpContinue
	default:
		return m.native(stmt, stmt.Tok.String())
	}
	return tree.NewJump(m.meta(stmt), kind, m.identifier(stmt.Label), m.token(stmt.TokPos))
}

// mapGenDecl keeps the declaration keyword as the Native payload.
func (m *mapper) mapGenDecl(decl *ast.GenDecl) tree.Node {
	specs := make([]tree.Node, 0, len(decl.Specs))
	for _, spec := range decl.Specs {
		var mapped tree.Node
		if value, ok := spec.(*ast.ValueSpec); ok {
			mapped = m.mapValueSpec(value, decl.Tok == token.CONST)
		} else {
			mapped = m.mapNode(spec)
		}
		if mapped != nil {
			specs = append(specs, mapped)
		}
	}
	return tree.NewNative(m.meta(decl), tree.NewNativeKind(typeName(decl), decl.Tok.String()), specs)
}

func (m *mapper) mapValueSpec(spec *ast.ValueSpec, isConst bool) tree.Node {
	if len(spec.Names) != 1 || len(spec.Values) > 1 {
		return m.native(spec)
	}

	var initializer tree.Node
	if len(spec.Values) == 1 {
		initializer = m.mapNode(spec.Values[0])
	}

	return tree.NewVariableDeclaration(
		m.meta(spec),
		m.identifier(spec.Names[0]),
		m.mapNode(spec.Type),
		initializer,
		isConst,
	)
}

func (m *mapper) mapTypeSpec(spec *ast.TypeSpec) tree.Node {
	switch spec.Type.(type) {
	case *ast.StructType, *ast.InterfaceType:
	default:
		return m.native(spec)
	}

	name := m.identifier(spec.Name)
	children := []tree.Node{name}
	if spec.TypeParams != nil {
		children = append(children, m.mapNode(spec.TypeParams))
	}
	children = append(children, m.mapNode(spec.Type))

	classTree := tree.NewNative(m.meta(spec), tree.NewNativeKind("TypeSpec"), children)
	return tree.NewClassDeclaration(m.meta(spec), name, classTree)
}

// wrap groups optional parts, such as a statement header or a result
// list: none gives nil, one gives the part itself, several give a Native
// spanning them.
func (m *mapper) wrap(discriminator string, parts ...ast.Node) tree.Node {
	children := make([]tree.Node, 0, len(parts))
	for _, part := range parts {
		if child := m.mapNode(part); child != nil {
			children = append(children, child)
		}
	}

	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	}
	rng := tree.TextRange{Start: children[0].Range().Start, End: children[len(children)-1].Range().End}
	return tree.NewNative(m.provider.MetaDataWithKind(rng, discriminator), tree.NewNativeKind(discriminator), children)
}

// statements builds a Block from a bare statement list, such as the body of
// a case clause. Empty lists give nil.
func (m *mapper) statements(owner ast.Node, list []ast.Stmt) tree.Node {
	stmts := m.mapStmts(list)
	if len(stmts) == 0 {
		return nil
	}
	rng := tree.TextRange{Start: stmts[0].Range().Start, End: stmts[len(stmts)-1].Range().End}
	return tree.NewBlock(m.provider.MetaDataWithKind(rng, typeName(owner)+".Body"), stmts)
}

func (m *mapper) mapStmts(list []ast.Stmt) []tree.Node {
	nodes := make([]tree.Node, 0, len(list))
	for _, stmt := range list {
		if n := m.mapNode(stmt); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (m *mapper) mapExprs(list []ast.Expr) []tree.Node {
	nodes := make([]tree.Node, 0, len(list))
	for _, expr := range list {
		if n := m.mapNode(expr); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (m *mapper) mapSpecs(specs []ast.Spec) []tree.Node {
	nodes := make([]tree.Node, 0, len(specs))
	for _, spec := range specs {
		if n := m.mapNode(spec); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// native maps a construct without a generic kind. Its children are the
// direct AST children, comments excluded.
func (m *mapper) native(n ast.Node, payload ...string) tree.Node {
	var children []tree.Node
	ast.Inspect(n, func(child ast.Node) bool {
		if child == nil {
			return false
		}
		if child == n {
			return true
		}
		switch child.(type) {
		case *ast.CommentGroup, *ast.Comment:
			return false
		}
		if mapped := m.mapNode(child); mapped != nil {
			children = append(children, mapped)
		}
		return false
	})
	return tree.NewNative(m.meta(n), tree.NewNativeKind(typeName(n), payload...), children)
}

// typeName returns the Go AST type name, such as "FuncDecl".
func typeName(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

func exprNodes(list []ast.Expr) []ast.Node {
	nodes := make([]ast.Node, len(list))
	for i, expr := range list {
		nodes[i] = expr
	}
	return nodes
}

func chanDir(dir ast.ChanDir) string {
	switch dir {
	case ast.SEND:
		return "send"
	case ast.RECV:
		return "recv"
	default:
		return "both"
	}
}
