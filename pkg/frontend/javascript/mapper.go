package javascript

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/treelint/pkg/tree"
)

// Strict equality maps onto the generic comparison operators. Loose
// equality and the remaining operators stay Native so that "==" and "==="
// are never equivalent.
//
//nolint:gochecknoglobals // Read-only lookup table.
var binaryOperators = map[string]tree.BinaryOperator{
	"&&":  tree.OpConditionalAnd,
	"||":  tree.OpConditionalOr,
	"===": tree.OpEqualTo,
	"!==": tree.OpNotEqualTo,
	">":   tree.OpGreaterThan,
	">=":  tree.OpGreaterThanOrEqualTo,
	"<":   tree.OpLessThan,
	"<=":  tree.OpLessThanOrEqualTo,
	"+":   tree.OpPlus,
	"-":   tree.OpMinus,
	"*":   tree.OpTimes,
	"/":   tree.OpDividedBy,
	"%":   tree.OpRemainder,
	"&":   tree.OpBitwiseAnd,
	"|":   tree.OpBitwiseOr,
	"^":   tree.OpBitwiseXor,
	"<<":  tree.OpBitwiseShiftLeft,
	">>":  tree.OpBitwiseShiftRight,
}

//nolint:gochecknoglobals // Read-only lookup table.
var unaryOperators = map[string]tree.UnaryOperator{
	"!": tree.OpNegate,
	"-": tree.OpUnaryMinus,
	"+": tree.OpUnaryPlus,
	"~": tree.OpBitwiseComplement,
}

//nolint:gochecknoglobals // Read-only lookup table.
var assignmentOperators = map[string]tree.AssignmentOperator{
	"+=": tree.OpPlusAssign,
	"-=": tree.OpMinusAssign,
	"*=": tree.OpTimesAssign,
	"/=": tree.OpDividedByAssign,
	"%=": tree.OpRemainderAssign,
}

//nolint:gochecknoglobals // Read-only lookup table.
var identifierTypes = map[string]bool{
	"identifier":                            true,
	"property_identifier":                   true,
	"private_property_identifier":           true,
	"shorthand_property_identifier":         true,
	"shorthand_property_identifier_pattern": true,
	"statement_identifier":                  true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var functionTypes = map[string]bool{
	"function_declaration":           true,
	"function":                       true,
	"function_expression":            true,
	"generator_function":             true,
	"generator_function_declaration": true,
	"arrow_function":                 true,
	"method_definition":              true,
}

var integerPattern = regexp.MustCompile(`^(0[xXbBoO][0-9a-fA-F_]+|[0-9][0-9_]*)n?$`)

// mapper converts a tree-sitter syntax tree into the generic tree.
type mapper struct {
	content  []byte
	lexer    *lexer
	provider *tree.Provider
}

func newMapper(content []byte, lx *lexer) *mapper {
	return &mapper{
		content:  content,
		lexer:    lx,
		provider: tree.NewProvider(lx.comments, lx.tokens),
	}
}

func (m *mapper) meta(n *sitter.Node) *tree.TreeMetaData {
	return m.provider.MetaDataWithKind(rangeOf(n), n.Type())
}

func (m *mapper) text(n *sitter.Node) string {
	return n.Content(m.content)
}

// token returns the token starting where n starts.
func (m *mapper) token(n *sitter.Node) tree.Token {
	t, _ := m.lexer.tokenAt(pointer(n.StartPoint()))
	return t
}

func (m *mapper) tokenPtr(n *sitter.Node) *tree.Token {
	if n == nil {
		return nil
	}
	t, ok := m.lexer.tokenAt(pointer(n.StartPoint()))
	if !ok {
		return nil
	}
	return &t
}

// mapProgram builds the TopLevel. Leading imports and a hashbang line form
// the preamble skipped by copy-paste detection.
func (m *mapper) mapProgram(root *sitter.Node, rng tree.TextRange) *tree.TopLevel {
	var (
		declarations []tree.Node
		preambleEnd  *tree.TextPointer
		inPreamble   = true
	)
	for _, child := range namedChildren(root) {
		if inPreamble {
			switch child.Type() {
			case "import_statement", "hash_bang_line":
				end := pointer(child.EndPoint())
				preambleEnd = &end
			default:
				inPreamble = false
			}
		}
		if mapped := m.mapNode(child); mapped != nil {
			declarations = append(declarations, mapped)
		}
	}

	var firstCPDToken *tree.Token
	if preambleEnd != nil {
		for _, t := range m.provider.AllTokens() {
			if !t.Range.Start.Before(*preambleEnd) {
				firstCPDToken = &t
				break
			}
		}
	}

	return tree.NewTopLevel(m.provider.MetaDataWithKind(rng, root.Type()), declarations,
		m.provider.AllComments(), firstCPDToken)
}

// mapNode maps one syntax node. Comments map to nil.
//
//nolint:gocyclo,cyclop,funlen // One case per mapped construct.
func (m *mapper) mapNode(n *sitter.Node) tree.Node {
	if n == nil {
		return nil
	}

	typ := n.Type()
	switch {
	case typ == "comment":
		return nil
	case identifierTypes[typ]:
		return m.identifier(n)
	case functionTypes[typ]:
		return m.function(n, nil)
	}

	switch typ {
	case "number":
		if integerPattern.MatchString(m.text(n)) {
			return tree.NewIntegerLiteral(m.meta(n), m.text(n))
		}
		return tree.NewLiteral(m.meta(n), m.text(n))
	case "string":
		return tree.NewStringLiteral(m.meta(n), m.text(n))
	case "template_string", "regex", "true", "false", "null", "undefined":
		return tree.NewLiteral(m.meta(n), m.text(n))
	case "statement_block":
		return m.block(n)
	case "expression_statement":
		children := m.mapChildren(n)
		if len(children) == 1 {
			return children[0]
		}
		return m.native(n)
	case "binary_expression":
		return m.mapBinary(n)
	case "unary_expression":
		operator := field(n, "operator")
		if op, ok := unaryOperators[operatorText(operator)]; ok {
			return tree.NewUnaryExpression(m.meta(n), op, m.mapNode(field(n, "argument")))
		}
		return m.native(n, operatorText(operator))
	case "update_expression":
		op := tree.OpIncrement
		if operatorText(field(n, "operator")) == "--" {
			op = tree.OpDecrement
		}
		return tree.NewUnaryExpression(m.meta(n), op, m.mapNode(field(n, "argument")))
	case "assignment_expression":
		return tree.NewAssignmentExpression(m.meta(n), tree.OpAssign,
			m.mapNode(field(n, "left")), m.mapNode(field(n, "right")))
	case "augmented_assignment_expression":
		operator := operatorText(field(n, "operator"))
		if op, ok := assignmentOperators[operator]; ok {
			return tree.NewAssignmentExpression(m.meta(n), op,
				m.mapNode(field(n, "left")), m.mapNode(field(n, "right")))
		}
		return m.native(n, operator)
	case "if_statement":
		return m.mapIf(n)
	case "for_statement":
		return m.loop(n, tree.LoopFor, m.header(n, "ForHeader", ""))
	case "for_in_statement":
		return m.loop(n, tree.LoopFor, m.header(n, "ForInHeader", operatorText(field(n, "operator"))))
	case "while_statement":
		return m.loop(n, tree.LoopWhile, m.mapNode(field(n, "condition")))
	case "do_statement":
		return m.loop(n, tree.LoopDoWhile, m.mapNode(field(n, "condition")))
	case "break_statement", "continue_statement":
		kind := tree.JumpBreak
		if typ == "continue_statement" {
			kind = tree.JumpContinue
		}
		return tree.NewJump(m.meta(n), kind, m.identifier(field(n, "label")), m.token(n))
	case "return_statement":
		return tree.NewReturn(m.meta(n), m.single(n), m.token(n))
	case "throw_statement":
		return tree.NewThrow(m.meta(n), m.single(n), m.token(n))
	case "class_declaration", "class":
		return m.class(n)
	case "call_expression":
		return m.mapCall(n)
	case "member_expression":
		return m.mapMember(n)
	case "parenthesized_expression":
		return tree.NewParenthesizedExpression(m.meta(n), m.single(n),
			m.token(n.Child(0)), m.token(n.Child(int(n.ChildCount())-1)))
	case "try_statement":
		return m.mapTry(n)
	case "switch_statement":
		return m.mapSwitch(n)
	case "lexical_declaration", "variable_declaration":
		return m.mapDeclaration(n)
	case "variable_declarator":
		return m.declarator(n, false)
	case "import_statement":
		return tree.NewImport(m.meta(n), m.mapChildren(n))
	case "export_statement":
		return m.mapExport(n)
	default:
		return m.native(n)
	}
}

func (m *mapper) identifier(n *sitter.Node) *tree.Identifier {
	if n == nil || !identifierTypes[n.Type()] {
		return nil
	}
	return tree.NewIdentifier(m.meta(n), m.text(n))
}

func (m *mapper) block(n *sitter.Node) *tree.Block {
	if n == nil {
		return nil
	}
	return tree.NewBlock(m.meta(n), m.mapChildren(n))
}

// function builds a FunctionDeclaration. modifiers come from an enclosing
// export statement.
func (m *mapper) function(n *sitter.Node, modifiers []tree.Node) *tree.FunctionDeclaration {
	var (
		name           *tree.Identifier
		nativeChildren []tree.Node
	)

	if nameNode := field(n, "name"); nameNode != nil {
		name = m.identifier(nameNode)
		if name == nil {
			nativeChildren = append(nativeChildren, m.mapNode(nameNode))
		}
	}

	// async, static, get, set and the generator star.
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil || child.IsNamed() {
			continue
		}
		switch child.Type() {
		case "async", "static", "get", "set", "*":
			nativeChildren = append(nativeChildren, tree.NewNative(m.meta(child),
				tree.NewNativeKind("FunctionModifier", child.Type()), nil))
		}
	}

	var params []tree.Node
	if single := field(n, "parameter"); single != nil {
		params = append(params, tree.NewParameter(m.meta(single), m.identifier(single), nil, nil, nil))
	}
	if list := field(n, "parameters"); list != nil {
		params = append(params, m.parameters(list)...)
	}

	var body *tree.Block
	if bodyNode := field(n, "body"); bodyNode != nil {
		if bodyNode.Type() == "statement_block" {
			body = m.block(bodyNode)
		} else {
			// Expression body of an arrow function.
			body = tree.NewBlock(m.provider.MetaDataWithKind(rangeOf(bodyNode), "arrow_body"),
				[]tree.Node{m.mapNode(bodyNode)})
		}
	}

	return tree.NewFunctionDeclaration(m.meta(n), modifiers, nil, name, params, body, nativeChildren)
}

// parameters maps formal parameters. Plain and defaulted names become
// Parameters; destructuring patterns stay Native.
func (m *mapper) parameters(list *sitter.Node) []tree.Node {
	var params []tree.Node
	for _, child := range namedChildren(list) {
		switch child.Type() {
		case "identifier":
			params = append(params, tree.NewParameter(m.meta(child), m.identifier(child), nil, nil, nil))
		case "assignment_pattern":
			if left := m.identifier(field(child, "left")); left != nil {
				params = append(params, tree.NewParameter(m.meta(child), left, nil,
					m.mapNode(field(child, "right")), nil))
				continue
			}
			params = append(params, m.native(child))
		default:
			if mapped := m.mapNode(child); mapped != nil {
				params = append(params, mapped)
			}
		}
	}
	return params
}

func (m *mapper) class(n *sitter.Node) tree.Node {
	classTree := tree.NewNative(m.meta(n), tree.NewNativeKind(n.Type()), m.mapChildren(n))
	return tree.NewClassDeclaration(m.meta(n), m.identifier(field(n, "name")), classTree)
}

func (m *mapper) mapBinary(n *sitter.Node) tree.Node {
	operator := field(n, "operator")
	op, ok := binaryOperators[operatorText(operator)]
	if !ok {
		return m.native(n, operatorText(operator))
	}
	return tree.NewBinaryExpression(m.meta(n), op, m.token(operator),
		m.mapNode(field(n, "left")), m.mapNode(field(n, "right")))
}

func (m *mapper) mapIf(n *sitter.Node) tree.Node {
	var (
		elseBranch  tree.Node
		elseKeyword *tree.Token
	)
	if alternative := field(n, "alternative"); alternative != nil {
		elseKeyword = m.tokenPtr(alternative)
		if alternative.Type() == "else_clause" {
			elseBranch = m.single(alternative)
		} else {
			elseBranch = m.mapNode(alternative)
		}
	}
	return tree.NewIf(m.meta(n), m.mapNode(field(n, "condition")), m.mapNode(field(n, "consequence")),
		elseBranch, m.token(n), elseKeyword)
}

func (m *mapper) loop(n *sitter.Node, kind tree.LoopKind, condition tree.Node) tree.Node {
	return tree.NewLoop(m.meta(n), kind, condition, m.mapNode(field(n, "body")), m.token(n))
}

// header wraps every named child except the body of a for statement.
func (m *mapper) header(n *sitter.Node, discriminator, payload string) tree.Node {
	body := field(n, "body")
	var parts []tree.Node
	for _, child := range namedChildren(n) {
		if body != nil && sameNode(child, body) {
			continue
		}
		if mapped := m.mapNode(child); mapped != nil {
			parts = append(parts, mapped)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	if len(parts) == 1 && payload == "" {
		return parts[0]
	}
	rng := tree.TextRange{Start: parts[0].Range().Start, End: parts[len(parts)-1].Range().End}
	var kind tree.NativeKind
	if payload == "" {
		kind = tree.NewNativeKind(discriminator)
	} else {
		kind = tree.NewNativeKind(discriminator, payload)
	}
	return tree.NewNative(m.provider.MetaDataWithKind(rng, discriminator), kind, parts)
}

func (m *mapper) mapCall(n *sitter.Node) tree.Node {
	var args []tree.Node
	if arguments := field(n, "arguments"); arguments != nil {
		if arguments.Type() == "arguments" {
			args = m.mapChildren(arguments)
		} else if mapped := m.mapNode(arguments); mapped != nil {
			args = append(args, mapped)
		}
	}
	return tree.NewFunctionInvocation(m.meta(n), m.mapNode(field(n, "function")), args)
}

func (m *mapper) mapMember(n *sitter.Node) tree.Node {
	property := m.identifier(field(n, "property"))
	if property == nil {
		return m.native(n)
	}
	return tree.NewMemberSelect(m.meta(n), m.mapNode(field(n, "object")), property)
}

func (m *mapper) mapTry(n *sitter.Node) tree.Node {
	var catches []*tree.Catch
	if handler := field(n, "handler"); handler != nil {
		catches = append(catches, tree.NewCatch(m.meta(handler),
			m.mapNode(field(handler, "parameter")), m.block(field(handler, "body")), m.token(handler)))
	}

	var (
		finally        tree.Node
		finallyKeyword *tree.Token
	)
	if finalizer := field(n, "finalizer"); finalizer != nil {
		finallyKeyword = m.tokenPtr(finalizer)
		finally = m.block(field(finalizer, "body"))
	}

	return tree.NewExceptionHandling(m.meta(n), m.block(field(n, "body")), m.token(n),
		catches, finallyKeyword, finally)
}

func (m *mapper) mapSwitch(n *sitter.Node) tree.Node {
	var cases []*tree.MatchCase
	if body := field(n, "body"); body != nil {
		for _, clause := range namedChildren(body) {
			switch clause.Type() {
			case "switch_case", "switch_default":
			default:
				continue
			}
			value := field(clause, "value")
			var statements []tree.Node
			for _, child := range namedChildren(clause) {
				if value != nil && sameNode(child, value) {
					continue
				}
				if mapped := m.mapNode(child); mapped != nil {
					statements = append(statements, mapped)
				}
			}
			cases = append(cases, tree.NewMatchCase(m.meta(clause), m.mapNode(value),
				m.statements(clause, statements)))
		}
	}
	return tree.NewMatch(m.meta(n), m.mapNode(field(n, "value")), cases, m.token(n))
}

// statements builds a Block from a bare statement list. Empty lists give nil.
func (m *mapper) statements(owner *sitter.Node, stmts []tree.Node) tree.Node {
	if len(stmts) == 0 {
		return nil
	}
	rng := tree.TextRange{Start: stmts[0].Range().Start, End: stmts[len(stmts)-1].Range().End}
	return tree.NewBlock(m.provider.MetaDataWithKind(rng, owner.Type()+".body"), stmts)
}

// mapDeclaration keeps the declaration keyword as the Native payload.
func (m *mapper) mapDeclaration(n *sitter.Node) tree.Node {
	keyword := ""
	if first := n.Child(0); first != nil {
		keyword = first.Type()
	}

	var declarators []tree.Node
	for _, child := range namedChildren(n) {
		var mapped tree.Node
		if child.Type() == "variable_declarator" {
			mapped = m.declarator(child, keyword == "const")
		} else {
			mapped = m.mapNode(child)
		}
		if mapped != nil {
			declarators = append(declarators, mapped)
		}
	}
	return tree.NewNative(m.meta(n), tree.NewNativeKind(n.Type(), keyword), declarators)
}

func (m *mapper) declarator(n *sitter.Node, isConst bool) tree.Node {
	name := m.identifier(field(n, "name"))
	if name == nil {
		return m.native(n)
	}
	return tree.NewVariableDeclaration(m.meta(n), name, nil, m.mapNode(field(n, "value")), isConst)
}

// mapExport turns "export" into a PUBLIC modifier of an exported function.
// The modifier lies before the function's own range, which is a documented
// containment exception.
func (m *mapper) mapExport(n *sitter.Node) tree.Node {
	declaration := field(n, "declaration")
	if declaration == nil || !functionTypes[declaration.Type()] {
		return m.native(n)
	}

	exportKeyword := n.Child(0)
	modifier := tree.NewModifier(m.meta(exportKeyword), tree.ModifierPublic)
	fn := m.function(declaration, []tree.Node{modifier})

	return tree.NewNative(m.meta(n), tree.NewNativeKind(n.Type()), []tree.Node{fn})
}

// single maps the first named child that is not a comment.
func (m *mapper) single(n *sitter.Node) tree.Node {
	children := namedChildren(n)
	if len(children) == 0 {
		return nil
	}
	return m.mapNode(children[0])
}

func (m *mapper) mapChildren(n *sitter.Node) []tree.Node {
	children := namedChildren(n)
	nodes := make([]tree.Node, 0, len(children))
	for _, child := range children {
		if mapped := m.mapNode(child); mapped != nil {
			nodes = append(nodes, mapped)
		}
	}
	return nodes
}

// native maps a construct without a generic kind. Its children are the
// named syntax children, comments excluded.
func (m *mapper) native(n *sitter.Node, payload ...string) tree.Node {
	var kind tree.NativeKind
	if len(payload) == 0 || payload[0] == "" {
		kind = tree.NewNativeKind(n.Type())
	} else {
		kind = tree.NewNativeKind(n.Type(), payload...)
	}
	return tree.NewNative(m.meta(n), kind, m.mapChildren(n))
}

// namedChildren returns the named children of n, comments excluded.
func namedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := range count {
		child := n.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func field(n *sitter.Node, name string) *sitter.Node {
	if n == nil {
		return nil
	}
	child := n.ChildByFieldName(name)
	if child == nil || child.IsNull() {
		return nil
	}
	return child
}

func operatorText(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Type()
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
