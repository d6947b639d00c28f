package tree

// BinaryExpression is "left operator right".
type BinaryExpression struct {
	base
	Operator      BinaryOperator
	OperatorToken Token
	Left          Node
	Right         Node
}

// NewBinaryExpression creates a BinaryExpression.
func NewBinaryExpression(meta *TreeMetaData, op BinaryOperator, opToken Token, left, right Node) *BinaryExpression {
	return &BinaryExpression{base: base{meta: meta}, Operator: op, OperatorToken: opToken, Left: left, Right: right}
}

func (*BinaryExpression) Kind() Kind { return KindBinaryExpression }

func (b *BinaryExpression) Children() []Node {
	return appendNonNil(nil, b.Left, b.Right)
}

// UnaryExpression applies an operator to one operand.
type UnaryExpression struct {
	base
	Operator UnaryOperator
	Operand  Node
}

// NewUnaryExpression creates a UnaryExpression.
func NewUnaryExpression(meta *TreeMetaData, op UnaryOperator, operand Node) *UnaryExpression {
	return &UnaryExpression{base: base{meta: meta}, Operator: op, Operand: operand}
}

func (*UnaryExpression) Kind() Kind { return KindUnaryExpression }

func (u *UnaryExpression) Children() []Node {
	return appendNonNil(nil, u.Operand)
}

// AssignmentExpression is "left operator right" for assignments.
type AssignmentExpression struct {
	base
	Operator AssignmentOperator
	Left     Node
	Right    Node
}

// NewAssignmentExpression creates an AssignmentExpression.
func NewAssignmentExpression(meta *TreeMetaData, op AssignmentOperator, left, right Node) *AssignmentExpression {
	return &AssignmentExpression{base: base{meta: meta}, Operator: op, Left: left, Right: right}
}

func (*AssignmentExpression) Kind() Kind { return KindAssignmentExpression }

func (a *AssignmentExpression) Children() []Node {
	return appendNonNil(nil, a.Left, a.Right)
}

// MemberSelect is "expression.identifier".
type MemberSelect struct {
	base
	Expression Node
	Identifier *Identifier
}

// NewMemberSelect creates a MemberSelect.
func NewMemberSelect(meta *TreeMetaData, expression Node, identifier *Identifier) *MemberSelect {
	return &MemberSelect{base: base{meta: meta}, Expression: expression, Identifier: identifier}
}

func (*MemberSelect) Kind() Kind { return KindMemberSelect }

func (m *MemberSelect) Children() []Node {
	children := appendNonNil(nil, m.Expression)
	if m.Identifier != nil {
		children = append(children, m.Identifier)
	}
	return children
}

// FunctionInvocation is a call of Callee with Arguments.
type FunctionInvocation struct {
	base
	Callee    Node
	Arguments []Node
}

// NewFunctionInvocation creates a FunctionInvocation.
func NewFunctionInvocation(meta *TreeMetaData, callee Node, arguments []Node) *FunctionInvocation {
	return &FunctionInvocation{base: base{meta: meta}, Callee: callee, Arguments: arguments}
}

func (*FunctionInvocation) Kind() Kind { return KindFunctionInvocation }

func (f *FunctionInvocation) Children() []Node {
	children := appendNonNil(nil, f.Callee)
	return appendNonNil(children, f.Arguments...)
}

// ParenthesizedExpression is an expression wrapped in parentheses.
type ParenthesizedExpression struct {
	base
	Expression Node
	LeftParen  Token
	RightParen Token
}

// NewParenthesizedExpression creates a ParenthesizedExpression.
func NewParenthesizedExpression(meta *TreeMetaData, expression Node, left, right Token) *ParenthesizedExpression {
	return &ParenthesizedExpression{base: base{meta: meta}, Expression: expression, LeftParen: left, RightParen: right}
}

func (*ParenthesizedExpression) Kind() Kind { return KindParenthesizedExpression }

func (p *ParenthesizedExpression) Children() []Node {
	return appendNonNil(nil, p.Expression)
}

// SkipParentheses returns the innermost expression of nested parentheses.
func SkipParentheses(n Node) Node {
	for {
		p, ok := n.(*ParenthesizedExpression)
		if !ok {
			return n
		}
		n = p.Expression
	}
}
