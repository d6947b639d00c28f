package tree

// Block is an ordered statement list.
type Block struct {
	base
	Statements []Node
}

// NewBlock creates a Block.
func NewBlock(meta *TreeMetaData, statements []Node) *Block {
	return &Block{base: base{meta: meta}, Statements: statements}
}

func (*Block) Kind() Kind { return KindBlock }

func (b *Block) Children() []Node {
	return appendNonNil(nil, b.Statements...)
}

// If is a conditional with an optional else branch.
type If struct {
	base
	Condition   Node
	Then        Node
	Else        Node
	IfKeyword   Token
	ElseKeyword *Token
}

// NewIf creates an If. elseBranch and elseKeyword may be nil.
func NewIf(meta *TreeMetaData, condition, then, elseBranch Node, ifKeyword Token, elseKeyword *Token) *If {
	return &If{
		base:        base{meta: meta},
		Condition:   condition,
		Then:        then,
		Else:        elseBranch,
		IfKeyword:   ifKeyword,
		ElseKeyword: elseKeyword,
	}
}

func (*If) Kind() Kind { return KindIf }

func (i *If) Children() []Node {
	return appendNonNil(nil, i.Condition, i.Then, i.Else)
}

// Match is a multi-way branch such as switch or when.
type Match struct {
	base
	Expression Node
	Cases      []*MatchCase
	Keyword    Token
}

// NewMatch creates a Match. expression may be nil.
func NewMatch(meta *TreeMetaData, expression Node, cases []*MatchCase, keyword Token) *Match {
	return &Match{base: base{meta: meta}, Expression: expression, Cases: cases, Keyword: keyword}
}

func (*Match) Kind() Kind { return KindMatch }

func (m *Match) Children() []Node {
	children := appendNonNil(nil, m.Expression)
	return appendNonNil(children, nodesOf(m.Cases)...)
}

// MatchCase is one branch of a Match. A nil Expression is the default branch.
type MatchCase struct {
	base
	Expression Node
	Body       Node
}

// NewMatchCase creates a MatchCase.
func NewMatchCase(meta *TreeMetaData, expression, body Node) *MatchCase {
	return &MatchCase{base: base{meta: meta}, Expression: expression, Body: body}
}

func (*MatchCase) Kind() Kind { return KindMatchCase }

func (m *MatchCase) Children() []Node {
	return appendNonNil(nil, m.Expression, m.Body)
}

// RangeToHighlight returns the range of the tokens before the body.
func (m *MatchCase) RangeToHighlight() TextRange {
	if isNil(m.Body) {
		return m.Range()
	}
	return rangeBefore(m.meta, m.Body.Range())
}

// Loop is a for, while or do-while statement.
type Loop struct {
	base
	LoopKind  LoopKind
	Condition Node
	Body      Node
	Keyword   Token
}

// NewLoop creates a Loop. condition may be nil.
func NewLoop(meta *TreeMetaData, kind LoopKind, condition, body Node, keyword Token) *Loop {
	return &Loop{base: base{meta: meta}, LoopKind: kind, Condition: condition, Body: body, Keyword: keyword}
}

func (*Loop) Kind() Kind { return KindLoop }

func (l *Loop) Children() []Node {
	return appendNonNil(nil, l.Condition, l.Body)
}

// Jump is a break or continue with an optional label.
type Jump struct {
	base
	JumpKind JumpKind
	Label    *Identifier
	Keyword  Token
}

// NewJump creates a Jump. label may be nil.
func NewJump(meta *TreeMetaData, kind JumpKind, label *Identifier, keyword Token) *Jump {
	return &Jump{base: base{meta: meta}, JumpKind: kind, Label: label, Keyword: keyword}
}

func (*Jump) Kind() Kind { return KindJump }

func (j *Jump) Children() []Node {
	if j.Label == nil {
		return nil
	}
	return []Node{j.Label}
}

// Return is a return statement with an optional value.
type Return struct {
	base
	Body    Node
	Keyword Token
}

// NewReturn creates a Return. body may be nil.
func NewReturn(meta *TreeMetaData, body Node, keyword Token) *Return {
	return &Return{base: base{meta: meta}, Body: body, Keyword: keyword}
}

func (*Return) Kind() Kind { return KindReturn }

func (r *Return) Children() []Node {
	return appendNonNil(nil, r.Body)
}

// Throw raises an exception or panics.
type Throw struct {
	base
	Body    Node
	Keyword Token
}

// NewThrow creates a Throw. body may be nil.
func NewThrow(meta *TreeMetaData, body Node, keyword Token) *Throw {
	return &Throw{base: base{meta: meta}, Body: body, Keyword: keyword}
}

func (*Throw) Kind() Kind { return KindThrow }

func (t *Throw) Children() []Node {
	return appendNonNil(nil, t.Body)
}

// Catch is one handler of an ExceptionHandling.
type Catch struct {
	base
	CatchParameter Node
	CatchBlock     Node
	Keyword        Token
}

// NewCatch creates a Catch. parameter may be nil.
func NewCatch(meta *TreeMetaData, parameter, block Node, keyword Token) *Catch {
	return &Catch{base: base{meta: meta}, CatchParameter: parameter, CatchBlock: block, Keyword: keyword}
}

func (*Catch) Kind() Kind { return KindCatch }

func (c *Catch) Children() []Node {
	return appendNonNil(nil, c.CatchParameter, c.CatchBlock)
}

// ExceptionHandling is try / catch / finally.
type ExceptionHandling struct {
	base
	TryBlock       Node
	CatchBlocks    []*Catch
	FinallyBlock   Node
	TryKeyword     Token
	FinallyKeyword *Token
}

// NewExceptionHandling creates an ExceptionHandling. finally may be nil.
func NewExceptionHandling(
	meta *TreeMetaData,
	tryBlock Node,
	tryKeyword Token,
	catches []*Catch,
	finallyKeyword *Token,
	finally Node,
) *ExceptionHandling {
	return &ExceptionHandling{
		base:           base{meta: meta},
		TryBlock:       tryBlock,
		CatchBlocks:    catches,
		FinallyBlock:   finally,
		TryKeyword:     tryKeyword,
		FinallyKeyword: finallyKeyword,
	}
}

func (*ExceptionHandling) Kind() Kind { return KindExceptionHandling }

func (e *ExceptionHandling) Children() []Node {
	children := appendNonNil(nil, e.TryBlock)
	children = appendNonNil(children, nodesOf(e.CatchBlocks)...)
	return appendNonNil(children, e.FinallyBlock)
}

// rangeBefore merges the tokens of meta that start before limit.
// It falls back to limit when there are none.
func rangeBefore(meta *TreeMetaData, limit TextRange) TextRange {
	var ranges []TextRange
	for _, tok := range meta.Tokens() {
		if tok.Range.Start.Before(limit.Start) {
			ranges = append(ranges, tok.Range)
		}
	}
	merged, err := Merge(ranges...)
	if err != nil {
		return limit
	}
	return merged
}
