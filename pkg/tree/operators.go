package tree

// BinaryOperator is the operator of a BinaryExpression.
type BinaryOperator uint8

// Binary operators.
const (
	OpConditionalAnd BinaryOperator = iota
	OpConditionalOr
	OpEqualTo
	OpNotEqualTo
	OpGreaterThan
	OpGreaterThanOrEqualTo
	OpLessThan
	OpLessThanOrEqualTo
	OpPlus
	OpMinus
	OpTimes
	OpDividedBy
	OpRemainder
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXor
	OpBitwiseShiftLeft
	OpBitwiseShiftRight
)

//nolint:gochecknoglobals // Read-only lookup table.
var binaryOperatorNames = map[BinaryOperator]string{
	OpConditionalAnd:       "CONDITIONAL_AND",
	OpConditionalOr:        "CONDITIONAL_OR",
	OpEqualTo:              "EQUAL_TO",
	OpNotEqualTo:           "NOT_EQUAL_TO",
	OpGreaterThan:          "GREATER_THAN",
	OpGreaterThanOrEqualTo: "GREATER_THAN_OR_EQUAL_TO",
	OpLessThan:             "LESS_THAN",
	OpLessThanOrEqualTo:    "LESS_THAN_OR_EQUAL_TO",
	OpPlus:                 "PLUS",
	OpMinus:                "MINUS",
	OpTimes:                "TIMES",
	OpDividedBy:            "DIVIDED_BY",
	OpRemainder:            "REMAINDER",
	OpBitwiseAnd:           "BITWISE_AND",
	OpBitwiseOr:            "BITWISE_OR",
	OpBitwiseXor:           "BITWISE_XOR",
	OpBitwiseShiftLeft:     "BITWISE_SHIFT_LEFT",
	OpBitwiseShiftRight:    "BITWISE_SHIFT_RIGHT",
}

func (o BinaryOperator) String() string {
	if name, ok := binaryOperatorNames[o]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsComparison reports whether the operator compares its operands.
func (o BinaryOperator) IsComparison() bool {
	switch o {
	case OpEqualTo, OpNotEqualTo, OpGreaterThan, OpGreaterThanOrEqualTo, OpLessThan, OpLessThanOrEqualTo:
		return true
	default:
		return false
	}
}

// IsLogical reports whether the operator is a short-circuit boolean operator.
func (o BinaryOperator) IsLogical() bool {
	return o == OpConditionalAnd || o == OpConditionalOr
}

// UnaryOperator is the operator of a UnaryExpression.
type UnaryOperator uint8

// Unary operators.
const (
	OpNegate UnaryOperator = iota
	OpUnaryMinus
	OpUnaryPlus
	OpIncrement
	OpDecrement
	OpBitwiseComplement
)

func (o UnaryOperator) String() string {
	switch o {
	case OpNegate:
		return "NEGATE"
	case OpUnaryMinus:
		return "MINUS"
	case OpUnaryPlus:
		return "PLUS"
	case OpIncrement:
		return "INCREMENT"
	case OpDecrement:
		return "DECREMENT"
	case OpBitwiseComplement:
		return "BITWISE_COMPLEMENT"
	default:
		return "UNKNOWN"
	}
}

// AssignmentOperator is the operator of an AssignmentExpression.
type AssignmentOperator uint8

// Assignment operators.
const (
	OpAssign AssignmentOperator = iota
	OpPlusAssign
	OpMinusAssign
	OpTimesAssign
	OpDividedByAssign
	OpRemainderAssign
)

func (o AssignmentOperator) String() string {
	switch o {
	case OpAssign:
		return "EQUAL"
	case OpPlusAssign:
		return "PLUS_EQUAL"
	case OpMinusAssign:
		return "MINUS_EQUAL"
	case OpTimesAssign:
		return "TIMES_EQUAL"
	case OpDividedByAssign:
		return "DIVIDED_BY_EQUAL"
	case OpRemainderAssign:
		return "REMAINDER_EQUAL"
	default:
		return "UNKNOWN"
	}
}

// LoopKind distinguishes loop statements.
type LoopKind uint8

// Loop kinds.
const (
	LoopFor LoopKind = iota
	LoopWhile
	LoopDoWhile
)

func (k LoopKind) String() string {
	switch k {
	case LoopFor:
		return "FOR"
	case LoopWhile:
		return "WHILE"
	case LoopDoWhile:
		return "DO_WHILE"
	default:
		return "UNKNOWN"
	}
}

// JumpKind distinguishes jump statements.
type JumpKind uint8

// Jump kinds.
const (
	JumpBreak JumpKind = iota
	JumpContinue
)

func (k JumpKind) String() string {
	switch k {
	case JumpBreak:
		return "BREAK"
	case JumpContinue:
		return "CONTINUE"
	default:
		return "UNKNOWN"
	}
}

// ModifierKind is a declaration modifier.
type ModifierKind uint8

// Modifiers.
const (
	ModifierPublic ModifierKind = iota
	ModifierPrivate
	ModifierProtected
	ModifierInternal
	ModifierOverride
)

func (k ModifierKind) String() string {
	switch k {
	case ModifierPublic:
		return "PUBLIC"
	case ModifierPrivate:
		return "PRIVATE"
	case ModifierProtected:
		return "PROTECTED"
	case ModifierInternal:
		return "INTERNAL"
	case ModifierOverride:
		return "OVERRIDE"
	default:
		return "UNKNOWN"
	}
}
