package tree

import (
	"math/big"
	"strings"
)

// IntegerBase is the radix of an integer literal.
type IntegerBase int

// Integer bases.
const (
	BaseDecimal     IntegerBase = 10
	BaseHexadecimal IntegerBase = 16
	BaseOctal       IntegerBase = 8
	BaseBinary      IntegerBase = 2
)

func (b IntegerBase) String() string {
	switch b {
	case BaseDecimal:
		return "DECIMAL"
	case BaseHexadecimal:
		return "HEXADECIMAL"
	case BaseOctal:
		return "OCTAL"
	case BaseBinary:
		return "BINARY"
	default:
		return "UNKNOWN"
	}
}

// Radix returns the numeric radix.
func (b IntegerBase) Radix() int {
	return int(b)
}

// LiteralNode is implemented by every literal kind.
type LiteralNode interface {
	Node
	Value() string
}

// Identifier is a name.
type Identifier struct {
	base
	Name string
}

// NewIdentifier creates an Identifier.
func NewIdentifier(meta *TreeMetaData, name string) *Identifier {
	return &Identifier{base: base{meta: meta}, Name: name}
}

func (*Identifier) Kind() Kind { return KindIdentifier }

func (*Identifier) Children() []Node { return nil }

// Literal is a literal without a more specific kind, such as a boolean or a float.
type Literal struct {
	base
	value string
}

// NewLiteral creates a Literal from its raw text.
func NewLiteral(meta *TreeMetaData, value string) *Literal {
	return &Literal{base: base{meta: meta}, value: value}
}

func (*Literal) Kind() Kind { return KindLiteral }

func (*Literal) Children() []Node { return nil }

// Value returns the raw text.
func (l *Literal) Value() string { return l.value }

// StringLiteral is a quoted string.
type StringLiteral struct {
	base
	value   string
	content string
}

// NewStringLiteral creates a StringLiteral.
// The content is the value with one delimiter stripped on each side.
func NewStringLiteral(meta *TreeMetaData, value string) *StringLiteral {
	content := value
	if len(value) >= 2 {
		content = value[1 : len(value)-1]
	}
	return &StringLiteral{base: base{meta: meta}, value: value, content: content}
}

func (*StringLiteral) Kind() Kind { return KindStringLiteral }

func (*StringLiteral) Children() []Node { return nil }

// Value returns the raw text including delimiters.
func (s *StringLiteral) Value() string { return s.value }

// Content returns the text between the delimiters.
func (s *StringLiteral) Content() string { return s.content }

// IntegerLiteral is an integer with a resolved base.
type IntegerLiteral struct {
	base
	value       string
	integerBase IntegerBase
	numericPart string
}

// NewIntegerLiteral creates an IntegerLiteral from its raw text.
func NewIntegerLiteral(meta *TreeMetaData, value string) *IntegerLiteral {
	integerBase, numericPart := ParseIntegerLiteral(value)
	return &IntegerLiteral{
		base:        base{meta: meta},
		value:       value,
		integerBase: integerBase,
		numericPart: numericPart,
	}
}

func (*IntegerLiteral) Kind() Kind { return KindIntegerLiteral }

func (*IntegerLiteral) Children() []Node { return nil }

// Value returns the raw text.
func (i *IntegerLiteral) Value() string { return i.value }

// Base returns the resolved radix.
func (i *IntegerLiteral) Base() IntegerBase { return i.integerBase }

// NumericPart returns the digits without the base prefix.
func (i *IntegerLiteral) NumericPart() string { return i.numericPart }

// IntegerValue parses the numeric part with the resolved radix.
// It returns false when the digits are not valid for the radix.
func (i *IntegerLiteral) IntegerValue() (*big.Int, bool) {
	return new(big.Int).SetString(i.numericPart, i.integerBase.Radix())
}

// ParseIntegerLiteral resolves the base and numeric part of an integer literal.
//
// An explicit two-character prefix (0x, 0b, 0d, 0o, any case) always wins.
// Otherwise a value other than "0" with a leading zero is octal and loses that
// zero. Anything else is decimal.
func ParseIntegerLiteral(value string) (IntegerBase, string) {
	if len(value) >= 2 && value[0] == '0' {
		switch strings.ToLower(value[1:2]) {
		case "x":
			return BaseHexadecimal, value[2:]
		case "b":
			return BaseBinary, value[2:]
		case "d":
			return BaseDecimal, value[2:]
		case "o":
			return BaseOctal, value[2:]
		}
	}
	if value != "0" && strings.HasPrefix(value, "0") {
		return BaseOctal, value[1:]
	}
	return BaseDecimal, value
}

// PlaceHolder is a discarded binding such as "_".
type PlaceHolder struct {
	base
	Token Token
}

// NewPlaceHolder creates a PlaceHolder.
func NewPlaceHolder(meta *TreeMetaData, tok Token) *PlaceHolder {
	return &PlaceHolder{base: base{meta: meta}, Token: tok}
}

func (*PlaceHolder) Kind() Kind { return KindPlaceHolder }

func (*PlaceHolder) Children() []Node { return nil }

// Name returns the placeholder text.
func (p *PlaceHolder) Name() string { return p.Token.Text }
