package tree

// TokenType classifies a token.
type TokenType uint8

const (
	// TokenOther is any token that is neither a keyword nor a string literal.
	TokenOther TokenType = iota

	// TokenKeyword is a reserved or contextual keyword.
	TokenKeyword

	// TokenStringLiteral is a string or character literal.
	TokenStringLiteral
)

func (t TokenType) String() string {
	switch t {
	case TokenKeyword:
		return "KEYWORD"
	case TokenStringLiteral:
		return "STRING_LITERAL"
	case TokenOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Token is a lexical token of a source file.
// Tokens are values: two tokens are equal when range, text and type match.
type Token struct {
	Text  string
	Range TextRange
	Type  TokenType
}

// NewToken creates a Token.
func NewToken(rng TextRange, text string, typ TokenType) Token {
	return Token{Text: text, Range: rng, Type: typ}
}

// IsKeyword returns true if the token is classified as a keyword.
func (t Token) IsKeyword() bool {
	return t.Type == TokenKeyword
}

// TokenID is the stable identity of a token slot in a Provider.
type TokenID int

// NoToken is the zero identity; it denotes no token.
const NoToken TokenID = -1
