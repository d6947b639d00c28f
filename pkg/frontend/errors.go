package frontend

import (
	"errors"
	"fmt"

	"github.com/yaklabco/treelint/pkg/tree"
)

// Sentinel errors returned by producers.
var (
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse error")

	// ErrNoASTNode indicates a file without tokens or comments.
	ErrNoASTNode = errors.New("no AST node found")
)

// ParseError reports a syntax error in a source file.
type ParseError struct {
	// Message describes the failure.
	Message string

	// Position is the location of the failure, or nil when unknown.
	Position *tree.TextPointer

	// Err is the underlying parser error, if any.
	Err error
}

// NewParseError creates a ParseError at the given position.
func NewParseError(message string, position *tree.TextPointer, err error) *ParseError {
	return &ParseError{Message: message, Position: position, Err: err}
}

func (e *ParseError) Error() string {
	if e.Position == nil {
		return "parse error: " + e.Message
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Position.Line, e.Position.LineOffset, e.Message)
}

// Is makes errors.Is(err, ErrParse) hold for every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
