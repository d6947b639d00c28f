package tree

import (
	"errors"
	"fmt"
)

// ErrEmptyMerge is returned when merging an empty collection of ranges.
var ErrEmptyMerge = errors.New("can't merge 0 ranges")

// TextPointer is a position in a source file.
type TextPointer struct {
	// Line is 1-based.
	Line int

	// LineOffset is the 0-based byte offset within the line.
	LineOffset int
}

// NewTextPointer creates a TextPointer.
func NewTextPointer(line, lineOffset int) TextPointer {
	return TextPointer{Line: line, LineOffset: lineOffset}
}

// Compare orders pointers by line, then by offset.
// It returns -1, 0 or +1.
func (p TextPointer) Compare(other TextPointer) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.LineOffset < other.LineOffset:
		return -1
	case p.LineOffset > other.LineOffset:
		return 1
	default:
		return 0
	}
}

// Before reports whether p is strictly before other.
func (p TextPointer) Before(other TextPointer) bool {
	return p.Compare(other) < 0
}

// IsValid returns true if the pointer has a positive line and non-negative offset.
func (p TextPointer) IsValid() bool {
	return p.Line > 0 && p.LineOffset >= 0
}

func (p TextPointer) String() string {
	return fmt.Sprintf("TextPointer[%d, %d]", p.Line, p.LineOffset)
}

// TextRange is an interval between two pointers, start <= end.
type TextRange struct {
	Start TextPointer
	End   TextPointer
}

// NewTextRange creates a range from line/offset pairs.
func NewTextRange(startLine, startOffset, endLine, endOffset int) TextRange {
	return TextRange{
		Start: TextPointer{Line: startLine, LineOffset: startOffset},
		End:   TextPointer{Line: endLine, LineOffset: endOffset},
	}
}

// IsInside reports whether r lies within other (bounds inclusive).
func (r TextRange) IsInside(other TextRange) bool {
	return r.Start.Compare(other.Start) >= 0 && r.End.Compare(other.End) <= 0
}

// Overlaps reports whether r and other share at least one position.
// Touching ranges such as [1:0-1:3] and [1:3-1:5] do not overlap.
func (r TextRange) Overlaps(other TextRange) bool {
	return r.Start.Compare(other.End) < 0 && other.Start.Compare(r.End) < 0
}

// IsSingleLine returns true if the range starts and ends on the same line.
func (r TextRange) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

func (r TextRange) String() string {
	return fmt.Sprintf("TextRange[%d, %d, %d, %d]",
		r.Start.Line, r.Start.LineOffset, r.End.Line, r.End.LineOffset)
}

// Merge returns the range spanning the smallest start and the largest end.
// It returns ErrEmptyMerge when called without ranges.
func Merge(ranges ...TextRange) (TextRange, error) {
	if len(ranges) == 0 {
		return TextRange{}, ErrEmptyMerge
	}

	merged := ranges[0]
	for _, r := range ranges[1:] {
		if r.Start.Before(merged.Start) {
			merged.Start = r.Start
		}
		if merged.End.Before(r.End) {
			merged.End = r.End
		}
	}

	return merged, nil
}

// MustMerge is like Merge but panics on an empty collection.
// Front ends use it where the grammar guarantees at least one range.
func MustMerge(ranges ...TextRange) TextRange {
	merged, err := Merge(ranges...)
	if err != nil {
		panic(err)
	}
	return merged
}

// TokenRanges returns the ranges of the given tokens, in order.
func TokenRanges(tokens []Token) []TextRange {
	ranges := make([]TextRange, len(tokens))
	for i, tok := range tokens {
		ranges[i] = tok.Range
	}
	return ranges
}

// RangeOf returns the range covering all nodes. Nil nodes are skipped.
func RangeOf(nodes ...Node) (TextRange, error) {
	ranges := make([]TextRange, 0, len(nodes))
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		ranges = append(ranges, n.Range())
	}
	return Merge(ranges...)
}
