package frontend

import (
	"strings"

	"github.com/yaklabco/treelint/pkg/tree"
)

const delimiterWidth = 2

// SplitComment builds a Comment from the full text of a "//" or "/* */"
// comment and its range. The content range excludes the delimiters.
func SplitComment(text string, rng tree.TextRange) tree.Comment {
	contentStart := tree.NewTextPointer(rng.Start.Line, rng.Start.LineOffset+delimiterWidth)

	if strings.HasPrefix(text, "/*") && strings.HasSuffix(text, "*/") && len(text) >= 2*delimiterWidth {
		contentEnd := tree.NewTextPointer(rng.End.Line, rng.End.LineOffset-delimiterWidth)
		return tree.NewComment(text, text[delimiterWidth:len(text)-delimiterWidth], rng,
			tree.TextRange{Start: contentStart, End: contentEnd})
	}

	if len(text) < delimiterWidth {
		return tree.NewComment(text, "", rng, tree.TextRange{Start: rng.End, End: rng.End})
	}
	return tree.NewComment(text, text[delimiterWidth:], rng, tree.TextRange{Start: contentStart, End: rng.End})
}
