package metrics

import "github.com/yaklabco/treelint/pkg/tree"

// LiteralImage replaces the text of string literal tokens in CPD output so
// that clones differing only in strings are still detected.
const LiteralImage = "LITERAL"

// CPDToken is one token fed to copy-paste detection.
type CPDToken struct {
	Range tree.TextRange `json:"range"`
	Image string         `json:"image"`
}

// CPDTokens returns the tokens of root in source order, skipping the file
// preamble (package clause, imports) that precedes TopLevel.FirstCPDToken.
func CPDTokens(root *tree.TopLevel) []CPDToken {
	tokens := root.MetaData().Tokens()

	start := 0
	if root.FirstCPDToken != nil {
		start = len(tokens)
		for i, tok := range tokens {
			if tok == *root.FirstCPDToken {
				start = i
				break
			}
		}
	}

	result := make([]CPDToken, 0, len(tokens)-start)
	for _, tok := range tokens[start:] {
		image := tok.Text
		if tok.Type == tree.TokenStringLiteral {
			image = LiteralImage
		}
		result = append(result, CPDToken{Range: tok.Range, Image: image})
	}
	return result
}
