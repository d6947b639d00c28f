package tree

// Comment is a source comment.
type Comment struct {
	// Text is the full comment including delimiters.
	Text string

	// ContentText is the comment without its delimiters.
	ContentText string

	// Range covers Text.
	Range TextRange

	// ContentRange covers ContentText and is inside Range.
	ContentRange TextRange
}

// NewComment creates a Comment.
func NewComment(text, contentText string, rng, contentRange TextRange) Comment {
	return Comment{
		Text:         text,
		ContentText:  contentText,
		Range:        rng,
		ContentRange: contentRange,
	}
}
