package checks

import (
	"regexp"
	"strings"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/tree"
)

const todoMessage = "Complete the task associated to this TODO comment."

// todoPattern matches "todo" not surrounded by letters or digits.
var todoPattern = regexp.MustCompile(`(?i)(?:^|[^\p{L}\d])(todo)(?:$|[^\p{L}\d])`)

// TodoCommentCheck reports comments holding a TODO tag.
type TodoCommentCheck struct {
	check.BaseCheck
}

// NewTodoCommentCheck creates a new todo-comment check.
func NewTodoCommentCheck() *TodoCommentCheck {
	return &TodoCommentCheck{
		BaseCheck: check.NewBaseCheck(
			"S1135",
			"todo-comment",
			`Track uses of "TODO" tags`,
			[]string{"comments"},
		),
	}
}

// DefaultSeverity returns info.
func (c *TodoCommentCheck) DefaultSeverity() config.Severity {
	return config.SeverityInfo
}

// Initialize registers the comment scan on the top level.
func (c *TodoCommentCheck) Initialize(init check.InitContext) error {
	init.Register(tree.KindTopLevel, func(ctx *check.Context, n tree.Node) error {
		for _, comment := range n.(*tree.TopLevel).AllComments {
			match := todoPattern.FindStringSubmatchIndex(comment.Text)
			if match == nil {
				continue
			}
			start := offsetPointer(comment.Range.Start, comment.Text[:match[2]])
			end := tree.NewTextPointer(start.Line, start.LineOffset+match[3]-match[2])
			ctx.ReportIssueAt(tree.TextRange{Start: start, End: end}, todoMessage)
		}
		return nil
	})
	return nil
}

// offsetPointer returns the position reached after writing text at start.
func offsetPointer(start tree.TextPointer, text string) tree.TextPointer {
	lastBreak := strings.LastIndexByte(text, '\n')
	if lastBreak < 0 {
		return tree.NewTextPointer(start.Line, start.LineOffset+len(text))
	}
	return tree.NewTextPointer(start.Line+strings.Count(text, "\n"), len(text)-lastBreak-1)
}
