package verifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/treelint/pkg/tree"
)

// noncompliantPattern matches "Noncompliant", an optional "@" shift and an
// optional issue count, followed by the message and attribute blocks.
var noncompliantPattern = regexp.MustCompile(`^\s*Noncompliant(?:@([+-]?\d+))?(?:\s+(\d+))?\s*(.*)$`)

// expectation is one issue declared by a "Noncompliant" comment.
type expectation struct {
	// line is 0 for a file-level issue.
	line    int
	message *string

	startColumn *int
	endLine     *int
	endColumn   *int
	secondaries []int
	// hasSecondaries distinguishes "secondary=" (none expected) from absent.
	hasSecondaries bool

	// commentLine is where the comment was written.
	commentLine int
}

// parseExpectations collects the issues declared by the comments of a file.
func parseExpectations(comments []tree.Comment) ([]expectation, error) {
	var expected []expectation
	for _, c := range comments {
		issues, err := parseComment(c.ContentText, c.Range.Start.Line)
		if err != nil {
			return nil, err
		}
		expected = append(expected, issues...)
	}
	return expected, nil
}

// parseComment parses one comment. Comments that do not start with
// "Noncompliant" yield nothing.
func parseComment(content string, commentLine int) ([]expectation, error) {
	match := noncompliantPattern.FindStringSubmatch(content)
	if match == nil {
		return nil, nil
	}

	line := commentLine
	if shift := match[1]; shift != "" {
		value, err := strconv.Atoi(strings.TrimPrefix(shift, "+"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid shift %q: %w", commentLine, shift, err)
		}
		switch {
		case strings.HasPrefix(shift, "+") || strings.HasPrefix(shift, "-"):
			line = commentLine + value
		default:
			line = value
		}
	}

	count := 1
	if match[2] != "" {
		count, _ = strconv.Atoi(match[2])
	}

	rest := match[3]
	messages, rest := takeBlocks(rest, "{{", "}}")
	attributes, rest := takeBlocks(rest, "[[", "]]")
	if strings.TrimSpace(rest) != "" {
		return nil, fmt.Errorf("line %d: unexpected text %q after Noncompliant", commentLine, strings.TrimSpace(rest))
	}
	if len(attributes) > 1 {
		return nil, fmt.Errorf("line %d: only one [[...]] block is allowed", commentLine)
	}

	if len(messages) > count {
		count = len(messages)
	}

	issues := make([]expectation, count)
	for i := range issues {
		issues[i] = expectation{line: line, commentLine: commentLine}
		if i < len(messages) {
			issues[i].message = &messages[i]
		}
	}

	if len(attributes) == 1 {
		if err := applyAttributes(&issues[0], attributes[0]); err != nil {
			return nil, fmt.Errorf("line %d: %w", commentLine, err)
		}
	}

	return issues, nil
}

// takeBlocks removes the leading delimited blocks of s, in order.
func takeBlocks(s, open, closing string) ([]string, string) {
	var blocks []string
	for {
		trimmed := strings.TrimLeft(s, " \t")
		if !strings.HasPrefix(trimmed, open) {
			return blocks, s
		}
		end := strings.Index(trimmed, closing)
		if end < 0 {
			return blocks, s
		}
		blocks = append(blocks, trimmed[len(open):end])
		s = trimmed[end+len(closing):]
	}
}

// applyAttributes reads "sc=..;el=..;ec=..;secondary=..".
// Columns are 1-based; ec is the last column of the issue. Line values with
// a sign are relative to the issue line.
func applyAttributes(issue *expectation, attributes string) error {
	for _, part := range strings.Split(attributes, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return fmt.Errorf("invalid attribute %q", part)
		}

		switch key {
		case "sc", "ec":
			column, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", key, value, err)
			}
			if key == "sc" {
				issue.startColumn = &column
			} else {
				issue.endColumn = &column
			}
		case "el":
			line, err := lineValue(issue.line, value)
			if err != nil {
				return fmt.Errorf("invalid el %q: %w", value, err)
			}
			issue.endLine = &line
		case "secondary":
			issue.hasSecondaries = true
			for _, item := range strings.Split(value, ",") {
				if item = strings.TrimSpace(item); item == "" {
					continue
				}
				line, err := lineValue(issue.line, item)
				if err != nil {
					return fmt.Errorf("invalid secondary %q: %w", item, err)
				}
				issue.secondaries = append(issue.secondaries, line)
			}
		default:
			return fmt.Errorf("unknown attribute %q", key)
		}
	}
	return nil
}

func lineValue(base int, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(value, "+"))
	if err != nil {
		return 0, err
	}
	if strings.HasPrefix(value, "+") || strings.HasPrefix(value, "-") {
		return base + n, nil
	}
	return n, nil
}
