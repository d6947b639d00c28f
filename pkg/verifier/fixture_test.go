package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParseComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []expectation
	}{
		{
			name:     "plain",
			content:  " Noncompliant",
			expected: []expectation{{line: 5, commentLine: 5}},
		},
		{
			name:     "shift forward",
			content:  " Noncompliant@+1",
			expected: []expectation{{line: 6, commentLine: 5}},
		},
		{
			name:     "shift backward",
			content:  " Noncompliant@-2",
			expected: []expectation{{line: 3, commentLine: 5}},
		},
		{
			name:     "file level",
			content:  " Noncompliant@0 {{whole file}}",
			expected: []expectation{{line: 0, message: ptr("whole file"), commentLine: 5}},
		},
		{
			name:     "absolute line",
			content:  " Noncompliant@12",
			expected: []expectation{{line: 12, commentLine: 5}},
		},
		{
			name:    "several messages",
			content: " Noncompliant {{a}} {{b c}}",
			expected: []expectation{
				{line: 5, message: ptr("a"), commentLine: 5},
				{line: 5, message: ptr("b c"), commentLine: 5},
			},
		},
		{
			name:    "count",
			content: " Noncompliant 2",
			expected: []expectation{
				{line: 5, commentLine: 5},
				{line: 5, commentLine: 5},
			},
		},
		{
			name:    "attributes",
			content: " Noncompliant {{m}} [[sc=1;el=+1;ec=4;secondary=+1,-2,9]]",
			expected: []expectation{{
				line:           5,
				message:        ptr("m"),
				startColumn:    ptr(1),
				endLine:        ptr(6),
				endColumn:      ptr(4),
				secondaries:    []int{6, 3, 9},
				hasSecondaries: true,
				commentLine:    5,
			}},
		},
		{
			name:     "empty secondary list",
			content:  " Noncompliant [[secondary=]]",
			expected: []expectation{{line: 5, hasSecondaries: true, commentLine: 5}},
		},
		{
			name:    "other comment",
			content: " just a comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseComment(tt.content, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseComment_Errors(t *testing.T) {
	t.Parallel()

	for _, content := range []string{
		" Noncompliant trailing words",
		" Noncompliant [[bad]]",
		" Noncompliant [[x=1]]",
		" Noncompliant [[sc=a]]",
		" Noncompliant [[sc=1]] [[ec=2]]",
	} {
		_, err := parseComment(content, 1)
		assert.Error(t, err, content)
	}
}

func TestLineDiff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  a\n- b\n  c\n+ d\n", lineDiff([]string{"a", "b", "c"}, []string{"a", "c", "d"}))
	assert.Equal(t, "- a\n", lineDiff([]string{"a"}, nil))
	assert.Equal(t, "+ a\n", lineDiff(nil, []string{"a"}))
	assert.Empty(t, lineDiff(nil, nil))
}

func TestReportLine_String(t *testing.T) {
	t.Parallel()

	line := reportLine{
		line:        7,
		message:     ptr("msg"),
		startColumn: ptr(3),
		endLine:     ptr(7),
		endColumn:   ptr(9),
		secondaries: []int{9, 8},
	}

	assert.Equal(t, "007: Noncompliant", line.String(lineFlags{}))
	assert.Equal(t, "007: Noncompliant {{msg}}", line.String(lineFlags{message: true}))
	assert.Equal(t, "007: Noncompliant [[sc=3;ec=9]]", line.String(lineFlags{startColumn: true, endColumn: true}))
	assert.Equal(t, "007: Noncompliant {{msg}} [[sc=3;el=7;ec=9;secondary=8,9]]",
		line.String(lineFlags{message: true, startColumn: true, endLine: true, endColumn: true, secondaries: true}))
	assert.Equal(t, "007: Noncompliant [[sc=?]]", reportLine{line: 7}.String(lineFlags{startColumn: true}))
}
