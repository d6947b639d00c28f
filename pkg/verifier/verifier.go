// Package verifier checks a check against annotated fixture files.
//
// A fixture declares the issues it expects with comments:
//
//	x == x // Noncompliant {{Identical operands}}
//	// Noncompliant@+1
//	y := 1
//	// Noncompliant@0 {{file-level message}}
//	z := a + a // Noncompliant [[sc=6;el=+0;ec=10;secondary=+1]]
//
// "@+N" and "@-N" shift the issue line, "@N" sets it, and "@0" makes the
// issue file level. Each "{{message}}" declares one issue. Columns in the
// "[[...]]" block are 1-based, ec being the last column of the issue.
package verifier

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/frontend"
)

// Sentinel errors reported by the verifier.
var (
	// ErrNoExpectedIssues indicates a fixture without any Noncompliant comment
	// verified in issues mode.
	ErrNoExpectedIssues = errors.New("expected one or more issues but there is no 'Noncompliant' comment")

	// ErrUnexpectedIssues indicates issues or Noncompliant comments in no-issue mode.
	ErrUnexpectedIssues = errors.New("expected no issues")

	// ErrIssueMismatch indicates reported issues that differ from the comments.
	ErrIssueMismatch = errors.New("issues do not match 'Noncompliant' comments")
)

// Option configures a Verifier.
type Option func(*Verifier)

// WithFs sets the file system fixtures are read from.
func WithFs(fsys afero.Fs) Option {
	return func(v *Verifier) {
		v.fs = fsys
	}
}

// Verifier runs one check over fixture files of one language.
type Verifier struct {
	fs       afero.Fs
	producer frontend.Producer
}

// New creates a Verifier parsing fixtures with producer.
func New(producer frontend.Producer, opts ...Option) *Verifier {
	v := &Verifier{fs: afero.NewOsFs(), producer: producer}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify fails t unless chk reports exactly the issues declared in the
// fixture at path, which must declare at least one.
func Verify(t testing.TB, path string, producer frontend.Producer, chk check.Check) {
	t.Helper()
	require.NoError(t, New(producer).Run(path, chk))
}

// VerifyNoIssue fails t if chk reports any issue on the fixture at path, or
// if the fixture declares one.
func VerifyNoIssue(t testing.TB, path string, producer frontend.Producer, chk check.Check) {
	t.Helper()
	require.NoError(t, New(producer).RunNoIssue(path, chk))
}

// Run verifies the fixture in issues mode.
func (v *Verifier) Run(path string, chk check.Check) error {
	result, err := v.analyze(path, chk)
	if err != nil {
		return err
	}

	name := filepath.Base(path)
	if len(result.expected) == 0 {
		return fmt.Errorf("%w (%s:1)", ErrNoExpectedIssues, name)
	}

	expected := renderExpected(result.expected)
	actual := renderActual(result.issues, result.expected)
	if slices.Equal(expected, actual) {
		return nil
	}

	return fmt.Errorf("%w in %s:\n%s", ErrIssueMismatch, name, lineDiff(expected, actual))
}

// RunNoIssue verifies the fixture in no-issue mode.
func (v *Verifier) RunNoIssue(path string, chk check.Check) error {
	result, err := v.analyze(path, chk)
	if err != nil {
		return err
	}

	name := filepath.Base(path)
	if len(result.issues) > 0 {
		locations := make([]string, 0, len(result.issues))
		for _, issue := range result.issues {
			locations = append(locations, name+":"+strconv.Itoa(issue.Line()))
		}
		return fmt.Errorf("%w, found %d: %s", ErrUnexpectedIssues, len(result.issues), strings.Join(locations, ", "))
	}
	if len(result.expected) > 0 {
		return fmt.Errorf("%w, but there is a 'Noncompliant' comment (%s:%d)",
			ErrUnexpectedIssues, name, result.expected[0].commentLine)
	}
	return nil
}

type analysis struct {
	expected []expectation
	issues   []check.Issue
}

func (v *Verifier) analyze(path string, chk check.Check) (*analysis, error) {
	content, err := afero.ReadFile(v.fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	ctx := context.Background()
	root, err := v.producer.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	expected, err := parseExpectations(root.AllComments)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	result, err := check.NewEngine(chk).Analyze(ctx, check.InputFile{Filename: path, Content: content}, root)
	if err != nil {
		return nil, err
	}

	return &analysis{expected: expected, issues: result.Issues}, nil
}

// lineFlags records which optional parts an expectation specifies. An issue
// matched to that expectation renders exactly those parts.
type lineFlags struct {
	message     bool
	startColumn bool
	endLine     bool
	endColumn   bool
	secondaries bool
}

func flagsOf(e expectation) lineFlags {
	return lineFlags{
		message:     e.message != nil,
		startColumn: e.startColumn != nil,
		endLine:     e.endLine != nil,
		endColumn:   e.endColumn != nil,
		secondaries: e.hasSecondaries,
	}
}

func (f lineFlags) count() int {
	n := 0
	for _, set := range []bool{f.message, f.startColumn, f.endLine, f.endColumn, f.secondaries} {
		if set {
			n++
		}
	}
	return n
}

func (f lineFlags) union(other lineFlags) lineFlags {
	return lineFlags{
		message:     f.message || other.message,
		startColumn: f.startColumn || other.startColumn,
		endLine:     f.endLine || other.endLine,
		endColumn:   f.endColumn || other.endColumn,
		secondaries: f.secondaries || other.secondaries,
	}
}

// reportLine is the comparable form of one issue.
type reportLine struct {
	line        int
	message     *string
	startColumn *int
	endLine     *int
	endColumn   *int
	secondaries []int
}

func expectedLine(e expectation) reportLine {
	return reportLine{
		line:        e.line,
		message:     e.message,
		startColumn: e.startColumn,
		endLine:     e.endLine,
		endColumn:   e.endColumn,
		secondaries: e.secondaries,
	}
}

func actualLine(issue check.Issue) reportLine {
	message := issue.Message
	line := reportLine{line: issue.Line(), message: &message}
	if issue.Range != nil {
		startColumn := issue.Range.Start.LineOffset + 1
		endLine := issue.Range.End.Line
		endColumn := issue.Range.End.LineOffset
		line.startColumn, line.endLine, line.endColumn = &startColumn, &endLine, &endColumn
	}
	for _, secondary := range issue.Secondaries {
		line.secondaries = append(line.secondaries, secondary.Range.Start.Line)
	}
	return line
}

func renderExpected(expected []expectation) []string {
	rendered := make([]string, 0, len(expected))
	for _, e := range expected {
		rendered = append(rendered, expectedLine(e).String(flagsOf(e)))
	}
	return sortReport(rendered)
}

// renderActual pairs each expectation with an issue of its line that agrees
// on the parts it specifies, most specific expectations first. Paired issues
// render like their expectation. The others render every part specified on
// their line so that a mismatch shows what differs.
func renderActual(issues []check.Issue, expected []expectation) []string {
	byLine := make(map[int][]expectation)
	lineUnion := make(map[int]lineFlags)
	for _, e := range expected {
		byLine[e.line] = append(byLine[e.line], e)
		lineUnion[e.line] = lineUnion[e.line].union(flagsOf(e))
	}

	actual := make([]reportLine, 0, len(issues))
	for _, issue := range issues {
		actual = append(actual, actualLine(issue))
	}
	paired := make([]bool, len(actual))

	rendered := make([]string, 0, len(actual))
	for line, lineExpected := range byLine {
		slices.SortStableFunc(lineExpected, func(a, b expectation) int {
			return cmp.Compare(flagsOf(b).count(), flagsOf(a).count())
		})
		for _, e := range lineExpected {
			flags := flagsOf(e)
			want := expectedLine(e).String(flags)
			for i, a := range actual {
				if paired[i] || a.line != line {
					continue
				}
				if got := a.String(flags); got == want {
					paired[i] = true
					rendered = append(rendered, got)
					break
				}
			}
		}
	}

	for i, a := range actual {
		if !paired[i] {
			rendered = append(rendered, a.String(lineUnion[a.line]))
		}
	}
	return sortReport(rendered)
}

// sortReport orders entries by line. Issues of one line compare as a set.
func sortReport(rendered []string) []string {
	slices.SortFunc(rendered, func(a, b string) int {
		return cmp.Or(cmp.Compare(lineOf(a), lineOf(b)), strings.Compare(a, b))
	})
	return rendered
}

func lineOf(s string) int {
	line, _ := strconv.Atoi(s[:strings.IndexByte(s, ':')])
	return line
}

// String renders the issue with the parts selected by flags, such as
// "007: Noncompliant {{message}} [[sc=3;ec=9]]".
func (l reportLine) String(flags lineFlags) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%03d: Noncompliant", l.line)

	if flags.message && l.message != nil {
		sb.WriteString(" {{" + *l.message + "}}")
	}

	var attributes []string
	if flags.startColumn {
		attributes = append(attributes, "sc="+optional(l.startColumn))
	}
	if flags.endLine {
		attributes = append(attributes, "el="+optional(l.endLine))
	}
	if flags.endColumn {
		attributes = append(attributes, "ec="+optional(l.endColumn))
	}
	if flags.secondaries {
		secondaries := slices.Clone(l.secondaries)
		slices.Sort(secondaries)
		items := make([]string, len(secondaries))
		for i, s := range secondaries {
			items[i] = strconv.Itoa(s)
		}
		attributes = append(attributes, "secondary="+strings.Join(items, ","))
	}
	if len(attributes) > 0 {
		sb.WriteString(" [[" + strings.Join(attributes, ";") + "]]")
	}

	return sb.String()
}

func optional(value *int) string {
	if value == nil {
		return "?"
	}
	return strconv.Itoa(*value)
}
