package verifier

import "strings"

// diffLineKind indicates the type of a diff line.
type diffLineKind int

const (
	// diffLineContext is a line present in both reports.
	diffLineContext diffLineKind = iota

	// diffLineActual is a line only in the actual report.
	diffLineActual

	// diffLineExpected is a line only in the expected report.
	diffLineExpected
)

// diffOp is a single line of a report diff.
type diffOp struct {
	kind    diffLineKind
	content string
}

// lineDiff renders the difference between the expected and actual reports.
// Lines only expected are prefixed with "- ", lines only reported with
// "+ ", and shared lines with two spaces.
func lineDiff(expected, actual []string) string {
	var builder strings.Builder
	for _, op := range buildDiffOps(expected, actual, longestCommonSubsequence(expected, actual)) {
		switch op.kind {
		case diffLineContext:
			builder.WriteString("  ")
		case diffLineExpected:
			builder.WriteString("- ")
		case diffLineActual:
			builder.WriteString("+ ")
		}
		builder.WriteString(op.content)
		builder.WriteByte('\n')
	}
	return builder.String()
}

// buildDiffOps builds a sequence of diff operations from both reports and their LCS.
func buildDiffOps(expected, actual, lcs []string) []diffOp {
	var ops []diffOp
	expIdx, actIdx, lcsIdx := 0, 0, 0

	for expIdx < len(expected) || actIdx < len(actual) {
		// If both match the LCS, it's a context line.
		if lcsIdx < len(lcs) &&
			expIdx < len(expected) && actIdx < len(actual) &&
			expected[expIdx] == lcs[lcsIdx] && actual[actIdx] == lcs[lcsIdx] {
			ops = append(ops, diffOp{kind: diffLineContext, content: expected[expIdx]})
			expIdx++
			actIdx++
			lcsIdx++
			continue
		}

		for expIdx < len(expected) && (lcsIdx >= len(lcs) || expected[expIdx] != lcs[lcsIdx]) {
			ops = append(ops, diffOp{kind: diffLineExpected, content: expected[expIdx]})
			expIdx++
		}

		for actIdx < len(actual) && (lcsIdx >= len(lcs) || actual[actIdx] != lcs[lcsIdx]) {
			ops = append(ops, diffOp{kind: diffLineActual, content: actual[actIdx]})
			actIdx++
		}
	}

	return ops
}

// longestCommonSubsequence computes the LCS of two string slices.
func longestCommonSubsequence(left, right []string) []string {
	leftLen, rightLen := len(left), len(right)
	if leftLen == 0 || rightLen == 0 {
		return nil
	}

	dp := make([][]int, leftLen+1)
	for idx := range dp {
		dp[idx] = make([]int, rightLen+1)
	}

	for row := 1; row <= leftLen; row++ {
		for col := 1; col <= rightLen; col++ {
			if left[row-1] == right[col-1] {
				dp[row][col] = dp[row-1][col-1] + 1
			} else {
				dp[row][col] = max(dp[row-1][col], dp[row][col-1])
			}
		}
	}

	lcsLen := dp[leftLen][rightLen]
	if lcsLen == 0 {
		return nil
	}

	lcs := make([]string, lcsLen)
	row, col, idx := leftLen, rightLen, lcsLen-1
	for row > 0 && col > 0 {
		switch {
		case left[row-1] == right[col-1]:
			lcs[idx] = left[row-1]
			row--
			col--
			idx--
		case dp[row-1][col] > dp[row][col-1]:
			row--
		default:
			col--
		}
	}

	return lcs
}
