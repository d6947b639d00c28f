package cli

import (
	"errors"

	"github.com/yaklabco/treelint/internal/configloader"
	"github.com/yaklabco/treelint/pkg/runner"
)

// Exit codes for treelint.
const (
	// ExitSuccess indicates a run without issues.
	ExitSuccess = 0

	// ExitIssues indicates that analysis found issues.
	ExitIssues = 1

	// ExitFileErrors indicates that some files could not be analyzed (strict mode).
	ExitFileErrors = 2

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates any other failure.
	ExitInternalError = 70
)

var (
	// ErrIssuesFound signals that analysis reported issues.
	ErrIssuesFound = errors.New("issues found")

	// ErrFilesFailed signals that files failed to parse in strict mode.
	ErrFilesFailed = errors.New("files could not be analyzed")
)

// ExitCodeFromResult maps a run result to an exit code. Files that failed
// to parse only affect the code in strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	switch {
	case result.HasIssues():
		return ExitIssues
	case strict && result.HasErrors():
		return ExitFileErrors
	default:
		return ExitSuccess
	}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssues
	case errors.Is(err, ErrFilesFailed):
		return ExitFileErrors
	case errors.As(err, &validationErr):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// IsSignal reports whether err only carries an exit status and needs no log line.
func IsSignal(err error) bool {
	return errors.Is(err, ErrIssuesFound) || errors.Is(err, ErrFilesFailed)
}
