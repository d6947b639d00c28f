package runner_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/yaklabco/treelint/pkg/check"
	"github.com/yaklabco/treelint/pkg/checks"
	"github.com/yaklabco/treelint/pkg/config"
	"github.com/yaklabco/treelint/pkg/frontend"
	"github.com/yaklabco/treelint/pkg/frontend/golang"
	"github.com/yaklabco/treelint/pkg/frontend/javascript"
	"github.com/yaklabco/treelint/pkg/runner"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const goSource = `package p

var b = 1

// TODO fix
var a = b == b // NOSONAR
var c = b != b
`

const jsSource = `function f(x) {
  return x === x;
}
`

// newRunner returns a runner over fsys with the Go and JavaScript front ends
// and the todo and identical operands checks.
func newRunner(t *testing.T, fsys afero.Fs) *runner.Runner {
	t.Helper()

	frontends := frontend.NewRegistry(golang.New(), javascript.New())
	t.Cleanup(func() { _ = frontends.TerminateAll() })

	engine := check.NewEngine(checks.NewTodoCommentCheck(), checks.NewIdenticalBinaryOperandsCheck())

	r := runner.New(frontends, engine)
	r.Fs = fsys
	return r
}

func writeFiles(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, "/proj/"+name, []byte(content), 0o644))
	}
	return fsys
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	fsys := writeFiles(t, map[string]string{
		"a.go":      goSource,
		"web/b.js":  jsSource,
		"broken.go": "package p\nfunc {\n",
		"notes.txt": "TODO\n",
		"web/c.mjs": "export const x = 1;\n",
	})

	result, err := newRunner(t, fsys).Run(context.Background(), runner.Options{
		WorkingDir: "/proj",
		Jobs:       2,
	})
	require.NoError(t, err)

	paths := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"/proj/a.go", "/proj/broken.go", "/proj/web/b.js", "/proj/web/c.mjs"}, paths)

	goFile := result.Files[0]
	require.NoError(t, goFile.Error)
	assert.Equal(t, config.LanguageGo, goFile.Language)
	require.Len(t, goFile.Issues, 2)
	assert.Equal(t, "S1135", goFile.Issues[0].CheckID)
	assert.Equal(t, 5, goFile.Issues[0].Line())
	assert.Equal(t, "S1764", goFile.Issues[1].CheckID)
	assert.Equal(t, 7, goFile.Issues[1].Line())
	assert.Equal(t, 1, goFile.Suppressed)
	assert.Nil(t, goFile.Metrics)

	require.Error(t, result.Files[1].Error)
	assert.Contains(t, result.Files[1].Error.Error(), "parse /proj/broken.go")

	jsFile := result.Files[2]
	require.NoError(t, jsFile.Error)
	assert.Equal(t, config.LanguageJavaScript, jsFile.Language)
	require.Len(t, jsFile.Issues, 1)
	assert.Equal(t, 2, jsFile.Issues[0].Line())

	assert.Empty(t, result.Files[3].Issues)

	stats := result.Stats
	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 3, stats.FilesProcessed)
	assert.Equal(t, 0, stats.FilesSkipped)
	assert.Equal(t, 1, stats.FilesErrored)
	assert.Equal(t, 3, stats.IssuesTotal)
	assert.Equal(t, 1, stats.IssuesSuppressed)
	assert.Equal(t, 2, stats.FilesWithIssues)
	assert.Equal(t, 2, stats.IssuesBySeverity[config.SeverityError])
	assert.Equal(t, 1, stats.IssuesBySeverity[config.SeverityInfo])

	assert.True(t, result.HasIssues())
	assert.True(t, result.HasFailures())
	assert.True(t, result.HasErrors())
}

func TestRunner_Run_Languages(t *testing.T) {
	t.Parallel()

	fsys := writeFiles(t, map[string]string{"a.go": goSource, "b.js": jsSource})

	cfg := config.NewConfig()
	cfg.Languages = []string{config.LanguageJavaScript}

	result, err := newRunner(t, fsys).Run(context.Background(), runner.Options{
		WorkingDir: "/proj",
		Config:     cfg,
	})
	require.NoError(t, err)
	require.Len(t, result.Files, 2)

	assert.True(t, result.Files[0].Skipped)
	assert.Empty(t, result.Files[0].Issues)
	assert.False(t, result.Files[1].Skipped)
	assert.Equal(t, 1, result.Stats.IssuesTotal)
}

func TestRunner_Run_ConfigIgnore(t *testing.T) {
	t.Parallel()

	fsys := writeFiles(t, map[string]string{"a.go": goSource, "gen/b.go": goSource})

	cfg := config.NewConfig()
	cfg.Ignore = []string{"gen"}

	result, err := newRunner(t, fsys).Run(context.Background(), runner.Options{
		WorkingDir: "/proj",
		Config:     cfg,
	})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "/proj/a.go", result.Files[0].Path)
}

func TestRunner_Run_Metrics(t *testing.T) {
	t.Parallel()

	fsys := writeFiles(t, map[string]string{"a.go": goSource})

	result, err := newRunner(t, fsys).Run(context.Background(), runner.Options{
		WorkingDir: "/proj",
		Metrics:    true,
	})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	m := result.Files[0].Metrics
	require.NotNil(t, m)
	assert.Equal(t, []int{1, 3, 6, 7}, m.LinesOfCode)
	assert.Equal(t, []int{5}, m.CommentLines)
	assert.Equal(t, []int{6}, m.NosonarLines)
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/proj", 0o755))

	result, err := newRunner(t, fsys).Run(context.Background(), runner.Options{WorkingDir: "/proj"})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasFailures())
}

func TestRunner_Run_Cancelled(t *testing.T) {
	t.Parallel()

	fsys := writeFiles(t, map[string]string{"a.go": goSource})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(t, fsys).Run(ctx, runner.Options{WorkingDir: "/proj"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult_NilSafe(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasFailures())
	assert.False(t, result.HasErrors())
}
