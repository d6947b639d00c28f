package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
)

// Discover finds source files matching opts on fsys.
// It returns a deterministically sorted list of absolute file paths.
func Discover(ctx context.Context, fsys afero.Fs, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	m, err := newMatcher(workDir, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := fsys.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			// Explicit files only need a supported extension.
			if m.hasExtension(absPath) {
				add(absPath)
			}
			continue
		}

		discovered, err := walkDirectory(ctx, fsys, absPath, m)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	slices.Sort(files)
	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively walks a directory and returns matching files.
// Hidden entries are skipped, as are excluded directories.
func walkDirectory(ctx context.Context, fsys afero.Fs, root string, m *matcher) ([]string, error) {
	var files []string

	err := afero.Walk(fsys, root, func(path string, info fs.FileInfo, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(info.Name(), ".")

		if info.IsDir() {
			if hidden || m.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if !hidden && info.Mode().IsRegular() && m.matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// matcher holds the compiled selection criteria of a discovery.
type matcher struct {
	workDir    string
	extensions []string
	include    []glob.Glob
	exclude    []glob.Glob
}

func newMatcher(workDir string, opts Options) (*matcher, error) {
	m := &matcher{workDir: workDir}
	for _, ext := range opts.Extensions {
		m.extensions = append(m.extensions, strings.ToLower(ext))
	}

	var err error
	if m.include, err = compileGlobs(opts.IncludeGlobs); err != nil {
		return nil, err
	}
	if m.exclude, err = compileGlobs(opts.ExcludeGlobs); err != nil {
		return nil, err
	}
	return m, nil
}

// compileGlobs compiles slash-separated patterns where "*" stays within a
// path segment and "**" crosses segments.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// matches checks if a file path matches the inclusion criteria.
func (m *matcher) matches(path string) bool {
	if !m.hasExtension(path) || m.excluded(path) {
		return false
	}
	if len(m.include) > 0 && !matchAny(m.include, m.relative(path)) {
		return false
	}
	return true
}

func (m *matcher) hasExtension(path string) bool {
	return slices.Contains(m.extensions, strings.ToLower(filepath.Ext(path)))
}

// excluded checks the path relative to the working directory, and then its
// base name so that "vendor" or "*_test.go" match at any depth.
func (m *matcher) excluded(path string) bool {
	return matchAny(m.exclude, m.relative(path))
}

func (m *matcher) relative(path string) string {
	rel, err := filepath.Rel(m.workDir, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

func matchAny(globs []glob.Glob, relPath string) bool {
	base := relPath[strings.LastIndexByte(relPath, '/')+1:]
	for _, g := range globs {
		if g.Match(relPath) || g.Match(base) {
			return true
		}
	}
	return false
}
