package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Discover resolves opts.Paths into a sorted, de-duplicated list of
// absolute file paths.
//
// Directories are walked recursively, skipping hidden entries and keeping
// files whose extension is in opts.Extensions. A file named directly is
// kept whatever its extension. Exclude patterns apply to both.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	w := &walker{
		workDir:        workDir,
		extensions:     opts.effectiveExtensions(),
		excludes:       excludes,
		followSymlinks: opts.FollowSymlinks,
		seen:           make(map[string]struct{}),
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

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := w.walk(ctx, absPath); err != nil {
				return nil, err
			}
			continue
		}

		if !w.excluded(absPath, false) {
			w.add(absPath)
		}
	}

	slices.Sort(w.files)

	return w.files, nil
}

// compileGlobs compiles exclude patterns with '/' as the separator so that
// '*' stays within one path segment and '**' crosses segments.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, fmt.Errorf("compile exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

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

type walker struct {
	workDir        string
	extensions     []string
	excludes       []glob.Glob
	followSymlinks bool

	seen  map[string]struct{}
	files []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

func (w *walker) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || (path != root && w.excluded(path, true)) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // unreadable symlink targets are skipped
			}
			if info.IsDir() {
				if !w.followSymlinks {
					return nil
				}
				// Walk the target; WalkDir does not descend into a symlinked root itself.
				return w.walk(ctx, realPath)
			}
		}

		if w.hasExtension(path) && !w.excluded(path, false) {
			w.add(path)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}

	return nil
}

func (w *walker) hasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// excluded matches the relative path and the base name against every
// exclude glob. Directories are also tried with a trailing slash so that
// "vendor/**" prunes the vendor directory itself.
func (w *walker) excluded(path string, isDir bool) bool {
	if len(w.excludes) == 0 {
		return false
	}

	rel, err := filepath.Rel(w.workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, g := range w.excludes {
		if g.Match(rel) || g.Match(base) {
			return true
		}
		if isDir && g.Match(rel+"/") {
			return true
		}
	}
	return false
}
