// Package runner renders or checks many typscii sources concurrently.
package runner

import "github.com/yaklabco/typscii/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are the files or directories to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors Exclude patterns.
	// If empty, the process working directory is used.
	WorkingDir string

	// Extensions selects files found while walking directories
	// (lowercase, leading dot). Explicitly named files are always taken.
	Extensions []string

	// ExcludeGlobs skip matching files and directories. Patterns use
	// gobwas/glob syntax with '/' as separator and are matched against the
	// slash-separated path relative to WorkingDir and against the base name.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
