package configloader

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"runtime"
)

// Layer identifies the tier a configuration file belongs to.
// Layers are ordered from lowest to highest precedence.
type Layer int

const (
	LayerSystem Layer = iota
	LayerUser
	LayerProject
	LayerExplicit
)

func (l Layer) String() string {
	switch l {
	case LayerSystem:
		return "system"
	case LayerUser:
		return "user"
	case LayerProject:
		return "project"
	case LayerExplicit:
		return "explicit"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// Source is one configuration file that takes part in loading.
type Source struct {
	Layer Layer
	Path  string
}

// ProjectConfigFiles are the names a project config may use, in order of
// preference. The first one is what "typscii init" writes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ProjectConfigFiles = []string{
	".typscii.yml",
	".typscii.yaml",
	"typscii.yml",
	"typscii.yaml",
}

// layerFileNames are the names looked up inside the system and user
// typscii directories.
//
//nolint:gochecknoglobals // Read-only lookup table.
var layerFileNames = []string{"config.yaml", "config.yml"}

// vcsRootMarkers end the project search: a document tree never inherits
// settings from outside its repository.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// discoverSources returns the configuration files for opts in ascending
// precedence. Layers switched off in opts are skipped; missing files are
// simply absent from the result.
func discoverSources(ctx context.Context, opts LoadOptions, workDir string) ([]Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	var sources []Source
	add := func(layer Layer, path string) {
		if path != "" {
			sources = append(sources, Source{Layer: layer, Path: path})
		}
	}

	if !opts.IgnoreSystemConfig {
		add(LayerSystem, firstFile(systemConfigDir(), layerFileNames))
	}
	if !opts.IgnoreUserConfig {
		add(LayerUser, firstFile(userConfigDir(), layerFileNames))
	}
	if !opts.IgnoreProjectConfig {
		start, err := projectSearchRoot(opts.Inputs, workDir)
		if err != nil {
			return nil, err
		}
		project, err := findProjectConfig(ctx, start)
		if err != nil {
			return nil, err
		}
		add(LayerProject, project)
	}
	add(LayerExplicit, opts.ExplicitPath)

	return sources, nil
}

// projectSearchRoot picks where the project search begins: the directory
// of the first input on disk, so a document tree's own .typscii.yml
// applies even when typscii runs from elsewhere. Without such an input it
// is workDir.
func projectSearchRoot(inputs []string, workDir string) (string, error) {
	for _, input := range inputs {
		if input == "" || input == "-" {
			continue
		}
		if !filepath.IsAbs(input) {
			input = filepath.Join(workDir, input)
		}
		info, err := os.Stat(input)
		if err != nil {
			// Unreadable inputs are reported by the runner.
			continue
		}
		if info.IsDir() {
			return input, nil
		}
		return filepath.Dir(input), nil
	}

	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

func systemConfigDir() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, "typscii")
	}
	return "/etc/typscii"
}

// userConfigDir honours XDG_CONFIG_HOME and falls back to ~/.config.
func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "typscii")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "typscii")
}

// findProjectConfig returns the nearest project config at or above start.
// The search gives up at a VCS root, the home directory or the filesystem
// root.
func findProjectConfig(ctx context.Context, start string) (string, error) {
	home, _ := os.UserHomeDir()

	for dir := range ancestors(start) {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if path := firstFile(dir, ProjectConfigFiles); path != "" {
			return path, nil
		}
		if isVCSRoot(dir) || dir == home {
			break
		}
	}
	return "", nil
}

// ancestors yields dir and each of its parents up to the filesystem root.
func ancestors(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(dir) {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
