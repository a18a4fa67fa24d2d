// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered merging,
// environment variable support, and validation.
package configloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/typscii/pkg/config"
)

// ErrInvalidConfig is wrapped by every error caused by configuration content
// (unparsable files, bad environment values, failed validation).
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory relative inputs are resolved against.
	// Defaults to current working directory if empty.
	WorkingDir string

	// Inputs are the paths being rendered or checked. The project config
	// search starts next to the first one that exists; "-" is stdin.
	Inputs []string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLI contains overrides from command-line flags.
	// These take highest precedence.
	CLI *Overrides
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Sources lists the configuration files that were loaded, lowest
	// precedence first.
	Sources []Source

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLI)
//  2. Environment variables (TYPSCII_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.typscii.yml, searched upward from the first input)
//  5. User config ($XDG_CONFIG_HOME/typscii/config.yaml)
//  6. System config (/etc/typscii/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	sources, err := discoverSources(ctx, opts, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover config files: %w", err)
	}

	result := &LoadResult{Sources: sources}
	layers := make([]*Overrides, 0, len(sources)+2)
	reported := make(map[string]bool)

	for _, src := range sources {
		layer, err := loadConfigFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", src.Layer, err)
		}
		// Warnings are attributed to the file that introduced them.
		if v := ValidateWithFile(merge(nil, layer), src.Path); v.HasWarnings() {
			for _, w := range v.Warnings {
				reported[w.Message] = true
				result.Warnings = append(result.Warnings, w.Error())
			}
		}
		layers = append(layers, layer)
		result.LoadedFrom = append(result.LoadedFrom, src.Path)
	}

	if !opts.IgnoreEnv {
		env, err := LoadFromEnv()
		if err != nil {
			return nil, fmt.Errorf("%w: load environment: %w", ErrInvalidConfig, err)
		}
		layers = append(layers, env)
	}
	layers = append(layers, opts.CLI)

	cfg := MergeAll(nil, layers...)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		if !reported[w.Message] {
			result.Warnings = append(result.Warnings, w.Error())
		}
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration layer from a YAML file.
// Unknown keys are rejected.
func loadConfigFile(path string) (*Overrides, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	layer := &Overrides{}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(layer); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}

	return layer, nil
}
