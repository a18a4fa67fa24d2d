// Package config defines the configuration types for typscii.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import "github.com/yaklabco/typscii/pkg/render"

// Default values for configuration fields.
const (
	DefaultWidth           = render.DefaultWidth
	DefaultParagraphIndent = render.DefaultParagraphIndent
	DefaultHeadingPadding  = render.DefaultHeadingPadding
)

// DefaultExtensions lists the file extensions picked up when a directory is
// given as input.
//
//nolint:gochecknoglobals // read-only default list
var DefaultExtensions = []string{".tscii", ".txt"}

// HeadingConfig controls the heading box layout.
type HeadingConfig struct {
	// PaddingX is the blank columns between heading text and the side borders.
	PaddingX int `yaml:"padding_x"`

	// PaddingY is the blank lines between heading text and the top/bottom borders.
	PaddingY int `yaml:"padding_y"`
}

// Config is the root configuration structure for typscii.
type Config struct {
	// Width is the maximum visible width of paragraph lines.
	Width int `yaml:"width"`

	// ParagraphIndent is the left indent of every paragraph line.
	ParagraphIndent int `yaml:"paragraph_indent"`

	// Heading configures heading boxes.
	Heading HeadingConfig `yaml:"heading"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// Extensions lists the file extensions discovered inside directories.
	Extensions []string `yaml:"extensions"`

	// CLI-level options (not persisted to config files).

	// Plain disables ANSI styling of rendered paragraphs.
	Plain bool `yaml:"-"`

	// Jobs specifies the number of parallel workers (0 means GOMAXPROCS).
	Jobs int `yaml:"-"`

	// Output is the file rendered output is written to ("" means stdout).
	Output string `yaml:"-"`

	// Format is the output format of "typscii check".
	Format OutputFormat `yaml:"-"`

	// Strict makes "typscii check" fail when diagnostics are found.
	Strict bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:           DefaultWidth,
		ParagraphIndent: DefaultParagraphIndent,
		Heading: HeadingConfig{
			PaddingX: DefaultHeadingPadding,
			PaddingY: DefaultHeadingPadding,
		},
		Extensions: append([]string(nil), DefaultExtensions...),
		Format:     FormatText,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}

// RenderConfig projects the layout settings onto a render.Config.
func (c *Config) RenderConfig() render.Config {
	return render.Config{
		Width:           c.Width,
		ParagraphIndent: c.ParagraphIndent,
		HeadingPaddingX: c.Heading.PaddingX,
		HeadingPaddingY: c.Heading.PaddingY,
		Plain:           c.Plain,
	}
}
