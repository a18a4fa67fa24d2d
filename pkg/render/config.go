package render

import (
	"errors"
	"fmt"
)

// Default layout values.
const (
	DefaultWidth           = 80
	DefaultParagraphIndent = 0
	DefaultHeadingPadding  = 1
)

// ErrInvalidConfig is returned when a Config cannot produce a layout.
var ErrInvalidConfig = errors.New("invalid render config")

// Config controls layout and styling of the rendered output.
type Config struct {
	// Width is the maximum visible width of a paragraph line.
	Width int

	// ParagraphIndent is the left indent of every paragraph line.
	ParagraphIndent int

	// HeadingPaddingX is the number of blank columns between a heading's
	// text and the left/right border.
	HeadingPaddingX int

	// HeadingPaddingY is the number of blank lines between a heading's
	// text and the top/bottom border.
	HeadingPaddingY int

	// Plain suppresses all ANSI escape sequences.
	Plain bool
}

// DefaultConfig returns the default layout: 80 columns, no indent,
// one cell of heading padding on every side.
func DefaultConfig() Config {
	return Config{
		Width:           DefaultWidth,
		ParagraphIndent: DefaultParagraphIndent,
		HeadingPaddingX: DefaultHeadingPadding,
		HeadingPaddingY: DefaultHeadingPadding,
	}
}

// Validate reports whether the config describes a usable layout.
func (c Config) Validate() error {
	switch {
	case c.Width < 1:
		return fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidConfig, c.Width)
	case c.ParagraphIndent < 0:
		return fmt.Errorf("%w: paragraph indent must not be negative, got %d", ErrInvalidConfig, c.ParagraphIndent)
	case c.ParagraphIndent >= c.Width:
		return fmt.Errorf("%w: paragraph indent %d must be less than width %d",
			ErrInvalidConfig, c.ParagraphIndent, c.Width)
	case c.HeadingPaddingX < 0 || c.HeadingPaddingY < 0:
		return fmt.Errorf("%w: heading padding must not be negative", ErrInvalidConfig)
	}
	return nil
}
