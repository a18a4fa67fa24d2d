package configloader

import "github.com/yaklabco/typscii/pkg/config"

// Overrides is one configuration layer. Nil pointers and nil slices leave
// the lower layer untouched, so an explicit zero (e.g. paragraph_indent: 0)
// still overrides.
type Overrides struct {
	Width           *int             `yaml:"width"`
	ParagraphIndent *int             `yaml:"paragraph_indent"`
	Heading         HeadingOverrides `yaml:"heading"`
	Ignore          []string         `yaml:"ignore"`
	Extensions      []string         `yaml:"extensions"`

	// Not read from files.
	Plain *bool `yaml:"-"`
	Jobs  *int  `yaml:"-"`
}

// HeadingOverrides is the heading section of an Overrides layer.
type HeadingOverrides struct {
	PaddingX *int `yaml:"padding_x"`
	PaddingY *int `yaml:"padding_y"`
}

// merge applies override on top of base and returns the result.
// Scalars are replaced when set; slices replace base entirely when non-nil.
func merge(base *config.Config, override *Overrides) *config.Config {
	if base == nil {
		base = config.NewConfig()
	}
	result := base.Clone()
	if override == nil {
		return result
	}

	setInt(&result.Width, override.Width)
	setInt(&result.ParagraphIndent, override.ParagraphIndent)
	setInt(&result.Heading.PaddingX, override.Heading.PaddingX)
	setInt(&result.Heading.PaddingY, override.Heading.PaddingY)
	setInt(&result.Jobs, override.Jobs)

	if override.Plain != nil {
		result.Plain = *override.Plain
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}
	if override.Extensions != nil {
		result.Extensions = append([]string(nil), override.Extensions...)
	}

	return result
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// MergeAll applies layers in order, with later layers taking precedence.
func MergeAll(base *config.Config, layers ...*Overrides) *config.Config {
	result := base
	for _, layer := range layers {
		result = merge(result, layer)
	}
	if result == nil {
		return config.NewConfig()
	}
	return result
}

// Int returns a pointer to v, for building Overrides.
func Int(v int) *int {
	return &v
}

// Bool returns a pointer to v, for building Overrides.
func Bool(v bool) *bool {
	return &v
}
