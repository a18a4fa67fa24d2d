package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// envVarPrefix is the prefix for all typscii environment variables.
const envVarPrefix = "TYPSCII_"

// envMapping binds one environment variable to an Overrides field.
type envMapping struct {
	description string
	apply       func(o *Overrides, value string) error
}

// envMappings maps environment variable names (without prefix) to fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"WIDTH": {
		description: "Maximum paragraph line width",
		apply:       intField(func(o *Overrides) **int { return &o.Width }),
	},
	"PARAGRAPH_INDENT": {
		description: "Left indent of paragraph lines",
		apply:       intField(func(o *Overrides) **int { return &o.ParagraphIndent }),
	},
	"HEADING_PADDING_X": {
		description: "Horizontal padding inside heading boxes",
		apply:       intField(func(o *Overrides) **int { return &o.Heading.PaddingX }),
	},
	"HEADING_PADDING_Y": {
		description: "Vertical padding inside heading boxes",
		apply:       intField(func(o *Overrides) **int { return &o.Heading.PaddingY }),
	},
	"JOBS": {
		description: "Number of parallel workers (0 = auto)",
		apply:       intField(func(o *Overrides) **int { return &o.Jobs }),
	},
	"PLAIN": {
		description: "Disable ANSI styling: true or false",
		apply: func(o *Overrides, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("expected true/false/1/0, got %q", value)
			}
			o.Plain = &b
			return nil
		},
	},
	"IGNORE": {
		description: "Comma-separated list of ignore patterns",
		apply: func(o *Overrides, value string) error {
			o.Ignore = parseSliceValue(value)
			return nil
		},
	},
	"EXTENSIONS": {
		description: "Comma-separated list of file extensions",
		apply: func(o *Overrides, value string) error {
			o.Extensions = parseSliceValue(value)
			return nil
		},
	},
}

func intField(field func(o *Overrides) **int) func(o *Overrides, value string) error {
	return func(o *Overrides, value string) error {
		i, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", value)
		}
		*field(o) = &i
		return nil
	}
}

// LoadFromEnv builds an Overrides layer from TYPSCII_* environment variables.
// Unset or empty variables are skipped.
func LoadFromEnv() (*Overrides, error) {
	layer := &Overrides{}

	for _, suffix := range sortedEnvSuffixes() {
		envVar := envVarPrefix + suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if err := envMappings[suffix].apply(layer, value); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", envVar, err)
		}
	}

	return layer, nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}

func sortedEnvSuffixes() []string {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}
