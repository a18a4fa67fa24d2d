package config

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting uncommented with its default value.
	// If false, a minimal, fully commented template is generated.
	Full bool

	// Environment maps environment variable names to descriptions. When
	// set, the minimal template ends with a commented list of them.
	Environment map[string]string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(opts.Environment), nil
}

const templateHeader = `# typscii configuration
# See: https://github.com/yaklabco/typscii
`

func generateMinimalTemplate(env map[string]string) []byte {
	var buf bytes.Buffer

	buf.WriteString(templateHeader)
	fmt.Fprintf(&buf, `
# Maximum visible width of paragraph lines
# width: %d

# Left indent of paragraph lines (must be less than width)
# paragraph_indent: %d

# Blank space around heading text inside its box
# heading:
#   padding_x: %d
#   padding_y: %d

# File extensions rendered when a directory is given
# extensions:
#   - .tscii
#   - .txt

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "drafts/**"
`, DefaultWidth, DefaultParagraphIndent, DefaultHeadingPadding, DefaultHeadingPadding)

	if len(env) > 0 {
		buf.WriteString("\n# Environment variables override this file:\n")
		for _, name := range slices.Sorted(maps.Keys(env)) {
			fmt.Fprintf(&buf, "#   %-26s %s\n", name, env[name])
		}
	}

	return buf.Bytes()
}

func generateFullTemplate() ([]byte, error) {
	cfg := NewConfig()
	cfg.Ignore = []string{}

	content, err := cfg.ToYAMLWithHeader(templateHeader + "#\n# All settings are shown with their default values.")
	if err != nil {
		return nil, fmt.Errorf("generate full template: %w", err)
	}
	return content, nil
}
