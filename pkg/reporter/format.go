package reporter

import "github.com/yaklabco/typscii/pkg/config"

// Format is an output format for check results.
type Format = config.OutputFormat

// Output formats supported by the reporter.
const (
	FormatText = config.FormatText
	FormatJSON = config.FormatJSON
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(s string) (Format, error) {
	return config.ParseOutputFormat(s)
}
