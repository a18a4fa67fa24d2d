package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/typscii/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	Format Format

	// Color controls styling of text output.
	Color config.ColorMode

	// ShowContext includes the source line and a span marker.
	ShowContext bool

	// ShowSummary appends aggregate statistics.
	ShowSummary bool

	// DetailedSummary renders the statistics as a block instead of one line.
	DetailedSummary bool

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir makes reported paths relative when set.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       config.ColorAuto,
		ShowContext: true,
		ShowSummary: true,
	}
}
