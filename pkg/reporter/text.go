package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/typscii/internal/ui/pretty"
	"github.com/yaklabco/typscii/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}
		if file.Result == nil || len(file.Result.Diagnostics) == 0 {
			continue
		}

		diagnostics := file.Result.Diagnostics
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(diagnostics)))

		for _, diag := range diagnostics {
			var sourceLine string
			if r.opts.ShowContext && file.Result.Snapshot != nil {
				sourceLine = file.Result.Snapshot.LineContent(diag.Span.Start.Line)
			}
			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(path, diag, r.opts.ShowContext, sourceLine))
			total++
		}

		fmt.Fprintln(r.bw)
	}

	switch {
	case !r.opts.ShowSummary:
	case r.opts.DetailedSummary:
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	default:
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
