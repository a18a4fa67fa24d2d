package pretty

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"

	"github.com/yaklabco/typscii/pkg/parser"
)

// sourceIndent aligns source context under the diagnostic line.
const sourceIndent = "        "

// FormatDiagnostic formats a single diagnostic for terminal output.
// sourceLine is the text of the diagnostic's first line; it is shown with a
// marker under the span when showContext is set.
func (s *Styles) FormatDiagnostic(path string, diag parser.Diagnostic, showContext bool, sourceLine string) string {
	var builder strings.Builder

	start := diag.Span.Start
	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(path), start.Line, start.Column)

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		s.Code.Render("("+diag.Code+")"),
	)

	if showContext && sourceLine != "" {
		width := 1
		if diag.Span.IsSingleLine() {
			width = max(1, diag.Span.End.Column-start.Column)
		}
		builder.WriteString(s.FormatSourceContext(sourceLine, start.Column, width))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev parser.Severity) string {
	switch sev {
	case parser.SeverityWarning:
		return s.Warning.Render("warning")
	case parser.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a marker under the
// runes [column, column+width). Columns are 1-based rune counts; the marker
// is placed by display width so wide characters line up.
func (s *Styles) FormatSourceContext(line string, column, width int) string {
	var builder strings.Builder

	builder.WriteString(sourceIndent + s.SourceLine.Render(line) + "\n")

	if column <= 0 {
		return builder.String()
	}

	runes := []rune(line)
	startIdx := min(column-1, len(runes))
	endIdx := min(startIdx+max(width, 1), len(runes))

	pad := ansi.PrintableRuneWidth(string(runes[:startIdx]))
	marked := max(1, ansi.PrintableRuneWidth(string(runes[startIdx:endIdx])))

	marker := "^" + strings.Repeat("~", marked-1)
	builder.WriteString(sourceIndent + strings.Repeat(" ", pad) + s.Caret.Render(marker) + "\n")

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case issueCount == 1:
		header += s.Dim.Render(" (1 issue)")
	case issueCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}

// FormatFileError formats a file that could not be processed.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n",
		s.FilePath.Render(path),
		s.Error.Render(fmt.Sprintf("error: %v", err)),
	)
}
