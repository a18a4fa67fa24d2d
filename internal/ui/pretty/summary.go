package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/typscii/pkg/parser"
	"github.com/yaklabco/typscii/pkg/runner"
)

const summaryDividerWidth = 40

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 issues (2 warnings, 1 info) in 2 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.DiagnosticsTotal == 0 {
		parts = append(parts, s.Success.Render("No issues found")+
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)",
				stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files"))))
	} else {
		var severityParts []string
		if warnings := stats.DiagnosticsBySeverity[parser.SeverityWarning]; warnings > 0 {
			severityParts = append(severityParts,
				s.Warning.Render(fmt.Sprintf("%d %s", warnings, plural(warnings, "warning", "warnings"))))
		}
		if infos := stats.DiagnosticsBySeverity[parser.SeverityInfo]; infos > 0 {
			severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
		}

		main := fmt.Sprintf("%d %s", stats.DiagnosticsTotal, plural(stats.DiagnosticsTotal, "issue", "issues"))
		if len(severityParts) > 0 {
			main += " (" + strings.Join(severityParts, ", ") + ")"
		}
		parts = append(parts, main,
			fmt.Sprintf("in %d %s", stats.FilesWithIssues, plural(stats.FilesWithIssues, "file", "files")))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed",
			stats.FilesErrored, plural(stats.FilesErrored, "file", "files"))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Warning.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal)) + "\n")
	if warnings := stats.DiagnosticsBySeverity[parser.SeverityWarning]; warnings > 0 {
		builder.WriteString("    Warnings:        " + s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := stats.DiagnosticsBySeverity[parser.SeverityInfo]; infos > 0 {
		builder.WriteString("    Info:            " + s.Info.Render(strconv.Itoa(infos)) + "\n")
	}
	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Check failed"))
	case stats.DiagnosticsTotal > 0:
		builder.WriteString(s.Warning.Render("Check completed with issues"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
