package runner

import (
	"strings"

	"github.com/yaklabco/typscii/pkg/parser"
	"github.com/yaklabco/typscii/pkg/pipeline"
)

// FileOutcome is the result of processing one discovered file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result is nil when Error is set.
	Result *pipeline.Result

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesErrored    int
	FilesWithIssues int

	DiagnosticsTotal      int
	DiagnosticsBySeverity map[parser.Severity]int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, in sorted path order.
	Files []FileOutcome

	Stats Stats
}

// HasIssues reports whether any file produced diagnostics.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// FirstError returns the first per-file error in path order, or nil.
func (r *Result) FirstError() error {
	if r == nil {
		return nil
	}
	for _, f := range r.Files {
		if f.Error != nil {
			return f.Error
		}
	}
	return nil
}

// Output concatenates the rendered output of every successful file in
// path order.
func (r *Result) Output() string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	for _, f := range r.Files {
		if f.Result != nil {
			b.WriteString(f.Result.Output)
		}
	}
	return b.String()
}

func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[parser.Severity]int),
	}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	r.Stats.DiagnosticsTotal += len(outcome.Result.Diagnostics)
	if outcome.Result.HasDiagnostics() {
		r.Stats.FilesWithIssues++
	}
	for _, diag := range outcome.Result.Diagnostics {
		r.Stats.DiagnosticsBySeverity[diag.Severity]++
	}
}
