package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Layout fields.
	FieldWidth   = "width"
	FieldIndent  = "indent"
	FieldPlain   = "plain"
	FieldJobs    = "jobs"
	FieldBytes   = "bytes"
	FieldWritten = "written"
	FieldFormat  = "format"
	FieldColor   = "color"
	FieldSource  = "source"
	FieldPattern = "pattern"

	// Pipeline fields.
	FieldTokens      = "tokens"
	FieldBlocks      = "blocks"
	FieldDiagnostics = "diagnostics"
	FieldDuration    = "duration"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesWithIssues  = "files_with_issues"
	FieldFilesFailed      = "files_failed"
	FieldDiagnosticsTotal = "diagnostics_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
