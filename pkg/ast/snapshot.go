package ast

// Snapshot is an immutable, lossless view of one typscii source.
// It holds the raw content, line metadata, token stream and document.
type Snapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full source text.
	Content string

	// Lines contains metadata for each line in the source.
	Lines []LineInfo

	// Tokens is the full token stream, terminated by a single EOF token.
	Tokens []Token

	// Document is the parsed document.
	Document *Document
}

// LineInfo holds metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index of the terminating '\n'.
	// For a last line without newline this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of source).
	EndOffset int
}

// NewSnapshot creates a Snapshot from content.
// Tokens and Document are filled in by the pipeline.
func NewSnapshot(path, content string) *Snapshot {
	return &Snapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// SpanText returns the source text covered by span.
func (s *Snapshot) SpanText(span SourceSpan) string {
	return span.Text(s.Content)
}
