package ast

import "fmt"

// SourcePos is a 1-based line and column in the source text.
// Column counts decoded characters, not bytes.
type SourcePos struct {
	// Line is the 1-based line number.
	Line int

	// Column is the 1-based character column within the line.
	Column int

	// Offset is the 0-based byte index into the source.
	Offset int
}

// StartPos returns the position of the first character of any source.
func StartPos() SourcePos {
	return SourcePos{Line: 1, Column: 1, Offset: 0}
}

// IsValid returns true if this position has valid (positive) values.
func (p SourcePos) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Compare orders positions by (line, column).
// It returns -1 if p is before other, 1 if after, and 0 if equal.
func (p SourcePos) Compare(other SourcePos) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// Before returns true if p comes strictly before other.
func (p SourcePos) Before(other SourcePos) bool {
	return p.Compare(other) < 0
}

// String formats the position as "line:column".
func (p SourcePos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceSpan is a half-open range [Start, End) over source positions.
// End is the position immediately after the last consumed character.
type SourceSpan struct {
	Start SourcePos
	End   SourcePos
}

// Span builds a SourceSpan from two positions.
func Span(start, end SourcePos) SourceSpan {
	return SourceSpan{Start: start, End: end}
}

// IsValid returns true if both ends are valid and Start <= End.
func (s SourceSpan) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.Compare(s.End) <= 0
}

// IsEmpty returns true if the span covers no characters.
func (s SourceSpan) IsEmpty() bool {
	return s.Start.Compare(s.End) == 0
}

// Len returns the length of the span in bytes.
func (s SourceSpan) Len() int {
	return s.End.Offset - s.Start.Offset
}

// IsSingleLine returns true if start and end are on the same line.
func (s SourceSpan) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// Contains returns true if inner lies entirely within s.
func (s SourceSpan) Contains(inner SourceSpan) bool {
	return !inner.Start.Before(s.Start) && !s.End.Before(inner.End)
}

// Text returns the source text covered by the span.
// Returns an empty string if the span does not fit the source.
func (s SourceSpan) Text(src string) string {
	if s.Start.Offset < 0 || s.End.Offset > len(src) || s.Start.Offset > s.End.Offset {
		return ""
	}
	return src[s.Start.Offset:s.End.Offset]
}

// String formats the span as "line:col-line:col".
func (s SourceSpan) String() string {
	return s.Start.String() + "-" + s.End.String()
}
