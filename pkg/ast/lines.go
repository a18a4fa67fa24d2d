package ast

// BuildLines constructs line metadata from source content.
// Input is expected to be LF-normalised.
func BuildLines(content string) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(content); idx++ {
		if content[idx] != '\n' {
			continue
		}
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: idx,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	// The last line may lack a trailing newline, or be empty after one.
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the source.
func (s *Snapshot) LineCount() int {
	return len(s.Lines)
}

// LineContent returns the text of a 1-based line without its newline.
// Returns "" if the line is out of range.
func (s *Snapshot) LineContent(line int) string {
	if line < 1 || line > len(s.Lines) {
		return ""
	}
	info := s.Lines[line-1]
	return s.Content[info.StartOffset:info.NewlineStart]
}
