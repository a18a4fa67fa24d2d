package parser

import (
	"strings"

	"github.com/yaklabco/typscii/pkg/ast"
)

// textAccumulator batches consecutive literal content into one Text node.
type textAccumulator struct {
	text     strings.Builder
	start    ast.SourcePos
	end      ast.SourcePos
	hasStart bool
}

// append adds literal content covering span.
func (a *textAccumulator) append(lexeme string, span ast.SourceSpan) {
	if !a.hasStart {
		a.start = span.Start
		a.hasStart = true
	}
	a.text.WriteString(lexeme)
	a.end = span.End
}

// appendSpace folds a line break into a single space. The space is never
// doubled, and it is only leading when allowLeading is set (content precedes
// the accumulator in the same paragraph).
func (a *textAccumulator) appendSpace(span ast.SourceSpan, allowLeading bool) {
	if a.text.Len() == 0 {
		if !allowLeading {
			return
		}
		a.append(" ", span)
		return
	}
	if strings.HasSuffix(a.text.String(), " ") {
		return
	}
	a.text.WriteByte(' ')
	a.end = span.End
}

func (a *textAccumulator) isEmpty() bool {
	return a.text.Len() == 0
}

// flushTo appends the pending Text node to out, if any, and resets.
func (a *textAccumulator) flushTo(out []ast.Inline) []ast.Inline {
	if a.isEmpty() {
		return out
	}
	node := &ast.Text{
		Value: a.text.String(),
		Span:  ast.Span(a.start, a.end),
	}
	a.text.Reset()
	a.hasStart = false
	return append(out, node)
}
