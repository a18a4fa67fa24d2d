package render

import (
	"bytes"
	"strings"

	"github.com/muesli/reflow/ansi"
)

// wrapper lays out the runs of one paragraph.
type wrapper struct {
	buf *bytes.Buffer
	cfg Config

	col       int
	lineEmpty bool
	active    StyleState
}

func writeParagraph(buf *bytes.Buffer, runs []Run, cfg Config) {
	w := &wrapper{
		buf:       buf,
		cfg:       cfg,
		col:       cfg.ParagraphIndent,
		lineEmpty: true,
	}

	// Runs are split independently: adjacent runs never share a word.
	for _, run := range runs {
		for _, word := range strings.Fields(run.Text) {
			w.word(word, run.Style)
		}
	}

	w.endLine()
}

func (w *wrapper) word(word string, style StyleState) {
	width := ansi.PrintableRuneWidth(word)

	if !w.lineEmpty {
		if w.col+1+width > w.cfg.Width {
			w.endLine()
		} else {
			// The separating space is always unstyled.
			w.setStyle(StyleState{})
			w.buf.WriteByte(' ')
			w.col++
		}
	}

	if w.lineEmpty {
		w.buf.WriteString(strings.Repeat(" ", w.cfg.ParagraphIndent))
		w.lineEmpty = false
	}

	w.setStyle(style)
	w.buf.WriteString(word)
	w.col += width
}

func (w *wrapper) setStyle(style StyleState) {
	if !w.cfg.Plain {
		w.buf.WriteString(Transition(w.active, style))
	}
	w.active = style
}

// endLine closes the current line. Styles never span a line break, so the
// indent of the next line is never highlighted.
func (w *wrapper) endLine() {
	if !w.active.IsDefault() {
		w.setStyle(StyleState{})
	}
	w.buf.WriteByte('\n')
	w.col = w.cfg.ParagraphIndent
	w.lineEmpty = true
}
