// Package render lays out a typscii Document for a text terminal.
//
// Headings are drawn as boxes whose border weight depends on the level.
// Paragraphs are flattened into style runs and word-wrapped to the
// configured width, with ANSI SGR escapes emitted only where the style
// changes. Width is measured in printable cells; escapes count as zero.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yaklabco/typscii/pkg/ast"
)

// Render writes the rendering of doc to w.
// Every block is followed by one blank line.
func Render(w io.Writer, doc *ast.Document, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	renderDocument(&buf, doc, cfg)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write rendered output: %w", err)
	}
	return nil
}

// RenderString returns the rendering of doc.
// It panics if cfg is invalid; callers taking user input use Render.
func RenderString(doc *ast.Document, cfg Config) string {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	renderDocument(&buf, doc, cfg)
	return buf.String()
}

func renderDocument(buf *bytes.Buffer, doc *ast.Document, cfg Config) {
	if doc == nil {
		return
	}

	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case *ast.Heading:
			writeHeading(buf, b, cfg)
		case *ast.Paragraph:
			writeParagraph(buf, Flatten(b.Inlines), cfg)
		default:
			panic(fmt.Sprintf("render: unknown block node %T", block))
		}
		buf.WriteByte('\n')
	}
}
