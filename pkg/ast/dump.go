package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented, human-readable tree of doc to w.
func Dump(w io.Writer, doc *Document) error {
	if _, err := fmt.Fprintf(w, "Document (%d blocks)\n", doc.Len()); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	for _, b := range doc.Blocks {
		if err := dumpNode(w, b, 1); err != nil {
			return err
		}
	}
	return nil
}

func dumpNode(w io.Writer, n Node, depth int) error {
	indent := strings.Repeat("  ", depth)

	var line string
	switch v := n.(type) {
	case *Heading:
		line = fmt.Sprintf("%sHeading level=%d %s %q", indent, v.Level, v.Span, v.Text)
	case *Text:
		line = fmt.Sprintf("%sText %s %q", indent, v.Span, v.Value)
	case *Code:
		line = fmt.Sprintf("%sCode %s %q", indent, v.Span, v.Value)
	default:
		line = fmt.Sprintf("%s%s %s", indent, KindName(n), n.Location())
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, child := range Children(n) {
		if err := dumpNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// DumpTokens writes one line per token to w.
func DumpTokens(w io.Writer, tokens []Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%-12s %-9s %q\n", tok.Kind, tok.Span.Start, tok.Lexeme); err != nil {
			return err
		}
	}
	return nil
}
