package ast

// Node is implemented by every block and inline node.
// The set of node types is closed; consumers switch exhaustively over
// the concrete types below.
type Node interface {
	// Location returns the source span covered by the node.
	Location() SourceSpan

	node()
}

// Block is a top-level document node: *Heading or *Paragraph.
type Block interface {
	Node
	block()
}

// Inline is a paragraph content node: *Text, *Bold, *Italic or *Code.
type Inline interface {
	Node
	inline()
}

// Heading is a boxed title line. Its text is literal; headings carry no
// inline styling.
type Heading struct {
	// Level is the number of '=' characters in the marker (>= 1).
	Level int

	// Text is the literal heading text with surrounding whitespace trimmed.
	Text string

	Span SourceSpan
}

// Paragraph is a run of inline content terminated by a blank line or EOF.
type Paragraph struct {
	Inlines []Inline
	Span    SourceSpan
}

// Text is literal paragraph text.
type Text struct {
	Value string
	Span  SourceSpan
}

// Bold wraps children rendered in bold.
type Bold struct {
	Children []Inline
	Span     SourceSpan
}

// Italic wraps children rendered in italic.
type Italic struct {
	Children []Inline
	Span     SourceSpan
}

// Code is a verbatim code span. Its content is opaque to styling.
type Code struct {
	Value string
	Span  SourceSpan
}

func (n *Heading) Location() SourceSpan   { return n.Span }
func (n *Paragraph) Location() SourceSpan { return n.Span }
func (n *Text) Location() SourceSpan      { return n.Span }
func (n *Bold) Location() SourceSpan      { return n.Span }
func (n *Italic) Location() SourceSpan    { return n.Span }
func (n *Code) Location() SourceSpan      { return n.Span }

func (*Heading) node()   {}
func (*Paragraph) node() {}
func (*Text) node()      {}
func (*Bold) node()      {}
func (*Italic) node()    {}
func (*Code) node()      {}

func (*Heading) block()   {}
func (*Paragraph) block() {}

func (*Text) inline()   {}
func (*Bold) inline()   {}
func (*Italic) inline() {}
func (*Code) inline()   {}

// Document is the ordered sequence of blocks parsed from one source.
// Block order equals source order.
type Document struct {
	Blocks []Block
}

// Append adds a block to the end of the document.
func (d *Document) Append(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Blocks)
}

// Headings returns all headings in document order.
func (d *Document) Headings() []*Heading {
	var headings []*Heading
	for _, b := range d.Blocks {
		if h, ok := b.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Paragraphs returns all paragraphs in document order.
func (d *Document) Paragraphs() []*Paragraph {
	var paragraphs []*Paragraph
	for _, b := range d.Blocks {
		if p, ok := b.(*Paragraph); ok {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Children returns the direct inline children of n, or nil for leaves
// and blocks without inline content.
func Children(n Node) []Inline {
	switch v := n.(type) {
	case *Paragraph:
		return v.Inlines
	case *Bold:
		return v.Children
	case *Italic:
		return v.Children
	default:
		return nil
	}
}

// KindName returns a short name for the node's type.
func KindName(n Node) string {
	switch n.(type) {
	case *Heading:
		return "Heading"
	case *Paragraph:
		return "Paragraph"
	case *Text:
		return "Text"
	case *Bold:
		return "Bold"
	case *Italic:
		return "Italic"
	case *Code:
		return "Code"
	default:
		return "Unknown"
	}
}
