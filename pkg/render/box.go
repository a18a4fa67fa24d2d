package render

import (
	"bytes"
	"strings"

	"github.com/muesli/reflow/ansi"

	"github.com/yaklabco/typscii/pkg/ast"
)

// BoxGlyphs is the border glyph set for a heading box.
type BoxGlyphs struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var (
	doubleBox  = BoxGlyphs{"╔", "╗", "╚", "╝", "═", "║"}
	heavyBox   = BoxGlyphs{"┏", "┓", "┗", "┛", "━", "┃"}
	thinBox    = BoxGlyphs{"┌", "┐", "└", "┘", "─", "│"}
	roundedBox = BoxGlyphs{"╭", "╮", "╰", "╯", "─", "│"}
)

// GlyphsForLevel returns the border glyphs for a heading level.
// Lower levels get heavier borders.
func GlyphsForLevel(level int) BoxGlyphs {
	switch {
	case level <= 1:
		return doubleBox
	case level == 2:
		return heavyBox
	case level == 3:
		return thinBox
	default:
		return roundedBox
	}
}

func writeHeading(buf *bytes.Buffer, h *ast.Heading, cfg Config) {
	glyphs := GlyphsForLevel(h.Level)
	inner := ansi.PrintableRuneWidth(h.Text) + 2*cfg.HeadingPaddingX
	blank := strings.Repeat(" ", inner)
	pad := strings.Repeat(" ", cfg.HeadingPaddingX)

	buf.WriteString(glyphs.TopLeft + strings.Repeat(glyphs.Horizontal, inner) + glyphs.TopRight + "\n")
	for range cfg.HeadingPaddingY {
		buf.WriteString(glyphs.Vertical + blank + glyphs.Vertical + "\n")
	}
	buf.WriteString(glyphs.Vertical + pad + h.Text + pad + glyphs.Vertical + "\n")
	for range cfg.HeadingPaddingY {
		buf.WriteString(glyphs.Vertical + blank + glyphs.Vertical + "\n")
	}
	buf.WriteString(glyphs.BottomLeft + strings.Repeat(glyphs.Horizontal, inner) + glyphs.BottomRight + "\n")
}
