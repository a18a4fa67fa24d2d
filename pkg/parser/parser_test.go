package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typscii/pkg/ast"
	"github.com/yaklabco/typscii/pkg/lexer"
	"github.com/yaklabco/typscii/pkg/parser"
)

func parse(t *testing.T, src string) (*ast.Document, []parser.Diagnostic) {
	t.Helper()

	p := parser.New(lexer.Lex(src))
	doc := p.Parse()
	require.NotNil(t, doc)
	return doc, p.Diagnostics()
}

func paragraph(t *testing.T, doc *ast.Document, idx int) *ast.Paragraph {
	t.Helper()

	require.Greater(t, doc.Len(), idx)
	para, ok := doc.Blocks[idx].(*ast.Paragraph)
	require.True(t, ok, "block %d is %s, want Paragraph", idx, ast.KindName(doc.Blocks[idx]))
	return para
}

func TestParseHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		level int
		text  string
	}{
		{"level one", "= Title", 1, "Title"},
		{"level three", "=== Title\n", 3, "Title"},
		{"punctuation kept literal", "== A, (b) *c*", 2, "A, (b) *c*"},
		{"whitespace trimmed", "=   spaced out   \n", 1, "spaced out"},
		{"no text", "====", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, _ := parse(t, tt.src)
			require.Equal(t, 1, doc.Len())

			heading, ok := doc.Blocks[0].(*ast.Heading)
			require.True(t, ok)
			assert.Equal(t, tt.level, heading.Level)
			assert.Equal(t, tt.text, heading.Text)
			assert.Equal(t, "1:1", heading.Span.Start.String())
		})
	}
}

func TestParseHeadingSpanIncludesNewline(t *testing.T) {
	t.Parallel()

	doc, _ := parse(t, "== Hi\nbody")
	require.Equal(t, 2, doc.Len())

	heading := doc.Blocks[0].(*ast.Heading)
	assert.Equal(t, "1:1-2:1", heading.Span.String())

	para := paragraph(t, doc, 1)
	assert.Equal(t, "2:1-2:5", para.Span.String())
}

func TestParseEmptyHeadingDiagnostic(t *testing.T) {
	t.Parallel()

	_, diags := parse(t, "==\n")
	require.Len(t, diags, 1)
	assert.Equal(t, parser.CodeEmptyHeading, diags[0].Code)
	assert.Equal(t, parser.SeverityWarning, diags[0].Severity)
}

func TestParseUnclosedFallback(t *testing.T) {
	t.Parallel()

	doc, diags := parse(t, "*bold text")
	para := paragraph(t, doc, 0)

	require.Len(t, para.Inlines, 1)
	text, ok := para.Inlines[0].(*ast.Text)
	require.True(t, ok)
	assert.Equal(t, "*bold text", text.Value)
	assert.Equal(t, "1:1-1:11", text.Span.String())

	require.Len(t, diags, 1)
	assert.Equal(t, parser.CodeUnclosedDelimiter, diags[0].Code)
	assert.Equal(t, "1:1-1:2", diags[0].Span.String())
}

func TestParseUnclosedAtLineBreak(t *testing.T) {
	t.Parallel()

	doc, _ := parse(t, "a _b\nc_ d")
	para := paragraph(t, doc, 0)

	// Neither underscore closes on its own line, so everything is literal
	// and the line break folds into a space.
	assert.Equal(t, "a _b c_ d", ast.PlainText(para.Inlines))
	for _, n := range para.Inlines {
		_, ok := n.(*ast.Text)
		assert.True(t, ok)
	}
}

func TestParseInlineKinds(t *testing.T) {
	t.Parallel()

	doc, diags := parse(t, "x *b* _i_ `c`")
	assert.Empty(t, diags)

	para := paragraph(t, doc, 0)
	require.Len(t, para.Inlines, 6)

	assert.Equal(t, "x ", para.Inlines[0].(*ast.Text).Value)

	bold := para.Inlines[1].(*ast.Bold)
	require.Len(t, bold.Children, 1)
	assert.Equal(t, "b", bold.Children[0].(*ast.Text).Value)
	assert.Equal(t, "1:3-1:6", bold.Span.String())

	italic := para.Inlines[3].(*ast.Italic)
	assert.Equal(t, "i", ast.PlainText(italic.Children))

	code := para.Inlines[5].(*ast.Code)
	assert.Equal(t, "c", code.Value)
}

func TestParseNested(t *testing.T) {
	t.Parallel()

	doc, diags := parse(t, "*a _b_ c*")
	assert.Empty(t, diags)

	para := paragraph(t, doc, 0)
	require.Len(t, para.Inlines, 1)

	bold, ok := para.Inlines[0].(*ast.Bold)
	require.True(t, ok)
	require.Len(t, bold.Children, 3)
	assert.Equal(t, "a ", bold.Children[0].(*ast.Text).Value)
	italic, ok := bold.Children[1].(*ast.Italic)
	require.True(t, ok)
	assert.Equal(t, "b", ast.PlainText(italic.Children))
	assert.Equal(t, " c", bold.Children[2].(*ast.Text).Value)
}

func TestParseCodeIsVerbatim(t *testing.T) {
	t.Parallel()

	doc, _ := parse(t, "`a *b* _c_`")
	para := paragraph(t, doc, 0)

	require.Len(t, para.Inlines, 1)
	code, ok := para.Inlines[0].(*ast.Code)
	require.True(t, ok)
	assert.Equal(t, "a *b* _c_", code.Value)
}

func TestParseInnerUnclosedStopsAtEnclosingCloser(t *testing.T) {
	t.Parallel()

	doc, diags := parse(t, "*a _b*")
	para := paragraph(t, doc, 0)

	require.Len(t, para.Inlines, 1)
	bold, ok := para.Inlines[0].(*ast.Bold)
	require.True(t, ok)
	assert.Equal(t, "a _b", ast.PlainText(bold.Children))

	require.Len(t, diags, 1)
	assert.Equal(t, parser.CodeUnclosedDelimiter, diags[0].Code)
}

func TestParseEmptySpan(t *testing.T) {
	t.Parallel()

	doc, diags := parse(t, "**")
	para := paragraph(t, doc, 0)

	require.Len(t, para.Inlines, 1)
	bold, ok := para.Inlines[0].(*ast.Bold)
	require.True(t, ok)
	assert.Empty(t, bold.Children)

	require.Len(t, diags, 1)
	assert.Equal(t, parser.CodeEmptySpan, diags[0].Code)
	assert.Equal(t, parser.SeverityInfo, diags[0].Severity)
}

func TestParseParagraphSeparation(t *testing.T) {
	t.Parallel()

	doc, _ := parse(t, "first line\nsecond line\n\nthird\n\n\n")
	require.Equal(t, 2, doc.Len())

	first := paragraph(t, doc, 0)
	require.Len(t, first.Inlines, 1)
	assert.Equal(t, "first line second line", first.Inlines[0].(*ast.Text).Value)
	assert.Equal(t, "1:1-2:12", first.Span.String())

	second := paragraph(t, doc, 1)
	assert.Equal(t, "third", ast.PlainText(second.Inlines))
}

func TestParseNewlineFolding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no doubled space", "a \nb", "a b"},
		{"space after span", "*a*\nb", "a b"},
		{"leading newlines skipped", "\n\na\nb", "a b"},
		{"heading mark inside paragraph is literal", "a\n== b", "a == b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, _ := parse(t, tt.src)
			require.Equal(t, 1, doc.Len())
			assert.Equal(t, tt.want, ast.PlainText(paragraph(t, doc, 0).Inlines))
		})
	}
}

func TestParseOrderPreservation(t *testing.T) {
	t.Parallel()

	src := "= One\n\npara one\n\n== Two\npara two\n\n=== Three\n\npara three"
	doc, _ := parse(t, src)

	var got []string
	for _, b := range doc.Blocks {
		switch v := b.(type) {
		case *ast.Heading:
			got = append(got, v.Text)
		case *ast.Paragraph:
			got = append(got, ast.PlainText(v.Inlines))
		}
	}

	assert.Equal(t, []string{"One", "para one", "Two", "para two", "Three", "para three"}, got)
}

func TestParseSpanContainment(t *testing.T) {
	t.Parallel()

	src := "intro *bold _it `code` it_ bold* and _x *y* z_\nnext `z`"
	doc, _ := parse(t, src)

	var check func(parent ast.SourceSpan, inlines []ast.Inline)
	check = func(parent ast.SourceSpan, inlines []ast.Inline) {
		for _, n := range inlines {
			assert.True(t, n.Location().IsValid(), "%s span invalid", ast.KindName(n))
			assert.True(t, parent.Contains(n.Location()),
				"%s %s not within %s", ast.KindName(n), n.Location(), parent)
			check(n.Location(), ast.Children(n))
		}
	}

	for _, para := range doc.Paragraphs() {
		check(para.Span, para.Inlines)
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	doc, diags := parse(t, "")
	assert.Equal(t, 0, doc.Len())
	assert.Empty(t, diags)

	doc, _ = parse(t, "\n\n")
	assert.Equal(t, 0, doc.Len())
}

func TestNewPanicsWithoutEOF(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { parser.New(nil) })
	assert.Panics(t, func() {
		parser.New([]ast.Token{{Kind: ast.TokText, Lexeme: "x"}})
	})
}
