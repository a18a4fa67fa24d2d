package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typscii/pkg/ast"
	"github.com/yaklabco/typscii/pkg/lexer"
)

type tok struct {
	kind   ast.TokenKind
	lexeme string
}

func kinds(tokens []ast.Token) []tok {
	out := make([]tok, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, tok{t.Kind, t.Lexeme})
	}
	return out
}

func TestLex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []tok
	}{
		{
			name: "empty input",
			src:  "",
			want: []tok{{ast.TokEOF, ""}},
		},
		{
			name: "heading",
			src:  "=== Title\n",
			want: []tok{
				{ast.TokHeadingMark, "==="},
				{ast.TokText, " Title"},
				{ast.TokNewline, "\n"},
				{ast.TokEOF, ""},
			},
		},
		{
			name: "equals not at column one is text",
			src:  "a = b\n==x",
			want: []tok{
				{ast.TokText, "a = b"},
				{ast.TokNewline, "\n"},
				{ast.TokHeadingMark, "=="},
				{ast.TokText, "x"},
				{ast.TokEOF, ""},
			},
		},
		{
			name: "inline delimiters",
			src:  "a *b* _c_ `d`",
			want: []tok{
				{ast.TokText, "a "},
				{ast.TokStar, "*"},
				{ast.TokText, "b"},
				{ast.TokStar, "*"},
				{ast.TokText, " "},
				{ast.TokUnderscore, "_"},
				{ast.TokText, "c"},
				{ast.TokUnderscore, "_"},
				{ast.TokText, " "},
				{ast.TokBacktick, "`"},
				{ast.TokText, "d"},
				{ast.TokBacktick, "`"},
				{ast.TokEOF, ""},
			},
		},
		{
			name: "punctuation only splits at token start",
			src:  "(see [x], #1)",
			want: []tok{
				{ast.TokLParen, "("},
				{ast.TokText, "see [x], #1)"},
				{ast.TokEOF, ""},
			},
		},
		{
			name: "punctuation after a delimiter",
			src:  "*,#[]",
			want: []tok{
				{ast.TokStar, "*"},
				{ast.TokComma, ","},
				{ast.TokHash, "#"},
				{ast.TokLBracket, "["},
				{ast.TokRBracket, "]"},
				{ast.TokEOF, ""},
			},
		},
		{
			name: "blank lines",
			src:  "a\n\nb",
			want: []tok{
				{ast.TokText, "a"},
				{ast.TokNewline, "\n"},
				{ast.TokNewline, "\n"},
				{ast.TokText, "b"},
				{ast.TokEOF, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := lexer.Lex(tt.src)
			assert.Equal(t, tt.want, kinds(tokens))
			assert.True(t, ast.ValidateTokens(tokens, len(tt.src)))
		})
	}
}

func TestLexPositions(t *testing.T) {
	t.Parallel()

	tokens := lexer.Lex("= Hi\n*ü*")
	require.Len(t, tokens, 7)

	// HeadingMark "=".
	assert.Equal(t, "1:1-1:2", tokens[0].Span.String())
	// Text " Hi".
	assert.Equal(t, "1:2-1:5", tokens[1].Span.String())
	// Newline ends at the start of the next line.
	assert.Equal(t, "1:5-2:1", tokens[2].Span.String())
	// Multi-byte rune advances the column by one.
	assert.Equal(t, "2:2-2:3", tokens[4].Span.String())
	assert.Equal(t, 2, tokens[4].Span.Len())
	// EOF collapses to the final position.
	eof := tokens[6]
	assert.Equal(t, ast.TokEOF, eof.Kind)
	assert.True(t, eof.Span.IsEmpty())
	assert.Equal(t, "2:4", eof.Span.Start.String())
}

func TestLexTextNeverCrossesDelimiters(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"plain text only",
		"mixed *bold* and _it_ and `code`\nnext line",
		"= h\n\n== h2\npara with, commas (and parens)",
		"**__``",
		"\n\n\n",
		"naïve café — ünïcödé",
	}

	for _, src := range inputs {
		tokens := lexer.Lex(src)
		require.True(t, ast.ValidateTokens(tokens, len(src)), "input %q", src)

		var rebuilt strings.Builder
		for _, tk := range tokens {
			if tk.Kind == ast.TokText {
				assert.NotEmpty(t, tk.Lexeme)
				assert.False(t, strings.ContainsAny(tk.Lexeme, "\n*_`"), "text %q crosses a delimiter", tk.Lexeme)
			}
			rebuilt.WriteString(tk.Lexeme)
		}
		assert.Equal(t, src, rebuilt.String())
	}
}
