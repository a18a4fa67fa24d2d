// Package parser builds a typscii Document from a token stream.
//
// The parser is a single-pass recursive descent over the tokens produced by
// the lexer. It never fails on input: unclosed or ambiguous markup falls back
// to literal text and is reported through Diagnostics.
package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/typscii/pkg/ast"
)

// Parser holds the cursor state for one parse.
// A Parser is not safe for concurrent use; create one per token stream.
type Parser struct {
	tokens      []ast.Token
	current     int
	diagnostics []Diagnostic
}

// New creates a parser over tokens. The slice must end with a single
// TokEOF, as produced by lexer.Lex; anything else is a programming error.
func New(tokens []ast.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != ast.TokEOF {
		panic("parser: token stream must end with EOF")
	}
	return &Parser{tokens: tokens}
}

// Parse is a convenience wrapper for New(tokens).Parse().
func Parse(tokens []ast.Token) *ast.Document {
	return New(tokens).Parse()
}

// Parse consumes the whole token stream and returns the document.
func (p *Parser) Parse() *ast.Document {
	doc := &ast.Document{}

	for !p.isAtEnd() {
		p.skipBlanks()
		if p.isAtEnd() {
			break
		}
		doc.Append(p.block())
	}

	return doc
}

// Diagnostics returns the recovered ambiguities found by Parse, in source order
// of their detection.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}

func (p *Parser) block() ast.Block {
	if p.check(ast.TokHeadingMark) {
		return p.heading()
	}
	return p.paragraph()
}

func (p *Parser) heading() *ast.Heading {
	mark := p.advance()

	var text strings.Builder
	for !p.isAtEnd() && !p.check(ast.TokNewline) {
		text.WriteString(p.advance().Lexeme)
	}
	p.match(ast.TokNewline)

	heading := &ast.Heading{
		Level: len(mark.Lexeme),
		Text:  strings.TrimSpace(text.String()),
		Span:  ast.Span(mark.Span.Start, p.previous().Span.End),
	}

	if heading.Text == "" {
		p.report(CodeEmptyHeading, SeverityWarning, heading.Span,
			fmt.Sprintf("level %d heading has no text", heading.Level))
	}

	return heading
}

func (p *Parser) paragraph() *ast.Paragraph {
	start := p.peek().Span.Start
	end := start

	var (
		acc     textAccumulator
		inlines []ast.Inline
	)

	for !p.isAtEnd() {
		if p.check(ast.TokNewline) {
			next := p.peekAt(1).Kind
			if next == ast.TokNewline || next == ast.TokEOF {
				break
			}
			nl := p.advance()
			acc.appendSpace(nl.Span, len(inlines) > 0)
			continue
		}

		tok := p.peek()
		rule, ok := spanRules[tok.Kind]
		if !ok {
			acc.append(p.advance().Lexeme, tok.Span)
			end = tok.Span.End
			continue
		}

		node, literal := p.delimited(rule, nil)
		if node != nil {
			inlines = acc.flushTo(inlines)
			inlines = append(inlines, node)
		} else {
			acc.append(literal, ast.Span(tok.Span.Start, p.previous().Span.End))
		}
		end = p.previous().Span.End
	}

	inlines = acc.flushTo(inlines)

	// Leave the cursor on the next block.
	p.skipBlanks()

	return &ast.Paragraph{
		Inlines: inlines,
		Span:    ast.Span(start, end),
	}
}

// spanRule parameterises delimited inline parsing.
type spanRule struct {
	delim ast.TokenKind

	// verbatim spans take their content literally; other spans parse
	// nested spans recursively.
	verbatim bool

	build func(children []ast.Inline, content string, span ast.SourceSpan) ast.Inline
}

var spanRules = map[ast.TokenKind]spanRule{
	ast.TokStar: {
		delim: ast.TokStar,
		build: func(children []ast.Inline, _ string, span ast.SourceSpan) ast.Inline {
			return &ast.Bold{Children: children, Span: span}
		},
	},
	ast.TokUnderscore: {
		delim: ast.TokUnderscore,
		build: func(children []ast.Inline, _ string, span ast.SourceSpan) ast.Inline {
			return &ast.Italic{Children: children, Span: span}
		},
	},
	ast.TokBacktick: {
		delim:    ast.TokBacktick,
		verbatim: true,
		build: func(_ []ast.Inline, content string, span ast.SourceSpan) ast.Inline {
			return &ast.Code{Value: content, Span: span}
		},
	},
}

// delimited parses a span starting at the current opening delimiter.
// On success it returns the node. If no closer is found before a newline,
// EOF, or a closer of an enclosing span, it returns nil and the literal
// source text of every token it consumed, opening delimiter included.
func (p *Parser) delimited(rule spanRule, enclosing []ast.TokenKind) (ast.Inline, string) {
	first := p.current
	open := p.advance()

	var (
		acc      textAccumulator
		children []ast.Inline
		content  strings.Builder
	)

	nested := append(slices.Clone(enclosing), rule.delim)

	for {
		tok := p.peek()

		switch {
		case tok.Kind == rule.delim:
			closer := p.advance()
			span := ast.Span(open.Span.Start, closer.Span.End)
			children = acc.flushTo(children)
			if len(children) == 0 && content.Len() == 0 {
				p.report(CodeEmptySpan, SeverityInfo, span,
					fmt.Sprintf("empty %s span", delimiterName(rule.delim)))
			}
			return rule.build(children, content.String(), span), ""

		case tok.Kind == ast.TokNewline, tok.Kind == ast.TokEOF,
			!rule.verbatim && slices.Contains(enclosing, tok.Kind):
			literal := p.lexemes(first, p.current)
			p.report(CodeUnclosedDelimiter, SeverityWarning, open.Span,
				fmt.Sprintf("unclosed %s delimiter %q; kept as literal text", delimiterName(rule.delim), open.Lexeme))
			return nil, literal

		case rule.verbatim:
			content.WriteString(p.advance().Lexeme)

		default:
			inner, ok := spanRules[tok.Kind]
			if !ok {
				acc.append(p.advance().Lexeme, tok.Span)
				continue
			}
			node, literal := p.delimited(inner, nested)
			if node != nil {
				children = acc.flushTo(children)
				children = append(children, node)
			} else {
				acc.append(literal, ast.Span(tok.Span.Start, p.previous().Span.End))
			}
		}
	}
}

// lexemes concatenates the source text of tokens[from:to].
func (p *Parser) lexemes(from, to int) string {
	var b strings.Builder
	for _, tok := range p.tokens[from:to] {
		b.WriteString(tok.Lexeme)
	}
	return b.String()
}

func (p *Parser) report(code string, severity Severity, span ast.SourceSpan, msg string) {
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Code:     code,
		Severity: severity,
		Message:  msg,
		Span:     span,
	})
}

// Cursor primitives.

func (p *Parser) peek() ast.Token {
	return p.tokens[p.current]
}

// peekAt looks ahead n tokens, clamping to the final EOF.
func (p *Parser) peekAt(n int) ast.Token {
	idx := min(p.current+n, len(p.tokens)-1)
	return p.tokens[idx]
}

func (p *Parser) previous() ast.Token {
	if p.current == 0 {
		panic("parser: previous() called before any token was consumed")
	}
	return p.tokens[p.current-1]
}

func (p *Parser) advance() ast.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == ast.TokEOF
}

func (p *Parser) check(kind ast.TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kind ast.TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) skipBlanks() {
	for p.match(ast.TokNewline) {
		// keep eating newlines
	}
}
