// Package lexer turns typscii source text into a token stream.
package lexer

import (
	"unicode/utf8"

	"github.com/yaklabco/typscii/pkg/ast"
)

// Lex scans src and returns its complete token sequence.
// It never fails: any input produces tokens, worst case one long Text run.
// The result always ends with exactly one TokEOF.
func Lex(src string) []ast.Token {
	lex := &lexer{
		src: src,
		pos: ast.StartPos(),
	}
	return lex.run()
}

type lexer struct {
	src    string
	tokens []ast.Token

	// start and startPos mark the beginning of the token being scanned.
	start    int
	startPos ast.SourcePos

	// pos is the position of the next unread character.
	pos ast.SourcePos
}

func (l *lexer) run() []ast.Token {
	for !l.isAtEnd() {
		l.start = l.pos.Offset
		l.startPos = l.pos
		l.lexToken()
	}

	l.tokens = append(l.tokens, ast.Token{
		Kind: ast.TokEOF,
		Span: ast.Span(l.pos, l.pos),
	})
	return l.tokens
}

func (l *lexer) isAtEnd() bool {
	return l.pos.Offset >= len(l.src)
}

// peek returns the next unread byte, or 0 at end of input.
// Every delimiter is ASCII, so byte lookahead is enough.
func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.pos.Offset]
}

// advance consumes one character and updates the line/column position.
func (l *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.pos.Offset:])
	l.pos.Offset += size
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	return r
}

func (l *lexer) emit(kind ast.TokenKind) {
	l.tokens = append(l.tokens, ast.Token{
		Kind:   kind,
		Lexeme: l.src[l.start:l.pos.Offset],
		Span:   ast.Span(l.startPos, l.pos),
	})
}

var singleCharKinds = map[rune]ast.TokenKind{
	'\n': ast.TokNewline,
	'*':  ast.TokStar,
	'_':  ast.TokUnderscore,
	'`':  ast.TokBacktick,
	'(':  ast.TokLParen,
	')':  ast.TokRParen,
	'[':  ast.TokLBracket,
	']':  ast.TokRBracket,
	',':  ast.TokComma,
	'#':  ast.TokHash,
}

func (l *lexer) lexToken() {
	atLineStart := l.pos.Column == 1
	r := l.advance()

	if kind, ok := singleCharKinds[r]; ok {
		l.emit(kind)
		return
	}

	if r == '=' && atLineStart {
		l.headingMark()
		return
	}

	l.text()
}

func (l *lexer) headingMark() {
	for l.peek() == '=' {
		l.advance()
	}
	l.emit(ast.TokHeadingMark)
}

// text extends the current run up to the next delimiter or end of input.
// The first character has already been consumed, so runs are never empty.
func (l *lexer) text() {
	for !l.isAtEnd() && !isDelimiter(l.peek()) {
		l.advance()
	}
	l.emit(ast.TokText)
}

func isDelimiter(c byte) bool {
	switch c {
	case '\n', '*', '_', '`':
		return true
	default:
		return false
	}
}
