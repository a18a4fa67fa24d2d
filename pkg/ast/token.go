package ast

// TokenKind classifies a lexeme of typscii source.
type TokenKind uint16

// Token kinds produced by the lexer.
const (
	TokNewline     TokenKind = iota
	TokHeadingMark           // run of '=' at column 1
	TokStar                  // '*'
	TokUnderscore            // '_'
	TokBacktick              // '`'
	TokText

	// Punctuation the lexer splits out when it begins a token.
	// The parser treats all of these as literal text.
	TokLParen   // '('
	TokRParen   // ')'
	TokLBracket // '['
	TokRBracket // ']'
	TokComma    // ','
	TokHash     // '#'

	TokEOF
)

var tokenKindNames = [...]string{
	TokNewline:     "Newline",
	TokHeadingMark: "HeadingMark",
	TokStar:        "Star",
	TokUnderscore:  "Underscore",
	TokBacktick:    "Backtick",
	TokText:        "Text",
	TokLParen:      "LParen",
	TokRParen:      "RParen",
	TokLBracket:    "LBracket",
	TokRBracket:    "RBracket",
	TokComma:       "Comma",
	TokHash:        "Hash",
	TokEOF:         "EOF",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(?)"
}

// IsPunctuation reports whether the kind is one of the literal punctuation kinds.
func (k TokenKind) IsPunctuation() bool {
	switch k {
	case TokLParen, TokRParen, TokLBracket, TokRBracket, TokComma, TokHash:
		return true
	default:
		return false
	}
}

// Token is an immutable lexeme with its kind and source span.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Lexeme is the exact source text of the token.
	// For TokHeadingMark its length is the heading level.
	Lexeme string

	// Span locates the token in the source.
	Span SourceSpan
}

// Len returns the length of the lexeme in bytes.
func (t Token) Len() int {
	return len(t.Lexeme)
}

// ValidateTokens checks that a token slice is well formed:
//   - it ends with exactly one EOF token,
//   - lexemes are contiguous and cover [0, contentLen),
//   - every span satisfies Start <= End.
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokEOF {
		return false
	}

	offset := 0
	for i, tok := range tokens {
		if tok.Kind == TokEOF && i != len(tokens)-1 {
			return false
		}
		if tok.Span.Start.Compare(tok.Span.End) > 0 {
			return false
		}
		if tok.Span.Start.Offset != offset || tok.Span.Len() != len(tok.Lexeme) {
			return false
		}
		offset = tok.Span.End.Offset
	}

	return offset == contentLen
}
