package parser

import (
	"fmt"

	"github.com/yaklabco/typscii/pkg/ast"
)

// Severity indicates how noteworthy a parser diagnostic is.
type Severity string

const (
	// SeverityWarning marks markup that was probably written by mistake.
	SeverityWarning Severity = "warning"

	// SeverityInfo marks legal but unusual markup.
	SeverityInfo Severity = "info"
)

// Diagnostic codes.
const (
	CodeUnclosedDelimiter = "unclosed-delimiter"
	CodeEmptyHeading      = "empty-heading"
	CodeEmptySpan         = "empty-span"
)

// Diagnostic records a recovered markup ambiguity.
// Diagnostics never change the parsed document.
type Diagnostic struct {
	Code     string
	Severity Severity
	Message  string
	Span     ast.SourceSpan
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s [%s]", d.Span.Start, d.Message, d.Code)
}

func delimiterName(kind ast.TokenKind) string {
	switch kind {
	case ast.TokStar:
		return "bold"
	case ast.TokUnderscore:
		return "italic"
	case ast.TokBacktick:
		return "code"
	default:
		return kind.String()
	}
}
