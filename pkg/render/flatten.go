package render

import (
	"fmt"

	"github.com/yaklabco/typscii/pkg/ast"
)

// Run is a piece of paragraph text with a uniform style.
type Run struct {
	Text  string
	Style StyleState
}

// Flatten turns an inline tree into style runs in pre-order.
// Bold and Italic set their flag for all descendants; Code is opaque and
// yields a single code-styled run.
func Flatten(inlines []ast.Inline) []Run {
	var runs []Run
	for _, n := range inlines {
		runs = flattenInline(n, StyleState{}, runs)
	}
	return runs
}

func flattenInline(n ast.Inline, ambient StyleState, runs []Run) []Run {
	switch v := n.(type) {
	case *ast.Text:
		return append(runs, Run{Text: v.Value, Style: ambient})
	case *ast.Code:
		return append(runs, Run{Text: v.Value, Style: StyleState{Code: true}})
	case *ast.Bold:
		inner := ambient
		inner.Bold = true
		for _, child := range v.Children {
			runs = flattenInline(child, inner, runs)
		}
		return runs
	case *ast.Italic:
		inner := ambient
		inner.Italic = true
		for _, child := range v.Children {
			runs = flattenInline(child, inner, runs)
		}
		return runs
	default:
		panic(fmt.Sprintf("render: unknown inline node %T", n))
	}
}
