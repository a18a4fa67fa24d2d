package ast

import "strings"

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n Node) error

// Walk performs a pre-order traversal of every block and inline in doc.
// If walkFunc returns a non-nil error, the walk stops immediately and
// returns that error.
func Walk(doc *Document, walkFunc WalkFunc) error {
	if doc == nil {
		return nil
	}

	for _, b := range doc.Blocks {
		if err := walkNode(b, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkInlines performs a pre-order traversal of an inline sequence.
func WalkInlines(inlines []Inline, walkFunc WalkFunc) error {
	for _, n := range inlines {
		if err := walkNode(n, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

func walkNode(n Node, walkFunc WalkFunc) error {
	if err := walkFunc(n); err != nil {
		return err
	}

	for _, child := range Children(n) {
		if err := walkNode(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// PlainText concatenates the literal text of an inline sequence,
// dropping all styling.
func PlainText(inlines []Inline) string {
	var b strings.Builder

	//nolint:errcheck,revive // the callback never fails
	WalkInlines(inlines, func(n Node) error {
		switch v := n.(type) {
		case *Text:
			b.WriteString(v.Value)
		case *Code:
			b.WriteString(v.Value)
		}
		return nil
	})

	return b.String()
}
