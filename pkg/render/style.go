package render

// SGR escape sequences.
const (
	SGRReset      = "\x1b[0m"
	SGRBold       = "\x1b[1m"
	SGRItalic     = "\x1b[3m"
	SGRBoldItalic = "\x1b[1;3m"
	SGRCode       = "\x1b[7m"
)

// StyleState is the set of inline styles applied to a run of text.
type StyleState struct {
	Bold   bool
	Italic bool
	Code   bool
}

// IsDefault reports whether no style is active.
func (s StyleState) IsDefault() bool {
	return s == StyleState{}
}

// SGR returns the single escape sequence that selects s.
// Code takes precedence over bold and italic.
func (s StyleState) SGR() string {
	switch {
	case s.Code:
		return SGRCode
	case s.Bold && s.Italic:
		return SGRBoldItalic
	case s.Bold:
		return SGRBold
	case s.Italic:
		return SGRItalic
	default:
		return SGRReset
	}
}

// drops reports whether moving from s to next turns off an attribute.
// SGR codes only ever add attributes, so such transitions need a reset.
func (s StyleState) drops(next StyleState) bool {
	return (s.Bold && !next.Bold) || (s.Italic && !next.Italic) || (s.Code && !next.Code)
}

// Transition returns the escapes that switch the terminal from one style
// to another, or "" when they are equal.
func Transition(from, to StyleState) string {
	if from == to {
		return ""
	}
	if to.IsDefault() {
		return SGRReset
	}
	if from.drops(to) {
		return SGRReset + to.SGR()
	}
	return to.SGR()
}
