package domain

// Symbol is one timing element of a Morse transmission: an audible dot or
// dash, or one of the three kinds of silence between them.
type Symbol int

const (
	Dot Symbol = iota
	Dash
	ElementGap
	LetterGap
	WordGap
)

// Units returns the duration of the symbol in timing units, per the
// standard Morse proportions (dot 1, dash 3, gaps 1/3/7).
func (s Symbol) Units() int {
	switch s {
	case Dot, ElementGap:
		return 1
	case Dash, LetterGap:
		return 3
	case WordGap:
		return 7
	}
	return 0
}

// Tone reports whether the symbol is audible (as opposed to a gap).
func (s Symbol) Tone() bool { return s == Dot || s == Dash }

func (s Symbol) String() string {
	switch s {
	case Dot:
		return "dot"
	case Dash:
		return "dash"
	case ElementGap:
		return "element-gap"
	case LetterGap:
		return "letter-gap"
	case WordGap:
		return "word-gap"
	}
	return "unknown"
}

// Message is an encoded Morse transmission. Symbol order is transmission
// order. A Message is a transient value owned by the caller that requested
// the encoding; it is never shared or persisted.
type Message []Symbol

// Units returns the total duration of the message in timing units.
func (m Message) Units() int {
	total := 0
	for _, s := range m {
		total += s.Units()
	}
	return total
}
