package alphabet

import (
	"fmt"
	"sort"
	"unicode"

	"telegraph/internal/domain"
)

// International is the name of the ITU International Morse alphabet, the
// default for every component.
const International = "international"

// ErrUnknownAlphabet is returned when a requested alphabet name has no table.
var ErrUnknownAlphabet = fmt.Errorf("unknown alphabet")

// International Morse, per ITU-R M.1677-1. Letters and digits only;
// punctuation is deliberately absent and resolves to CharacterNotFoundError.
var international = map[rune]string{
	'0': "-----",
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",
	'A': ".-",
	'B': "-...",
	'C': "-.-.",
	'D': "-..",
	'E': ".",
	'F': "..-.",
	'G': "--.",
	'H': "....",
	'I': "..",
	'J': ".---",
	'K': "-.-",
	'L': ".-..",
	'M': "--",
	'N': "-.",
	'O': "---",
	'P': ".--.",
	'Q': "--.-",
	'R': ".-.",
	'S': "...",
	'T': "-",
	'U': "..-",
	'V': "...-",
	'W': ".--",
	'X': "-..-",
	'Y': "-.--",
	'Z': "--..",
}

var tables = map[string]map[rune]string{
	International: international,
}

// Alphabet maps characters to their dot/dash sequences. The zero value is
// not usable; construct with New.
type Alphabet struct {
	name  string
	codes map[rune][]domain.Symbol
}

// New builds the alphabet table for name. ErrUnknownAlphabet is returned
// for names without a table.
func New(name string) (*Alphabet, error) {
	table, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
	}
	codes := make(map[rune][]domain.Symbol, len(table))
	for r, code := range table {
		codes[r] = parse(code)
	}
	return &Alphabet{name: name, codes: codes}, nil
}

// Name returns the alphabet name the table was built from.
func (a *Alphabet) Name() string { return a.name }

// Resolve returns the Dot/Dash sequence for r, case folded. Characters
// without an entry fail with *domain.CharacterNotFoundError rather than
// being silently dropped.
func (a *Alphabet) Resolve(r rune) ([]domain.Symbol, error) {
	seq, ok := a.codes[unicode.ToUpper(r)]
	if !ok {
		return nil, &domain.CharacterNotFoundError{Char: r}
	}
	// Copy so callers cannot mutate the table.
	return append([]domain.Symbol(nil), seq...), nil
}

// Names returns the available alphabet names, sorted.
func Names() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parse(code string) []domain.Symbol {
	seq := make([]domain.Symbol, 0, len(code))
	for _, c := range code {
		switch c {
		case '.':
			seq = append(seq, domain.Dot)
		case '-':
			seq = append(seq, domain.Dash)
		}
	}
	return seq
}

// Compile-time assertion that Alphabet implements domain.Alphabet.
var _ domain.Alphabet = (*Alphabet)(nil)
