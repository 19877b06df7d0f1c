package telegraph

import (
	"unicode"

	"telegraph/internal/domain"
)

// Telegraph encodes text against a backing alphabet.
type Telegraph struct {
	alphabet    domain.Alphabet
	skipUnknown bool
}

// Option configures a Telegraph.
type Option func(*Telegraph)

// WithSkipUnknown makes Encode drop characters the alphabet cannot resolve
// instead of failing the whole call.
func WithSkipUnknown() Option {
	return func(t *Telegraph) { t.skipUnknown = true }
}

// New returns a Telegraph backed by the given alphabet.
func New(a domain.Alphabet, opts ...Option) *Telegraph {
	t := &Telegraph{alphabet: a}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Encode translates text into its Morse symbol sequence. Whitespace runs
// become a single WordGap; every other character must resolve through the
// alphabet or the call fails with *domain.CharacterNotFoundError and no
// partial message. An empty input yields an empty message.
func (t *Telegraph) Encode(text string) (domain.Message, error) {
	var msg domain.Message
	wordPending := false
	letterPending := false

	for _, r := range text {
		if unicode.IsSpace(r) {
			// Gaps are flushed lazily so trailing whitespace emits nothing.
			if len(msg) > 0 {
				wordPending = true
			}
			continue
		}

		seq, err := t.alphabet.Resolve(r)
		if err != nil {
			if t.skipUnknown {
				continue
			}
			return nil, err
		}

		switch {
		case wordPending:
			msg = append(msg, domain.WordGap)
			wordPending = false
		case letterPending:
			msg = append(msg, domain.LetterGap)
		}
		for i, s := range seq {
			if i > 0 {
				msg = append(msg, domain.ElementGap)
			}
			msg = append(msg, s)
		}
		letterPending = true
	}
	return msg, nil
}

// Compile-time assertion that Telegraph implements domain.Encoder.
var _ domain.Encoder = (*Telegraph)(nil)
