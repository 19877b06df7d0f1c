package domain

import "context"

// Alphabet resolves single characters to their dot/dash sequences.
// Lookups are case folded.
type Alphabet interface {
	// Resolve returns the Dot/Dash sequence for r, or a
	// *CharacterNotFoundError if the alphabet has no entry for it.
	Resolve(r rune) ([]Symbol, error)
}

// Encoder translates text into a Morse symbol sequence.
type Encoder interface {
	Encode(text string) (Message, error)
}

// Renderer consumes an encoded message and renders it to some medium:
// a text sink, the audio device, or an audio file.
type Renderer interface {
	Render(ctx context.Context, msg Message) error
}
