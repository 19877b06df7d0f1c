package domain

import (
	"errors"
	"fmt"
)

// ErrAudioDevice is returned when the audio output device cannot be
// acquired. It signals a resource failure, not a content or configuration
// error.
var ErrAudioDevice = errors.New("audio device unavailable")

// CharacterNotFoundError reports an input character that has no entry in
// the selected alphabet.
type CharacterNotFoundError struct {
	Char rune
}

func (e *CharacterNotFoundError) Error() string {
	return fmt.Sprintf("no morse encoding for character %q", e.Char)
}

// InvalidFormatEncodingError reports a requested output format or encoding
// that is not among the supported variants.
type InvalidFormatEncodingError struct {
	Format   string
	Encoding string
}

func (e *InvalidFormatEncodingError) Error() string {
	if e.Encoding == "" {
		return fmt.Sprintf("invalid format %q", e.Format)
	}
	return fmt.Sprintf("invalid format %q or encoding %q", e.Format, e.Encoding)
}
