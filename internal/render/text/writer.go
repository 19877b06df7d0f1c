package text

import (
	"context"
	"io"
	"strings"

	"telegraph/internal/domain"
)

// Format names accepted by NewWriter.
const (
	// FormatPlain is the canonical '.'/'-' representation: a space between
	// letters, " / " between words.
	FormatPlain = "plain"
	// FormatSpoken spells elements as dit/dah, the operator training style.
	FormatSpoken = "spoken"
	// FormatBlock draws a timing diagram with unit-proportional widths.
	FormatBlock = "block"
)

var formats = []string{FormatBlock, FormatPlain, FormatSpoken}

// Formats returns the supported text format names, sorted.
func Formats() []string {
	return append([]string(nil), formats...)
}

// Writer renders messages to an output sink in one of the supported
// formats. It is a pure transformation over the message; rendering the
// same message twice yields identical output.
type Writer struct {
	out    io.Writer
	format string
}

// NewWriter returns a Writer for the given format, or
// *domain.InvalidFormatEncodingError if the format is not supported.
func NewWriter(out io.Writer, format string) (*Writer, error) {
	switch format {
	case FormatPlain, FormatSpoken, FormatBlock:
	default:
		return nil, &domain.InvalidFormatEncodingError{Format: format}
	}
	return &Writer{out: out, format: format}, nil
}

// Render writes the textual representation of msg to the writer's sink.
func (w *Writer) Render(_ context.Context, msg domain.Message) error {
	var b strings.Builder
	for _, s := range msg {
		b.WriteString(token(w.format, s))
	}
	_, err := io.WriteString(w.out, b.String())
	return err
}

func token(format string, s domain.Symbol) string {
	switch format {
	case FormatPlain:
		switch s {
		case domain.Dot:
			return "."
		case domain.Dash:
			return "-"
		case domain.LetterGap:
			return " "
		case domain.WordGap:
			return " / "
		}
	case FormatSpoken:
		switch s {
		case domain.Dot:
			return "dit"
		case domain.Dash:
			return "dah"
		case domain.ElementGap:
			return " "
		case domain.LetterGap:
			return ", "
		case domain.WordGap:
			return " / "
		}
	case FormatBlock:
		// One rune per timing unit, tones solid and gaps blank.
		switch s {
		case domain.Dot:
			return "▄"
		case domain.Dash:
			return "▄▄▄"
		case domain.ElementGap:
			return " "
		case domain.LetterGap:
			return "   "
		case domain.WordGap:
			return "       "
		}
	}
	return ""
}

// Compile-time assertion that Writer implements domain.Renderer.
var _ domain.Renderer = (*Writer)(nil)
