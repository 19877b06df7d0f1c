package text_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"telegraph/internal/alphabet"
	"telegraph/internal/domain"
	"telegraph/internal/render/text"
	"telegraph/internal/telegraph"
)

func encode(t *testing.T, s string) domain.Message {
	t.Helper()
	a, err := alphabet.New(alphabet.International)
	if err != nil {
		t.Fatalf("alphabet.New: %v", err)
	}
	msg, err := telegraph.New(a).Encode(s)
	if err != nil {
		t.Fatalf("Encode(%q): %v", s, err)
	}
	return msg
}

func render(t *testing.T, format string, msg domain.Message) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := text.NewWriter(&buf, format)
	if err != nil {
		t.Fatalf("NewWriter(%q): %v", format, err)
	}
	if err := w.Render(context.Background(), msg); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	w, err := text.NewWriter(&buf, "semaphore")
	var ife *domain.InvalidFormatEncodingError
	if !errors.As(err, &ife) {
		t.Fatalf("NewWriter(semaphore): got %v, want InvalidFormatEncodingError", err)
	}
	if ife.Format != "semaphore" {
		t.Fatalf("InvalidFormatEncodingError.Format: got %q", ife.Format)
	}
	if w != nil {
		t.Fatalf("NewWriter(semaphore): got writer %v, want nil", w)
	}
	if buf.Len() != 0 {
		t.Fatalf("unsupported format produced output %q", buf.String())
	}
}

func TestRender_Plain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SOS", "... --- ..."},
		{"a b", ".- / -..."},
		{"paris", ".--. .- .-. .. ..."},
		{"", ""},
	}
	for _, tc := range cases {
		if got := render(t, text.FormatPlain, encode(t, tc.in)); got != tc.want {
			t.Fatalf("plain(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRender_Spoken(t *testing.T) {
	got := render(t, text.FormatSpoken, encode(t, "an"))
	want := "dit dah, dah dit"
	if got != want {
		t.Fatalf("spoken(an): got %q, want %q", got, want)
	}
}

func TestRender_Block(t *testing.T) {
	got := render(t, text.FormatBlock, encode(t, "a"))
	want := "▄ ▄▄▄"
	if got != want {
		t.Fatalf("block(a): got %q, want %q", got, want)
	}
}

func TestRender_Stable(t *testing.T) {
	msg := encode(t, "CQ CQ DE K7ABC")
	first := render(t, text.FormatPlain, msg)
	second := render(t, text.FormatPlain, msg)
	if first != second {
		t.Fatalf("repeated render differs: %q vs %q", first, second)
	}
}

// TestRoundTrip_Plain decodes the plain rendering back through a reverse
// table and expects to reconstruct the input text exactly.
func TestRoundTrip_Plain(t *testing.T) {
	a, err := alphabet.New(alphabet.International)
	if err != nil {
		t.Fatalf("alphabet.New: %v", err)
	}

	// Reverse map: plain code string -> character.
	reverse := make(map[string]rune)
	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" {
		seq, err := a.Resolve(r)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", r, err)
		}
		var b strings.Builder
		for _, s := range seq {
			if s == domain.Dot {
				b.WriteByte('.')
			} else {
				b.WriteByte('-')
			}
		}
		reverse[b.String()] = r
	}

	const in = "HELLO WORLD 73"
	rendered := render(t, text.FormatPlain, encode(t, in))

	var out strings.Builder
	for i, word := range strings.Split(rendered, " / ") {
		if i > 0 {
			out.WriteByte(' ')
		}
		for _, code := range strings.Split(word, " ") {
			r, ok := reverse[code]
			if !ok {
				t.Fatalf("no reverse entry for %q", code)
			}
			out.WriteRune(r)
		}
	}
	if out.String() != in {
		t.Fatalf("round trip: got %q, want %q", out.String(), in)
	}
}
