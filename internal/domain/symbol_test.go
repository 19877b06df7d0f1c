package domain_test

import (
	"testing"

	"telegraph/internal/domain"
)

func TestSymbol_Units(t *testing.T) {
	cases := []struct {
		s    domain.Symbol
		want int
	}{
		{domain.Dot, 1},
		{domain.Dash, 3},
		{domain.ElementGap, 1},
		{domain.LetterGap, 3},
		{domain.WordGap, 7},
	}
	for _, tc := range cases {
		if got := tc.s.Units(); got != tc.want {
			t.Fatalf("%v.Units(): got %d, want %d", tc.s, got, tc.want)
		}
	}
}

func TestMessage_Units(t *testing.T) {
	// "E E": dot, word gap, dot.
	msg := domain.Message{domain.Dot, domain.WordGap, domain.Dot}
	if got := msg.Units(); got != 9 {
		t.Fatalf("Units: got %d, want 9", got)
	}
}

func TestSymbol_Tone(t *testing.T) {
	for _, s := range []domain.Symbol{domain.Dot, domain.Dash} {
		if !s.Tone() {
			t.Fatalf("%v.Tone(): got false", s)
		}
	}
	for _, s := range []domain.Symbol{domain.ElementGap, domain.LetterGap, domain.WordGap} {
		if s.Tone() {
			t.Fatalf("%v.Tone(): got true", s)
		}
	}
}
