package alphabet_test

import (
	"errors"
	"reflect"
	"testing"

	"telegraph/internal/alphabet"
	"telegraph/internal/domain"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newInternational returns the default alphabet table.
func newInternational(t *testing.T) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New(alphabet.International)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestResolve_FullAlphabet(t *testing.T) {
	a := newInternational(t)

	for _, r := range charset {
		seq, err := a.Resolve(r)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", r, err)
		}
		if len(seq) == 0 {
			t.Fatalf("Resolve(%q): empty sequence", r)
		}
		for _, s := range seq {
			if !s.Tone() {
				t.Fatalf("Resolve(%q): contains non-tone symbol %v", r, s)
			}
		}

		// Re-resolving is idempotent.
		again, err := a.Resolve(r)
		if err != nil {
			t.Fatalf("Resolve(%q) second call: %v", r, err)
		}
		if !reflect.DeepEqual(seq, again) {
			t.Fatalf("Resolve(%q): got %v then %v", r, seq, again)
		}
	}
}

func TestResolve_CaseFolded(t *testing.T) {
	a := newInternational(t)

	lower, err := a.Resolve('a')
	if err != nil {
		t.Fatalf("Resolve('a'): %v", err)
	}
	upper, err := a.Resolve('A')
	if err != nil {
		t.Fatalf("Resolve('A'): %v", err)
	}
	if !reflect.DeepEqual(lower, upper) {
		t.Fatalf("case folding: got %v and %v", lower, upper)
	}
}

func TestResolve_UnknownCharacter(t *testing.T) {
	a := newInternational(t)

	_, err := a.Resolve('%')
	var cnf *domain.CharacterNotFoundError
	if !errors.As(err, &cnf) {
		t.Fatalf("Resolve('%%'): got %v, want CharacterNotFoundError", err)
	}
	if cnf.Char != '%' {
		t.Fatalf("CharacterNotFoundError.Char: got %q, want '%%'", cnf.Char)
	}
}

func TestResolve_TableIsImmutable(t *testing.T) {
	a := newInternational(t)

	seq, err := a.Resolve('E')
	if err != nil {
		t.Fatalf("Resolve('E'): %v", err)
	}
	seq[0] = domain.Dash

	again, err := a.Resolve('E')
	if err != nil {
		t.Fatalf("Resolve('E') second call: %v", err)
	}
	if again[0] != domain.Dot {
		t.Fatalf("table mutated through returned slice")
	}
}

func TestNew_UnknownAlphabet(t *testing.T) {
	_, err := alphabet.New("klingon")
	if !errors.Is(err, alphabet.ErrUnknownAlphabet) {
		t.Fatalf("New(klingon): got %v, want ErrUnknownAlphabet", err)
	}
}

func TestNames(t *testing.T) {
	names := alphabet.Names()
	if len(names) == 0 {
		t.Fatalf("Names: empty")
	}
	found := false
	for _, n := range names {
		if n == alphabet.International {
			found = true
		}
	}
	if !found {
		t.Fatalf("Names: %v does not include %q", names, alphabet.International)
	}
}
