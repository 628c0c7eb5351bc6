package sym

import (
	"testing"
)

func TestInterning(t *testing.T) {
	if New("x") != New("x") {
		t.Fatal("short symbols should be interned")
	}

	if New("setq") != New("setq") {
		t.Fatal("builtin names should be interned")
	}

	a, b := New("longer"), New("longer")
	if !a.Equal(b) {
		t.Fatalf("%s should equal %s", a, b)
	}
}

func TestLiteral(t *testing.T) {
	for _, s := range []string{"x", "+", "\\", "foo-bar?", "a1"} {
		if l := New(s).Literal(); l != s {
			t.Fatalf("expected %s, got %s", s, l)
		}
	}

	if l := New("a b").Literal(); l != "(|symbol $'a b'|)" {
		t.Fatalf("unexpected literal %s", l)
	}

	if l := New("").Literal(); l != "(|symbol $''|)" {
		t.Fatalf("unexpected literal %s", l)
	}
}
