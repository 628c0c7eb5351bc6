package reader

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lis/internal/common/interface/literal"
	"github.com/michaelmacinnis/lis/internal/reader/parser"
)

func TestContinuation(t *testing.T) {
	r := New("test")

	cs, err := r.Scan("(setq (x)")
	if err != nil || cs != nil {
		t.Fatalf("expected nothing yet; got %v, %v", cs, err)
	}

	if !r.Pending() {
		t.Fatal("expected the reader to be waiting for more input")
	}

	cs, err = r.Scan("  5) (+ x 1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cs) != 2 {
		t.Fatalf("expected two values; got %d", len(cs))
	}

	if s := literal.String(cs[0]); s != "(setq (x) 5)" {
		t.Fatalf("unexpected value %s", s)
	}

	if r.Pending() {
		t.Fatal("expected the buffer to be empty")
	}
}

func TestBlank(t *testing.T) {
	r := New("test")

	cs, err := r.Scan("   ")
	if err != nil || len(cs) != 0 || r.Pending() {
		t.Fatalf("unexpected result %v, %v", cs, err)
	}
}

func TestErrorResets(t *testing.T) {
	r := New("test")

	_, err := r.Scan("(+ 1 2))")
	if !errors.Is(err, parser.ErrExpr) {
		t.Fatalf("expected %v; got %v", parser.ErrExpr, err)
	}

	if r.Pending() {
		t.Fatal("expected the buffer to be discarded")
	}

	cs, err := r.Scan("7")
	if err != nil || len(cs) != 1 || literal.String(cs[0]) != "7" {
		t.Fatalf("unexpected result %v, %v", cs, err)
	}
}

func TestLineNumbers(t *testing.T) {
	r := New("test")

	_, _ = r.Scan("1")
	_, _ = r.Scan("(+")

	_, err := r.Scan(" #)")
	if err == nil || err.Error() != "parse error: invalid character: test:3:2: $'#'" {
		t.Fatalf("unexpected error %v", err)
	}
}
