package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lis/internal/engine"
)

func batch(t *testing.T, input string) (string, string, bool) {
	t.Helper()

	var out, errw bytes.Buffer

	ok := Batch("test", strings.NewReader(input), &out, &errw, engine.New(0))

	return out.String(), errw.String(), ok
}

func TestBatch(t *testing.T) {
	out, errw, ok := batch(t, "(+ 2 2)\n(setq (x) 5)\n(* x x)\n")
	if !ok {
		t.Fatalf("unexpected failure: %s", errw)
	}

	if expected := "4\n()\n25\n"; out != expected {
		t.Fatalf("expected %q, got %q", expected, out)
	}
}

func TestBatchContinuation(t *testing.T) {
	out, errw, ok := batch(t, "(+ 1\n   2\n   3)\n")
	if !ok {
		t.Fatalf("unexpected failure: %s", errw)
	}

	if out != "6\n" {
		t.Fatalf("expected 6, got %q", out)
	}
}

func TestBatchContinuesAfterErrors(t *testing.T) {
	out, errw, ok := batch(t, "(+ y 1)\n(1 . 2)\n(- 10 4)\n")
	if ok {
		t.Fatal("expected failure")
	}

	if out != "6\n" {
		t.Fatalf("expected 6, got %q", out)
	}

	if lines := strings.Count(errw, "\n"); lines != 2 {
		t.Fatalf("expected two errors, got %q", errw)
	}
}

func TestBatchLongLine(t *testing.T) {
	input := "(+" + strings.Repeat(" 1", 70000) + ")"

	out, errw, ok := batch(t, input)
	if !ok {
		t.Fatalf("unexpected failure: %s", errw)
	}

	if out != "70000\n" {
		t.Fatalf("expected 70000, got %q", out)
	}
}

func TestBatchUnterminated(t *testing.T) {
	_, errw, ok := batch(t, "(+ 1 2\n")
	if ok {
		t.Fatal("expected failure")
	}

	if !strings.Contains(errw, "unexpected end of input") {
		t.Fatalf("unexpected error output %q", errw)
	}
}

func TestCompleter(t *testing.T) {
	e := engine.New(0)

	complete := completer(e)

	head, cs, tail := complete("(la 1)", 3)
	if head != "(" || tail != " 1)" {
		t.Fatalf("unexpected head %q or tail %q", head, tail)
	}

	if len(cs) != 1 || cs[0] != "lambda" {
		t.Fatalf("expected lambda, got %v", cs)
	}

	_, cs, _ = complete("(", 1)
	if len(cs) != 0 {
		t.Fatalf("expected no completions, got %v", cs)
	}
}
