package parser

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lis/internal/common/failure"
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/literal"
	"github.com/michaelmacinnis/lis/internal/common/type/expr"
	"github.com/michaelmacinnis/lis/internal/common/type/num"
	"github.com/michaelmacinnis/lis/internal/common/type/quoted"
	"github.com/michaelmacinnis/lis/internal/reader/lexer"
)

func parse(s string) ([]cell.I, error) {
	l := lexer.New("test")

	l.Scan(s)

	var cs []cell.I

	err := New(func(c cell.I) {
		cs = append(cs, c)
	}, l.Token).Parse()

	return cs, err
}

// check parses s, prints the result and checks that reparsing the
// printed text produces the same text.
func check(t *testing.T, s, expected string) {
	cs, err := parse(s)
	if err != nil {
		t.Fatalf("Parsing %q failed: %v", s, err)
	}

	p := ""
	for _, c := range cs {
		p += literal.String(c) + "\n"
	}

	if p != expected {
		t.Fatalf("Parsed %q as %q; expected %q", s, p, expected)
	}

	cs, err = parse(p)
	if err != nil {
		t.Fatalf("Reparsing %q failed: %v", p, err)
	}

	r := ""
	for _, c := range cs {
		r += literal.String(c) + "\n"
	}

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func failing(t *testing.T, s string, expected *failure.T) {
	_, err := parse(s)
	if !errors.Is(err, expected) {
		t.Fatalf("Parsing %q: expected %v; got %v", s, expected, err)
	}

	if !errors.Is(err, failure.Parse) {
		t.Fatalf("Parsing %q: %v is not a parse error", s, err)
	}
}

func TestAtoms(t *testing.T) {
	check(t, "42 x", "42\nx\n")
}

func TestEmpty(t *testing.T) {
	check(t, "()", "()\n")
	check(t, "   \n", "")
}

func TestLambda(t *testing.T) {
	check(t, `(\ (a b) (+ a b))`, "(\\ (a b) (+ a b))\n")
}

func TestMultiple(t *testing.T) {
	check(t, "(setq (x) 5) (+ x 1)", "(setq (x) 5)\n(+ x 1)\n")
}

func TestNested(t *testing.T) {
	check(t, "(+ 1 (* 2 (- 3 4)))", "(+ 1 (* 2 (- 3 4)))\n")
}

func TestQuoted(t *testing.T) {
	check(t, "'(+ 1 2)", "'(+ 1 2)\n")

	cs, err := parse("'(+ 1 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !quoted.Is(cs[0]) || quoted.To(cs[0]).Inner().Len() != 3 {
		t.Fatalf("expected a quoted expression; got %v", literal.String(cs[0]))
	}
}

func TestStructure(t *testing.T) {
	cs, err := parse("(1 (2))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := expr.New(num.Int(1), expr.New(num.Int(2)))
	if len(cs) != 1 || !cs[0].Equal(want) {
		t.Fatalf("expected %s; got %v", want, cs)
	}
}

func TestErrors(t *testing.T) {
	failing(t, "(+ 1", ErrSexpr)
	failing(t, "((", ErrSexpr)
	failing(t, "1.5", ErrInteger)
	failing(t, "(+ 1.2.3)", ErrInteger)
	failing(t, ")", ErrExpr)
	failing(t, "'x", ErrExpr)
	failing(t, "'", ErrParser)
	failing(t, "(+ ')", ErrExpr)
	failing(t, "(. 1)", ErrExpr)
	failing(t, "#", ErrTokenizer)
}

func TestErrorLocation(t *testing.T) {
	_, err := parse("(+ 1\n  #)")
	if err == nil || err.Error() != "parse error: invalid character: test:2:3: $'#'" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestErrorDetailIsEscaped(t *testing.T) {
	for s, expected := range map[string]string{
		"(+ 1 \x1b[2J)": "parse error: invalid character: test:1:6: $'\\x1b'",
		"\xff":          "parse error: invalid character: test:1:1: $'\\xff'",
	} {
		_, err := parse(s)
		if err == nil || err.Error() != expected {
			t.Fatalf("Parsing %q: expected %s; got %v", s, expected, err)
		}
	}
}

func TestStopsAtError(t *testing.T) {
	cs, err := parse("1 ) 2")
	if !errors.Is(err, ErrExpr) {
		t.Fatalf("expected %v; got %v", ErrExpr, err)
	}

	if len(cs) != 1 {
		t.Fatalf("expected one value before the error; got %d", len(cs))
	}
}
