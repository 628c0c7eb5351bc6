package fn

import (
	"testing"

	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/scope"
	"github.com/michaelmacinnis/lis/internal/common/type/expr"
	"github.com/michaelmacinnis/lis/internal/common/type/null"
	"github.com/michaelmacinnis/lis/internal/common/type/sym"
)

func nothing(_ *expr.T, _ scope.I) (cell.I, error) {
	return null.Nil, nil
}

func TestEquality(t *testing.T) {
	n := NewNative("nothing", nothing, None)
	m := NewNative("nothing", nothing, None)

	if !n.Equal(n) {
		t.Fatal("a native should equal itself")
	}

	if n.Equal(m) {
		t.Fatal("separately registered natives should not be equal")
	}

	c := NewClosure("c", nothing)
	if !c.Equal(c) || c.Equal(n) {
		t.Fatal("a closure should only equal itself")
	}

	body := expr.New(sym.New("a"))
	l := NewLambda([]*sym.T{sym.New("a")}, body, nil)

	if !l.Equal(l) || l.Equal(NewLambda(l.Params(), body, nil)) {
		t.Fatal("a lambda should only equal itself")
	}
}

func TestQuoted(t *testing.T) {
	if n := Quoted(NewNative("lambda", nothing, All)); n != All {
		t.Fatalf("expected all operands quoted, got %d", n)
	}

	if n := Quoted(NewNative("setq", nothing, 1)); n != 1 {
		t.Fatalf("expected one quoted operand, got %d", n)
	}

	if n := Quoted(NewClosure("+", nothing)); n != None {
		t.Fatalf("closures evaluate every operand, got %d", n)
	}

	if Quoted(sym.New("x")) != None {
		t.Fatal("a symbol is not a function")
	}
}

func TestLambdaLiteral(t *testing.T) {
	params := []*sym.T{sym.New("a"), sym.New("b")}
	body := expr.New(sym.New("+"), sym.New("a"), sym.New("b"))

	l := NewLambda(params, body, nil)

	if s := l.Literal(); s != `(\ (a b) (+ a b))` {
		t.Fatalf("unexpected literal %s", s)
	}

	if l.Partial() {
		t.Fatal("a lambda without a scope is not partial")
	}

	params[0] = sym.New("z")
	if l.Params()[0].String() != "a" {
		t.Fatal("lambda changed when its source parameters changed")
	}
}

func TestRoutineLiteral(t *testing.T) {
	if s := NewClosure("+", nothing).Literal(); s != "<builtin +>" {
		t.Fatalf("unexpected literal %s", s)
	}
}
