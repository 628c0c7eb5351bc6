// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lis language.
package parser

import (
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/lis/internal/common/failure"
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/struct/token"
	"github.com/michaelmacinnis/lis/internal/common/type/expr"
	"github.com/michaelmacinnis/lis/internal/common/type/num"
	"github.com/michaelmacinnis/lis/internal/common/type/quoted"
	"github.com/michaelmacinnis/lis/internal/common/type/sym"
)

// Parse errors.
//
//nolint:gochecknoglobals
var (
	ErrExpr      = failure.New(failure.Parse, "unexpected token")
	ErrInteger   = failure.New(failure.Parse, "invalid integer")
	ErrParser    = failure.New(failure.Parse, "unexpected end of input")
	ErrSexpr     = failure.New(failure.Parse, "unterminated expression")
	ErrTokenizer = failure.New(failure.Parse, "invalid character")
)

// T holds the state of the parser.
type T struct {
	emit  func(cell.I)    // Function to call to emit a parsed value.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits cells until there are no more tokens.
// It stops at the first error.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*parseError)
		if !ok {
			panic(r)
		}

		err = e.error
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.expression())
	}

	return nil
}

type parseError struct {
	error
}

func (p *T) consume() *token.T {
	t := p.peek()

	p.token = nil

	return t
}

func (p *T) fail(f *failure.T, t *token.T) {
	detail := "end of input"
	if t != nil {
		detail = t.Source().String() + ": " + adapted.CanonicalString(t.Value())
	}

	panic(&parseError{failure.Wrap(f, detail)})
}

func (p *T) peek() *token.T {
	if p.token == nil {
		p.token = p.item()
	}

	return p.token
}

// Grammar.

func (p *T) expression() cell.I {
	t := p.peek()
	if t == nil {
		p.fail(ErrParser, nil)
	}

	switch t.Class() {
	case token.Open:
		return p.list()
	case token.Quote:
		p.consume()

		n := p.peek()
		if n == nil {
			p.fail(ErrParser, nil)
		} else if !n.Is(token.Open) {
			p.fail(ErrExpr, n)
		}

		return quoted.New(p.list())
	case token.Number:
		p.consume()

		n, err := num.New(t.Value())
		if err != nil {
			p.fail(ErrInteger, t)
		}

		return n
	case token.Symbol:
		p.consume()

		return sym.New(t.Value())
	case token.Error:
		p.fail(ErrTokenizer, t)
	}

	p.fail(ErrExpr, t)

	return nil
}

func (p *T) list() *expr.T {
	open := p.consume()

	var elements []cell.I

	for {
		t := p.peek()
		if t == nil {
			p.fail(ErrSexpr, open)
		}

		if t.Is(token.Close) {
			p.consume()

			return expr.New(elements...)
		}

		elements = append(elements, p.expression())
	}
}
