// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the lis language.
//
// The lis lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/lis/internal/common/struct/loc"
	"github.com/michaelmacinnis/lis/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	state action // Current action.

	current loc.T // Location of the current byte.
	source  loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return NewAt(label, 1)
}

// NewAt creates a new T that starts counting lines at line.
func NewAt(label string, line int) *T {
	l := &T{
		current: loc.T{
			Char: 1,
			Line: line,
			Name: label,
		},
	}

	l.source = l.current
	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// The text is appended to anything not yet scanned.
func (l *T) Scan(text string) {
	l.bytes = l.bytes[l.first:] + text
	l.index -= l.first
	l.first = 0
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.index >= len(l.bytes) {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) emit(c token.Class) {
	source := l.source

	l.tokens = append(l.tokens, token.New(c, l.Text(), &source))
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	if w == 0 {
		return r
	}

	if r == '\n' {
		l.current.Line++
		l.current.Char = 1
	} else {
		l.current.Char++
	}

	l.index += w

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source = l.current
	l.first = l.index
}

// T states.

func number(l *T) action {
	for {
		r, _ := l.peek()
		if !unicode.IsDigit(r) && r != '.' {
			break
		}

		l.next()
	}

	l.emit(token.Number)

	return skipWhitespace
}

func skipWhitespace(l *T) action {
	for {
		r, _ := l.peek()
		if r == eof || !unicode.IsSpace(r) {
			break
		}

		l.next()
	}

	l.skip()

	r, _ := l.peek()

	switch {
	case r == eof:
		return skipWhitespace
	case r == '(', r == ')', r == '\'':
		l.next()
		l.emit(token.Class(r))
	case r == '.':
		l.next()
		l.emit(token.Dot)
	case unicode.IsDigit(r):
		return number
	case token.IsSymbolStart(r):
		return symbol
	default:
		l.next()
		l.emit(token.Error)
	}

	return skipWhitespace
}

func symbol(l *T) action {
	for {
		r, _ := l.peek()
		if r == eof || !token.IsSymbolRune(r) {
			break
		}

		l.next()
	}

	l.emit(token.Symbol)

	return skipWhitespace
}
