// Released under an MIT license. See LICENSE.

// Package reader turns lines of text into lis values.
package reader

import (
	"strings"

	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/reader/lexer"
	"github.com/michaelmacinnis/lis/internal/reader/parser"
)

// T (reader) encapsulates the lis lexer and parser. It buffers lines until
// their parentheses balance.
type T struct {
	buffer strings.Builder
	depth  int
	line   int // Lines consumed before the buffer.
	lines  int // Lines in the buffer.
	name   string
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{name: name}
}

// Pending returns true if the reader is waiting for more lines.
func (r *reader) Pending() bool {
	return r.buffer.Len() > 0
}

// Reset discards any buffered text.
func (r *reader) Reset() {
	r.line += r.lines

	r.buffer.Reset()
	r.depth = 0
	r.lines = 0
}

// Scan adds line to the buffer. Once the buffered text is complete, it is
// parsed and the values it contains are returned. A parse error discards
// the buffer.
func (r *reader) Scan(line string) ([]cell.I, error) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	r.buffer.WriteString(line)
	r.lines++

	r.depth += strings.Count(line, "(") - strings.Count(line, ")")
	if r.depth > 0 {
		return nil, nil
	}

	text := r.buffer.String()
	start := r.line + 1

	r.Reset()

	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	l := lexer.NewAt(r.name, start)

	l.Scan(text)

	var cs []cell.I

	err := parser.New(func(c cell.I) {
		cs = append(cs, c)
	}, l.Token).Parse()

	return cs, err
}
