// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the lis language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/literal"
	"github.com/michaelmacinnis/lis/internal/common/struct/token"
	"github.com/michaelmacinnis/lis/internal/reader"
	"github.com/michaelmacinnis/lis/internal/system/history"
	"github.com/peterh/liner"
)

// Prompts.
const (
	Continue = "... "
	Prompt   = "λ > "
)

// Evaluator is the interface for things that evaluate parsed lis values.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
	Names() []string
}

// Batch reads lis code from r and evaluates it with e. Results are written
// to out and errors to errw. Errors do not stop evaluation. Batch returns
// false if any line could not be read, parsed or evaluated.
func Batch(name string, r io.Reader, out, errw io.Writer, e Evaluator) bool {
	ok := true

	rd := reader.New(name)

	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if line != "" && !Line(rd, strings.TrimSuffix(line, "\n"), out, errw, e) {
			ok = false
		}

		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			fmt.Fprintln(errw, err.Error())

			ok = false

			break
		}
	}

	if rd.Pending() {
		fmt.Fprintln(errw, name+": unexpected end of input")

		ok = false
	}

	return ok
}

// Line passes a single line to rd and evaluates any complete values.
func Line(rd *reader.T, line string, out, errw io.Writer, e Evaluator) bool {
	cs, err := rd.Scan(line)
	if err != nil {
		fmt.Fprintln(errw, err.Error())

		return false
	}

	ok := true

	for _, c := range cs {
		v, err := e.Evaluate(c)
		if err != nil {
			fmt.Fprintln(errw, err.Error())

			ok = false

			continue
		}

		fmt.Fprintln(out, literal.String(v))
	}

	return ok
}

// Run launches the interactive UI which sends lines to e.
func Run(e Evaluator) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e))

	if err := history.Load(cli.ReadHistory); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}

	rd := reader.New("lis")

	for {
		p := Prompt
		if rd.Pending() {
			p = Continue
		}

		line, err := cli.Prompt(p)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			rd.Reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stdout)

			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		Line(rd, line, os.Stdout, os.Stderr, e)
	}
}

func completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (head string, cs []string, tail string) {
		runes := []rune(line)
		if pos > len(runes) {
			pos = len(runes)
		}

		start := pos
		for start > 0 && token.IsSymbolRune(runes[start-1]) {
			start--
		}

		head = string(runes[:start])
		tail = string(runes[pos:])

		prefix := string(runes[start:pos])
		if prefix == "" {
			return head, nil, tail
		}

		for _, n := range e.Names() {
			if strings.HasPrefix(n, prefix) {
				cs = append(cs, n)
			}
		}

		return head, cs, tail
	}
}
