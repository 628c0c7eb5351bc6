// Released under an MIT license. See LICENSE.

// Package failure provides the error kinds reported by lis.
package failure

import (
	"fmt"
)

// Kind classifies an error. A Kind is itself an error so that any error of
// that kind matches it with errors.Is.
type Kind string

// Error kinds.
const (
	Environment   Kind = "environment error"
	Eval          Kind = "eval error"
	Parse         Kind = "parse error"
	UnknownSymbol Kind = "unknown symbol error"
)

// Error returns the description of the kind k.
func (k Kind) Error() string {
	return string(k)
}

// T (failure) is an error of a particular kind.
type T struct {
	kind   Kind
	reason string
}

type failure = T

// Conditions that the evaluator, the environment and the builtins report.
//
//nolint:gochecknoglobals
var (
	DepthExceeded    = New(Eval, "maximum evaluation depth exceeded")
	DivisionByZero   = New(Eval, "division by zero")
	DuplicateParam   = New(Eval, "duplicate parameter")
	FunctionAsValue  = New(Eval, "function used as value in evaluation position")
	NotANumber       = New(Eval, "not a number")
	NotAnExpression  = New(Eval, "not an expression")
	NotASymbol       = New(Eval, "not a symbol")
	NotCallable      = New(Eval, "not callable")
	ParentAlreadySet = New(Environment, "parent already set")
	SymbolNotFound   = New(Eval, "symbol not found")
	TooManyArguments = New(Eval, "too many arguments")
	WrongArgCount    = New(Eval, "wrong number of arguments")
)

// New creates a new failure of kind k.
func New(k Kind, reason string) *failure {
	return &failure{kind: k, reason: reason}
}

// Errorf creates a new failure of kind k with a formatted reason.
func Errorf(k Kind, format string, a ...interface{}) *failure {
	return New(k, fmt.Sprintf(format, a...))
}

// Wrap returns an error that matches f and adds detail to its message.
func Wrap(f *failure, detail string) error {
	return fmt.Errorf("%w: %s", f, detail)
}

// Error returns the text of the failure f.
func (f *failure) Error() string {
	return string(f.kind) + ": " + f.reason
}

// Is returns true if target is the kind of f or a failure with the same
// kind and reason.
func (f *failure) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return t == f.kind
	case *failure:
		return t.kind == f.kind && t.reason == f.reason
	}

	return false
}

// Kind returns the kind of the failure f.
func (f *failure) Kind() Kind {
	return f.kind
}

// Reason returns the reason for the failure f.
func (f *failure) Reason() string {
	return f.reason
}
