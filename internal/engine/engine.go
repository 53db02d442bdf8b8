// Package engine is the boundary between the calculator and its display.
//
// An Engine consumes submitted command text and reports what happened
// through a Receiver: items pushed and popped, messages to show, and
// commands only the display knows how to carry out. RPN is the built-in
// implementation.
package engine

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
)

// Receiver is the display side of the engine boundary. Calls arrive on
// the goroutine that called Submit.
type Receiver interface {
	DisplayInfo(text string)
	DisplayError(text string)
	// TryRenderCommand offers a backslash command to the display. It
	// reports whether the display handled it.
	TryRenderCommand(cmd string) bool
	AddStackItem(it stack.Item)
	RemoveStackItem()
	ClearStack()
}

// Engine evaluates submitted text against its stack.
type Engine interface {
	// Submit evaluates one line. On failure the stack is left as it was,
	// the error is reported through DisplayError and also returned.
	Submit(ctx context.Context, text string, r Receiver) error
	Operators() []Operator
	Commands() []Command
}

// Value types reported as stack.OutputType.
const (
	TypeInt stack.OutputType = iota + 1
	TypeReal
)

// TypeName is the catalog name of an output type.
func TypeName(t stack.OutputType) string {
	switch t {
	case TypeInt:
		return "Int"
	case TypeReal:
		return "Real"
	}
	return "Unknown"
}

var (
	ErrNotEnoughArgs   = errors.New("not enough arguments")
	ErrDivideByZero    = errors.New("cannot divide by zero")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrDomain          = errors.New("argument out of domain")
)

// Message turns an engine error into banner text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// IsCommand reports whether a token is a backslash command.
func IsCommand(tok string) bool {
	return strings.HasPrefix(tok, `\`) && len(tok) > 1
}
