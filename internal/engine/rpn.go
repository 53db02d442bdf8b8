package engine

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/Akashdeep-Patra/rpn-stack/internal/logx"
	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
)

var (
	opIndex  = buildOpIndex()
	cmdIndex = buildCmdIndex()
	catalog  = sync.OnceValue(buildCatalog)
)

type entry struct {
	v    value
	item stack.Item
}

// RPN is the built-in postfix engine. Whitespace separates tokens; numbers
// are pushed, operators pop their operands and push the result, and
// backslash commands manipulate the stack or are offered to the display.
//
// RPN is not safe for concurrent use.
type RPN struct {
	entries []entry
}

var _ Engine = (*RPN)(nil)

// NewRPN returns an engine with an empty stack.
func NewRPN() *RPN { return &RPN{} }

// Submit evaluates text token by token on a copy of the stack. Only when
// every token succeeds is the copy kept and the resulting stack changes
// reported to r, in order.
func (e *RPN) Submit(ctx context.Context, text string, r Receiver) error {
	log := logx.Ctx(ctx)
	s := evalState{entries: slices.Clone(e.entries), ops: opIndex, cmds: cmdIndex}
	if err := s.run(text, r); err != nil {
		log.Warn("engine command failed", "input", text, "err", err)
		r.DisplayError(Message(err))
		return fmt.Errorf("submit %q: %w", text, err)
	}

	e.entries = s.entries
	for _, ev := range s.events {
		ev(r)
	}
	log.Debug("engine command applied", "input", text, "events", len(s.events), "depth", len(e.entries))
	return nil
}

// Depth is the number of values on the stack.
func (e *RPN) Depth() int { return len(e.entries) }

// Items returns the stack items, oldest first.
func (e *RPN) Items() []stack.Item {
	out := make([]stack.Item, len(e.entries))
	for i, en := range e.entries {
		out[i] = en.item
	}
	return out
}

// Operators returns the operator catalog with evaluated examples.
func (e *RPN) Operators() []Operator {
	ops := catalog()
	out := make([]Operator, len(ops))
	for i, op := range ops {
		op.Aliases = slices.Clone(op.Aliases)
		op.Types = slices.Clone(op.Types)
		op.Examples = slices.Clone(op.Examples)
		out[i] = op
	}
	return out
}

// Commands returns every backslash command, engine and display.
func (e *RPN) Commands() []Command {
	out := make([]Command, len(cmdDefs))
	for i, c := range cmdDefs {
		out[i] = cloneCommand(c.Command)
	}
	return out
}

// ── evaluation ──

type evalState struct {
	entries []entry
	events  []func(Receiver)
	ops     map[string]*opDef
	cmds    map[string]*cmdDef
}

func (s *evalState) emit(ev func(Receiver)) { s.events = append(s.events, ev) }

func (s *evalState) run(text string, r Receiver) error {
	for _, tok := range strings.Fields(text) {
		if err := s.token(tok, r); err != nil {
			return err
		}
	}
	return nil
}

func (s *evalState) token(tok string, r Receiver) error {
	if IsCommand(tok) {
		if c, ok := s.cmds[tok]; ok {
			return c.run(s)
		}
		if r != nil && r.TryRenderCommand(tok) {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrUnknownCommand, tok)
	}
	if v, ok := parseValue(tok); ok {
		s.push(v, stack.NewItem([]string{tok}, v.text(), v.typ, v.spoken()))
		return nil
	}
	if d, ok := s.ops[tok]; ok {
		return s.apply(d)
	}
	return fmt.Errorf("%w: %s", ErrUnknownOperator, tok)
}

func (s *evalState) push(v value, it stack.Item) {
	s.entries = append(s.entries, entry{v: v, item: it})
	s.emit(func(r Receiver) { r.AddStackItem(it) })
}

func (s *evalState) pop() entry {
	last := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	s.emit(Receiver.RemoveStackItem)
	return last
}

func (s *evalState) need(n int, name string) error {
	if len(s.entries) < n {
		return fmt.Errorf("%w for %s (needs %d, have %d)", ErrNotEnoughArgs, name, n, len(s.entries))
	}
	return nil
}

func (s *evalState) apply(d *opDef) error {
	if err := s.need(d.arity(), d.name); err != nil {
		return err
	}

	// Compute before popping so a failure leaves no events behind.
	n := len(s.entries)
	var (
		res   value
		err   error
		input []string
	)
	if d.binary != nil {
		a, b := s.entries[n-2], s.entries[n-1]
		res, err = d.binary(a.v, b.v)
		if d.symbol != "" {
			input = []string{a.item.Output(), " " + d.symbol + " ", b.item.Output()}
		} else {
			input = []string{d.name + "(", a.item.Output(), ", ", b.item.Output(), ")"}
		}
	} else {
		a := s.entries[n-1]
		res, err = d.unary(a.v)
		input = []string{d.name + "(", a.item.Output(), ")"}
	}
	if err != nil {
		return err
	}

	for range d.arity() {
		s.pop()
	}
	s.push(res, stack.NewItem(input, res.text(), res.typ, res.spoken()))
	return nil
}

// ── stack commands ──

func (s *evalState) dup() error {
	if err := s.need(1, "dup"); err != nil {
		return err
	}
	top := s.entries[len(s.entries)-1]
	s.push(top.v, top.item.Duplicate())
	return nil
}

func (s *evalState) drop() error {
	if err := s.need(1, "drop"); err != nil {
		return err
	}
	s.pop()
	return nil
}

func (s *evalState) swap() error {
	if err := s.need(2, "swap"); err != nil {
		return err
	}
	b := s.pop()
	a := s.pop()
	s.push(b.v, b.item)
	s.push(a.v, a.item)
	return nil
}

func (s *evalState) clear() error {
	s.entries = s.entries[:0]
	s.emit(Receiver.ClearStack)
	return nil
}

func (s *evalState) depth() error {
	text := "Stack is empty"
	if n := len(s.entries); n == 1 {
		text = "Stack holds 1 item"
	} else if n > 1 {
		text = "Stack holds " + strconv.Itoa(n) + " items"
	}
	s.emit(func(r Receiver) { r.DisplayInfo(text) })
	return nil
}
