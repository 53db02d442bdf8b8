package engine

import (
	"slices"

	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
)

// Operator describes one operator for help and completion.
type Operator struct {
	Name     string
	Aliases  []string
	Category string
	Arity    int
	// Types lists the accepted argument type combinations, one per line of
	// help text.
	Types       []string
	Description string
	// Examples are finished items produced by running the example inputs.
	Examples []stack.Item
}

// Command describes one backslash command.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	// Display is true for commands carried out by the display through
	// Receiver.TryRenderCommand rather than by the engine.
	Display bool
}

type opDef struct {
	name        string
	symbol      string // infix symbol; empty renders as name(x)
	aliases     []string
	category    string
	description string
	examples    []string
	unary       unaryFunc
	binary      binaryFunc
}

func (d *opDef) arity() int {
	if d.binary != nil {
		return 2
	}
	return 1
}

var (
	binaryTypes = []string{"Int, Int", "Int, Real", "Real, Int", "Real, Real"}
	unaryTypes  = []string{"Int", "Real"}
)

var opDefs = []*opDef{
	{name: "add", symbol: "+", aliases: []string{"+"}, category: "Arithmetic",
		description: "Adds two numbers.", examples: []string{"2 3 add", "1.5 2 +"}, binary: add},
	{name: "sub", symbol: "-", aliases: []string{"-"}, category: "Arithmetic",
		description: "Subtracts the top number from the one below it.", examples: []string{"10 4 sub"}, binary: sub},
	{name: "mul", symbol: "×", aliases: []string{"*"}, category: "Arithmetic",
		description: "Multiplies two numbers.", examples: []string{"6 7 mul"}, binary: mul},
	{name: "div", symbol: "÷", aliases: []string{"/"}, category: "Arithmetic",
		description: "Divides the second number by the top number.", examples: []string{"7 2 div", "9 3 div"}, binary: div},
	{name: "mod", symbol: "mod", aliases: []string{"%"}, category: "Arithmetic",
		description: "Remainder of division, with the sign of the divisor.", examples: []string{"17 5 mod", "-7 3 mod"}, binary: mod},
	{name: "pow", symbol: "^", aliases: []string{"^"}, category: "Powers",
		description: "Raises the second number to the power of the top number.", examples: []string{"2 10 pow", "4 0.5 pow"}, binary: pow},
	{name: "sq", category: "Powers",
		description: "Squares a number.", examples: []string{"12 sq"}, unary: sq},
	{name: "sqrt", category: "Powers",
		description: "Square root of a non-negative number.", examples: []string{"144 sqrt", "2 sqrt"}, unary: sqrt},
	{name: "inv", category: "Powers",
		description: "Reciprocal of a number.", examples: []string{"4 inv"}, unary: inv},
	{name: "neg", category: "Sign",
		description: "Negates a number.", examples: []string{"5 neg"}, unary: neg},
	{name: "abs", category: "Sign",
		description: "Absolute value of a number.", examples: []string{"-5 abs"}, unary: abs},
}

type cmdDef struct {
	Command
	run func(s *evalState) error
}

var cmdDefs = []*cmdDef{
	{Command: Command{Name: `\dup`, Description: "Duplicates the top item."}, run: (*evalState).dup},
	{Command: Command{Name: `\drop`, Aliases: []string{`\pop`}, Description: "Removes the top item."}, run: (*evalState).drop},
	{Command: Command{Name: `\swap`, Description: "Swaps the top two items."}, run: (*evalState).swap},
	{Command: Command{Name: `\clear`, Description: "Removes every item."}, run: (*evalState).clear},
	{Command: Command{Name: `\depth`, Description: "Shows how many items are on the stack."}, run: (*evalState).depth},
	{Command: Command{Name: `\help`, Description: "Shows this help.", Display: true}},
	{Command: Command{Name: `\clearhist`, Description: "Forgets the input history.", Display: true}},
	{Command: Command{Name: `\colors`, Description: "Toggles rainbow stack colors.", Display: true}},
	{Command: Command{Name: `\cols`, Description: "Toggles the operator column.", Display: true}},
	{Command: Command{Name: `\quit`, Aliases: []string{`\q`}, Description: "Exits.", Display: true}},
}

// DisplayCommands lists the commands a Receiver is expected to handle.
func DisplayCommands() []Command {
	var out []Command
	for _, c := range cmdDefs {
		if c.Display {
			out = append(out, cloneCommand(c.Command))
		}
	}
	return out
}

func cloneCommand(c Command) Command {
	c.Aliases = slices.Clone(c.Aliases)
	return c
}

func buildOpIndex() map[string]*opDef {
	idx := make(map[string]*opDef, len(opDefs)*2)
	for _, d := range opDefs {
		idx[d.name] = d
		for _, a := range d.aliases {
			idx[a] = d
		}
	}
	return idx
}

func buildCmdIndex() map[string]*cmdDef {
	idx := make(map[string]*cmdDef, len(cmdDefs)*2)
	for _, d := range cmdDefs {
		if d.Display {
			continue
		}
		idx[d.Name] = d
		for _, a := range d.Aliases {
			idx[a] = d
		}
	}
	return idx
}

// buildCatalog runs every operator example on a scratch engine.
func buildCatalog() []Operator {
	out := make([]Operator, 0, len(opDefs))
	for _, d := range opDefs {
		op := Operator{
			Name:        d.name,
			Aliases:     slices.Clone(d.aliases),
			Category:    d.category,
			Arity:       d.arity(),
			Description: d.description,
		}
		if op.Arity == 2 {
			op.Types = slices.Clone(binaryTypes)
		} else {
			op.Types = slices.Clone(unaryTypes)
		}
		for _, ex := range d.examples {
			if it, ok := runExample(ex); ok {
				op.Examples = append(op.Examples, it)
			}
		}
		out = append(out, op)
	}
	return out
}

func runExample(text string) (stack.Item, bool) {
	var s evalState
	s.ops = opIndex
	s.cmds = cmdIndex
	if err := s.run(text, nil); err != nil {
		return stack.Item{}, false
	}
	if len(s.entries) == 0 {
		return stack.Item{}, false
	}
	return s.entries[len(s.entries)-1].item, true
}
