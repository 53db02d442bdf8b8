package app

import (
	"github.com/Akashdeep-Patra/rpn-stack/internal/engine"
	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
	"github.com/Akashdeep-Patra/rpn-stack/internal/transcript"
)

// receiver forwards engine output to the transcript and collects the
// display commands, which the app carries out once Submit returns.
type receiver struct {
	t *transcript.Model
	// known maps every display command name and alias to its name.
	known    map[string]string
	commands []string
}

var _ engine.Receiver = (*receiver)(nil)

func displayCommands(cmds []engine.Command) map[string]string {
	known := make(map[string]string)
	for _, c := range cmds {
		if !c.Display {
			continue
		}
		known[c.Name] = c.Name
		for _, a := range c.Aliases {
			known[a] = c.Name
		}
	}
	return known
}

func (r *receiver) DisplayInfo(text string)  { r.t.ShowInfo(text) }
func (r *receiver) DisplayError(text string) { r.t.ShowError(text) }

func (r *receiver) TryRenderCommand(cmd string) bool {
	name, ok := r.known[cmd]
	if ok {
		r.commands = append(r.commands, name)
	}
	return ok
}

func (r *receiver) AddStackItem(it stack.Item) { r.t.Append(it) }
func (r *receiver) RemoveStackItem()           { r.t.RemoveLast() }
func (r *receiver) ClearStack()                { r.t.Clear() }
