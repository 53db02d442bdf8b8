package engine

import (
	"context"
	"fmt"

	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
)

// recorder is a Receiver that keeps a store in step with the engine and
// logs every call.
type recorder struct {
	store   stack.Store
	calls   []string
	infos   []string
	errors  []string
	handled map[string]bool
	offered []string
}

func (r *recorder) DisplayInfo(text string) {
	r.infos = append(r.infos, text)
	r.calls = append(r.calls, "info")
}

func (r *recorder) DisplayError(text string) {
	r.errors = append(r.errors, text)
	r.calls = append(r.calls, "error")
}

func (r *recorder) TryRenderCommand(cmd string) bool {
	r.offered = append(r.offered, cmd)
	return r.handled[cmd]
}

func (r *recorder) AddStackItem(it stack.Item) {
	r.store.Append(it)
	r.calls = append(r.calls, fmt.Sprintf("add %s", it.Output()))
}

func (r *recorder) RemoveStackItem() {
	r.store.RemoveLast()
	r.calls = append(r.calls, "remove")
}

func (r *recorder) ClearStack() {
	r.store.Clear()
	r.calls = append(r.calls, "clear")
}

func (r *recorder) outputs() []string {
	var out []string
	for _, it := range r.store.Items() {
		out = append(out, it.Output())
	}
	return out
}

func submitAll(e *RPN, r *recorder, lines ...string) error {
	for _, l := range lines {
		if err := e.Submit(context.Background(), l, r); err != nil {
			return err
		}
	}
	return nil
}
