package app

import (
	"context"
	"strings"

	"github.com/Akashdeep-Patra/rpn-stack/internal/engine"
	"github.com/Akashdeep-Patra/rpn-stack/internal/layout"
	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
	"github.com/Akashdeep-Patra/rpn-stack/internal/transcript"
)

// EvalResult is the outcome of a non-interactive evaluation.
type EvalResult struct {
	// Rows is the plain transcript.
	Rows []string
	// Spoken has one line per item, oldest first, in the form a screen
	// reader announces it.
	Spoken []string
	// Info and Errors are the banner messages, in order.
	Info   []string
	Errors []string
	Err    error
}

// evalReceiver keeps a store in step with the engine. It carries out no
// display commands.
type evalReceiver struct {
	store  stack.Store
	info   []string
	errors []string
}

func (r *evalReceiver) DisplayInfo(text string)      { r.info = append(r.info, text) }
func (r *evalReceiver) DisplayError(text string)     { r.errors = append(r.errors, text) }
func (r *evalReceiver) TryRenderCommand(string) bool { return false }
func (r *evalReceiver) AddStackItem(it stack.Item)   { r.store.Append(it) }
func (r *evalReceiver) RemoveStackItem()             { r.store.RemoveLast() }
func (r *evalReceiver) ClearStack()                  { r.store.Clear() }

// Eval submits the tokens to eng as one line and renders the resulting
// stack without color, width cells wide (unbounded when width is 0).
func Eval(ctx context.Context, eng engine.Engine, tokens []string, metrics layout.Metrics, width, spacing int) EvalResult {
	var r evalReceiver
	err := eng.Submit(ctx, strings.Join(tokens, " "), &r)
	items := r.store.Items()
	spoken := make([]string, len(items))
	for i, it := range items {
		spoken[i] = it.AccessibilityLabel() + ": " + it.AccessibilityValue()
	}
	return EvalResult{
		Rows:   transcript.Plain(items, metrics, width, spacing),
		Spoken: spoken,
		Info:   r.info,
		Errors: r.errors,
		Err:    err,
	}
}
