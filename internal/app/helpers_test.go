package app

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"

	"github.com/Akashdeep-Patra/rpn-stack/internal/config"
	"github.com/Akashdeep-Patra/rpn-stack/internal/logx"
	"github.com/Akashdeep-Patra/rpn-stack/internal/settings"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
)

func testContext() context.Context {
	return pslog.ContextWithLogger(context.Background(), logx.Discard())
}

// newApp returns a sized model with the welcome banner and scroll
// animation off, persisting settings into a temp dir.
func newApp(t *testing.T, mutate ...func(*config.Config)) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Welcome = false
	cfg.ScrollAnimation = false
	for _, fn := range mutate {
		fn(&cfg)
	}
	set := settings.New(filepath.Join(t.TempDir(), "settings.yaml"))
	m := New(testContext(), Options{
		Config:   &cfg,
		Settings: set,
		Styles:   ui.DefaultStyles(),
	})
	t.Cleanup(m.Close)
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// submit types line into the scratchpad and presses enter, returning the
// messages produced by the resulting commands.
func submit(t *testing.T, m Model, line string) (Model, []tea.Msg) {
	t.Helper()
	m.input.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), run(cmd)
}

// run executes cmd and any batch it produces. Scroll animation is off in
// tests, so nothing here waits on a timer.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func outputs(m Model) []string {
	items := m.Transcript().Items()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Output()
	}
	return out
}
