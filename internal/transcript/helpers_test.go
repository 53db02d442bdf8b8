package transcript

import (
	"testing"

	"github.com/Akashdeep-Patra/rpn-stack/internal/layout"
	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
)

func newModel(t *testing.T, mutate ...func(*Options)) *Model {
	t.Helper()
	opts := Options{
		Styles:      ui.DefaultStyles(),
		Metrics:     layout.TerminalMetrics(),
		ItemSpacing: 1,
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	return New(opts)
}

func number(s string) stack.Item {
	return stack.NewItem([]string{s}, s, 1, s)
}

func appendN(m *Model, n int) []stack.Item {
	items := make([]stack.Item, n)
	for i := range items {
		items[i] = number(string(rune('0' + i%10)))
		m.Append(items[i])
	}
	return items
}

func ids(items []stack.Item) []stack.ID {
	out := make([]stack.ID, len(items))
	for i, it := range items {
		out[i] = it.ID()
	}
	return out
}

// settle runs animation ticks until the model stops animating.
func settle(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; m.animating; i++ {
		if i > 100 {
			t.Fatal("animation did not settle")
		}
		m.Update(animTickMsg{seq: m.animSeq})
	}
}
