package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Akashdeep-Patra/rpn-stack/internal/engine"
	"github.com/Akashdeep-Patra/rpn-stack/internal/layout"
	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
	"github.com/Akashdeep-Patra/rpn-stack/internal/transcript"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui/components"
)

const (
	helpTitle  = "rpns help"
	helpFooter = "↑/↓ pgup/pgdn scroll · esc close"
)

// ── Help content ────────────────────────────────────────────────────────────

func bindingEntries(bindings ...key.Binding) []components.HelpEntry {
	out := make([]components.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, components.HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return out
}

func commandEntries(cmds []engine.Command) []components.HelpEntry {
	out := make([]components.HelpEntry, 0, len(cmds))
	for _, c := range cmds {
		e := components.HelpEntry{Key: c.Name, Desc: c.Description}
		if len(c.Aliases) > 0 {
			e.Detail = "also " + strings.Join(c.Aliases, ", ")
		}
		out = append(out, e)
	}
	return out
}

// operatorSections groups operators by category, in catalog order. Each
// example is drawn the way the transcript would draw it, in compact form.
func operatorSections(styles ui.Styles, ts *layout.Typesetter, ops []engine.Operator) []components.HelpSection {
	var sections []components.HelpSection
	index := make(map[string]int)
	for _, op := range ops {
		i, ok := index[op.Category]
		if !ok {
			i = len(sections)
			index[op.Category] = i
			sections = append(sections, components.HelpSection{Title: op.Category})
		}
		desc := op.Description
		if len(op.Aliases) > 0 {
			desc = fmt.Sprintf("%s (%s)", desc, strings.Join(op.Aliases, " "))
		}
		e := components.HelpEntry{
			Key:    op.Name,
			Desc:   desc,
			Detail: fmt.Sprintf("takes %d: %s", op.Arity, strings.Join(op.Types, " | ")),
		}
		for _, ex := range op.Examples {
			e.Example = append(e.Example, exampleRows(styles, ts, ex)...)
		}
		sections[i].Entries = append(sections[i].Entries, e)
	}
	return sections
}

// exampleRows lays it out unbounded in example mode and draws it.
func exampleRows(styles ui.Styles, ts *layout.Typesetter, it stack.Item) []string {
	e := ts.Entry(it, layout.Unbounded, true)
	m := ts.Metrics()
	adv := m.Font.Advance
	lh := m.Font.LineHeight
	if adv <= 0 {
		adv = 1
	}
	if lh <= 0 {
		lh = 1
	}
	in, out := styles.EntryStyles(0, false)
	return components.RenderStackCell(components.StackCell{
		Entry:  e,
		Font:   m.Font,
		Width:  int(math.Ceil((e.Bounds().MaxX() + m.HorizontalPadding) / adv)),
		Height: int(math.Ceil(e.Height/lh - 1e-9)),
		Input:  in,
		Output: out,
	})
}

func (m *Model) helpSections() []components.HelpSection {
	sections := []components.HelpSection{
		{Title: "Keys", Entries: bindingEntries(m.keys.Bindings()...)},
		{Title: "Scrolling", Entries: bindingEntries(transcriptBindings(m.scrollKeys)...)},
		{Title: "Commands", Entries: commandEntries(m.engine.Commands())},
	}
	return append(sections, operatorSections(m.styles, m.ts, m.engine.Operators())...)
}

func transcriptBindings(k transcript.KeyMap) []key.Binding {
	return []key.Binding{k.PageUp, k.PageDown, k.LineUp, k.LineDown, k.Top, k.Bottom}
}

// ── Help overlay ────────────────────────────────────────────────────────────

func (m *Model) openHelp() {
	w, h := components.HelpFrame(m.width, m.height)
	m.help = viewport.New(w, h)
	m.help.SetContent(components.HelpBody(m.styles, m.helpSections(), w))
	m.showHelp = true
}

func (m *Model) resizeHelp() {
	if !m.showHelp {
		return
	}
	y := m.help.YOffset
	m.openHelp()
	m.help.SetYOffset(y)
}

func (m Model) helpView() string {
	return components.RenderHelp(m.styles, helpTitle, m.help.View(), helpFooter, m.width, m.height)
}

// ── Operator column ─────────────────────────────────────────────────────────

func paletteGroups(ops []engine.Operator) []components.PaletteGroup {
	var groups []components.PaletteGroup
	index := make(map[string]int)
	for _, op := range ops {
		i, ok := index[op.Category]
		if !ok {
			i = len(groups)
			index[op.Category] = i
			groups = append(groups, components.PaletteGroup{Title: op.Category})
		}
		item := op.Name
		if len(op.Aliases) > 0 {
			item += " " + op.Aliases[0]
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
