package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pkt.systems/pslog"

	"github.com/Akashdeep-Patra/rpn-stack/internal/common"
	"github.com/Akashdeep-Patra/rpn-stack/internal/config"
	"github.com/Akashdeep-Patra/rpn-stack/internal/engine"
	"github.com/Akashdeep-Patra/rpn-stack/internal/layout"
	"github.com/Akashdeep-Patra/rpn-stack/internal/logx"
	"github.com/Akashdeep-Patra/rpn-stack/internal/settings"
	"github.com/Akashdeep-Patra/rpn-stack/internal/transcript"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui/components"
)

// WelcomeText greets the user on start.
const WelcomeText = `Welcome to rpns! Type \help to see what commands and operators are supported.`

// emptySubmit is what Enter on an empty scratchpad sends.
const emptySubmit = `\dup`

// frame is the screen geometry shared with settings observers.
type frame struct {
	extraCols int
}

// Model is the top-level Bubbletea model: transcript on top, then the
// scratchpad and the key hint bar, with an optional operator column on
// the right and the help overlay over everything.
type Model struct {
	ctx      context.Context
	log      pslog.Logger
	cfg      *config.Config
	engine   engine.Engine
	settings *settings.Settings
	styles   ui.Styles
	keys     KeyMap
	ts       *layout.Typesetter

	transcript *transcript.Model
	scrollKeys transcript.KeyMap
	input      textinput.Model
	history    *History
	frame      *frame
	known      map[string]string
	palette    []components.PaletteGroup

	width, height int
	showHelp      bool
	help          viewport.Model

	unsubscribe []func()
}

// Options configure New.
type Options struct {
	Config   *config.Config
	Engine   engine.Engine
	Settings *settings.Settings
	Styles   ui.Styles
}

// New creates the application model. ctx carries the logger.
func New(ctx context.Context, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	eng := opts.Engine
	if eng == nil {
		eng = engine.NewRPN()
	}
	set := opts.Settings
	if set == nil {
		set = settings.New("")
	}
	log := logx.Ctx(ctx).With("component", "app")

	metrics := cfg.Metrics.Layout()
	welcome := ""
	if cfg.Welcome {
		welcome = WelcomeText
	}
	scrollKeys := transcript.DefaultKeyMap()
	tr := transcript.New(transcript.Options{
		Styles:          opts.Styles,
		Metrics:         metrics,
		ItemSpacing:     cfg.Metrics.ItemSpacing,
		MaxContentWidth: cfg.MaxContentWidth,
		Animate:         cfg.ScrollAnimation,
		Welcome:         welcome,
		Logger:          log,
		Keys:            scrollKeys,
	})
	tr.SetAlternateColors(set.AlternateColors())

	ti := textinput.New()
	ti.Prompt = "› "
	ti.PromptStyle = opts.Styles.Prompt
	ti.TextStyle = opts.Styles.Input
	ti.PlaceholderStyle = opts.Styles.Subtle
	ti.Placeholder = "2 3 add"
	ti.Focus()

	fr := &frame{extraCols: set.ExtraCols()}
	m := Model{
		ctx:        ctx,
		log:        log,
		cfg:        cfg,
		engine:     eng,
		settings:   set,
		styles:     opts.Styles,
		keys:       DefaultKeyMap(),
		ts:         layout.NewTypesetter(metrics),
		transcript: tr,
		scrollKeys: scrollKeys,
		input:      ti,
		history:    NewHistory(cfg.HistorySize),
		frame:      fr,
		known:      displayCommands(eng.Commands()),
		palette:    paletteGroups(eng.Operators()),
	}
	m.unsubscribe = append(m.unsubscribe,
		set.OnColorTheme(func(t settings.ColorTheme) {
			tr.SetAlternateColors(t == settings.Rainbow)
		}),
		set.OnExtraCols(func(n int) { fr.extraCols = n }),
	)
	return m
}

// Close drops the settings subscriptions.
func (m Model) Close() {
	for _, fn := range m.unsubscribe {
		fn()
	}
}

// Transcript exposes the transcript host.
func (m Model) Transcript() *transcript.Model { return m.transcript }

// History exposes the scratchpad history.
func (m Model) History() *History { return m.history }

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.resizeHelp()
		return m, m.transcript.Sync()

	case common.ErrMsg:
		m.transcript.ShowError(engine.Message(msg.Err))
		return m, m.transcript.Sync()

	case common.InfoMsg:
		m.transcript.ShowInfo(msg.Text)
		return m, m.transcript.Sync()

	case common.SettingsChangedMsg:
		return m, m.reloadSettings(msg.Path)

	case common.SettingsSavedMsg:
		if msg.Err != nil {
			m.log.Warn("settings save failed", "path", msg.Path, "err", msg.Err)
			m.transcript.ShowError(fmt.Sprintf("Could not save settings: %v", msg.Err))
			return m, m.transcript.Sync()
		}
		m.log.Debug("settings saved", "path", msg.Path)
		return m, nil

	case tea.MouseMsg:
		if m.showHelp {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		_, cmd := m.transcript.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Transcript timers, then the cursor blink.
	if handled, cmd := m.transcript.Update(msg); handled {
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Help):
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.openHelp()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.HistoryPrev):
		if line, ok := m.history.Prev(m.input.Value()); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil
	case key.Matches(msg, m.keys.HistoryNext):
		if line, ok := m.history.Next(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil
	}

	if handled, cmd := m.transcript.Update(msg); handled {
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ── Submitting ──────────────────────────────────────────────────────────────

// submit sends the scratchpad line to the engine. Any message on show is
// dismissed first; the banner then reconciles once, after everything the
// engine reported.
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		text = emptySubmit
	} else {
		m.history.Add(text)
	}
	m.history.Reset()

	m.transcript.DismissMessage()
	r := &receiver{t: m.transcript, known: m.known}
	err := m.engine.Submit(m.ctx, text, r)
	if err != nil {
		m.log.Debug("submit failed", "input", text, "err", err)
	}

	var cmds []tea.Cmd
	for _, name := range r.commands {
		cmds = append(cmds, m.runDisplayCommand(name, err == nil))
	}
	m.resize()
	cmds = append(cmds, m.transcript.Sync())
	return tea.Batch(cmds...)
}

// runDisplayCommand carries out a command the engine handed to the
// display. Confirmation text is only shown when the whole line succeeded,
// so it never replaces an error.
func (m *Model) runDisplayCommand(name string, announce bool) tea.Cmd {
	info := func(format string, args ...any) {
		if announce {
			m.transcript.ShowInfo(fmt.Sprintf(format, args...))
		}
	}
	m.log.Debug("display command", "command", name)

	switch name {
	case `\help`:
		m.openHelp()
	case `\clearhist`:
		m.history.Clear()
		info("History cleared")
	case `\colors`:
		t := m.settings.ToggleColorTheme()
		info("Color theme: %s", t)
		return m.saveSettings()
	case `\cols`:
		n := m.settings.ToggleExtraCols()
		if n > 0 {
			info("Operator column shown")
		} else {
			info("Operator column hidden")
		}
		return m.saveSettings()
	case `\quit`:
		return tea.Quit
	}
	return nil
}

// ── Settings ────────────────────────────────────────────────────────────────

// saveSettings writes a snapshot of the settings off the update loop.
func (m *Model) saveSettings() tea.Cmd {
	path := m.settings.Path()
	if path == "" {
		return nil
	}
	snap := m.settings.Snapshot()
	return func() tea.Msg {
		return common.SettingsSavedMsg{Path: path, Err: snap.Save()}
	}
}

func (m *Model) reloadSettings(path string) tea.Cmd {
	changed, err := m.settings.Reload()
	if err != nil {
		m.log.Warn("settings reload failed", "path", path, "err", err)
		m.transcript.ShowError(fmt.Sprintf("Could not read settings: %v", err))
		return m.transcript.Sync()
	}
	if !changed {
		return nil
	}
	m.log.Info("settings reloaded", "path", path,
		"color_theme", string(m.settings.ColorTheme()),
		"extra_cols", m.settings.ExtraCols())
	m.resize()
	return m.transcript.Sync()
}

// ── Layout ──────────────────────────────────────────────────────────────────

// Rows below the transcript: scratchpad and hint bar.
const chromeRows = 2

// minPaletteWidth is the narrowest screen that still shows the operator
// column.
const minPaletteWidth = 40

func (m Model) paletteWidth() int {
	if m.frame.extraCols > 0 && m.width >= minPaletteWidth {
		return components.PaletteWidth * m.frame.extraCols
	}
	return 0
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.transcript.SetSize(m.width-m.paletteWidth(), max(0, m.height-chromeRows))
	m.input.Width = max(1, m.width-lipgloss.Width(m.input.Prompt)-1)
}

// View renders the entire UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}

	top := m.transcript.View()
	if pw := m.paletteWidth(); pw > 0 {
		col := components.RenderPalette(m.styles, m.palette, max(0, m.height-chromeRows))
		top = lipgloss.JoinHorizontal(lipgloss.Top, top, col)
	}

	hints := []components.Hint{
		{Key: m.keys.Submit.Help().Key, Desc: m.keys.Submit.Help().Desc},
		{Key: "↑/↓", Desc: "history"},
		{Key: "pgup/pgdn", Desc: "scroll"},
		{Key: m.keys.Help.Help().Key, Desc: m.keys.Help.Help().Desc},
		{Key: m.keys.Quit.Help().Key, Desc: m.keys.Quit.Help().Desc},
	}
	input := ui.PadRight(m.input.View(), m.width)
	bar := components.RenderHintBar(m.styles, hints, m.width)
	if top == "" {
		return lipgloss.JoinVertical(lipgloss.Left, input, bar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, input, bar)
}
