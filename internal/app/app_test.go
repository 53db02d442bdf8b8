package app

import (
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/Akashdeep-Patra/rpn-stack/internal/banner"
	"github.com/Akashdeep-Patra/rpn-stack/internal/common"
	"github.com/Akashdeep-Patra/rpn-stack/internal/config"
	"github.com/Akashdeep-Patra/rpn-stack/internal/settings"
)

func TestSubmitEvaluatesLine(t *testing.T) {
	m := newApp(t)
	m, _ = submit(t, m, "2 3 add")
	if diff := cmp.Diff([]string{"5"}, outputs(m)); diff != "" {
		t.Fatalf("outputs (-want +got):\n%s", diff)
	}
	if m.input.Value() != "" {
		t.Errorf("scratchpad not cleared: %q", m.input.Value())
	}
	if diff := cmp.Diff([]string{"2 3 add"}, m.History().Entries()); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
	if !strings.Contains(m.View(), "5") {
		t.Errorf("result not drawn:\n%s", m.View())
	}
}

func TestEmptySubmitDuplicates(t *testing.T) {
	m := newApp(t)
	m, _ = submit(t, m, "7")
	m, _ = submit(t, m, "")
	if diff := cmp.Diff([]string{"7", "7"}, outputs(m)); diff != "" {
		t.Errorf("outputs (-want +got):\n%s", diff)
	}
	if m.History().Len() != 1 {
		t.Errorf("empty submit recorded in history: %v", m.History().Entries())
	}
}

func TestEngineErrorShowsBannerAndKeepsStack(t *testing.T) {
	m := newApp(t)
	m, _ = submit(t, m, "1")
	m, _ = submit(t, m, "2 add add")

	b := m.Transcript().Banner()
	if b.State() != banner.ShowingError || b.Tone() != banner.Alert {
		t.Fatalf("banner %v/%v, want showingError/alert", b.State(), b.Tone())
	}
	if !strings.HasPrefix(b.Text(), "Not enough arguments") {
		t.Errorf("banner text = %q", b.Text())
	}
	if diff := cmp.Diff([]string{"1"}, outputs(m)); diff != "" {
		t.Errorf("stack changed (-want +got):\n%s", diff)
	}
}

func TestNextSubmitDismissesError(t *testing.T) {
	m := newApp(t)
	m, _ = submit(t, m, "add")
	if !m.Transcript().Banner().Visible() {
		t.Fatal("error not shown")
	}

	m, _ = submit(t, m, "1")
	if m.Transcript().Banner().Visible() {
		t.Error("banner still visible after a clean submit")
	}

	m, _ = submit(t, m, "add")
	m, _ = submit(t, m, `\depth`)
	b := m.Transcript().Banner()
	if b.State() != banner.ShowingInfo || b.Tone() != banner.Neutral {
		t.Errorf("banner %v/%v, want showingInfo/neutral", b.State(), b.Tone())
	}
	if b.Text() != "Stack holds 1 item" {
		t.Errorf("banner text = %q", b.Text())
	}
}

func TestWelcomeBanner(t *testing.T) {
	m := newApp(t, func(c *config.Config) { c.Welcome = true })
	b := m.Transcript().Banner()
	if b.State() != banner.ShowingInfo || b.Text() != WelcomeText {
		t.Fatalf("banner %v %q", b.State(), b.Text())
	}
	m, _ = submit(t, m, "1")
	if m.Transcript().Banner().Visible() {
		t.Error("welcome survived a submit")
	}
}

func TestHistoryKeys(t *testing.T) {
	m := newApp(t)
	m, _ = submit(t, m, "1")
	m, _ = submit(t, m, "2")
	m.input.SetValue("dra")

	steps := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyUp, "2"},
		{tea.KeyUp, "1"},
		{tea.KeyUp, "1"},
		{tea.KeyDown, "2"},
		{tea.KeyDown, "dra"},
	}
	for i, s := range steps {
		m = update(t, m, tea.KeyMsg{Type: s.key})
		if got := m.input.Value(); got != s.want {
			t.Fatalf("step %d: scratchpad %q, want %q", i, got, s.want)
		}
	}
}

func TestClearHistCommand(t *testing.T) {
	m := newApp(t)
	m, _ = submit(t, m, "1")
	m, _ = submit(t, m, `\clearhist`)
	if m.History().Len() != 0 {
		t.Errorf("history = %v", m.History().Entries())
	}
	if got := m.Transcript().Banner().Text(); got != "History cleared" {
		t.Errorf("banner = %q", got)
	}
}

func TestColorsCommandTogglesAndSaves(t *testing.T) {
	m := newApp(t)
	m, msgs := submit(t, m, `\colors`)
	if m.settings.ColorTheme() != settings.Rainbow {
		t.Fatalf("theme = %s", m.settings.ColorTheme())
	}
	if !m.Transcript().AlternateColors() {
		t.Error("transcript not switched to alternate colors")
	}

	var saved *common.SettingsSavedMsg
	for _, msg := range msgs {
		if s, ok := msg.(common.SettingsSavedMsg); ok {
			saved = &s
		}
	}
	if saved == nil {
		t.Fatalf("no save result in %v", msgs)
	}
	if saved.Err != nil {
		t.Fatalf("save: %v", saved.Err)
	}
	got, err := settings.Read(saved.Path)
	if err != nil {
		t.Fatal(err)
	}
	if got.ColorTheme != settings.Rainbow {
		t.Errorf("saved theme = %s", got.ColorTheme)
	}
}

func TestColsCommandShowsPalette(t *testing.T) {
	m := newApp(t)
	if strings.Contains(m.View(), "Arithmetic") {
		t.Fatal("operator column shown by default")
	}
	m, _ = submit(t, m, `\cols`)
	if !strings.Contains(m.View(), "Arithmetic") {
		t.Errorf("operator column missing:\n%s", m.View())
	}
	for i, line := range strings.Split(m.View(), "\n") {
		if w := len([]rune(line)); w > 200 {
			t.Errorf("line %d suspiciously wide: %d", i, w)
		}
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newApp(t)
	m, _ = submit(t, m, `\help`)
	if !m.showHelp {
		t.Fatal("help not open")
	}
	// Tall enough that the viewport shows every section.
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 200})
	view := m.View()
	for _, want := range []string{helpTitle, "Commands", "Arithmetic"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view lacks %q", want)
		}
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Error("esc did not close help")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if !m.showHelp {
		t.Error("f1 did not open help")
	}
}

func TestQuitCommand(t *testing.T) {
	for _, line := range []string{`\quit`, `\q`} {
		t.Run(line, func(t *testing.T) {
			m := newApp(t)
			_, msgs := submit(t, m, line)
			var quit bool
			for _, msg := range msgs {
				if _, ok := msg.(tea.QuitMsg); ok {
					quit = true
				}
			}
			if !quit {
				t.Errorf("no quit in %v", msgs)
			}
		})
	}
}

func TestSettingsChangedReloads(t *testing.T) {
	m := newApp(t)
	path := m.settings.Path()
	vals := settings.Defaults()
	vals.ColorTheme = settings.Rainbow
	vals.ExtraCols = 1
	if err := settings.Write(path, vals); err != nil {
		t.Fatal(err)
	}

	m = update(t, m, common.SettingsChangedMsg{Path: path})
	if !m.Transcript().AlternateColors() {
		t.Error("alternate colors not applied")
	}
	if m.paletteWidth() == 0 {
		t.Error("operator column not applied")
	}
}

func TestSettingsReloadError(t *testing.T) {
	m := newApp(t)
	if err := os.WriteFile(m.settings.Path(), []byte("color_theme: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m = update(t, m, common.SettingsChangedMsg{Path: m.settings.Path()})
	if m.Transcript().Banner().State() != banner.ShowingError {
		t.Errorf("state = %v, want showingError", m.Transcript().Banner().State())
	}
}

func TestErrMsgShowsBanner(t *testing.T) {
	m := newApp(t)
	m = update(t, m, common.ErrMsg{Err: errors.New("watcher stopped")})
	b := m.Transcript().Banner()
	if b.State() != banner.ShowingError || b.Text() != "Watcher stopped" {
		t.Errorf("banner %v %q", b.State(), b.Text())
	}
}

func TestViewFillsScreen(t *testing.T) {
	m := newApp(t)
	m, _ = submit(t, m, "1 2 3")
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Errorf("view has %d lines, want 24", len(lines))
	}
}
