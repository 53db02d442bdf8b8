package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings. Transcript scrolling keys live in
// transcript.KeyMap; everything else typed goes to the scratchpad.
type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Back        key.Binding
	Submit      key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
}

// DefaultKeyMap returns the default keybindings. No binding uses a
// printable key, since those belong to the scratchpad.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		HistoryPrev: key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "older input")),
		HistoryNext: key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "newer input")),
	}
}

// Bindings lists the bindings in help order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Submit, k.HistoryPrev, k.HistoryNext, k.Help, k.Back, k.Quit}
}
