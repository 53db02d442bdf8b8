package common

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ── Custom messages ─────────────────────────────────────────────────────────

// ErrMsg carries an error to be shown in the message banner.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message for the banner.
type InfoMsg struct{ Text string }

// SettingsChangedMsg reports that the settings file changed on disk.
type SettingsChangedMsg struct{ Path string }

// SettingsSavedMsg reports the result of writing the settings file.
type SettingsSavedMsg struct {
	Path string
	Err  error
}

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}
