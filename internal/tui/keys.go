package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/termfolio/internal/session"
)

// KeyMap defines the key bindings of the shell screen.
type KeyMap struct {
	Submit      key.Binding
	HistoryUp   key.Binding
	HistoryDown key.Binding
	Complete    key.Binding
	Interrupt   key.Binding
	ClearScreen key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		HistoryUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous command"),
		),
		HistoryDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next command"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel line"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "quit"),
		),
	}
}

// HelpText returns a one-line summary of the bindings.
func (k KeyMap) HelpText() string {
	return "enter run • tab complete • ↑/↓ history • ctrl+c cancel • ctrl+l clear • ctrl+d quit"
}

// Event maps a key press to the editor event it triggers. The second
// result is false for keys the editor does not handle.
func (k KeyMap) Event(msg tea.KeyMsg) (session.KeyEvent, bool) {
	switch {
	case key.Matches(msg, k.Submit):
		return session.KeyEvent{Key: session.KeyEnter}, true
	case key.Matches(msg, k.HistoryUp):
		return session.KeyEvent{Key: session.KeyUp}, true
	case key.Matches(msg, k.HistoryDown):
		return session.KeyEvent{Key: session.KeyDown}, true
	case key.Matches(msg, k.Complete):
		return session.KeyEvent{Key: session.KeyTab}, true
	case key.Matches(msg, k.Interrupt):
		return session.KeyEvent{Key: 'c', Ctrl: true}, true
	case key.Matches(msg, k.ClearScreen):
		return session.KeyEvent{Key: 'l', Ctrl: true}, true
	}
	return session.KeyEvent{}, false
}
