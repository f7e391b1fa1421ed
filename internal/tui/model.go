package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/termfolio/internal/session"
)

// Model is the bubbletea model of the shell: a scrolling transcript above
// a single input line. Special keys go to the editor; everything else is
// ordinary typing handled by the text input.
type Model struct {
	editor   *session.Editor
	screen   *Screen
	keys     KeyMap
	input    textinput.Model
	viewport viewport.Model
	ready    bool
	quitting bool
}

// NewModel creates a model over an editor whose sink is screen.
func NewModel(editor *session.Editor, screen *Screen) Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Focus()

	m := Model{
		editor:   editor,
		screen:   screen,
		keys:     DefaultKeyMap(),
		input:    ti,
		viewport: viewport.New(80, 20),
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-2)
		m.ready = true
		m.sync()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		if ev, ok := m.keys.Event(msg); ok {
			m.editor.SetBuffer(m.input.Value())
			m.editor.HandleKey(ev)
			m.input.SetValue(m.editor.Buffer())
			m.input.CursorEnd()
			m.sync()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.editor.SetBuffer(m.input.Value())
	return m, cmd
}

// sync copies the screen into the viewport and the prompt into the input.
func (m *Model) sync() {
	m.input.Prompt = m.screen.Prompt() + " "
	if w := m.viewport.Width - lipgloss.Width(m.input.Prompt) - 1; w > 0 {
		m.input.Width = w
	}

	content := strings.Join(m.screen.Lines(), "\n")
	if m.viewport.Width > 0 {
		content = lipgloss.NewStyle().Width(m.viewport.Width).Render(content)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return strings.Join(m.screen.Lines(), "\n") + "\n" + m.input.View()
	}
	return m.viewport.View() + "\n" + m.input.View() + "\n" + HelpStyle.Render(m.keys.HelpText())
}

// Editor returns the underlying editor.
func (m Model) Editor() *session.Editor { return m.editor }
