package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/termfolio/internal/commands"
	"github.com/vvka-141/termfolio/internal/files/filesystem"
	"github.com/vvka-141/termfolio/internal/session"
	"github.com/vvka-141/termfolio/internal/sink"
)

func testRegistry(t *testing.T) *commands.Registry {
	t.Helper()
	tree, err := filesystem.Build([]filesystem.Entry{
		{Path: "about.md", Content: "# About\n\nhello"},
		{Path: "projects/alpha.md", Content: "alpha"},
	})
	require.NoError(t, err)
	return commands.New(tree, commands.WithHost("testhost"))
}

func newTestModel(t *testing.T) (Model, *Screen) {
	t.Helper()
	screen := NewScreen(true)
	ed := session.New(testRegistry(t), screen, session.WithBanner(false))
	ed.Start()
	return NewModel(ed, screen), screen
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, string(r))
	}
	return m
}

func TestModel_TypeAndSubmit(t *testing.T) {
	m, screen := newTestModel(t)

	m = typeText(t, m, "pwd")
	assert.Equal(t, "pwd", m.Editor().Buffer())

	m = press(t, m, "enter")
	lines := screen.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "visitor@testhost:~$ pwd", lines[0])
	assert.Equal(t, "~", lines[1])
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, []string{"pwd"}, m.Editor().History())
}

func TestModel_PromptFollowsCd(t *testing.T) {
	m, screen := newTestModel(t)

	m = typeText(t, m, "cd projects")
	m = press(t, m, "enter")

	assert.Equal(t, "visitor@testhost:~/projects$", screen.Prompt())
	assert.Equal(t, "visitor@testhost:~/projects$ ", m.input.Prompt)
}

func TestModel_HistoryKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "ls")
	m = press(t, m, "enter")
	m = typeText(t, m, "pwd")
	m = press(t, m, "enter")

	m = press(t, m, "up", "up")
	assert.Equal(t, "ls", m.input.Value())
	m = press(t, m, "down", "down")
	assert.Equal(t, "", m.input.Value())
}

func TestModel_TabCompletion(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(t, m, "cat ab")
	m = press(t, m, "tab")

	assert.Equal(t, "cat about.md", m.input.Value())
	assert.Equal(t, "cat about.md", m.Editor().Buffer())
}

func TestModel_CtrlCAndCtrlL(t *testing.T) {
	m, screen := newTestModel(t)

	m = typeText(t, m, "echo hi")
	m = press(t, m, "ctrl+c")
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, []string{"visitor@testhost:~$ echo hi^C"}, screen.Lines())

	m = press(t, m, "ctrl+l")
	assert.Empty(t, screen.Lines())
	_ = m
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(keyMsg("ctrl+d"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok, "ctrl+d should produce tea.Quit")
	assert.Equal(t, "", next.View())
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	m = next.(Model)

	assert.True(t, m.ready)
	assert.Equal(t, 60, m.viewport.Width)
	assert.Equal(t, 8, m.viewport.Height)
	assert.Contains(t, m.View(), "ctrl+d quit")
}

func TestRunScript(t *testing.T) {
	var out strings.Builder
	w := sink.NewWriter(&out, Plain)
	ed := session.New(testRegistry(t), w, session.WithBanner(false))

	failed, err := RunScript(context.Background(), strings.NewReader("pwd\r\ncat missing.md\n\necho done\n"), ed)

	require.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Equal(t, strings.Join([]string{
		"visitor@testhost:~$ pwd",
		"~",
		"visitor@testhost:~$ cat missing.md",
		"cat: missing.md: No such file or directory",
		"visitor@testhost:~$",
		"visitor@testhost:~$ echo done",
		"done",
	}, "\n")+"\n", out.String())
}

func TestRunScript_Cancelled(t *testing.T) {
	ed := session.New(testRegistry(t), sink.NewTranscript(), session.WithBanner(false))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunScript(ctx, strings.NewReader("pwd\n"), ed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLines(t *testing.T) {
	tr := sink.NewTranscript()
	ed := session.New(testRegistry(t), tr, session.WithBanner(false))

	failed, err := RunLines(context.Background(), []string{"cd projects", "ls"}, ed)

	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Equal(t, `<span class="file-md">alpha.md</span>`, tr.Last())
}
