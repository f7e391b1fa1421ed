package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/termfolio/internal/session"
)

// Run starts the editor and drives it with the full-screen UI until the
// user quits or ctx is cancelled. The editor's sink must be screen.
func Run(ctx context.Context, editor *session.Editor, screen *Screen) error {
	editor.Start()

	p := tea.NewProgram(NewModel(editor, screen), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	return nil
}

// RunScript submits every line of r to editor in order and returns the
// number of failed commands. Blank lines are submitted too; they succeed.
func RunScript(ctx context.Context, r io.Reader, editor *session.Editor) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		editor.SetBuffer(strings.TrimRight(scanner.Text(), "\r"))
		if res := editor.Submit(); !res.Success {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("read script: %w", err)
	}
	return failed, nil
}

// RunLines is RunScript over an in-memory list of lines.
func RunLines(ctx context.Context, lines []string, editor *session.Editor) (int, error) {
	return RunScript(ctx, strings.NewReader(strings.Join(lines, "\n")), editor)
}
