package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/termfolio/internal/files/filesystem"
)

// fakeContext records everything a handler does to the session.
type fakeContext struct {
	path    filesystem.Path
	history []string
	emitted []string
	resets  int
	setPath int
}

func (c *fakeContext) CurrentPath() filesystem.Path { return c.path }
func (c *fakeContext) History() []string            { return c.history }
func (c *fakeContext) Emit(markup string)           { c.emitted = append(c.emitted, markup) }
func (c *fakeContext) ResetScreen()                 { c.resets++ }
func (c *fakeContext) SetPath(p filesystem.Path) {
	c.path = p
	c.setPath++
}

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func testTree(t *testing.T) *filesystem.Tree {
	t.Helper()
	tree, err := filesystem.Build([]filesystem.Entry{
		{Path: "about.md", Content: "# About\nhello"},
		{Path: "notes.txt", Content: "<b>raw</b>"},
		{Path: "blank.md", Content: ""},
		{Path: "projects/alpha.md", Content: "alpha"},
		{Path: "projects/beta.md", Content: "beta"},
		{Path: "emptydir/"},
		{Path: "<evil>.md", Content: "x"},
	})
	require.NoError(t, err)
	return tree
}

// stubRenderer records the text it was asked to render.
type stubRenderer struct {
	calls []string
}

func (r *stubRenderer) RenderMarkdown(text string) string {
	r.calls = append(r.calls, text)
	return "<md>" + text + "</md>"
}

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithStartTime(fixedNow.Add(-90 * time.Second)),
		WithChooser(func(int) int { return 0 }),
		WithHost("testhost"),
	}
	return New(testTree(t), append(base, opts...)...)
}
