package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/termfolio/internal/render"
)

func TestPlain(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"text", "hello", "hello"},
		{"entities", "a &lt;b&gt; &amp; c", "a <b> & c"},
		{"span", `<span class="error">cat: x: No such file or directory</span>`, "cat: x: No such file or directory"},
		{"listing", `<span class="directory">projects/</span>  <span class="file-md">about.md</span>`, "projects/  about.md"},
		{"pre keeps layout", "<pre>  1  ls\n  2  pwd</pre>", "  1  ls\n  2  pwd"},
		{"raw newlines kept", `<span class="info">a</span>` + "\n" + `<span class="info">b</span>`, "a\nb"},
		{"break", "a<br>b", "a\nb"},
		{"unknown end tag ignored", "a</span>b", "ab"},
		{"trailing newlines trimmed", "<div>x</div>\n\n", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plain(tt.markup))
		})
	}
}

func TestPlain_Markdown(t *testing.T) {
	md := render.NewMarkdown()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"heading and paragraph", "# About\n\nHello there.", "# About\n\nHello there."},
		{"hard wraps", "line one\nline two", "line one\nline two"},
		{"bullets", "- one\n- two", "• one\n• two"},
		{"ordered", "1. one\n2. two", "1. one\n2. two"},
		{"task list", "- [x] done\n- [ ] todo", "• [x] done\n• [ ] todo"},
		{"link", "[site](https://example.com)", "site (https://example.com)"},
		{"code block", "```\nx := 1\n```", "x := 1"},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", "a | b\n1 | 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plain(md.RenderMarkdown(tt.src)))
		})
	}
}

func TestRender_StyledKeepsText(t *testing.T) {
	// lipgloss emits no escape codes without a terminal, so styled output
	// carries the same text.
	got := NewMarkup(false).Render(`<span class="error">boom</span>` + "\n" + `<b>x</b>`)
	assert.Contains(t, got, "boom")
	assert.Contains(t, got, "x")
}
