package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/termfolio/pkg/termfolio"
)

var (
	_ termfolio.Renderer = (*Markdown)(nil)
	_ termfolio.Escaper  = HTMLEscaper{}
)

func TestHTMLEscaper(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"a & b", "a &amp; b"},
		{`"quoted"`, "&#34;quoted&#34;"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTMLEscaper{}.EscapeHTML(tt.in))
	}
}

func TestMarkdown_WrapsOutput(t *testing.T) {
	out := NewMarkdown().RenderMarkdown("# Title\n\nbody")

	assert.True(t, strings.HasPrefix(out, `<div class="markdown-content">`))
	assert.True(t, strings.HasSuffix(out, `</div>`))
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<p>body</p>")
}

func TestMarkdown_PreservesLineBreaks(t *testing.T) {
	out := NewMarkdown().RenderMarkdown("first\nsecond")
	assert.Contains(t, out, "first<br>\nsecond")
}

func TestMarkdown_GFM(t *testing.T) {
	md := NewMarkdown()

	table := md.RenderMarkdown("| a | b |\n|---|---|\n| 1 | 2 |\n")
	assert.Contains(t, table, "<table>")

	strike := md.RenderMarkdown("~~gone~~")
	assert.Contains(t, strike, "<del>gone</del>")

	tasks := md.RenderMarkdown("- [x] done\n")
	assert.Contains(t, tasks, `type="checkbox"`)
}

func TestMarkdown_DropsRawHTML(t *testing.T) {
	out := NewMarkdown().RenderMarkdown("<script>alert(1)</script>\n")
	assert.NotContains(t, out, "<script>")
}
