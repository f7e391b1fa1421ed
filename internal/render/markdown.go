package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown renders GitHub-flavored Markdown with line breaks preserved.
// Raw HTML inside documents is not passed through.
// Safe for concurrent use by multiple goroutines.
type Markdown struct {
	md      goldmark.Markdown
	escaper HTMLEscaper
}

// NewMarkdown creates a renderer with GFM tables, strikethrough, task lists
// and autolinks enabled.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// RenderMarkdown returns the document wrapped in a markdown-content container.
// If conversion fails the escaped source is returned preformatted instead.
func (m *Markdown) RenderMarkdown(text string) string {
	var buf bytes.Buffer
	buf.WriteString(`<div class="markdown-content">`)
	if err := m.md.Convert([]byte(text), &buf); err != nil {
		return `<pre>` + m.escaper.EscapeHTML(text) + `</pre>`
	}
	buf.WriteString(`</div>`)
	return buf.String()
}
