package render

import "html"

// HTMLEscaper neutralizes &, <, >, ' and " so text is safe inside markup.
type HTMLEscaper struct{}

// EscapeHTML implements termfolio.Escaper.
func (HTMLEscaper) EscapeHTML(text string) string {
	return html.EscapeString(text)
}
