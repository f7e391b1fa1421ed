package session

import (
	"github.com/vvka-141/termfolio/internal/files/filesystem"
	"github.com/vvka-141/termfolio/internal/render"
	"github.com/vvka-141/termfolio/pkg/termfolio"
)

// PromptMarkup renders the prompt for host at path p.
func PromptMarkup(host string, p filesystem.Path) string {
	return promptMarkup(render.HTMLEscaper{}, host, p)
}

func promptMarkup(esc termfolio.Escaper, host string, p filesystem.Path) string {
	return `<span class="prompt-user">` + termfolio.User + `</span>` +
		`<span class="prompt-at">@</span>` +
		`<span class="prompt-host">` + esc.EscapeHTML(host) + `</span>` +
		`<span class="prompt-separator">:</span>` +
		`<span class="prompt-path">` + esc.EscapeHTML(p.String()) + `</span>` +
		`<span class="prompt-symbol">$</span>`
}
