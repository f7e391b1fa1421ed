package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
)

// Markup flattens shell markup into terminal text. In plain mode no styles
// are applied, so output is safe for pipes and files.
type Markup struct {
	plain bool
}

// NewMarkup creates a Markup converter.
func NewMarkup(plain bool) *Markup {
	return &Markup{plain: plain}
}

// Plain converts markup to unstyled text.
func Plain(markup string) string {
	return NewMarkup(true).Render(markup)
}

type frame struct {
	tag      string
	style    *lipgloss.Style
	href     string
	markdown bool
}

type list struct {
	ordered bool
	n       int
}

type flattener struct {
	m        *Markup
	b        strings.Builder
	stack    []frame
	lists    []list
	cells    int
	markdown int
	pre      int
	item     bool
}

// Render converts one line of markup.
func (m *Markup) Render(markup string) string {
	f := &flattener{m: m}
	z := html.NewTokenizer(strings.NewReader(markup))

	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimRight(f.b.String(), "\n ")
		case html.TextToken:
			f.text(string(z.Text()))
		case html.StartTagToken:
			f.start(z.Token(), false)
		case html.SelfClosingTagToken:
			f.start(z.Token(), true)
		case html.EndTagToken:
			f.end(z.Token().Data)
		}
	}
}

func attr(t html.Token, name string) string {
	v, _ := findAttr(t, name)
	return v
}

func (f *flattener) start(t html.Token, selfClosing bool) {
	switch t.Data {
	case "br":
		f.b.WriteString("\n")
		return
	case "hr":
		f.newline()
		f.write(SymbolRule, &HelpStyle)
		f.b.WriteString("\n")
		return
	case "input":
		if attr(t, "type") == "checkbox" {
			if _, checked := findAttr(t, "checked"); checked {
				f.b.WriteString(SymbolChecked)
			} else {
				f.b.WriteString(SymbolUnchecked)
			}
		}
		return
	case "img":
		f.b.WriteString("[" + attr(t, "alt") + "]")
		return
	}
	if selfClosing {
		return
	}

	fr := frame{tag: t.Data}
	for _, class := range strings.Fields(attr(t, "class")) {
		if class == "markdown-content" {
			fr.markdown = true
			f.markdown++
		}
		if s, ok := ClassStyles[class]; ok {
			fr.style = &s
			break
		}
	}

	switch t.Data {
	case "div", "p", "pre", "blockquote", "table":
		f.newline()
	case "h1", "h2", "h3", "h4", "h5", "h6":
		f.blankLine()
		level, _ := strconv.Atoi(t.Data[1:])
		fr.style = &HeadingStyle
		f.write(strings.Repeat("#", level)+" ", fr.style)
	case "ul", "ol":
		f.newline()
		f.lists = append(f.lists, list{ordered: t.Data == "ol"})
	case "li":
		f.item = false
		f.newline()
		f.bullet()
	case "tr":
		f.newline()
		f.cells = 0
	case "td", "th":
		if f.cells > 0 {
			f.b.WriteString(" | ")
		}
		f.cells++
		if t.Data == "th" {
			fr.style = &StrongStyle
		}
	case "strong", "b":
		fr.style = &StrongStyle
	case "em", "i":
		fr.style = &EmStyle
	case "del", "s":
		fr.style = &StrikeStyle
	case "code":
		fr.style = &CodeStyle
	case "a":
		fr.style = &LinkStyle
		fr.href = attr(t, "href")
	}
	if t.Data == "blockquote" {
		fr.style = &QuoteStyle
	}
	if t.Data == "pre" {
		f.pre++
	}

	f.stack = append(f.stack, fr)
}

func findAttr(t html.Token, name string) (string, bool) {
	for _, a := range t.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (f *flattener) end(tag string) {
	i := len(f.stack) - 1
	for i >= 0 && f.stack[i].tag != tag {
		i--
	}
	if i < 0 {
		return
	}

	for j := len(f.stack) - 1; j >= i; j-- {
		f.close(f.stack[j])
	}
	f.stack = f.stack[:i]
}

func (f *flattener) close(fr frame) {
	switch fr.tag {
	case "a":
		if fr.href != "" {
			f.write(" ("+fr.href+")", &HelpStyle)
		}
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "table", "blockquote":
		f.blankLine()
	case "pre":
		f.pre--
		f.newline()
	case "ul", "ol":
		if len(f.lists) > 0 {
			f.lists = f.lists[:len(f.lists)-1]
		}
		if len(f.lists) == 0 {
			f.blankLine()
		}
	case "div":
		f.newline()
	}
	if fr.markdown {
		f.markdown--
	}
}

func (f *flattener) bullet() {
	f.item = true
	if len(f.lists) == 0 {
		f.b.WriteString(SymbolBullet + " ")
		return
	}
	l := &f.lists[len(f.lists)-1]
	f.b.WriteString(strings.Repeat("  ", len(f.lists)-1))
	if l.ordered {
		l.n++
		f.b.WriteString(strconv.Itoa(l.n) + ". ")
		return
	}
	f.b.WriteString(SymbolBullet + " ")
}

func (f *flattener) text(s string) {
	if f.markdown > 0 && f.pre == 0 {
		if strings.TrimSpace(s) == "" {
			return
		}
		s = strings.ReplaceAll(s, "\n", " ")
		if out := f.b.String(); out == "" || strings.HasSuffix(out, "\n") {
			s = strings.TrimLeft(s, " ")
		}
	}
	var style *lipgloss.Style
	for i := len(f.stack) - 1; i >= 0; i-- {
		if f.stack[i].style == nil {
			continue
		}
		if style == nil {
			st := *f.stack[i].style
			style = &st
			continue
		}
		inherited := style.Inherit(*f.stack[i].style)
		style = &inherited
	}
	f.item = false
	f.write(s, style)
}

func (f *flattener) write(s string, style *lipgloss.Style) {
	if f.m.plain || style == nil {
		f.b.WriteString(s)
		return
	}
	// lipgloss pads multi-line blocks; style each line on its own.
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i > 0 {
			f.b.WriteString("\n")
		}
		if line != "" {
			f.b.WriteString(style.Render(line))
		}
	}
}

func (f *flattener) newline() {
	if f.item {
		return
	}
	out := f.b.String()
	if out != "" && !strings.HasSuffix(out, "\n") {
		f.b.WriteString("\n")
	}
}

func (f *flattener) blankLine() {
	if f.item {
		return
	}
	out := f.b.String()
	switch {
	case out == "", strings.HasSuffix(out, "\n\n"):
	case strings.HasSuffix(out, "\n"):
		f.b.WriteString("\n")
	default:
		f.b.WriteString("\n\n")
	}
}
