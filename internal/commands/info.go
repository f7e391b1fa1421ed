package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vvka-141/termfolio/pkg/termfolio"
)

// DateLayout mimics the browser's Date.toString output.
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// ErrSudoRefused is the failure every sudo invocation ends with.
var ErrSudoRefused = errors.New("sudo refused")

// SudoResponses are the refusals sudo picks from.
var SudoResponses = []string{
	errorLine("Nice try, but you're just a visitor here!"),
	errorLine("Permission denied: you are not in the sudoers file. This incident will be reported."),
	errorLine("sudo: command not found in this dimension"),
	warningLine("I appreciate the confidence, but no."),
}

const helpText = `<span class="info">Available commands:</span>

  <span class="success">ls</span> [path]      List directory contents
  <span class="success">cat</span> &lt;file&gt;     Display file contents (renders markdown)
  <span class="success">cd</span> [path]      Change directory
  <span class="success">pwd</span>            Print working directory
  <span class="success">clear</span>          Clear the terminal
  <span class="success">help</span>           Show this help message

<span class="info">Easter eggs:</span>

  <span class="success">whoami</span>         Who are you?
  <span class="success">neofetch</span>       System information
  <span class="success">echo</span> &lt;text&gt;    Print text
  <span class="success">date</span>           Show current date
  <span class="success">history</span>        Show command history
  <span class="success">sudo</span> &lt;cmd&gt;     Try it

<span class="info">Tips:</span>
  - Use <span class="success">Tab</span> for autocompletion
  - Use <span class="success">↑/↓</span> arrows to navigate command history
  - Use <span class="success">Ctrl+C</span> to cancel a line, <span class="success">Ctrl+L</span> to clear the screen
  - Try <span class="success">cat about.md</span> to learn more about me!`

const neofetchArt = `<span class="ascii-art">  _____
 |_   _|__ _ __ _ __ ___
   | |/ _ \ '__| '_ ` + "`" + ` _ \
   | |  __/ |  | | | | | |
   |_|\___|_|  |_| |_| |_|
                          </span>`

func (b *builtins) help(_ []string, ctx Context) Result {
	ctx.Emit(helpText)
	return succeed()
}

func (b *builtins) whoami(_ []string, ctx Context) Result {
	ctx.Emit(termfolio.User)
	return succeed()
}

func (b *builtins) neofetch(_ []string, ctx Context) Result {
	documents := 0
	if b.opts.tree != nil {
		documents = b.opts.tree.FileCount()
	}
	uptime := b.opts.now().Sub(b.opts.started).Round(time.Second)

	label := func(s string) string { return `<span class="neofetch-label">` + s + `</span>` }
	value := func(s string) string { return `<span class="neofetch-value">` + s + `</span>` }
	host := b.esc(b.opts.host)

	lines := []string{
		label(termfolio.User) + value("@") + label(host),
		value(strings.Repeat("-", len(termfolio.User)+1+len(b.opts.host))),
		label("OS:") + " " + value("Terminal Portfolio v1.0"),
		label("Host:") + " " + value(host),
		label("Shell:") + " " + value(termfolio.ShellName),
		label("Theme:") + " " + value("Catppuccin Mocha"),
		label("Terminal:") + " " + value("termfolio"),
		label("Documents:") + " " + value(fmt.Sprintf("%d", documents)),
		label("Uptime:") + " " + value(uptime.String()),
	}

	ctx.Emit(`<div class="neofetch">` + neofetchArt + `<div>` + strings.Join(lines, "\n") + `</div></div>`)
	return succeed()
}

func (b *builtins) sudo(args []string, ctx Context) Result {
	if len(args) == 0 {
		ctx.Emit(errorLine("usage: sudo command"))
		return fail(termfolio.ErrMissingArgument)
	}

	i := b.opts.choose(len(SudoResponses))
	if i < 0 || i >= len(SudoResponses) {
		i = 0
	}
	ctx.Emit(SudoResponses[i])
	return fail(ErrSudoRefused)
}

func (b *builtins) echo(args []string, ctx Context) Result {
	ctx.Emit(b.esc(strings.Join(args, " ")))
	return succeed()
}

func (b *builtins) date(_ []string, ctx Context) Result {
	ctx.Emit(b.opts.now().Format(DateLayout))
	return succeed()
}

func (b *builtins) history(_ []string, ctx Context) Result {
	entries := ctx.History()
	if len(entries) == 0 {
		ctx.Emit(infoLine("No commands in history"))
		return succeed()
	}

	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("  %d  %s", i+1, b.esc(entry)))
	}
	ctx.Emit("<pre>" + strings.Join(lines, "\n") + "</pre>")
	return succeed()
}
