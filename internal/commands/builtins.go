package commands

import (
	"fmt"
	"strings"

	"github.com/vvka-141/termfolio/internal/files/filesystem"
	"github.com/vvka-141/termfolio/pkg/termfolio"
)

// builtins holds the dependencies shared by the built-in handlers.
type builtins struct {
	opts *options
}

// New builds the standard registry over tree. Registration order is the
// order help and completion list commands in.
func New(tree *filesystem.Tree, opts ...Option) *Registry {
	r := NewRegistry(nil, append([]Option{WithTree(tree)}, opts...)...)
	b := &builtins{opts: &r.opts}

	for _, c := range []Command{
		{"ls", b.ls},
		{"cat", b.cat},
		{"cd", b.cd},
		{"pwd", b.pwd},
		{"clear", b.clear},
		{"help", b.help},
		{"whoami", b.whoami},
		{"neofetch", b.neofetch},
		{"sudo", b.sudo},
		{"echo", b.echo},
		{"date", b.date},
		{"history", b.history},
	} {
		r.handlers[c.Name] = c.Handler
		r.names = append(r.names, c.Name)
	}

	return r
}

func (b *builtins) esc(s string) string {
	return b.opts.escaper.EscapeHTML(s)
}

func (b *builtins) lookup(p filesystem.Path) (*filesystem.Node, bool) {
	if b.opts.tree == nil {
		return nil, false
	}
	return b.opts.tree.Lookup(p)
}

func (b *builtins) ls(args []string, ctx Context) Result {
	target := ctx.CurrentPath()
	if len(args) > 0 {
		target = filesystem.Resolve(target, args[0])
	}

	node, ok := b.lookup(target)
	if !ok {
		ctx.Emit(errorLine("ls: cannot access: No such file or directory"))
		return fail(termfolio.ErrNotFound)
	}
	if !node.IsDir() {
		ctx.Emit(errorLine("ls: cannot access: Not a directory"))
		return fail(termfolio.ErrNotADirectory)
	}

	children := node.Children()
	if len(children) == 0 {
		return succeed()
	}

	items := make([]string, 0, len(children))
	for _, child := range children {
		name := b.esc(child.Name())
		switch {
		case child.IsDir():
			items = append(items, `<span class="directory">`+name+`/</span>`)
		case child.IsMarkdown():
			items = append(items, `<span class="file-md">`+name+`</span>`)
		default:
			items = append(items, `<span class="file">`+name+`</span>`)
		}
	}

	ctx.Emit(strings.Join(items, "  "))
	return succeed()
}

func (b *builtins) cat(args []string, ctx Context) Result {
	if len(args) == 0 {
		ctx.Emit(errorLine("cat: missing file operand"))
		return fail(termfolio.ErrMissingArgument)
	}

	arg := b.esc(args[0])
	node, ok := b.lookup(filesystem.Resolve(ctx.CurrentPath(), args[0]))
	if !ok {
		ctx.Emit(errorLine(fmt.Sprintf("cat: %s: No such file or directory", arg)))
		return fail(termfolio.ErrNotFound)
	}
	if node.IsDir() {
		ctx.Emit(errorLine(fmt.Sprintf("cat: %s: Is a directory", arg)))
		return fail(termfolio.ErrIsADirectory)
	}

	switch {
	case node.Content() == "":
	case node.IsMarkdown():
		ctx.Emit(b.opts.renderer.RenderMarkdown(node.Content()))
	default:
		ctx.Emit("<pre>" + b.esc(node.Content()) + "</pre>")
	}
	return succeed()
}

func (b *builtins) cd(args []string, ctx Context) Result {
	target := "~"
	if len(args) > 0 {
		target = args[0]
	}

	if target == "~" || target == "" {
		ctx.SetPath(filesystem.Path{})
		return succeed()
	}

	p := filesystem.Resolve(ctx.CurrentPath(), target)
	if p.IsRoot() {
		ctx.SetPath(filesystem.Path{})
		return succeed()
	}

	node, ok := b.lookup(p)
	if !ok {
		ctx.Emit(errorLine(fmt.Sprintf("cd: %s: No such file or directory", b.esc(target))))
		return fail(termfolio.ErrNotFound)
	}
	if !node.IsDir() {
		ctx.Emit(errorLine(fmt.Sprintf("cd: %s: Not a directory", b.esc(target))))
		return fail(termfolio.ErrNotADirectory)
	}

	ctx.SetPath(p)
	return succeed()
}

func (b *builtins) pwd(_ []string, ctx Context) Result {
	ctx.Emit(b.esc(ctx.CurrentPath().String()))
	return succeed()
}

func (b *builtins) clear(_ []string, ctx Context) Result {
	ctx.ResetScreen()
	return succeed()
}
