package commands

import (
	"fmt"
	"strings"

	"github.com/vvka-141/termfolio/internal/files/filesystem"
	"github.com/vvka-141/termfolio/pkg/termfolio"
)

// Result reports a command's exit status. Err carries the error category
// (termfolio.ErrNotFound and friends) for logging only.
type Result struct {
	Success bool
	Err     error
}

func succeed() Result { return Result{Success: true} }

func fail(err error) Result { return Result{Success: false, Err: err} }

// Context is the view of a session a handler is allowed to use.
type Context interface {
	// CurrentPath returns the working directory.
	CurrentPath() filesystem.Path

	// History returns the submitted lines, oldest first.
	History() []string

	// Emit appends one line of markup to the transcript.
	Emit(markup string)

	// ResetScreen wipes all prior transcript output.
	ResetScreen()

	// SetPath changes the working directory and refreshes the prompt.
	SetPath(p filesystem.Path)
}

// Handler executes one command with its parsed arguments.
type Handler func(args []string, ctx Context) Result

// Command pairs a lower-case name with its handler.
type Command struct {
	Name    string
	Handler Handler
}

// Registry is an immutable mapping from command name to handler.
// It is built once and shared by reference; lookups never mutate it.
type Registry struct {
	handlers map[string]Handler
	names    []string
	opts     options
}

// NewRegistry builds a registry holding exactly cmds, in the given order.
// Later duplicates of a name are ignored.
func NewRegistry(cmds []Command, opts ...Option) *Registry {
	r := &Registry{
		handlers: make(map[string]Handler, len(cmds)),
		names:    make([]string, 0, len(cmds)),
		opts:     newOptions(opts),
	}

	for _, c := range cmds {
		name := strings.ToLower(c.Name)
		if _, exists := r.handlers[name]; exists {
			continue
		}
		r.handlers[name] = c.Handler
		r.names = append(r.names, name)
	}

	return r
}

// Names returns the registered command names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Has reports whether name (case-insensitive) is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[strings.ToLower(name)]
	return ok
}

// Host returns the host name shown in prompts.
func (r *Registry) Host() string {
	return r.opts.host
}

// Escaper returns the escaper used for all interpolated text.
func (r *Registry) Escaper() termfolio.Escaper {
	return r.opts.escaper
}

// Dispatch parses rawLine and runs the matching handler. An empty line
// succeeds without output; an unknown name reports termfolio.ErrUnknownCommand.
func (r *Registry) Dispatch(rawLine string, ctx Context) Result {
	fields := strings.Fields(rawLine)
	if len(fields) == 0 {
		return succeed()
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	handler, ok := r.handlers[name]
	if !ok {
		r.opts.logger.Verbose("unknown command %q", name)
		ctx.Emit(fmt.Sprintf("%s\n%s",
			errorLine("Command not found: "+r.opts.escaper.EscapeHTML(name)),
			infoLine("Type 'help' to see available commands.")))
		return fail(fmt.Errorf("%w: %s", termfolio.ErrUnknownCommand, name))
	}

	r.opts.logger.Verbose("dispatch %s %v", name, args)
	return handler(args, ctx)
}

func errorLine(msg string) string {
	return `<span class="error">` + msg + `</span>`
}

func infoLine(msg string) string {
	return `<span class="info">` + msg + `</span>`
}

func warningLine(msg string) string {
	return `<span class="warning">` + msg + `</span>`
}
