package session

import (
	"strings"
	"time"

	"github.com/vvka-141/termfolio/internal/commands"
	"github.com/vvka-141/termfolio/internal/files/filesystem"
	"github.com/vvka-141/termfolio/pkg/termfolio"
)

// Editor drives one session: it turns key events into registry dispatches
// and transcript output.
type Editor struct {
	registry *commands.Registry
	sink     termfolio.Sink
	opts     options
	state    *State
}

// New creates an editor over registry writing to sink.
func New(registry *commands.Registry, sink termfolio.Sink, opts ...Option) *Editor {
	o := newOptions(opts)
	return &Editor{
		registry: registry,
		sink:     sink,
		opts:     o,
		state:    newState(o.id, o.now()),
	}
}

// Start emits the welcome banner (when enabled) and publishes the prompt.
func (e *Editor) Start() {
	e.opts.logger.Info("session %s started at %s", e.state.ID, e.state.Started.Format(time.RFC3339))
	if e.opts.banner {
		e.sink.Emit(Banner)
	}
	e.refreshPrompt()
}

// State returns the session state. Callers must not modify it.
func (e *Editor) State() *State { return e.state }

// ID returns the session identifier.
func (e *Editor) ID() string { return e.state.ID.String() }

// Path returns the working directory.
func (e *Editor) Path() filesystem.Path { return e.state.Path }

// History returns a copy of the submitted lines, oldest first.
func (e *Editor) History() []string {
	out := make([]string, len(e.state.History))
	copy(out, e.state.History)
	return out
}

// Buffer returns the in-progress input.
func (e *Editor) Buffer() string { return e.state.Buffer }

// SetBuffer replaces the in-progress input. The presentation layer calls it
// after applying ordinary typing.
func (e *Editor) SetBuffer(s string) { e.state.Buffer = s }

// Prompt returns the current prompt markup.
func (e *Editor) Prompt() string {
	return promptMarkup(e.registry.Escaper(), e.registry.Host(), e.state.Path)
}

// Submit echoes and records the buffer, dispatches it and clears it.
func (e *Editor) Submit() commands.Result {
	line := e.state.Buffer
	e.echo(line)

	e.state.record(line)
	e.state.cursor = notNavigating
	e.state.pending = ""

	res := e.registry.Dispatch(line, boundContext{e})
	if !res.Success {
		e.opts.logger.Verbose("session %s: %q failed: %v", e.state.ID, line, res.Err)
	}

	e.state.Buffer = ""
	return res
}

// HistoryUp shows the previous history entry, saving the buffer on the
// first step.
func (e *Editor) HistoryUp() {
	s := e.state
	if len(s.History) == 0 {
		return
	}

	switch {
	case s.cursor == notNavigating:
		s.pending = s.Buffer
		s.cursor = len(s.History) - 1
	case s.cursor > 0:
		s.cursor--
	}
	s.Buffer = s.History[s.cursor]
}

// HistoryDown shows the next history entry, restoring the saved buffer
// after the newest one.
func (e *Editor) HistoryDown() {
	s := e.state
	if s.cursor == notNavigating {
		return
	}

	if s.cursor+1 >= len(s.History) {
		s.cursor = notNavigating
		s.Buffer = s.pending
		return
	}
	s.cursor++
	s.Buffer = s.History[s.cursor]
}

// Complete applies tab completion to the buffer.
func (e *Editor) Complete() []string {
	s := e.state
	candidates := e.registry.Complete(s.Buffer, s.Path)

	switch len(candidates) {
	case 0:
	case 1:
		tokens := commands.Tokenize(s.Buffer)
		if len(tokens) == 1 {
			s.Buffer = candidates[0] + " "
		} else {
			tokens[len(tokens)-1] = candidates[0]
			s.Buffer = strings.Join(tokens, " ")
		}
	default:
		e.echo(s.Buffer)
		e.sink.Emit(strings.Join(candidates, "  "))
	}
	return candidates
}

// Interrupt abandons the buffer, echoing it with a ^C marker.
func (e *Editor) Interrupt() {
	e.echo(e.state.Buffer + "^C")
	e.state.Buffer = ""
}

// ClearScreen wipes the transcript without going through dispatch.
func (e *Editor) ClearScreen() {
	e.sink.Reset()
}

func (e *Editor) echo(input string) {
	e.sink.Emit(e.Prompt() + " " + e.registry.Escaper().EscapeHTML(input))
}

func (e *Editor) refreshPrompt() {
	e.sink.SetPrompt(e.Prompt())
}

// boundContext exposes the editor to command handlers.
type boundContext struct {
	e *Editor
}

func (c boundContext) CurrentPath() filesystem.Path { return c.e.state.Path }
func (c boundContext) History() []string            { return c.e.History() }
func (c boundContext) Emit(markup string)           { c.e.sink.Emit(markup) }
func (c boundContext) ResetScreen()                 { c.e.sink.Reset() }

func (c boundContext) SetPath(p filesystem.Path) {
	c.e.state.Path = p
	c.e.refreshPrompt()
}
