// Package sink provides termfolio.Sink implementations that do not need a
// terminal.
package sink

// Transcript is an in-memory termfolio.Sink. It keeps every emitted line
// since the last Reset along with the current prompt.
type Transcript struct {
	lines  []string
	prompt string
	resets int
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Emit appends one line of markup.
func (t *Transcript) Emit(markup string) {
	t.lines = append(t.lines, markup)
}

// Reset drops all lines.
func (t *Transcript) Reset() {
	t.lines = nil
	t.resets++
}

// SetPrompt records the prompt markup.
func (t *Transcript) SetPrompt(markup string) {
	t.prompt = markup
}

// Lines returns a copy of the lines emitted since the last Reset.
func (t *Transcript) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Last returns the most recent line, or "" when there is none.
func (t *Transcript) Last() string {
	if len(t.lines) == 0 {
		return ""
	}
	return t.lines[len(t.lines)-1]
}

// Prompt returns the most recently published prompt.
func (t *Transcript) Prompt() string { return t.prompt }

// Resets counts how many times Reset was called.
func (t *Transcript) Resets() int { return t.resets }

// Drain returns the lines and clears them without counting a reset.
func (t *Transcript) Drain() []string {
	out := t.lines
	t.lines = nil
	return out
}
