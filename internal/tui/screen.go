package tui

// Screen is the termfolio.Sink behind the interactive model. It keeps the
// transcript already converted to terminal text.
type Screen struct {
	markup *Markup
	lines  []string
	prompt string
}

// NewScreen creates an empty screen. In plain mode lines are unstyled.
func NewScreen(plain bool) *Screen {
	return &Screen{markup: NewMarkup(plain)}
}

// Emit appends one line of markup.
func (s *Screen) Emit(markup string) {
	s.lines = append(s.lines, s.markup.Render(markup))
}

// Reset wipes the transcript.
func (s *Screen) Reset() {
	s.lines = nil
}

// SetPrompt replaces the prompt.
func (s *Screen) SetPrompt(markup string) {
	s.prompt = s.markup.Render(markup)
}

// Lines returns the rendered transcript.
func (s *Screen) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Prompt returns the rendered prompt.
func (s *Screen) Prompt() string { return s.prompt }
