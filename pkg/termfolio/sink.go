package termfolio

// Sink receives rendered markup from a shell session.
// It owns the actual display surface; the session never touches one directly.
type Sink interface {
	// Emit appends one rendered line of markup to the transcript.
	// The sink keeps the newest line in view.
	Emit(markup string)

	// Reset removes all prior transcript content.
	Reset()

	// SetPrompt replaces the prompt shown in front of the input line.
	SetPrompt(markup string)
}

// Renderer turns Markdown text into self-contained markup.
type Renderer interface {
	RenderMarkdown(text string) string
}

// Escaper neutralizes HTML metacharacters so text can be embedded in markup.
type Escaper interface {
	EscapeHTML(text string) string
}
