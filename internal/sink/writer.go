package sink

import (
	"io"
	"sync"
)

// Formatter converts one line of markup into display text.
type Formatter func(markup string) string

// Writer is a termfolio.Sink that writes each emitted line, formatted, to an
// io.Writer. The prompt is kept but never written; Reset writes nothing.
// Used by scripted runs where output is a plain stream.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	format Formatter
	prompt string
	err    error
}

// NewWriter creates a Writer. A nil format writes markup unchanged.
func NewWriter(out io.Writer, format Formatter) *Writer {
	if format == nil {
		format = func(s string) string { return s }
	}
	return &Writer{out: out, format: format}
}

// Emit writes markup followed by a newline. After the first write error
// further output is dropped; Err reports it.
func (w *Writer) Emit(markup string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, w.format(markup)+"\n")
}

// Reset is a no-op for stream output.
func (w *Writer) Reset() {}

// SetPrompt records markup as the current prompt.
func (w *Writer) SetPrompt(markup string) {
	w.mu.Lock()
	w.prompt = markup
	w.mu.Unlock()
}

// Prompt returns the current prompt markup.
func (w *Writer) Prompt() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.prompt
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}
