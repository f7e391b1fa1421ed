package session

// Key identifies a key event. Printable keys are their rune value; the
// named keys use negative values so they never collide with a rune.
type Key rune

const (
	KeyEnter Key = -(iota + 1)
	KeyUp
	KeyDown
	KeyTab
)

// KeyEvent is one key press with its modifier state.
type KeyEvent struct {
	Key  Key
	Ctrl bool
}

// HandleKey routes ev to the matching editor operation. It reports whether
// the event was consumed; ordinary typing is not, and stays with the
// presentation layer.
func (e *Editor) HandleKey(ev KeyEvent) bool {
	switch {
	case ev.Key == KeyEnter:
		e.Submit()
	case ev.Key == KeyUp:
		e.HistoryUp()
	case ev.Key == KeyDown:
		e.HistoryDown()
	case ev.Key == KeyTab:
		e.Complete()
	case ev.Ctrl && ev.Key == 'c':
		e.Interrupt()
	case ev.Ctrl && ev.Key == 'l':
		e.ClearScreen()
	default:
		return false
	}
	return true
}
