package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/termfolio/internal/session"
)

func TestKeyMap_Event(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want session.KeyEvent
		ok   bool
	}{
		{"enter", session.KeyEvent{Key: session.KeyEnter}, true},
		{"up", session.KeyEvent{Key: session.KeyUp}, true},
		{"down", session.KeyEvent{Key: session.KeyDown}, true},
		{"tab", session.KeyEvent{Key: session.KeyTab}, true},
		{"ctrl+c", session.KeyEvent{Key: 'c', Ctrl: true}, true},
		{"ctrl+l", session.KeyEvent{Key: 'l', Ctrl: true}, true},
		{"a", session.KeyEvent{}, false},
		{"ctrl+d", session.KeyEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := km.Event(keyMsg(tt.key))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
