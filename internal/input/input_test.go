package input

import (
	"testing"

	"github.com/dshills/midview/internal/renderer/backend"
)

func keyEvent(key backend.Key, r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: key, Rune: r}
}

func TestDefaultMappings(t *testing.T) {
	m := NewMapper(DefaultBindings())

	tests := []struct {
		name string
		ev   backend.Event
		want Action
	}{
		{"q quits", keyEvent(backend.KeyRune, 'q'), ActionQuit},
		{"Q quits", keyEvent(backend.KeyRune, 'Q'), ActionQuit},
		{"ctrl-c quits", keyEvent(backend.KeyCtrlC, 0), ActionQuit},
		{"arrow down", keyEvent(backend.KeyDown, 0), ActionScrollDown},
		{"arrow up", keyEvent(backend.KeyUp, 0), ActionScrollUp},
		{"j scrolls down", keyEvent(backend.KeyRune, 'j'), ActionScrollDown},
		{"k scrolls up", keyEvent(backend.KeyRune, 'k'), ActionScrollUp},
		{"page down key", keyEvent(backend.KeyPageDown, 0), ActionPageDown},
		{"page up key", keyEvent(backend.KeyPageUp, 0), ActionPageUp},
		{"space pages down", keyEvent(backend.KeyRune, ' '), ActionPageDown},
		{"b pages up", keyEvent(backend.KeyRune, 'b'), ActionPageUp},
		{"home jumps to top", keyEvent(backend.KeyHome, 0), ActionTop},
		{"end jumps to bottom", keyEvent(backend.KeyEnd, 0), ActionBottom},
		{"g jumps to top", keyEvent(backend.KeyRune, 'g'), ActionTop},
		{"G jumps to bottom", keyEvent(backend.KeyRune, 'G'), ActionBottom},
		{"resize", backend.Event{Type: backend.EventResize, Width: 10, Height: 4}, ActionResize},
		{"unbound rune", keyEvent(backend.KeyRune, 'x'), ActionNone},
		{"unrecognized key", keyEvent(backend.KeyEscape, 0), ActionNone},
		{"none event", backend.Event{Type: backend.EventNone}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Map(tt.ev); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCustomBindings(t *testing.T) {
	b := DefaultBindings()
	b.Down = []rune{'n'}
	b.Up = []rune{'p'}
	m := NewMapper(b)

	if got := m.Map(keyEvent(backend.KeyRune, 'n')); got != ActionScrollDown {
		t.Errorf("expected rebound scroll down, got %v", got)
	}
	if got := m.Map(keyEvent(backend.KeyRune, 'p')); got != ActionScrollUp {
		t.Errorf("expected rebound scroll up, got %v", got)
	}
	// The default binding is gone once replaced.
	if got := m.Map(keyEvent(backend.KeyRune, 'j')); got != ActionNone {
		t.Errorf("expected unbound default to be ignored, got %v", got)
	}
	// Special keys stay fixed regardless of bindings.
	if got := m.Map(keyEvent(backend.KeyDown, 0)); got != ActionScrollDown {
		t.Errorf("expected arrow key to stay bound, got %v", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionScrollDown.String() != "scroll-down" {
		t.Errorf("unexpected name %q", ActionScrollDown.String())
	}
	if Action(99).String() != "unknown" {
		t.Errorf("unexpected name %q", Action(99).String())
	}
}
