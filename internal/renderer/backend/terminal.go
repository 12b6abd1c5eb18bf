package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init enters the alternate screen, enables raw input, and clears the
// screen once. Per-redraw clearing is per-row only.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.Clear()
	return nil
}

// Fini restores the terminal to its previous state. Safe to call more
// than once; tcell makes the second call a no-op.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// SetCluster writes one grapheme cluster at the given cell. The first
// rune is the base character; the rest are passed as combining runes.
func (t *Terminal) SetCluster(x, y int, cluster string) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, runes[0], runes[1:], tcell.StyleDefault)
}

// ClearRow blanks a single row without touching the rest of the screen.
func (t *Terminal) ClearRow(y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// Show flushes all queued cell updates to the terminal in one batch.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// PollEvent blocks until the next input or resize event.
func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

// convertEvent converts a tcell event to a backend Event.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	case nil:
		// PollEvent returns nil once the screen is finalized.
		return Event{Type: EventClosed}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyCtrlC:
		return KeyCtrlC
	default:
		return KeyNone
	}
}

// convertMod converts tcell modifier flags to our ModMask.
func convertMod(mod tcell.ModMask) ModMask {
	var out ModMask
	if mod&tcell.ModShift != 0 {
		out |= ModShift
	}
	if mod&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if mod&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	return out
}
