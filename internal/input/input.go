// Package input maps terminal events to pager actions.
package input

import (
	"github.com/dshills/midview/internal/renderer/backend"
)

// Action is a pager command produced from a terminal event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScrollDown
	ActionScrollUp
	ActionPageDown
	ActionPageUp
	ActionTop
	ActionBottom
	ActionResize
)

// String returns the action name for logging.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionScrollDown:
		return "scroll-down"
	case ActionScrollUp:
		return "scroll-up"
	case ActionPageDown:
		return "page-down"
	case ActionPageUp:
		return "page-up"
	case ActionTop:
		return "top"
	case ActionBottom:
		return "bottom"
	case ActionResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Bindings lists the rebindable rune keys per action. Special keys
// (arrows, page keys, Home/End, Ctrl+C) are fixed.
type Bindings struct {
	Quit     []rune
	Down     []rune
	Up       []rune
	PageDown []rune
	PageUp   []rune
	Top      []rune
	Bottom   []rune
}

// DefaultBindings returns the standard key set.
func DefaultBindings() Bindings {
	return Bindings{
		Quit:     []rune{'q', 'Q'},
		Down:     []rune{'j'},
		Up:       []rune{'k'},
		PageDown: []rune{' ', 'f'},
		PageUp:   []rune{'b'},
		Top:      []rune{'g'},
		Bottom:   []rune{'G'},
	}
}

// Mapper translates backend events into Actions.
type Mapper struct {
	runes map[rune]Action
}

// NewMapper builds a mapper from the given rune bindings. A rune bound
// to more than one action resolves to the last binding applied.
func NewMapper(b Bindings) *Mapper {
	m := &Mapper{runes: make(map[rune]Action)}
	m.bind(b.Quit, ActionQuit)
	m.bind(b.Down, ActionScrollDown)
	m.bind(b.Up, ActionScrollUp)
	m.bind(b.PageDown, ActionPageDown)
	m.bind(b.PageUp, ActionPageUp)
	m.bind(b.Top, ActionTop)
	m.bind(b.Bottom, ActionBottom)
	return m
}

func (m *Mapper) bind(runes []rune, action Action) {
	for _, r := range runes {
		m.runes[r] = action
	}
}

// Map returns the action for a terminal event. Unrecognized events map
// to ActionNone and are consumed without effect.
func (m *Mapper) Map(ev backend.Event) Action {
	switch ev.Type {
	case backend.EventResize:
		return ActionResize
	case backend.EventKey:
		return m.mapKey(ev)
	default:
		return ActionNone
	}
}

func (m *Mapper) mapKey(ev backend.Event) Action {
	switch ev.Key {
	case backend.KeyCtrlC:
		return ActionQuit
	case backend.KeyDown:
		return ActionScrollDown
	case backend.KeyUp:
		return ActionScrollUp
	case backend.KeyPageDown:
		return ActionPageDown
	case backend.KeyPageUp:
		return ActionPageUp
	case backend.KeyHome:
		return ActionTop
	case backend.KeyEnd:
		return ActionBottom
	case backend.KeyRune:
		if action, ok := m.runes[ev.Rune]; ok {
			return action
		}
	}
	return ActionNone
}
