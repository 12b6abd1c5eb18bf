// Package backend provides the terminal surface abstraction for the pager.
package backend

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventClosed is delivered when the terminal surface has been
	// finalized while a read was blocked, e.g. during shutdown.
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the pager recognizes. Everything else maps
// to KeyNone and is consumed without effect.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEscape
	KeyCtrlC
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Backend is the terminal surface the pager draws through. Init switches
// to the alternate screen and raw input mode and performs the one
// full-screen clear of the session; Fini restores the terminal and must
// run on every exit path, including error paths.
//
// Cell updates accumulate until Show, which flushes them to the terminal
// in a single batch so partial frames are never visible.
type Backend interface {
	Init() error
	Fini()
	Size() (width, height int)
	HideCursor()
	SetCluster(x, y int, cluster string)
	ClearRow(y int)
	Show()
	PollEvent() Event
}
