// Package term defines the terminal-backend seam spec.md leaves out of
// scope: raw-mode/alternate-screen setup and teardown, and a cell-buffer
// drawing primitive. tcellbackend binds it to github.com/gdamore/tcell/v2;
// faketerm backs Input Handler / Renderer unit tests.
package term

import "time"

// KeyEvent is the only input shape the core cares about: a single
// key-press. Key-repeat and key-release are filtered out by the backend
// before Input Handler ever sees them (spec.md §4.2).
type KeyEvent struct {
	Rune rune // printable character, or 0
	Name string // symbolic name for non-printable keys: "Up","Down","Left","Right","Enter","Esc","Backspace","Tab","F5","PgUp","PgDn"
}

// Event is either a KeyEvent, a resize, or neither (a poll timeout).
type Event struct {
	Key      *KeyEvent
	Resized  bool
	Width    int
	Height   int
}

// Backend is the terminal-backend contract. Init/Restore bracket the
// alternate-screen + raw-mode session. PollEvent blocks for at most
// timeout and returns ok=false on timeout (matching spec.md's 200ms
// poll cadence for the Input Handler). Screen exposes the cell-buffer
// drawing primitives the Renderer uses.
type Backend interface {
	Init() error
	Restore() error
	PollEvent(timeout time.Duration) (Event, bool, error)
	Screen() Screen
}

// Style is an opaque cell style; concrete backends attach meaning to it.
type Style interface{}

// Screen is the widget-drawing primitive: set cells, then flip them to
// the terminal in one batch.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, ch rune, style Style) // out-of-bounds writes are no-ops
	Show()
	Clear()
}
