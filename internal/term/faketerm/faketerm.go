// Package faketerm is an in-process term.Backend used by Input Handler
// and Renderer unit tests: events are fed programmatically instead of
// read from a real tty, and the screen records writes instead of
// painting them.
package faketerm

import (
	"time"

	"github.com/evanreyes/winregsearch/internal/term"
)

// Backend is a scriptable term.Backend.
type Backend struct {
	events  chan term.Event
	scr     *Screen
	inited  bool
	restored bool
}

// New returns a Backend with a width x height screen.
func New(width, height int) *Backend {
	return &Backend{
		events: make(chan term.Event, 64),
		scr:    newScreen(width, height),
	}
}

func (b *Backend) Init() error    { b.inited = true; return nil }
func (b *Backend) Restore() error { b.restored = true; return nil }
func (b *Backend) Initialized() bool { return b.inited }
func (b *Backend) Restored() bool    { return b.restored }

// Push queues an event for the next PollEvent call.
func (b *Backend) Push(ev term.Event) { b.events <- ev }

// PollEvent returns a queued event immediately, or times out.
func (b *Backend) PollEvent(timeout time.Duration) (term.Event, bool, error) {
	select {
	case ev := <-b.events:
		return ev, true, nil
	case <-time.After(timeout):
		return term.Event{}, false, nil
	}
}

func (b *Backend) Screen() term.Screen { return b.scr }

// Screen is an in-memory cell buffer for assertions in tests.
type Screen struct {
	w, h  int
	cells map[[2]int]rune
	shown int
}

func newScreen(w, h int) *Screen {
	return &Screen{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (s *Screen) Size() (int, int) { return s.w, s.h }

func (s *Screen) SetContent(x, y int, ch rune, _ term.Style) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.cells[[2]int{x, y}] = ch
}

func (s *Screen) Show()  { s.shown++ }
func (s *Screen) Clear() { s.cells = make(map[[2]int]rune) }

// ShowCount returns how many times Show has been called, for tests that
// assert the renderer actually redraws on its cadence.
func (s *Screen) ShowCount() int { return s.shown }

// RuneAt returns the rune written at (x,y), or 0 if nothing was written.
func (s *Screen) RuneAt(x, y int) rune { return s.cells[[2]int{x, y}] }
