// Package tcellbackend binds term.Backend to github.com/gdamore/tcell/v2.
package tcellbackend

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/evanreyes/winregsearch/internal/term"
)

// Backend is the tcell-backed term.Backend.
type Backend struct {
	screen tcell.Screen
	events chan tcell.Event
}

// New allocates (but does not initialize) a tcell screen.
func New() (*Backend, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: s, events: make(chan tcell.Event, 16)}, nil
}

// Init enables the alternate screen and raw mode and enables mouse
// reporting, matching spec.md §6's "alternate-screen mode and raw mode
// at startup." It starts a single goroutine pumping tcell's blocking
// PollEvent into a buffered channel, so Backend.PollEvent can honor a
// timeout without leaking a goroutine per call.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnableMouse()
	b.screen.Clear()
	go b.pump()
	return nil
}

func (b *Backend) pump() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return // screen was finalized
		}
		b.events <- ev
	}
}

// Restore leaves raw mode and the alternate screen, matching spec.md §6's
// "restores on exit."
func (b *Backend) Restore() error {
	b.screen.Fini()
	return nil
}

// PollEvent blocks for at most timeout. Key-repeat has no tcell
// equivalent (tcell delivers one EventKey per physical press already);
// this only needs to filter to key-press-shaped events.
func (b *Backend) PollEvent(timeout time.Duration) (term.Event, bool, error) {
	select {
	case ev := <-b.events:
		return translate(ev), true, nil
	case <-time.After(timeout):
		return term.Event{}, false, nil
	}
}

// Screen returns the underlying drawing surface.
func (b *Backend) Screen() term.Screen {
	return &screenAdapter{s: b.screen}
}

func translate(ev tcell.Event) term.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return term.Event{Key: translateKey(e)}
	case *tcell.EventResize:
		w, h := e.Size()
		return term.Event{Resized: true, Width: w, Height: h}
	default:
		return term.Event{}
	}
}

func translateKey(e *tcell.EventKey) *term.KeyEvent {
	if e.Key() == tcell.KeyRune {
		return &term.KeyEvent{Rune: e.Rune()}
	}
	name, ok := keyNames[e.Key()]
	if !ok {
		return &term.KeyEvent{}
	}
	return &term.KeyEvent{Name: name}
}

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:        "Up",
	tcell.KeyDown:      "Down",
	tcell.KeyLeft:      "Left",
	tcell.KeyRight:     "Right",
	tcell.KeyEnter:     "Enter",
	tcell.KeyEscape:    "Esc",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyTab:       "Tab",
	tcell.KeyF5:        "F5",
	tcell.KeyPgUp:      "PgUp",
	tcell.KeyPgDn:      "PgDn",
}

type screenAdapter struct{ s tcell.Screen }

func (a *screenAdapter) Size() (int, int) { return a.s.Size() }

func (a *screenAdapter) SetContent(x, y int, ch rune, style term.Style) {
	st, _ := style.(tcell.Style)
	a.s.SetContent(x, y, ch, nil, st)
}

func (a *screenAdapter) Show()  { a.s.Show() }
func (a *screenAdapter) Clear() { a.s.Clear() }
