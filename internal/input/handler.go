// Package input implements the Input Handler (spec.md §4.2): a
// single-threaded poll loop dispatching terminal key events onto Session
// State according to the current focus mode.
package input

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/evanreyes/winregsearch/internal/logging"
	"github.com/evanreyes/winregsearch/internal/session"
	"github.com/evanreyes/winregsearch/internal/term"
)

// pollInterval is the terminal poll cadence (spec.md §4.2).
const pollInterval = 200 * time.Millisecond

// Run polls backend for key events and dispatches them against state
// until state.QuitRequested() is observed. It never returns an error
// itself: terminal poll errors are logged and the loop continues,
// matching spec.md §4.2's failure semantics.
func Run(backend term.Backend, state *session.State) {
	for !state.QuitRequested() {
		ev, ok, err := backend.PollEvent(pollInterval)
		if err != nil {
			logging.Warn("terminal poll error", "err", err)
			continue
		}
		if !ok || ev.Key == nil {
			continue
		}
		dispatch(ev.Key, state)
	}
}

func dispatch(key *term.KeyEvent, state *session.State) {
	switch state.Focus.Mode() {
	case session.FocusMain:
		dispatchMain(key, state)
	case session.FocusSearchMod:
		dispatchSearchMod(key, state)
	case session.FocusHelp:
		dispatchHelp(key, state)
	case session.FocusConfirmClose:
		dispatchConfirmClose(key, state)
	}
}

func dispatchMain(key *term.KeyEvent, state *session.State) {
	switch {
	case key.Rune == 'n':
		state.Focus.EnterSearchModAdd()
	case key.Rune == 'e':
		handleEdit(state)
	case key.Rune == 'h':
		state.Focus.EnterHelp()
	case key.Rune == 'q' || key.Name == "Esc":
		state.Focus.EnterConfirmClose()
	case key.Rune == 'y':
		handleCopy(state)
	case key.Name == "Left":
		state.Pane.Left()
	case key.Name == "Right":
		state.Pane.Right()
	case key.Name == "Up":
		handleVertical(state, true)
	case key.Name == "Down":
		handleVertical(state, false)
	case key.Name == "Enter":
		handleEnter(state)
	case key.Name == "F5":
		state.ToggleRun(time.Now())
	}
}

// handleEdit implements the `e` key: SearchTerms pane only, set non-empty.
func handleEdit(state *session.State) {
	if state.Pane.Get() != session.PaneSearchTerms {
		return
	}
	if state.SearchTerms.Len() == 0 {
		return
	}
	selected, ok := state.SearchTerms.At(state.SearchTerms.Cursor())
	if !ok {
		logging.Warn("search-term cursor out of range on edit")
		return
	}
	state.Focus.EnterSearchModEdit(selected)
}

// handleVertical implements pane-contextual Up/Down: hive cursor on pane
// 0, search-term cursor on pane 1, ignored on pane 2.
func handleVertical(state *session.State, up bool) {
	switch state.Pane.Get() {
	case session.PaneHives:
		if up {
			state.Hives.Up()
		} else {
			state.Hives.Down()
		}
	case session.PaneSearchTerms:
		if up {
			state.SearchTerms.Up()
		} else {
			state.SearchTerms.Down()
		}
	case session.PaneResults:
		// ignored
	}
}

// handleEnter implements pane-contextual Enter: hive_toggle on pane 0,
// no-op elsewhere.
func handleEnter(state *session.State) {
	if state.Pane.Get() != session.PaneHives {
		return
	}
	state.Hives.Toggle(state.Hives.Cursor())
}

// handleCopy is the supplemental `y` feature (SPEC_FULL.md §4.2, grounded
// on the teacher's cmd/hiveexplorer copy-to-clipboard binding): when pane
// is Results, copy the current result set to the OS clipboard. This is
// an optional convenience and failures are logged only.
func handleCopy(state *session.State) {
	if state.Pane.Get() != session.PaneResults {
		return
	}
	results := state.Results.Results()
	if len(results) == 0 {
		return
	}
	if err := clipboard.WriteAll(strings.Join(results, "\n")); err != nil {
		logging.Warn("clipboard copy failed", "err", err)
	}
}

func dispatchSearchMod(key *term.KeyEvent, state *session.State) {
	switch {
	case key.Name == "Backspace":
		state.Focus.MutateEditor(func(e *session.Editor) {
			if len(e.Buffer) == 0 {
				return
			}
			r := []rune(e.Buffer)
			e.Buffer = string(r[:len(r)-1])
		})
	case key.Name == "Esc":
		state.Focus.DiscardSearchMod()
	case key.Name == "Enter":
		resolveSearchMod(state)
	case key.Rune != 0:
		state.Focus.MutateEditor(func(e *session.Editor) {
			e.Buffer += string(key.Rune)
		})
	}
}

// resolveSearchMod implements the documented lock order (focus write
// lock first, then editor write lock, both held for this whole
// operation) via focusState.ResolveSearchMod, then applies the
// search-term update outside any focus/editor lock.
func resolveSearchMod(state *session.State) {
	editor, ok := state.Focus.ResolveSearchMod()
	if !ok {
		logging.Warn("Enter in SearchMod with no editor state present")
		return
	}
	state.SearchTerms.Update(editor.Mode, editor.Original, editor.Buffer)
}

func dispatchHelp(key *term.KeyEvent, state *session.State) {
	if key.Rune == 'q' || key.Rune == 'h' || key.Name == "Esc" {
		state.Focus.ExitHelp()
	}
}

func dispatchConfirmClose(key *term.KeyEvent, state *session.State) {
	switch {
	case key.Name == "Esc" || key.Rune == 'n':
		state.Focus.ExitConfirmClose()
	case key.Name == "Enter" || key.Rune == 'y' || key.Rune == 'q':
		state.RequestQuit()
	}
}
