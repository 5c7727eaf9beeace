// Package render implements the Renderer (spec.md §4.5): a loop on its
// own goroutine that reads Session State at a fixed cadence and paints
// panes and overlays, never blocking on user input.
package render

import (
	"time"

	"github.com/evanreyes/winregsearch/internal/logging"
	"github.com/evanreyes/winregsearch/internal/session"
	"github.com/evanreyes/winregsearch/internal/term"
)

// redrawInterval is the fixed redraw cadence (SPEC_FULL.md §4.5: spec.md
// leaves the exact cadence unspecified beyond "fixed"; 50ms is chosen so
// the status line's elapsed-time display visibly ticks).
const redrawInterval = 50 * time.Millisecond

// Renderer owns the results-pane scroll offset locally, per spec.md
// §4.5 step 5 ("a local vertical scroll position").
type Renderer struct {
	backend term.Backend
	scroll  int
}

// Run paints state onto backend's screen every redrawInterval until
// state.QuitRequested(). On any rendering error, it sets the process
// stop flag and returns, matching spec.md §4.5's error-handling clause.
func Run(backend term.Backend, state *session.State) {
	r := &Renderer{backend: backend}
	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()
	for !state.QuitRequested() {
		<-ticker.C
		if err := r.draw(state); err != nil {
			logging.Warn("render error, stopping", "err", err)
			state.RequestQuit()
			return
		}
	}
}

func (r *Renderer) draw(state *session.State) error {
	scr := r.backend.Screen()
	scr.Clear()
	w, h := scr.Size()
	lay := computeLayout(w, h)

	pane := state.Pane.Get()
	drawStatusLine(scr, lay.Status, state)
	drawHiveList(scr, lay.HiveList, pane == session.PaneHives, state.Hives.Rows())
	drawSearchTerms(scr, lay.SearchTerms, pane == session.PaneSearchTerms, state.SearchTerms.Terms(), state.SearchTerms.Cursor())
	drawResults(scr, lay.Results, state.Results.Results(), state.Results.Errors(), r.scroll)

	switch state.Focus.Mode() {
	case session.FocusHelp:
		drawHelpModal(scr, w, h)
	case session.FocusConfirmClose:
		drawConfirmCloseModal(scr, w, h)
	case session.FocusSearchMod:
		drawSearchModModal(scr, w, h, state.Focus.EditorSnapshot())
	}

	scr.Show()
	return nil
}

// ScrollDown/ScrollUp adjust the renderer's locally-owned results scroll
// offset. Exposed for tests; production code has no input path into the
// renderer's scroll position (spec.md's key table has no results-pane
// scroll keys, only Up/Down being "ignored on pane 2").
func (r *Renderer) ScrollDown() { r.scroll++ }
func (r *Renderer) ScrollUp() {
	if r.scroll > 0 {
		r.scroll--
	}
}
