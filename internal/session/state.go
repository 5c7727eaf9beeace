// Package session holds the shared, concurrently-mutated state spec.md
// §2 and §3 describe: the Input Handler, Renderer, and Runtime
// Supervisor/Crawl Engine each read and write it directly, with no
// single goroutine owning it (grounded on the independent-loop
// architecture explained in SPEC_FULL.md §1, in place of the teacher's
// bubbletea Elm-style single-owner Model).
package session

import (
	"sync/atomic"
	"time"

	"github.com/evanreyes/winregsearch/internal/registry"
)

// State is the complete shared session: hive selection, search terms,
// focus/editor, pane focus, run control, timer, and results. Each field
// guards its own concurrency; State itself adds no additional lock, so
// that independent concerns (e.g. moving the hive cursor and appending a
// crawl result) never contend on a shared mutex.
type State struct {
	Hives       *hiveSelection
	SearchTerms *searchTerms
	Focus       *focusState
	Pane        paneCursor
	Run         *runFlags
	Timer       *timerState
	Results     *resultsState

	// quit is the process-wide stop signal (spec.md §2): when set, the
	// Input Handler, Renderer, and Runtime Supervisor all terminate their
	// loops. This is distinct from Run.stop, which only requests that an
	// in-progress crawl halt.
	quit atomic.Bool
}

// New returns a State initialized to spec.md's defaults: LocalMachine
// and Users hives enabled, empty search-term set, focus on the hive
// pane, no run in progress.
func New() *State {
	return &State{
		Hives:       newHiveSelection(),
		SearchTerms: newSearchTerms(),
		Focus:       newFocusState(),
		Run:         newRunFlags(),
		Timer:       &timerState{},
		Results:     newResultsState(),
	}
}

// RequestQuit signals all three loops to terminate.
func (s *State) RequestQuit() { s.quit.Store(true) }

// QuitRequested reports whether RequestQuit has been called.
func (s *State) QuitRequested() bool { return s.quit.Load() }

// ToggleRun implements spec.md §4.2's F5 handler: if a crawl is already
// running, request a stop (disabling further F5 presses until it
// completes); otherwise mark running, stamp the timer's start instant,
// and send one start token — blocking briefly if the Runtime Supervisor
// has not yet drained a prior token (SPEC_FULL.md Open Question #3).
// Only the Input Handler calls this.
func (s *State) ToggleRun(now time.Time) {
	if s.Run.Running() {
		s.Run.requestStop()
		return
	}
	s.Timer.Start(now)
	s.Run.markRunningAndSignal()
}

// StartRun is called by the Runtime Supervisor when it consumes a start
// token: it resets the results/counters for the new run and clears the
// crawl-local stop flag. The timer's start instant was already stamped
// by ToggleRun.
func (s *State) StartRun() {
	s.Results.Reset()
	s.Run.BeginRun()
}

// FinishRun is called by the Runtime Supervisor when the crawl engine
// has quiesced or been stopped: it stamps the timer's end instant and
// re-enables run control.
func (s *State) FinishRun(now time.Time) {
	s.Timer.Stop(now)
	s.Run.EndRun()
}

// EnabledHives is a convenience pass-through used by the Runtime
// Supervisor to seed the Crawl Engine.
func (s *State) EnabledHives() []registry.Hive { return s.Hives.EnabledHives() }

// SearchTermSnapshot is a convenience pass-through used by the Crawl
// Engine's match step, which needs a stable slice of terms for the
// duration of a single value scan.
func (s *State) SearchTermSnapshot() []string { return s.SearchTerms.Terms() }
