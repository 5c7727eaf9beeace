package session

import "sync/atomic"

// runFlags is the crawl-local run/stop signaling state (spec.md §3 "Run
// control"), distinct from the process-wide quit flag in state.go. A
// capacity-1 channel is the "send one token" primitive: the Runtime
// Supervisor blocks on it, so a start request it hasn't yet consumed is
// buffered rather than dropped (SPEC_FULL.md Open Question #3).
type runFlags struct {
	running            atomic.Bool
	stop               atomic.Bool
	runControlDisabled atomic.Bool
	start              chan struct{}
}

func newRunFlags() *runFlags {
	return &runFlags{start: make(chan struct{}, 1)}
}

func (r *runFlags) Running() bool            { return r.running.Load() }
func (r *runFlags) StopRequested() bool      { return r.stop.Load() }
func (r *runFlags) RunControlDisabled() bool { return r.runControlDisabled.Load() }

// StartRequests is the channel the Runtime Supervisor receives start
// tokens on.
func (r *runFlags) StartRequests() <-chan struct{} { return r.start }

// requestStop is the F5-while-running branch of spec.md §4.2's table:
// set run_control_disabled and stop, do not touch running (the
// Supervisor clears running once the engine has actually quiesced).
func (r *runFlags) requestStop() {
	r.runControlDisabled.Store(true)
	r.stop.Store(true)
}

// markRunningAndSignal is the F5-while-stopped branch: mark running and
// send one start token, blocking if the channel still holds an
// unconsumed token from a prior press (SPEC_FULL.md Open Question #3:
// buffered, not dropped).
func (r *runFlags) markRunningAndSignal() {
	r.running.Store(true)
	r.start <- struct{}{}
}

// BeginRun is called by the Runtime Supervisor when it consumes a start
// token and actually starts the crawl engine.
func (r *runFlags) BeginRun() {
	r.stop.Store(false)
}

// EndRun is called by the Runtime Supervisor when the crawl engine has
// fully quiesced or been stopped, clearing running and re-enabling F5.
func (r *runFlags) EndRun() {
	r.running.Store(false)
	r.stop.Store(false)
	r.runControlDisabled.Store(false)
}
