// Package supervisor implements the Runtime Supervisor loop (spec.md
// §5): it waits for a start token from session.State's run control,
// seeds the crawl engine from the currently enabled hives, runs it to
// completion or until a stop is requested, and then re-arms run control
// for the next F5 press. Grounded on
// _examples/original_source/src/worker_manager.rs's run() supervisor
// loop and its 100ms poll of the stop flag.
package supervisor

import (
	"context"
	"time"

	"github.com/evanreyes/winregsearch/internal/crawl"
	"github.com/evanreyes/winregsearch/internal/logging"
	"github.com/evanreyes/winregsearch/internal/registry"
	"github.com/evanreyes/winregsearch/internal/session"
)

// stopPollInterval is how often the supervisor checks state.Run.StopRequested
// while a crawl is in flight, and state.QuitRequested while idle, matching
// worker_manager.rs's run() poll cadence.
const stopPollInterval = 100 * time.Millisecond

// WorkerCount is the crawl engine's worker-pool size.
const WorkerCount = 8

// Run blocks, consuming start tokens from state until ctx is canceled or
// state.QuitRequested() becomes true.
func Run(ctx context.Context, state *session.State, provider registry.Provider) {
	ticker := time.NewTicker(stopPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if state.QuitRequested() {
				return
			}
			continue
		case <-state.Run.StartRequests():
		}
		if state.QuitRequested() {
			return
		}
		runOnce(ctx, state, provider)
	}
}

func runOnce(ctx context.Context, state *session.State, provider registry.Provider) {
	state.StartRun()
	logging.Debug("crawl started", "hives", len(state.EnabledHives()))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go pollStop(runCtx, cancel, state)

	seeds := seedWorkItems(state.EnabledHives())
	cb := callbacksFor(state)
	engine := crawl.New(provider, WorkerCount, cb)
	engine.Run(runCtx, seeds, state.SearchTermSnapshot())

	state.FinishRun(time.Now())
	logging.Debug("crawl finished", "results", state.Results.ResultCount())
}

// pollStop cancels runCtx as soon as either the process is quitting or
// the user has requested a stop via F5, mirroring the original's 100ms
// stop-flag poll rather than a purely event-driven cancellation, since
// the stop request is itself a polled atomic flag (session.runFlags).
func pollStop(runCtx context.Context, cancel context.CancelFunc, state *session.State) {
	ticker := time.NewTicker(stopPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-runCtx.Done():
			return
		case <-ticker.C:
			if state.Run.StopRequested() || state.QuitRequested() {
				cancel()
				return
			}
		}
	}
}

func seedWorkItems(hives []registry.Hive) []crawl.WorkItem {
	seeds := make([]crawl.WorkItem, len(hives))
	for i, h := range hives {
		seeds[i] = crawl.SeedRoot(h)
	}
	return seeds
}

func callbacksFor(state *session.State) crawl.Callbacks {
	return crawl.Callbacks{
		OnResult: func(path string) {
			state.Results.AddResult(path)
		},
		OnError: func(path string, err error) {
			state.Results.AddError(path, err.Error())
		},
		OnKeyVisited: state.Results.IncKeysVisited,
		OnValueRead:  state.Results.IncValuesRead,
	}
}
