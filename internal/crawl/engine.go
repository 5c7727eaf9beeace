// Package crawl implements the registry crawl engine: a dynamically
// load-balanced worker pool that enumerates subkeys breadth-first from a
// set of seed keys, reporting matches and per-key errors as it goes.
// Grounded on _examples/original_source/src/worker_manager.rs, with the
// tokio::sync::Notify wake mechanism replaced by sync.Cond (grounded on
// gravwell's ingest/muxer.go use of sync.Cond for broadcast wakeups).
package crawl

import (
	"context"
	"sync"

	"github.com/evanreyes/winregsearch/internal/registry"
)

// Callbacks receives crawl progress. Each method may be called
// concurrently from any worker goroutine; implementations must be safe
// for concurrent use (session.State's methods already are).
type Callbacks struct {
	OnResult     func(path string)
	OnError      func(path string, err error)
	OnKeyVisited func()
	OnValueRead  func()
}

// Engine runs a bounded pool of workers pulling from a shared FIFO
// queue. Workers that find the queue empty wait on a condition variable;
// a worker that pushes new work broadcasts to wake any waiters. The pool
// is quiescent, and Run returns, once every worker is waiting and the
// queue is empty, or the passed context is canceled.
type Engine struct {
	mu       sync.Mutex
	cond     *sync.Cond
	q        *queue
	provider registry.Provider
	workers  int
	waiting  int
	stopping bool
	cb       Callbacks
}

// New returns an Engine with the given provider and worker count.
func New(provider registry.Provider, workers int, cb Callbacks) *Engine {
	if workers < 1 {
		workers = 1
	}
	e := &Engine{
		q:        &queue{},
		provider: provider,
		workers:  workers,
		cb:       cb,
	}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// Run seeds the queue, starts the worker pool, and blocks until the pool
// quiesces (all workers idle, queue empty) or ctx is canceled. It is not
// safe to call Run concurrently on the same Engine; each run gets a
// fresh queue and waiter count.
func (e *Engine) Run(ctx context.Context, seeds []WorkItem, terms []string) {
	e.mu.Lock()
	e.q = &queue{}
	e.waiting = 0
	e.stopping = ctx.Err() != nil
	e.mu.Unlock()

	for _, s := range seeds {
		e.q.push(workItem{Hive: s.Hive, Path: s.Path})
	}

	stopWatch := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			e.mu.Lock()
			e.stopping = true
			e.cond.Broadcast()
			e.mu.Unlock()
		case <-stopWatch:
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go e.runWorker(&wg, terms)
	}
	wg.Wait()
	close(stopWatch)
}

// WorkItem is the crawl engine's public seed type, re-exported so
// package supervisor does not need to reach into crawl's internals.
type WorkItem struct {
	Hive registry.Hive
	Path string
}

// SeedRoot returns a single WorkItem rooted at a hive's top level,
// matching production seeding (one WorkItem per enabled hive, path "").
// Kept as a small deterministic helper for tests that want exactly one
// seed rather than one per enabled hive (see
// _examples/original_source/src/static_selection.rs's toggle_running,
// which seeds a single "Software" key in its variant path).
func SeedRoot(hive registry.Hive) WorkItem {
	return WorkItem{Hive: hive, Path: ""}
}

func (e *Engine) runWorker(wg *sync.WaitGroup, terms []string) {
	defer wg.Done()
	for {
		e.mu.Lock()
		stopping := e.stopping
		e.mu.Unlock()
		if stopping {
			return
		}
		item, ok := e.q.pop()
		if !ok {
			if e.waitForWorkOrStop() {
				return
			}
			continue
		}
		e.process(item, terms)
	}
}

// waitForWorkOrStop blocks until either new work is pushed or the pool
// is confirmed quiescent/stopped, returning true if the caller should
// exit.
func (e *Engine) waitForWorkOrStop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.waiting++
	if e.waiting == e.workers && e.q.len() == 0 {
		e.stopping = true
		e.cond.Broadcast()
	}
	for e.q.len() == 0 && !e.stopping {
		e.cond.Wait()
	}
	e.waiting--
	return e.stopping
}

func (e *Engine) process(item workItem, terms []string) {
	if anyMatches(item.Path, terms) {
		e.cb.OnResult(keyDisplayPath(item.Hive, item.Path))
	}

	key, err := e.provider.OpenKey(item.Hive, item.Path)
	if err != nil {
		e.cb.OnError(keyDisplayPath(item.Hive, item.Path), e.wrapErr(registry.ErrKindSubkeyOpen, item, err))
		return
	}
	defer key.Close()

	subkeys, err := key.SubkeyNames()
	if err != nil {
		e.cb.OnError(keyDisplayPath(item.Hive, item.Path), e.wrapErr(registry.ErrKindSubkeyEnum, item, err))
	} else {
		for _, name := range subkeys {
			e.cb.OnKeyVisited()
			e.enqueue(item.Hive, childPath(item.Path, name))
		}
	}

	values, err := key.Values()
	if err != nil {
		e.cb.OnError(keyDisplayPath(item.Hive, item.Path), e.wrapErr(registry.ErrKindValueEnum, item, err))
		return
	}
	for _, v := range values {
		e.cb.OnValueRead()
		data := registry.Stringify(v.Kind, v.Data)
		if anyMatches(v.Name, terms) || anyMatches(data, terms) {
			e.cb.OnResult(valueMatchLine(item.Hive, item.Path, v, data))
		}
	}
}

// valueMatchLine formats a value-match result line per spec.md §6:
// "<HIVE_NAME>\<subkey_path>\<value_or_(Default)> = \"<data>\" (<type_tag>)".
func valueMatchLine(hive registry.Hive, path string, v registry.ValueRecord, data string) string {
	name := v.Name
	if name == "" {
		name = "(Default)"
	}
	return keyDisplayPath(hive, path) + `\` + name + ` = "` + data + `" (` + v.Kind.Tag() + `)`
}

// wrapErr classifies a provider error by which call produced it, per
// spec.md §7's three non-fatal error kinds.
func (e *Engine) wrapErr(kind registry.ErrKind, item workItem, err error) error {
	return &registry.Error{Kind: kind, Hive: item.Hive, Path: item.Path, Err: err}
}

func (e *Engine) enqueue(hive registry.Hive, path string) {
	e.q.push(workItem{Hive: hive, Path: path})
	e.mu.Lock()
	e.cond.Broadcast()
	e.mu.Unlock()
}

func childPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + `\` + name
}

func keyDisplayPath(hive registry.Hive, path string) string {
	if path == "" {
		return hive.Name()
	}
	return hive.Name() + `\` + path
}
