package session

import (
	"sync"
	"time"
)

// debounceWindow is the minimum interval between accepted cursor moves,
// per spec.md §3's "Debounced" cursor rule.
const debounceWindow = 100 * time.Millisecond

// debouncedCursor is the one rejection-window mechanism shared by the
// pane, hive-list, and search-term cursors (spec.md §3 describes the same
// rule three times; this collapses it into one small type rather than
// repeating the Instant-compare logic verbatim in three files).
type debouncedCursor struct {
	mu    sync.Mutex
	value int
	last  time.Time
}

// Get returns the current value without consuming the debounce window.
func (c *debouncedCursor) Get() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set forces the value without going through debounce or move logic
// (used when resolving a search-term edit, which is not a "move").
func (c *debouncedCursor) Set(v int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
}

// Move applies next to the current value if the debounce window has
// elapsed since the last accepted move, and reports whether it moved.
func (c *debouncedCursor) Move(next func(cur int) int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if time.Since(c.last) < debounceWindow {
		return false
	}
	c.value = next(c.value)
	c.last = time.Now()
	return true
}

// MoveIf is like Move but first consults ready while still holding the
// debounce lock. A false ready does not count as a rejected move: it does
// not reset the debounce timer, matching the search-term cursor's rule
// that an empty set makes up/down a pure no-op (spec.md §8 boundary
// behaviors).
func (c *debouncedCursor) MoveIf(ready func() bool, next func(cur int) int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if time.Since(c.last) < debounceWindow {
		return false
	}
	if !ready() {
		return false
	}
	c.value = next(c.value)
	c.last = time.Now()
	return true
}
