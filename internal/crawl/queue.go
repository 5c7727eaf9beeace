package crawl

import (
	"sync"

	"github.com/evanreyes/winregsearch/internal/registry"
)

// workItem is one key to open and enumerate.
type workItem struct {
	Hive registry.Hive
	Path string // subkey path, "" meaning the hive root
}

// queue is a plain FIFO of pending workItems, grounded on worker_manager.rs's
// VecDeque-backed queue. Its own mutex only makes push/pop/len safe to
// call concurrently; engine.go pairs it with a separate sync.Cond so
// waiting workers can be woken when work arrives or the queue is
// confirmed empty with no workers still busy.
type queue struct {
	mu    sync.Mutex
	items []workItem
}

func (q *queue) push(it workItem) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, it)
}

// pop removes and returns the oldest item, or ok=false if empty.
func (q *queue) pop() (workItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return workItem{}, false
	}
	it := q.items[0]
	q.items = q.items[1:]
	return it, true
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
