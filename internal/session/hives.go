package session

import (
	"sync"

	"github.com/evanreyes/winregsearch/internal/registry"
)

// hiveSelection is the hive selection set plus its own debounced cursor
// (spec.md §3 "Hive selection set" and "Hive-list cursor").
type hiveSelection struct {
	mu      sync.RWMutex
	enabled map[registry.Hive]bool
	cursor  debouncedCursor
}

// newHiveSelection returns the spec.md default: LocalMachine and Users
// enabled, all others disabled.
func newHiveSelection() *hiveSelection {
	return &hiveSelection{
		enabled: map[registry.Hive]bool{
			registry.ClassesRoot:   false,
			registry.CurrentUser:   false,
			registry.LocalMachine:  true,
			registry.Users:         true,
			registry.CurrentConfig: false,
		},
	}
}

func (h *hiveSelection) Enabled(hv registry.Hive) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.enabled[hv]
}

// EnabledHives returns the enabled hives in tag order.
func (h *hiveSelection) EnabledHives() []registry.Hive {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []registry.Hive
	for _, hv := range registry.AllHives() {
		if h.enabled[hv] {
			out = append(out, hv)
		}
	}
	return out
}

func (h *hiveSelection) Toggle(hv registry.Hive) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.enabled[hv] = !h.enabled[hv]
}

func (h *hiveSelection) Cursor() registry.Hive {
	return registry.Hive(h.cursor.Get())
}

func (h *hiveSelection) Up() bool {
	return h.cursor.Move(func(cur int) int {
		return ((cur-1)%registry.HiveCount + registry.HiveCount) % registry.HiveCount
	})
}

func (h *hiveSelection) Down() bool {
	return h.cursor.Move(func(cur int) int {
		return (cur + 1) % registry.HiveCount
	})
}

// HiveRow is one renderable row of the hive-list pane.
type HiveRow struct {
	Hive     registry.Hive
	Name     string
	Enabled  bool
	Selected bool
}

// Rows produces renderable rows without mutating state (spec.md §4.1
// generate_hive_rows).
func (h *hiveSelection) Rows() []HiveRow {
	cur := h.Cursor()
	h.mu.RLock()
	defer h.mu.RUnlock()
	rows := make([]HiveRow, 0, registry.HiveCount)
	for _, hv := range registry.AllHives() {
		rows = append(rows, HiveRow{
			Hive:     hv,
			Name:     hv.Name(),
			Enabled:  h.enabled[hv],
			Selected: hv == cur,
		})
	}
	return rows
}
