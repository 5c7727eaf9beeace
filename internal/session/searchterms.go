package session

import (
	"sort"
	"sync"
)

// EditorMode distinguishes a brand-new search term from an edit of an
// existing one (spec.md §4.1's Add vs Edit resolution).
type EditorMode int

const (
	// EditorAdd means the buffer being resolved has no original term.
	EditorAdd EditorMode = iota
	// EditorEdit means the buffer replaces an existing term.
	EditorEdit
)

// searchTerms is the sorted, deduplicated search-term set plus its own
// debounced cursor (spec.md §3 "Search-term set" and "Search-term
// cursor"). Sorting is maintained by code-point order, which Go's native
// byte-wise string comparison already gives for UTF-8: sort.SearchStrings
// is equivalent to the code-point ordering the original implements with
// a BTreeSet<String>.
type searchTerms struct {
	mu     sync.RWMutex
	terms  []string
	cursor debouncedCursor
}

func newSearchTerms() *searchTerms {
	return &searchTerms{}
}

// indexOfLocked returns the position of term in the sorted slice and
// whether it is present. Caller must hold whatever lock guards st.
func (st *searchTerms) indexOfLocked(term string) (int, bool) {
	i := sort.SearchStrings(st.terms, term)
	return i, i < len(st.terms) && st.terms[i] == term
}

func (st *searchTerms) insertLocked(term string) {
	i, ok := st.indexOfLocked(term)
	if ok {
		return
	}
	st.terms = append(st.terms, "")
	copy(st.terms[i+1:], st.terms[i:])
	st.terms[i] = term
}

func (st *searchTerms) removeLocked(term string) {
	i, ok := st.indexOfLocked(term)
	if !ok {
		return
	}
	st.terms = append(st.terms[:i], st.terms[i+1:]...)
}

// Len reports the number of distinct search terms.
func (st *searchTerms) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.terms)
}

// Contains reports whether term is in the set.
func (st *searchTerms) Contains(term string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	_, ok := st.indexOfLocked(term)
	return ok
}

// Terms returns a snapshot of the sorted term slice.
func (st *searchTerms) Terms() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]string, len(st.terms))
	copy(out, st.terms)
	return out
}

// At returns the term at position i, or "" if out of range.
func (st *searchTerms) At(i int) (string, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if i < 0 || i >= len(st.terms) {
		return "", false
	}
	return st.terms[i], true
}

func (st *searchTerms) Cursor() int { return st.cursor.Get() }

// Up moves the search-term cursor one position up, wrapping, debounced,
// and a no-op on an empty set (spec.md §8 boundary behaviors: the empty
// case does not consume the debounce window, see debouncedCursor.MoveIf).
func (st *searchTerms) Up() bool {
	return st.cursor.MoveIf(
		func() bool { return len(st.terms) > 0 },
		func(cur int) int {
			n := len(st.terms)
			return ((cur-1)%n + n) % n
		},
	)
}

// Down is Up's mirror.
func (st *searchTerms) Down() bool {
	return st.cursor.MoveIf(
		func() bool { return len(st.terms) > 0 },
		func(cur int) int {
			n := len(st.terms)
			return (cur + 1) % n
		},
	)
}

// Update resolves a finished edit into the set, implementing spec.md
// §4.1's Add/Edit algorithm (grounded on search_term_tracker.rs::update):
//
//   - EditorAdd: newText is inserted if non-empty in the set's sense
//     (empty strings are accepted per the Open Question decision in
//     SPEC_FULL.md); the cursor is set to point at the inserted term.
//   - EditorEdit: original is removed and newText is inserted (even if
//     newText == original, a replace). If newText already exists as a
//     distinct entry, original is simply removed (no duplicate), and the
//     cursor follows whichever entry newText resolves to.
//
// The cursor is repositioned to the resolved term's new sorted index in
// both modes, matching the original's cursor-follows-the-edited-term
// behavior.
func (st *searchTerms) Update(mode EditorMode, original, newText string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	switch mode {
	case EditorAdd:
		st.insertLocked(newText)
	case EditorEdit:
		if original != newText {
			st.removeLocked(original)
			st.insertLocked(newText)
		}
	}
	if i, ok := st.indexOfLocked(newText); ok {
		st.cursor.Set(i)
	} else if len(st.terms) > 0 {
		st.cursor.Set(0)
	} else {
		st.cursor.Set(0)
	}
}

// Remove deletes term from the set, clamping the cursor into range.
func (st *searchTerms) Remove(term string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.removeLocked(term)
	n := len(st.terms)
	if n == 0 {
		st.cursor.Set(0)
		return
	}
	if c := st.cursor.Get(); c >= n {
		st.cursor.Set(n - 1)
	}
}
