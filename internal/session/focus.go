package session

import "sync"

// FocusMode is which pane or overlay currently owns keyboard input
// (spec.md §3 "Focus mode": tagged variant {Main, SearchMod, Help,
// ConfirmClose}).
type FocusMode int

const (
	// FocusMain means input drives the pane/hive/term cursors directly.
	FocusMain FocusMode = iota
	// FocusSearchMod means the editor overlay owns the keyboard.
	FocusSearchMod
	// FocusHelp means the help overlay is shown; only q/Esc/h are live.
	FocusHelp
	// FocusConfirmClose means the close-confirmation overlay is shown.
	FocusConfirmClose
)

// Editor is the in-progress search-term text buffer (spec.md §3 "Search
// editor"). Original is empty in EditorAdd mode, and holds the term being
// replaced in EditorEdit mode.
type Editor struct {
	Mode     EditorMode
	Original string
	Buffer   string
}

// editorBox is the editor's own lock, separate from focusState's lock.
// Holding focus's lock first and then editorBox's lock, in that order
// and never reversed, is the rule controls.rs encodes for every path
// that touches both (grounded on controls.rs's `let mut focuslock =
// focus.write(); let mut search_editor_lock = search_editor.write();`
// for the atomic resolve path).
type editorBox struct {
	mu    sync.RWMutex
	value Editor
}

// focusState holds which pane/overlay owns input, plus the editor
// buffer it feeds when in FocusSearchMod.
type focusState struct {
	mu     sync.RWMutex
	mode   FocusMode
	editor editorBox
}

func newFocusState() *focusState {
	return &focusState{mode: FocusMain}
}

// Mode reports the current focus mode under its own read lock. Used by
// callers that only need the mode, not the editor contents (sequential
// acquisition: this lock is taken and released before any editor lock).
func (f *focusState) Mode() FocusMode {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.mode
}

// EditorSnapshot returns a copy of the current editor buffer. Callers
// that need both the mode and the buffer (e.g. the renderer) call Mode
// and EditorSnapshot back to back: focus's lock is released before
// editor's lock is taken, satisfying "focus before editor" without
// nesting them.
func (f *focusState) EditorSnapshot() Editor {
	f.editor.mu.RLock()
	defer f.editor.mu.RUnlock()
	return f.editor.value
}

// EnterSearchModAdd switches focus into a fresh, empty Add-mode editor.
func (f *focusState) EnterSearchModAdd() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editor.mu.Lock()
	defer f.editor.mu.Unlock()
	f.editor.value = Editor{Mode: EditorAdd}
	f.mode = FocusSearchMod
}

// EnterSearchModEdit switches focus into an Edit-mode editor seeded with
// the term being edited.
func (f *focusState) EnterSearchModEdit(term string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editor.mu.Lock()
	defer f.editor.mu.Unlock()
	f.editor.value = Editor{Mode: EditorEdit, Original: term, Buffer: term}
	f.mode = FocusSearchMod
}

// DiscardSearchMod abandons the in-progress edit and returns focus to
// Main (Esc in SearchMod).
func (f *focusState) DiscardSearchMod() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = FocusMain
}

// MutateEditor applies fn to the editor buffer (AddChar/Backspace),
// taking only the editor lock. Callers first confirm FocusSearchMod via
// Mode(), releasing that lock before calling this: two sequential locks,
// never nested, since plain text editing never needs to re-check or
// change the focus mode itself.
func (f *focusState) MutateEditor(fn func(e *Editor)) {
	f.editor.mu.Lock()
	defer f.editor.mu.Unlock()
	fn(&f.editor.value)
}

// ResolveSearchMod atomically takes ownership of the editor buffer and
// returns focus to FocusMain, in one nested critical section (focus
// locked first, editor locked second, both held for the whole
// operation), matching controls.rs's Enter-in-SearchMod handling. ok is
// false if focus was not in SearchMod.
func (f *focusState) ResolveSearchMod() (Editor, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode != FocusSearchMod {
		return Editor{}, false
	}
	f.editor.mu.Lock()
	defer f.editor.mu.Unlock()
	e := f.editor.value
	f.mode = FocusMain
	return e, true
}

// EnterHelp switches focus to the Help overlay (the `h` key from Main).
func (f *focusState) EnterHelp() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = FocusHelp
}

// ExitHelp returns focus to Main (q, Esc, or h from Help).
func (f *focusState) ExitHelp() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == FocusHelp {
		f.mode = FocusMain
	}
}

// EnterConfirmClose switches focus to the close-confirmation overlay
// (q or Esc from Main).
func (f *focusState) EnterConfirmClose() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = FocusConfirmClose
}

// ExitConfirmClose returns focus to Main without closing (Esc or n from
// ConfirmClose).
func (f *focusState) ExitConfirmClose() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == FocusConfirmClose {
		f.mode = FocusMain
	}
}
