package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanreyes/winregsearch/internal/registry"
)

func TestNewStateDefaults(t *testing.T) {
	s := New()
	assert.True(t, s.Hives.Enabled(registry.LocalMachine))
	assert.True(t, s.Hives.Enabled(registry.Users))
	assert.False(t, s.Hives.Enabled(registry.ClassesRoot))
	assert.False(t, s.Hives.Enabled(registry.CurrentUser))
	assert.False(t, s.Hives.Enabled(registry.CurrentConfig))
	assert.Equal(t, 0, s.SearchTerms.Len())
	assert.Equal(t, FocusMain, s.Focus.Mode())
	assert.False(t, s.Run.Running())
	assert.False(t, s.QuitRequested())
}

func TestHiveToggleRoundTrip(t *testing.T) {
	s := New()
	before := s.Hives.Enabled(registry.ClassesRoot)
	s.Hives.Toggle(registry.ClassesRoot)
	assert.Equal(t, !before, s.Hives.Enabled(registry.ClassesRoot))
	s.Hives.Toggle(registry.ClassesRoot)
	assert.Equal(t, before, s.Hives.Enabled(registry.ClassesRoot))
}

func TestHiveCursorWrapsAndDebounces(t *testing.T) {
	s := New()
	require.True(t, s.Hives.Up()) // wraps from 0 to HiveCount-1
	assert.Equal(t, registry.Hive(registry.HiveCount-1), s.Hives.Cursor())
	assert.False(t, s.Hives.Down()) // debounced, immediately after
}

func TestPaneCursorWraps(t *testing.T) {
	s := New()
	require.True(t, s.Pane.Left())
	assert.Equal(t, Pane(paneCount-1), s.Pane.Get())
}

func TestSearchTermsAddIsSortedAndDeduped(t *testing.T) {
	st := newSearchTerms()
	st.Update(EditorAdd, "", "zeta")
	st.Update(EditorAdd, "", "alpha")
	st.Update(EditorAdd, "", "alpha")
	assert.Equal(t, []string{"alpha", "zeta"}, st.Terms())
}

func TestSearchTermsEditReplaces(t *testing.T) {
	st := newSearchTerms()
	st.Update(EditorAdd, "", "alpha")
	st.Update(EditorEdit, "alpha", "beta")
	assert.Equal(t, []string{"beta"}, st.Terms())
}

func TestSearchTermsEmptySetCursorIsNoOp(t *testing.T) {
	st := newSearchTerms()
	assert.False(t, st.Up())
	assert.False(t, st.Down())
	assert.Equal(t, 0, st.Cursor())
}

func TestSearchTermsCursorDebounceNotConsumedByEmptySet(t *testing.T) {
	st := newSearchTerms()
	// An empty-set no-op must not start the debounce window: a
	// subsequent move on a non-empty set should succeed immediately.
	assert.False(t, st.Up())
	st.Update(EditorAdd, "", "alpha")
	st.Update(EditorAdd, "", "beta")
	assert.True(t, st.Up())
}

func TestFocusSequentialReadPattern(t *testing.T) {
	f := newFocusState()
	f.EnterSearchModAdd()
	assert.Equal(t, FocusSearchMod, f.Mode())
	e := f.EditorSnapshot()
	assert.Equal(t, EditorAdd, e.Mode)
	assert.Equal(t, "", e.Buffer)
}

func TestFocusEditEntrySeedsBuffer(t *testing.T) {
	f := newFocusState()
	f.EnterSearchModEdit("alpha")
	e := f.EditorSnapshot()
	assert.Equal(t, EditorEdit, e.Mode)
	assert.Equal(t, "alpha", e.Original)
	assert.Equal(t, "alpha", e.Buffer)
}

func TestFocusMutateEditorAppends(t *testing.T) {
	f := newFocusState()
	f.EnterSearchModAdd()
	f.MutateEditor(func(e *Editor) { e.Buffer += "a" })
	f.MutateEditor(func(e *Editor) { e.Buffer += "b" })
	assert.Equal(t, "ab", f.EditorSnapshot().Buffer)
}

func TestFocusResolveSearchModReturnsToPane(t *testing.T) {
	f := newFocusState()
	f.EnterSearchModAdd()
	f.MutateEditor(func(e *Editor) { e.Buffer = "alpha" })
	e, ok := f.ResolveSearchMod()
	require.True(t, ok)
	assert.Equal(t, "alpha", e.Buffer)
	assert.Equal(t, FocusMain, f.Mode())
}

func TestFocusResolveSearchModFailsOutsideSearchMod(t *testing.T) {
	f := newFocusState()
	_, ok := f.ResolveSearchMod()
	assert.False(t, ok)
}

func TestFocusDiscardReturnsToPaneWithoutResolving(t *testing.T) {
	f := newFocusState()
	f.EnterSearchModAdd()
	f.DiscardSearchMod()
	assert.Equal(t, FocusMain, f.Mode())
}

func TestFocusHelpRoundTrip(t *testing.T) {
	f := newFocusState()
	f.EnterHelp()
	assert.Equal(t, FocusHelp, f.Mode())
	f.ExitHelp()
	assert.Equal(t, FocusMain, f.Mode())
}

func TestFocusConfirmCloseRoundTrip(t *testing.T) {
	f := newFocusState()
	f.EnterConfirmClose()
	assert.Equal(t, FocusConfirmClose, f.Mode())
	f.ExitConfirmClose()
	assert.Equal(t, FocusMain, f.Mode())
}

func TestFocusExitHelpIgnoredOutsideHelp(t *testing.T) {
	f := newFocusState()
	f.EnterSearchModAdd()
	f.ExitHelp()
	assert.Equal(t, FocusSearchMod, f.Mode())
}

func TestToggleRunStartsAndSignals(t *testing.T) {
	s := New()
	now := time.Unix(1000, 0)
	s.ToggleRun(now)
	assert.True(t, s.Run.Running())
	assert.False(t, s.Run.RunControlDisabled())
	snap := s.Timer.Snapshot()
	require.NotNil(t, snap.Start)
	assert.True(t, snap.Start.Equal(now))
	select {
	case <-s.Run.StartRequests():
	default:
		t.Fatal("expected a buffered start token")
	}
}

func TestToggleRunWhileRunningRequestsStop(t *testing.T) {
	s := New()
	s.ToggleRun(time.Unix(1000, 0))
	<-s.Run.StartRequests() // drain, as the Runtime Supervisor would

	s.ToggleRun(time.Unix(2000, 0)) // now running: requests stop instead
	assert.True(t, s.Run.StopRequested())
	assert.True(t, s.Run.RunControlDisabled())
	assert.True(t, s.Run.Running()) // cleared only by the Supervisor's EndRun
}

func TestToggleRunSecondStartBuffersRatherThanDrops(t *testing.T) {
	s := New()
	s.ToggleRun(time.Unix(1000, 0))
	done := make(chan struct{})
	go func() {
		// running is already true from the first toggle, so a caller must
		// first flip it back to simulate "stopped, but token unconsumed"
		// before this will take the start branch again.
		s.Run.running.Store(false)
		s.ToggleRun(time.Unix(2000, 0))
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second ToggleRun should have blocked on the unconsumed token")
	case <-time.After(50 * time.Millisecond):
	}

	<-s.Run.StartRequests() // drain the first token, unblocking the second
	require.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestStateStartAndFinishRun(t *testing.T) {
	s := New()
	s.Results.AddResult("HKLM\\stale")
	now := time.Unix(1000, 0)
	s.ToggleRun(now)
	<-s.Run.StartRequests()
	s.StartRun()
	assert.Equal(t, 0, s.Results.ResultCount())
	snap := s.Timer.Snapshot()
	require.NotNil(t, snap.Start)
	assert.True(t, snap.Start.Equal(now))
	assert.Nil(t, snap.End)

	later := now.Add(5 * time.Second)
	s.FinishRun(later)
	snap = s.Timer.Snapshot()
	require.NotNil(t, snap.End)
	assert.True(t, snap.End.Equal(later))
	assert.False(t, s.Run.Running())
}

func TestResultsStateDeterministicOrdering(t *testing.T) {
	r := newResultsState()
	r.AddResult("HKLM\\zeta")
	r.AddResult("HKLM\\alpha")
	r.AddError("HKLM\\beta", "access denied")
	assert.Equal(t, []string{"HKLM\\alpha", "HKLM\\zeta"}, r.Results())
	assert.Equal(t, []ErrorRow{{Path: "HKLM\\beta", Message: "access denied"}}, r.Errors())
}

func TestResultsStateKeepsDistinctErrorsForSamePath(t *testing.T) {
	r := newResultsState()
	r.AddError("HKLM\\Partial", "subkey enumeration error")
	r.AddError("HKLM\\Partial", "value enumeration error")
	assert.ElementsMatch(t, []ErrorRow{
		{Path: "HKLM\\Partial", Message: "subkey enumeration error"},
		{Path: "HKLM\\Partial", Message: "value enumeration error"},
	}, r.Errors())
}

func TestResultsStateDedupesExactDuplicateErrors(t *testing.T) {
	r := newResultsState()
	r.AddError("HKLM\\Partial", "access denied")
	r.AddError("HKLM\\Partial", "access denied")
	assert.Equal(t, []ErrorRow{{Path: "HKLM\\Partial", Message: "access denied"}}, r.Errors())
}
