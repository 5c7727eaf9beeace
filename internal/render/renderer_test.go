package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanreyes/winregsearch/internal/session"
	"github.com/evanreyes/winregsearch/internal/term/faketerm"
)

// rowText returns row y of scr as a string, unwritten cells as NUL.
func rowText(scr *faketerm.Screen, y, w int) string {
	row := make([]rune, w)
	for x := 0; x < w; x++ {
		row[x] = scr.RuneAt(x, y)
	}
	return string(row)
}

func TestRunRedrawsOnCadenceThenStopsOnQuit(t *testing.T) {
	s := session.New()
	backend := faketerm.New(80, 24)

	done := make(chan struct{})
	go func() {
		Run(backend, s)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return backend.Screen().(*faketerm.Screen).ShowCount() >= 2
	}, time.Second, 5*time.Millisecond)

	s.RequestQuit()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not exit after RequestQuit")
	}
}

func TestDrawShowsMainPanesByDefault(t *testing.T) {
	s := session.New()
	backend := faketerm.New(80, 24)
	r := &Renderer{backend: backend}
	require.NoError(t, r.draw(s))

	scr := backend.Screen().(*faketerm.Screen)
	// Status line text begins at column 0.
	assert.NotEqual(t, rune(0), scr.RuneAt(1, 0))
	// Hive list top border drawn along the first body row, right of the
	// "[Hives]" title that occupies columns 1-7.
	assert.Equal(t, '-', scr.RuneAt(10, 1))
}

func TestDrawOverlaysHelpModalWhenFocusHelp(t *testing.T) {
	s := session.New()
	s.Focus.EnterHelp()
	backend := faketerm.New(80, 24)
	r := &Renderer{backend: backend}
	require.NoError(t, r.draw(s))

	scr := backend.Screen().(*faketerm.Screen)
	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(scr, y, 80), "Help") {
			found = true
		}
	}
	assert.True(t, found, "expected help modal title to be painted somewhere on screen")
}

func TestDrawOverlaysConfirmCloseModal(t *testing.T) {
	s := session.New()
	s.Focus.EnterConfirmClose()
	backend := faketerm.New(80, 24)
	r := &Renderer{backend: backend}
	require.NoError(t, r.draw(s))

	scr := backend.Screen().(*faketerm.Screen)
	found := false
	for x := 0; x < 80; x++ {
		for y := 0; y < 24; y++ {
			if scr.RuneAt(x, y) == 'Q' {
				found = true
			}
		}
	}
	assert.True(t, found, "expected confirm-close modal text to be painted")
}

func TestDrawOverlaysSearchModModalWithBuffer(t *testing.T) {
	s := session.New()
	s.Focus.EnterSearchModAdd()
	s.Focus.MutateEditor(func(e *session.Editor) { e.Buffer = "reg" })
	backend := faketerm.New(80, 24)
	r := &Renderer{backend: backend}
	require.NoError(t, r.draw(s))

	scr := backend.Screen().(*faketerm.Screen)
	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(scr, y, 80), "reg_") {
			found = true
		}
	}
	assert.True(t, found, "expected editor buffer contents to be painted in the modal")
}

func TestScrollUpClampsAtZero(t *testing.T) {
	r := &Renderer{}
	r.ScrollUp()
	assert.Equal(t, 0, r.scroll)
	r.ScrollDown()
	r.ScrollDown()
	r.ScrollUp()
	assert.Equal(t, 1, r.scroll)
}

func TestComputeLayoutProportions(t *testing.T) {
	lay := computeLayout(100, 40)
	assert.Equal(t, 1, lay.Status.H)
	assert.Equal(t, 20, lay.HiveList.W)
	assert.Equal(t, 20, lay.SearchTerms.W)
	assert.Equal(t, 80, lay.Results.W)
	assert.Equal(t, lay.HiveList.H+lay.SearchTerms.H, lay.Results.H)
}
