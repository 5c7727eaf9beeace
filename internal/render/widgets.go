package render

import (
	"fmt"
	"time"

	"github.com/evanreyes/winregsearch/internal/session"
	"github.com/evanreyes/winregsearch/internal/term"
)

func drawText(scr term.Screen, x, y int, style term.Style, s string) {
	for i, r := range []rune(s) {
		scr.SetContent(x+i, y, r, style)
	}
}

func drawTextClipped(scr term.Screen, r rect, style term.Style, s string) {
	runes := []rune(s)
	if len(runes) > r.W {
		runes = runes[:r.W]
	}
	for i, ch := range runes {
		scr.SetContent(r.X+i, r.Y, ch, style)
	}
}

func fillRect(scr term.Screen, r rect, style term.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			scr.SetContent(x, y, ' ', style)
		}
	}
}

func drawBorder(scr term.Screen, r rect) {
	for x := r.X; x < r.X+r.W; x++ {
		scr.SetContent(x, r.Y, '-', styleBorder)
		scr.SetContent(x, r.Y+r.H-1, '-', styleBorder)
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		scr.SetContent(r.X, y, '|', styleBorder)
		scr.SetContent(r.X+r.W-1, y, '|', styleBorder)
	}
}

func drawStatusLine(scr term.Screen, r rect, state *session.State) {
	fillRect(scr, r, styleStatus)
	keys := state.Results.KeysVisited()
	values := state.Results.ValuesRead()
	results := state.Results.ResultCount()

	status := "Idle"
	switch {
	case state.Run.Running() && state.Run.RunControlDisabled():
		status = "Stopping"
	case state.Run.Running():
		status = "Running"
	}

	elapsed := formatElapsed(state.Timer.Snapshot(), time.Now())
	line := fmt.Sprintf(" keys=%d values=%d results=%d status=%s elapsed=%s",
		keys, values, results, status, elapsed)
	drawTextClipped(scr, r, styleStatus, line)
}

// formatElapsed renders the run duration: still-ticking against now while
// running, or the final stamped duration once the timer has an end
// instant (spec.md §4.5 "elapsed/final runtime").
func formatElapsed(snap session.TimerSnapshot, now time.Time) string {
	if snap.Start == nil {
		return "-"
	}
	if snap.End == nil {
		return now.Sub(*snap.Start).Round(time.Second).String()
	}
	return snap.End.Sub(*snap.Start).Round(time.Second).String()
}

func drawHiveList(scr term.Screen, r rect, focused bool, rows []session.HiveRow) {
	drawBorder(scr, r)
	title := "Hives"
	if focused {
		title = "[Hives]"
	}
	drawText(scr, r.X+1, r.Y, styleHeader, title)
	inner := rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
	for i, row := range rows {
		y := inner.Y + i
		if y >= inner.Y+inner.H {
			break
		}
		style := styleHiveDisabled
		if row.Enabled {
			style = styleHiveEnabled
		}
		mark := "[ ]"
		if row.Enabled {
			mark = "[x]"
		}
		line := mark + " " + row.Name
		if row.Selected {
			style = styleSelected
		}
		drawTextClipped(scr, rect{X: inner.X, Y: y, W: inner.W, H: 1}, style, line)
	}
}

func drawSearchTerms(scr term.Screen, r rect, focused bool, terms []string, cursor int) {
	drawBorder(scr, r)
	title := "Search Terms"
	if focused {
		title = "[Search Terms]"
	}
	drawText(scr, r.X+1, r.Y, styleHeader, title)
	inner := rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
	for i, t := range terms {
		y := inner.Y + i
		if y >= inner.Y+inner.H {
			break
		}
		style := styleHiveEnabled
		if i == cursor {
			style = styleSelected
		}
		drawTextClipped(scr, rect{X: inner.X, Y: y, W: inner.W, H: 1}, style, t)
	}
}

func drawResults(scr term.Screen, r rect, rows []string, errs []session.ErrorRow, scroll int) {
	drawBorder(scr, r)
	drawText(scr, r.X+1, r.Y, styleHeader, "Results")
	inner := rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}

	all := make([]string, 0, len(rows)+len(errs))
	all = append(all, rows...)
	for _, e := range errs {
		all = append(all, fmt.Sprintf("%s: %s", e.Path, e.Message))
	}

	if scroll < 0 {
		scroll = 0
	}
	if scroll > len(all) {
		scroll = len(all)
	}
	for i := 0; i+scroll < len(all) && i < inner.H; i++ {
		line := all[i+scroll]
		style := styleHiveEnabled
		if i+scroll >= len(rows) {
			style = styleError
		}
		drawTextClipped(scr, rect{X: inner.X, Y: inner.Y + i, W: inner.W, H: 1}, style, line)
	}
}

func drawHelpModal(scr term.Screen, screenW, screenH int) {
	lines := []string{
		"Help",
		"",
		"n        new search term",
		"e        edit selected search term",
		"h        toggle this help",
		"q / Esc  close",
		"Left/Right  change pane",
		"Up/Down     move cursor",
		"Enter       toggle hive / no-op",
		"F5          start / stop crawl",
		"y           copy results to clipboard",
	}
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 4
	h := len(lines) + 2
	r := modalRect(screenW, screenH, w, h)
	fillRect(scr, r, styleModal)
	drawBorder(scr, r)
	for i, l := range lines {
		drawTextClipped(scr, rect{X: r.X + 2, Y: r.Y + 1 + i, W: r.W - 4, H: 1}, styleModal, l)
	}
}

func drawConfirmCloseModal(scr term.Screen, screenW, screenH int) {
	msg := "Quit? (Y/N)"
	r := modalRect(screenW, screenH, len(msg)+4, 3)
	fillRect(scr, r, styleModal)
	drawBorder(scr, r)
	drawText(scr, r.X+2, r.Y+1, styleWarning, msg)
}

func drawSearchModModal(scr term.Screen, screenW, screenH int, e session.Editor) {
	title := "New search term"
	if e.Mode == session.EditorEdit {
		title = "Edit search term"
	}
	w := len(e.Buffer) + 6
	if w < len(title)+4 {
		w = len(title) + 4
	}
	r := modalRect(screenW, screenH, w, 4)
	fillRect(scr, r, styleModal)
	drawBorder(scr, r)
	drawText(scr, r.X+2, r.Y+1, styleHeader, title)
	drawText(scr, r.X+2, r.Y+2, styleModal, e.Buffer+"_")
}
