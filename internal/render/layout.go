package render

// rect is an axis-aligned screen region in cell coordinates.
type rect struct {
	X, Y, W, H int
}

// layout is the computed screen regions for one frame (spec.md §4.5
// step 2): a top status line, a left column split into HiveList (top)
// and SearchTerms (bottom), and Results filling the remaining width.
type layout struct {
	Status      rect
	HiveList    rect
	SearchTerms rect
	Results     rect
}

// computeLayout implements SPEC_FULL.md §4.5: hive list is 20% of
// width, search terms occupies a vertical split beneath it in the same
// column, and results takes the remaining 80% of width.
func computeLayout(width, height int) layout {
	if width < 1 {
		width = 1
	}
	if height < 2 {
		height = 2
	}
	statusHeight := 1
	bodyY := statusHeight
	bodyHeight := height - statusHeight

	leftWidth := width * 20 / 100
	if leftWidth < 1 {
		leftWidth = 1
	}
	rightWidth := width - leftWidth
	if rightWidth < 1 {
		rightWidth = 1
	}

	hiveHeight := bodyHeight / 2
	if hiveHeight < 1 {
		hiveHeight = 1
	}
	termsHeight := bodyHeight - hiveHeight
	if termsHeight < 1 {
		termsHeight = 1
	}

	return layout{
		Status:      rect{X: 0, Y: 0, W: width, H: statusHeight},
		HiveList:    rect{X: 0, Y: bodyY, W: leftWidth, H: hiveHeight},
		SearchTerms: rect{X: 0, Y: bodyY + hiveHeight, W: leftWidth, H: termsHeight},
		Results:     rect{X: leftWidth, Y: bodyY, W: rightWidth, H: bodyHeight},
	}
}

// modalRect centers a w x h box within the full screen.
func modalRect(screenW, screenH, w, h int) rect {
	if w > screenW {
		w = screenW
	}
	if h > screenH {
		h = screenH
	}
	return rect{X: (screenW - w) / 2, Y: (screenH - h) / 2, W: w, H: h}
}
