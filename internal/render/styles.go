package render

import "github.com/gdamore/tcell/v2"

// Color palette, translated from cmd/hiveexplorer/styles.go's named-color-
// variable convention (lipgloss.Color hex values) to tcell's named
// colors, plus SELECTION_COLOUR = Color::Cyan from
// _examples/original_source/src/lib.rs.
var (
	primaryColor   = tcell.ColorPurple
	mutedColor     = tcell.ColorGray
	borderColor    = tcell.ColorDarkSlateGray
	errorColor     = tcell.ColorRed
	warningColor   = tcell.ColorOrange
	selectionColor = tcell.ColorTeal // tcell has no literal "Cyan" alias collision-free; Teal renders as cyan on 256-color terminals
)

var (
	styleDefault = tcell.StyleDefault

	styleHeader = tcell.StyleDefault.Foreground(primaryColor).Bold(true)

	styleHiveEnabled  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHiveDisabled = tcell.StyleDefault.Foreground(mutedColor)

	styleSelected = tcell.StyleDefault.Background(selectionColor).Foreground(tcell.ColorBlack).Bold(true)

	styleBorder = tcell.StyleDefault.Foreground(borderColor)

	styleStatus = tcell.StyleDefault.Foreground(mutedColor)

	styleError = tcell.StyleDefault.Foreground(errorColor).Bold(true)

	styleWarning = tcell.StyleDefault.Foreground(warningColor)

	styleModal = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)
