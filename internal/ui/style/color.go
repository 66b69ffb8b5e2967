package style

import "github.com/gdamore/tcell/v2"

// The dashboard palette. Green carries the chrome, purple the body
// text, orange the warnings.

const (
	ColorDefault     = tcell.ColorDefault
	ColorBlack       = tcell.ColorBlack
	ColorPurple      = tcell.ColorMediumPurple
	ColorLightGreen  = tcell.ColorLightSeaGreen
	ColorMediumGreen = tcell.ColorMediumSeaGreen
	ColorOrange      = tcell.ColorOrange
)

var (
	StyleDefault = tcell.StyleDefault
)
