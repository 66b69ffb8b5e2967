package key

import "github.com/gdamore/tcell/v2"

/**
 * Keys and Runes!
 */

const (
	RuneColon = ':'
	RuneStart = 's'
	RuneRetry = 'r'
	RuneDown  = 'j'
	RuneUp    = 'k'
)

const (
	KeyCtrlC = tcell.KeyCtrlC
	KeyEnter = tcell.KeyEnter
	KeyEsc   = tcell.KeyEsc
)
