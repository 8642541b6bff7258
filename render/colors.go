package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbPlayer   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbKiller   = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbGameOver = tcell.NewRGBColor(255, 255, 255) // White
)

// Styles derived from the palette
var (
	StylePlayer   = tcell.StyleDefault.Foreground(RgbPlayer).Bold(true)
	StyleKiller   = tcell.StyleDefault.Foreground(RgbKiller).Bold(true)
	StyleGameOver = tcell.StyleDefault.Foreground(RgbGameOver).Bold(true)
)
