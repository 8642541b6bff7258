package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/killer-chase/constants"
	"github.com/lixenwraith/killer-chase/engine"
)

// Surface is the subset of tcell.Screen the renderer draws on
type Surface interface {
	Size() (width, height int)
	Clear()
	HideCursor()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

var (
	_ Surface              = tcell.Screen(nil)
	_ engine.FrameRenderer = (*TerminalRenderer)(nil)
)

// TerminalRenderer repaints the full frame on every call; it keeps no game state
type TerminalRenderer struct {
	screen Surface
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen Surface) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Draw clears the screen and paints the player and the killers, then flushes.
// Killers are painted last so a killer on the cursor cell stays visible.
func (r *TerminalRenderer) Draw(s *engine.GameState) {
	r.screen.Clear()
	r.screen.HideCursor()

	r.drawCell(s.Cursor, constants.PlayerGlyph, StylePlayer)
	for _, k := range s.Killers {
		r.drawCell(k, constants.KillerGlyph, StyleKiller)
	}

	r.screen.Show()
}

// DrawGameOver clears the screen and centers the game over message on the board
func (r *TerminalRenderer) DrawGameOver(b engine.Bounds) {
	r.screen.Clear()
	r.screen.HideCursor()

	pos := engine.Point{X: b.Cols/2 - constants.GameOverOffset, Y: b.Rows / 2}
	if pos.X < 0 {
		pos.X = 0
	}
	r.drawText(pos, constants.GameOverText, StyleGameOver)

	r.screen.Show()
}

// drawCell paints one glyph, skipping cells outside the screen
func (r *TerminalRenderer) drawCell(p engine.Point, ch rune, style tcell.Style) {
	width, height := r.screen.Size()
	if p.X < 0 || p.Y < 0 || p.X >= width || p.Y >= height {
		return
	}
	r.screen.SetContent(p.X, p.Y, ch, nil, style)
}

// drawText paints a single-width string left to right from p
func (r *TerminalRenderer) drawText(p engine.Point, text string, style tcell.Style) {
	for _, ch := range text {
		r.drawCell(p, ch, style)
		p.X++
	}
}
