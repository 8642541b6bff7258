package engine

import (
	"github.com/lixenwraith/killer-chase/constants"
)

// Rules selects the movement rules of the board
type Rules int

const (
	// RulesStandard clamps the cursor to [0, dim-1] on both axes and lets a
	// killer hold an axis it already shares with the cursor
	RulesStandard Rules = iota

	// RulesLegacy reproduces the classic behaviour: the row clamp lets the
	// cursor reach row == Rows (one past the last row) while columns stop at
	// Cols-1, and an aligned axis still steps +1
	RulesLegacy
)

// String returns the rules name
func (r Rules) String() string {
	switch r {
	case RulesStandard:
		return "standard"
	case RulesLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// GameState is the single mutable record of a session.
// It is owned by the main loop and never shared across goroutines.
type GameState struct {
	Bounds  Bounds
	Cursor  Point
	Killers [constants.KillerCount]Point
	Rules   Rules
}

// NewGameState creates a board of the given size with the cursor near the
// center and freshly seeded killers
func NewGameState(bounds Bounds, rules Rules, rng RandomSource) *GameState {
	s := &GameState{
		Bounds: bounds,
		Cursor: StartPosition(bounds),
		Rules:  rules,
	}
	s.Reseed(rng)
	return s
}

// StartPosition returns the initial cursor cell: middle column, one row above the middle
func StartPosition(b Bounds) Point {
	p := Point{X: b.Cols / 2, Y: b.Rows/2 - 1}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}

// Reseed replaces all killers with uniformly random in-bounds positions
func (s *GameState) Reseed(rng RandomSource) {
	s.Killers = SeedKillers(s.Bounds, rng)
}

// AdvanceKillers moves every killer one pursuit step toward the cursor
func (s *GameState) AdvanceKillers() {
	s.Killers = AdvanceKillers(s)
}

// MoveCursor moves the cursor one cell in dir, clamped per the board rules
func (s *GameState) MoveCursor(dir Direction) {
	maxX, maxY := s.cursorLimits()

	switch dir {
	case DirectionUp:
		if s.Cursor.Y > 0 {
			s.Cursor.Y--
		}
	case DirectionDown:
		if s.Cursor.Y < maxY {
			s.Cursor.Y++
		}
	case DirectionLeft:
		if s.Cursor.X > 0 {
			s.Cursor.X--
		}
	case DirectionRight:
		if s.Cursor.X < maxX {
			s.Cursor.X++
		}
	}
}

// cursorLimits returns the largest reachable column and row
func (s *GameState) cursorLimits() (maxX, maxY int) {
	if s.Rules == RulesLegacy {
		// Row is checked with `row < Rows` before the increment, column with `col < Cols-1`
		return s.Bounds.Cols - 1, s.Bounds.Rows
	}
	return s.Bounds.Cols - 1, s.Bounds.Rows - 1
}
