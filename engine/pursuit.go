package engine

import "github.com/lixenwraith/killer-chase/constants"

// StepToward returns the one-dimensional chase step from coord to target:
// -1 or +1 toward the target, 0 once the axis is aligned
func StepToward(coord, target int) int {
	switch d := target - coord; {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// StepTowardLegacy is the classic sign rule: -1 when the target lies behind,
// +1 otherwise. An aligned axis therefore oscillates around the target.
func StepTowardLegacy(coord, target int) int {
	if target-coord < 0 {
		return -1
	}
	return 1
}

// AdvanceKillers computes the next killer positions without mutating s.
// Each axis is chased independently by one cell; results are not clamped.
func AdvanceKillers(s *GameState) [constants.KillerCount]Point {
	step := StepToward
	if s.Rules == RulesLegacy {
		step = StepTowardLegacy
	}

	var next [constants.KillerCount]Point
	for i, k := range s.Killers {
		next[i] = Point{
			X: k.X + step(k.X, s.Cursor.X),
			Y: k.Y + step(k.Y, s.Cursor.Y),
		}
	}
	return next
}
