package engine

import (
	"testing"
)

// sequenceSource is a deterministic RandomSource cycling through fixed values
type sequenceSource struct {
	values []int
	pos    int
}

func (s *sequenceSource) IntN(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

// TestStartPosition tests the initial cursor placement
func TestStartPosition(t *testing.T) {
	tests := []struct {
		bounds   Bounds
		expected Point
	}{
		{Bounds{Cols: 80, Rows: 24}, Point{X: 40, Y: 11}},
		{Bounds{Cols: 10, Rows: 10}, Point{X: 5, Y: 4}},
		{Bounds{Cols: 3, Rows: 1}, Point{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		if got := StartPosition(tt.bounds); got != tt.expected {
			t.Errorf("StartPosition(%+v) = %v, expected %v", tt.bounds, got, tt.expected)
		}
	}
}

// TestNewGameState verifies a fresh board has a start cursor and in-bounds killers
func TestNewGameState(t *testing.T) {
	bounds := Bounds{Cols: 40, Rows: 20}
	s := NewGameState(bounds, RulesStandard, NewRandomSource(42))

	if s.Bounds != bounds {
		t.Errorf("Expected bounds %+v, got %+v", bounds, s.Bounds)
	}
	if s.Cursor != StartPosition(bounds) {
		t.Errorf("Expected cursor at %v, got %v", StartPosition(bounds), s.Cursor)
	}
	if len(s.Killers) != 3 {
		t.Fatalf("Expected 3 killers, got %d", len(s.Killers))
	}
	for i, k := range s.Killers {
		if !bounds.Contains(k) {
			t.Errorf("Killer %d at %v is outside %+v", i, k, bounds)
		}
	}
}

// TestReseedInBounds verifies reseeding always yields three in-bounds killers
func TestReseedInBounds(t *testing.T) {
	sizes := []Bounds{{1, 1}, {2, 3}, {80, 24}, {200, 60}}
	rng := NewRandomSource(7)

	for _, b := range sizes {
		s := &GameState{Bounds: b}
		for round := 0; round < 500; round++ {
			s.Reseed(rng)
			if len(s.Killers) != 3 {
				t.Fatalf("Expected 3 killers, got %d", len(s.Killers))
			}
			for i, k := range s.Killers {
				if !b.Contains(k) {
					t.Fatalf("Round %d: killer %d at %v outside %+v", round, i, k, b)
				}
			}
		}
	}
}

// TestReseedReplacesAll verifies every killer is replaced independently of its previous position
func TestReseedReplacesAll(t *testing.T) {
	s := &GameState{Bounds: Bounds{Cols: 10, Rows: 10}}
	s.Killers = [3]Point{{-4, -4}, {-5, -5}, {-6, -6}}

	s.Reseed(&sequenceSource{values: []int{1, 2, 3, 4, 5, 6}})

	expected := [3]Point{{1, 2}, {3, 4}, {5, 6}}
	if s.Killers != expected {
		t.Errorf("Expected killers %v, got %v", expected, s.Killers)
	}
}

// TestSeedKillersZeroBoard verifies a degenerate board does not panic
func TestSeedKillersZeroBoard(t *testing.T) {
	killers := SeedKillers(Bounds{}, NewRandomSource(1))
	for i, k := range killers {
		if k != (Point{}) {
			t.Errorf("Killer %d expected at origin, got %v", i, k)
		}
	}
}

// TestMoveCursorClampAtOrigin verifies Up and Left at (0,0) leave the cursor in place
func TestMoveCursorClampAtOrigin(t *testing.T) {
	for _, rules := range []Rules{RulesStandard, RulesLegacy} {
		s := &GameState{Bounds: Bounds{Cols: 10, Rows: 10}, Rules: rules}

		s.MoveCursor(DirectionUp)
		if s.Cursor != (Point{}) {
			t.Errorf("%s: Up at origin moved cursor to %v", rules, s.Cursor)
		}
		s.MoveCursor(DirectionLeft)
		if s.Cursor != (Point{}) {
			t.Errorf("%s: Left at origin moved cursor to %v", rules, s.Cursor)
		}
	}
}

// TestMoveCursorSteps tests single-cell moves in every direction
func TestMoveCursorSteps(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirectionUp, Point{X: 5, Y: 4}},
		{DirectionDown, Point{X: 5, Y: 6}},
		{DirectionLeft, Point{X: 4, Y: 5}},
		{DirectionRight, Point{X: 6, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := &GameState{Bounds: Bounds{Cols: 10, Rows: 10}, Cursor: Point{X: 5, Y: 5}}
			s.MoveCursor(tt.dir)
			if s.Cursor != tt.expected {
				t.Errorf("Expected cursor at %v, got %v", tt.expected, s.Cursor)
			}
		})
	}
}

// TestMoveCursorUpperClamp tests the right and bottom limits of both rule sets
func TestMoveCursorUpperClamp(t *testing.T) {
	tests := []struct {
		rules    Rules
		expected Point
	}{
		{RulesStandard, Point{X: 9, Y: 5}},
		{RulesLegacy, Point{X: 9, Y: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.rules.String(), func(t *testing.T) {
			s := &GameState{Bounds: Bounds{Cols: 10, Rows: 6}, Rules: tt.rules}
			for i := 0; i < 50; i++ {
				s.MoveCursor(DirectionRight)
				s.MoveCursor(DirectionDown)
			}
			if s.Cursor != tt.expected {
				t.Errorf("Expected cursor clamped at %v, got %v", tt.expected, s.Cursor)
			}
		})
	}
}

// TestMoveCursorNeverNegative drives a long pseudo-random key sequence from every start cell
func TestMoveCursorNeverNegative(t *testing.T) {
	bounds := Bounds{Cols: 6, Rows: 4}
	rng := NewRandomSource(99)

	for _, rules := range []Rules{RulesStandard, RulesLegacy} {
		for x := 0; x < bounds.Cols; x++ {
			for y := 0; y < bounds.Rows; y++ {
				s := &GameState{Bounds: bounds, Cursor: Point{X: x, Y: y}, Rules: rules}
				for i := 0; i < 200; i++ {
					s.MoveCursor(Direction(rng.IntN(4)))
					if s.Cursor.X < 0 || s.Cursor.Y < 0 {
						t.Fatalf("%s: cursor went negative at %v", rules, s.Cursor)
					}
					if rules == RulesStandard && !bounds.Contains(s.Cursor) {
						t.Fatalf("Standard rules: cursor left the board at %v", s.Cursor)
					}
				}
			}
		}
	}
}

// TestRulesString tests rule names used by logging and flags
func TestRulesString(t *testing.T) {
	if RulesStandard.String() != "standard" || RulesLegacy.String() != "legacy" || Rules(9).String() != "unknown" {
		t.Error("Unexpected rules names")
	}
}
