package engine

import "fmt"

// Point is a grid cell, X is the column and Y the row.
// Coordinates are signed so killer arithmetic may go transiently out of bounds.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bounds is the board size in character cells
type Bounds struct {
	Cols, Rows int
}

// Contains reports whether p lies inside [0, Cols) x [0, Rows)
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Cols && p.Y >= 0 && p.Y < b.Rows
}

// Direction is a single-cell cursor move
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return "Unknown"
	}
}
