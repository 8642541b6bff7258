package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the minimum wall-clock gap between two simulation/render ticks
	TickInterval = 1 * time.Millisecond

	// PollTimeout bounds how long one input poll may wait for a pending event
	PollTimeout = 1 * time.Millisecond

	// ReseedInterval is how often all killers are replaced with random positions
	ReseedInterval = 5000 * time.Millisecond

	// KillerCadence is the number of ticks between two killer advances.
	// Increase to make killers slower.
	KillerCadence = 70

	// GameOverHold keeps the game over frame on screen before teardown
	GameOverHold = 1 * time.Second
)

// Board Constants
const (
	// KillerCount is the fixed number of killer entities on the board
	KillerCount = 3

	// EventQueueSize is the buffer of the terminal event pump channel
	EventQueueSize = 64
)
