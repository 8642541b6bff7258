package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/killer-chase/constants"
)

// RandomSource supplies uniform integers in [0, n)
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source. A zero seed derives one from the clock.
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeedKillers places every killer uniformly inside bounds.
// Positions are independent of the cursor and may land next to it.
func SeedKillers(b Bounds, rng RandomSource) [constants.KillerCount]Point {
	var killers [constants.KillerCount]Point
	for i := range killers {
		killers[i] = Point{
			X: randomCoord(rng, b.Cols),
			Y: randomCoord(rng, b.Rows),
		}
	}
	return killers
}

// randomCoord guards against zero-sized boards, where IntN would panic
func randomCoord(rng RandomSource, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.IntN(n)
}
