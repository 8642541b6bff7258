package engine

import "time"

// Cadence fires on the first tick and then once every Every ticks
type Cadence struct {
	Every     int
	countdown int
}

// NewCadence creates a cadence that fires every n ticks (n < 1 fires every tick)
func NewCadence(n int) *Cadence {
	if n < 1 {
		n = 1
	}
	return &Cadence{Every: n}
}

// Tick advances the countdown and reports whether this tick is due
func (c *Cadence) Tick() bool {
	due := false
	if c.countdown < 1 {
		c.countdown = c.Every
		due = true
	}
	c.countdown--
	return due
}

// Gate is a wall-clock interval gate polled by the main loop
type Gate struct {
	Interval time.Duration
	last     time.Time
}

// NewGate creates a gate whose interval starts counting at now
func NewGate(interval time.Duration, now time.Time) *Gate {
	return &Gate{Interval: interval, last: now}
}

// Due reports whether at least Interval elapsed since the last mark
func (g *Gate) Due(now time.Time) bool {
	return now.Sub(g.last) >= g.Interval
}

// Mark records now as the last firing time
func (g *Gate) Mark(now time.Time) {
	g.last = now
}
