package engine

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/lixenwraith/killer-chase/constants"
)

// GamePhase represents the state of the main loop
type GamePhase int

const (
	PhaseRunning GamePhase = iota
	PhaseGameOver
	PhaseQuit
)

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	case PhaseQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is an input event translated for the main loop
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
	// CommandFatal reports that the terminal can no longer deliver input
	CommandFatal
)

// ErrInputLost is returned by Run when the input source reports a dead terminal
var ErrInputLost = errors.New("terminal input lost")

// Direction maps a movement command to its cursor direction
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CommandUp:
		return DirectionUp, true
	case CommandDown:
		return DirectionDown, true
	case CommandLeft:
		return DirectionLeft, true
	case CommandRight:
		return DirectionRight, true
	default:
		return 0, false
	}
}

// FrameRenderer repaints the whole terminal from game state
type FrameRenderer interface {
	Draw(s *GameState)
	DrawGameOver(b Bounds)
}

// InputSource waits at most timeout for the next input command
type InputSource interface {
	Poll(timeout time.Duration) Command
}

// SoundPlayer plays the optional audio cues
type SoundPlayer interface {
	PlayReseed()
	PlayGameOver()
}

// LoopConfig holds the main loop timing
type LoopConfig struct {
	TickInterval   time.Duration
	ReseedInterval time.Duration
	PollTimeout    time.Duration
	KillerCadence  int
}

// DefaultLoopConfig returns the classic timing
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		TickInterval:   constants.TickInterval,
		ReseedInterval: constants.ReseedInterval,
		PollTimeout:    constants.PollTimeout,
		KillerCadence:  constants.KillerCadence,
	}
}

// Game drives the single-threaded loop: timing-gated ticks, killer reseeding
// and input polling. All fields are touched only from the Run goroutine.
type Game struct {
	State        *GameState
	Renderer     FrameRenderer
	Input        InputSource
	Sound        SoundPlayer
	TimeProvider TimeProvider
	Random       RandomSource
	Config       LoopConfig

	Phase GamePhase

	// Counters for the session log
	Ticks    uint64
	Advances uint64
	Reseeds  uint64

	tickGate   *Gate
	reseedGate *Gate
	cadence    *Cadence
	err        error
}

// NewGame wires a loop around an existing state
func NewGame(state *GameState, renderer FrameRenderer, input InputSource, rng RandomSource, cfg LoopConfig) *Game {
	return &Game{
		State:        state,
		Renderer:     renderer,
		Input:        input,
		TimeProvider: NewMonotonicTimeProvider(),
		Random:       rng,
		Config:       cfg,
	}
}

// Run draws the first frame and loops until game over, the quit key or ctx
// cancellation. Cancellation ends the session as PhaseQuit with ctx.Err(),
// a lost terminal as PhaseQuit with ErrInputLost.
func (g *Game) Run(ctx context.Context) (GamePhase, error) {
	g.start()

	for {
		select {
		case <-ctx.Done():
			g.Phase = PhaseQuit
			log.Printf("Session cancelled: %v", ctx.Err())
			return g.Phase, ctx.Err()
		default:
		}

		if !g.iterate() {
			log.Printf("Session ended: phase=%s ticks=%d advances=%d reseeds=%d",
				g.Phase, g.Ticks, g.Advances, g.Reseeds)
			return g.Phase, g.err
		}
	}
}

// start renders the initial frame and arms the timing gates
func (g *Game) start() {
	g.Renderer.Draw(g.State)

	now := g.TimeProvider.Now()
	g.tickGate = NewGate(g.Config.TickInterval, now)
	g.reseedGate = NewGate(g.Config.ReseedInterval, now)
	g.cadence = NewCadence(g.Config.KillerCadence)
	g.Phase = PhaseRunning
}

// iterate runs one loop pass and reports whether the loop continues
func (g *Game) iterate() bool {
	if g.tickGate.Due(g.TimeProvider.Now()) {
		if Collides(g.State) {
			g.Phase = PhaseGameOver
			g.Renderer.DrawGameOver(g.State.Bounds)
			if g.Sound != nil {
				g.Sound.PlayGameOver()
			}
			return false
		}

		if g.cadence.Tick() {
			g.State.AdvanceKillers()
			g.Advances++
		}
		g.Renderer.Draw(g.State)
		g.Ticks++
		g.tickGate.Mark(g.TimeProvider.Now())
	}

	if now := g.TimeProvider.Now(); g.reseedGate.Due(now) {
		g.State.Reseed(g.Random)
		g.Reseeds++
		g.reseedGate.Mark(now)
		log.Printf("Killers reseeded: %v", g.State.Killers)
		if g.Sound != nil {
			g.Sound.PlayReseed()
		}
	}

	cmd := g.Input.Poll(g.Config.PollTimeout)
	switch cmd {
	case CommandQuit:
		g.Phase = PhaseQuit
		return false
	case CommandFatal:
		g.Phase = PhaseQuit
		g.err = ErrInputLost
		return false
	}
	if dir, ok := cmd.Direction(); ok {
		g.State.MoveCursor(dir)
	}
	return true
}
