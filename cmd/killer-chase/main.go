package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/lixenwraith/killer-chase/audio"
	"github.com/lixenwraith/killer-chase/config"
	"github.com/lixenwraith/killer-chase/constants"
	"github.com/lixenwraith/killer-chase/engine"
	"github.com/lixenwraith/killer-chase/input"
	"github.com/lixenwraith/killer-chase/render"
)

// Exit codes: usage errors follow the flag package convention
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

// execute runs one session and returns the process exit code
func execute(args []string) int {
	cfg, err := config.Load(args, nil)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(os.Stderr, "killer-chase: %v\n", err)
		return exitUsage
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	phase, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "killer-chase: %v\n", err)
		return exitFailure
	}

	printResult(phase)
	return exitOK
}

// run owns the terminal for the whole session and restores it on every path
func run(cfg *config.Config) (engine.GamePhase, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return engine.PhaseQuit, errors.New("stdin and stdout must be a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return engine.PhaseQuit, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return engine.PhaseQuit, fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup: leaves raw mode and shows the native cursor
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if a frame fails mid-draw
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "KILLER-CHASE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(exitFailure)
		}
	}()

	sessionID := uuid.New()
	cols, rows := screen.Size()
	bounds := engine.Bounds{Cols: cols, Rows: rows}
	log.Printf("Session %s started: board=%dx%d rules=%s seed=%d", sessionID, cols, rows, cfg.Rules(), cfg.Seed)

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	// Runs before Fini so a pump blocked on a full queue exits too
	defer close(done)
	go input.Pump(screen, events, done)
	handler := input.NewHandler(events)

	rng := engine.NewRandomSource(cfg.Seed)
	state := engine.NewGameState(bounds, cfg.Rules(), rng)
	game := engine.NewGame(state, render.NewTerminalRenderer(screen), handler, rng, cfg.LoopConfig())

	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			game.Sound = sm
			defer sm.Cleanup()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	phase, err := game.Run(ctx)
	if errors.Is(err, engine.ErrInputLost) {
		log.Printf("Session %s aborted: %v", sessionID, handler.Err())
		return phase, fmt.Errorf("%w: %v", err, handler.Err())
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return phase, err
	}

	if phase == engine.PhaseGameOver {
		holdGameOver(events, cfg.GameOverHold)
	}
	log.Printf("Session %s finished: %s", sessionID, phase)
	return phase, nil
}

// holdGameOver keeps the game over frame up until hold elapses or a key is pressed
func holdGameOver(events <-chan tcell.Event, hold time.Duration) {
	if hold <= 0 {
		return
	}

	timer := time.NewTimer(hold)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, isKey := ev.(*tcell.EventKey); isKey {
				return
			}
		case <-timer.C:
			return
		}
	}
}

// printResult repeats the outcome on the restored terminal, since the
// alternate screen holding the last frame is gone after Fini
func printResult(phase engine.GamePhase) {
	switch phase {
	case engine.PhaseGameOver:
		color.New(color.FgRed, color.Bold).Println(constants.GameOverText)
	default:
		color.New(color.FgCyan).Println(constants.QuitText)
	}
}
