package input

import (
	"github.com/gdamore/tcell/v2"
)

// EventSource is the blocking event reader of a tcell.Screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Pump forwards events from src into out until src returns nil (screen
// finalized) or done is closed, then closes out. It only moves events and
// never touches game state.
func Pump(src EventSource, out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
