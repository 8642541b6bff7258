package input

import (
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/killer-chase/engine"
)

var _ engine.InputSource = (*Handler)(nil)

// Handler polls terminal events delivered by a Pump and translates them
type Handler struct {
	events <-chan tcell.Event
	keys   *KeyTable
	err    error
}

// NewHandler creates a handler reading from the pump channel
func NewHandler(events <-chan tcell.Event) *Handler {
	return &Handler{
		events: events,
		keys:   DefaultKeyTable(),
	}
}

// Poll waits at most timeout for one pending event.
// No event yields CommandNone; a closed channel means the terminal is gone and yields CommandQuit.
func (h *Handler) Poll(timeout time.Duration) engine.Command {
	select {
	case ev, ok := <-h.events:
		return h.receive(ev, ok)
	default:
	}

	if timeout <= 0 {
		return engine.CommandNone
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-h.events:
		return h.receive(ev, ok)
	case <-timer.C:
		return engine.CommandNone
	}
}

func (h *Handler) receive(ev tcell.Event, ok bool) engine.Command {
	if !ok {
		return engine.CommandQuit
	}
	return h.Translate(ev)
}

// Translate maps a key event through the key table. A terminal error event
// yields CommandFatal and is kept for Err; every other event is ignored.
func (h *Handler) Translate(ev tcell.Event) engine.Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.keys.Lookup(ev.Key(), ev.Rune())
	case *tcell.EventError:
		h.err = errors.New(ev.Error())
		log.Printf("Terminal input error: %v", h.err)
		return engine.CommandFatal
	}
	return engine.CommandNone
}

// Err returns the terminal error that ended input, if any
func (h *Handler) Err() error {
	return h.err
}
