package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/killer-chase/engine"
)

// KeyTable maps terminal keys to loop commands
type KeyTable struct {
	// Special keys (arrows)
	SpecialKeys map[tcell.Key]engine.Command

	// Plain rune bindings
	Runes map[rune]engine.Command
}

// DefaultKeyTable binds the arrow keys to movement and 'q' to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Command{
			tcell.KeyUp:    engine.CommandUp,
			tcell.KeyDown:  engine.CommandDown,
			tcell.KeyLeft:  engine.CommandLeft,
			tcell.KeyRight: engine.CommandRight,
		},
		Runes: map[rune]engine.Command{
			'q': engine.CommandQuit,
		},
	}
}

// Lookup resolves a key (and its rune for tcell.KeyRune) to a command.
// Unbound keys resolve to CommandNone.
func (kt *KeyTable) Lookup(key tcell.Key, r rune) engine.Command {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}
