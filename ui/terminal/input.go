package terminal

import (
	"grid-snake/input"

	"github.com/gdamore/tcell/v2"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyEscape: input.KeyQuit,
	tcell.KeyCtrlC:  input.KeyQuit,
}

var runeKeys = map[rune]input.Key{
	'k': input.KeyUp,
	'j': input.KeyDown,
	'h': input.KeyLeft,
	'l': input.KeyRight,
	'w': input.KeyUp,
	's': input.KeyDown,
	'a': input.KeyLeft,
	'd': input.KeyRight,
	'q': input.KeyQuit,
}

// translateKey maps a tcell key event to a backend-neutral event.
// Terminals report no releases and cannot tell repeats apart, so every
// event is a press; unmapped keys become KeyUnknown.
func translateKey(ev *tcell.EventKey) input.Event {
	if ev.Key() == tcell.KeyRune {
		return input.Event{Key: runeKeys[ev.Rune()], Action: input.Press}
	}
	return input.Event{Key: specialKeys[ev.Key()], Action: input.Press}
}
