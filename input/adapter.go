// Package input turns backend key events into game intents
package input

import "grid-snake/game/types"

// Key is a backend-neutral key identity
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

// Action is the key transition reported by a backend
type Action int

const (
	Press Action = iota
	Repeat
	Release
)

// Event is one key transition
type Event struct {
	Key    Key
	Action Action
}

// Intent is what the game should do in response to an event
type Intent int

const (
	None Intent = iota
	Turn
	Exit
)

var directions = map[Key]types.Direction{
	KeyUp:    types.Up,
	KeyDown:  types.Down,
	KeyLeft:  types.Left,
	KeyRight: types.Right,
}

// Adapter filters events down to presses of mapped keys
type Adapter struct{}

func NewAdapter() *Adapter {
	return &Adapter{}
}

// Translate maps ev to an intent. Only Turn carries a meaningful direction.
func (a *Adapter) Translate(ev Event) (Intent, types.Direction) {
	if ev.Action != Press {
		return None, 0
	}
	if ev.Key == KeyQuit {
		return Exit, 0
	}
	if dir, ok := directions[ev.Key]; ok {
		return Turn, dir
	}
	return None, 0
}

// Director accepts direction intents
type Director interface {
	HandleDirection(dir types.Direction) bool
}

// Dispatch translates ev and forwards turns to d. It returns false when the
// player asked to exit.
func (a *Adapter) Dispatch(ev Event, d Director) bool {
	intent, dir := a.Translate(ev)
	switch intent {
	case Exit:
		return false
	case Turn:
		d.HandleDirection(dir)
	}
	return true
}
