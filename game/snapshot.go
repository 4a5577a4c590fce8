package game

import (
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

// Segment is one drawn body cell
type Segment struct {
	Position types.Position
	Head     bool
}

// Snapshot is an isolated copy of everything a render sink needs
type Snapshot struct {
	Segments  []Segment
	Food      types.Position
	Width     int
	Height    int
	CellSize  int
	Cells     int // Size of the board in cells
	Direction types.Direction
	Score     int
	Status    manager.Status
	Outcome   manager.Outcome
	Tick      uint64
}

// Snapshot copies the current state under the read lock
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	body := g.snake.Body()
	segments := make([]Segment, len(body))
	for i, p := range body {
		segments[i] = Segment{Position: p, Head: i == 0}
	}

	return Snapshot{
		Segments:  segments,
		Food:      g.foodMgr.Food(),
		Width:     g.Config.Grid.Width,
		Height:    g.Config.Grid.Height,
		CellSize:  g.Config.Grid.CellSize,
		Cells:     g.universe.Len(),
		Direction: g.snake.Direction(),
		Score:     g.stateMgr.Score(),
		Status:    g.stateMgr.Status(),
		Outcome:   g.stateMgr.Outcome(),
		Tick:      g.stateMgr.Ticks(),
	}
}

// Over reports whether the snapshot was taken after the game ended
func (s Snapshot) Over() bool {
	return s.Status == manager.Over
}
