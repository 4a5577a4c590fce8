package entity

import (
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// Snake is an ordered body, head first, with a multiset index mirroring it
// for constant-time membership. Both are only mutated by MoveForward.
type Snake struct {
	body      []types.Position
	index     map[types.Position]int
	direction types.Direction
	pending   *types.Direction
	cellSize  int
}

// NewSnake spawns a one-segment snake on a random cell with a random heading
func NewSnake(grid types.Grid, rng *rand.Rand) *Snake {
	return NewSnakeAt(types.RandomPosition(grid, rng), types.RandomDirection(rng), grid.CellSize)
}

// NewSnakeAt spawns a one-segment snake at pos heading dir
func NewSnakeAt(pos types.Position, dir types.Direction, cellSize int) *Snake {
	return &Snake{
		body:      []types.Position{pos},
		index:     map[types.Position]int{pos: 1},
		direction: dir,
		cellSize:  cellSize,
	}
}

// NewSnakeFromBody builds a snake from existing segments, head first.
// It panics on an empty body.
func NewSnakeFromBody(body []types.Position, dir types.Direction, cellSize int) *Snake {
	if len(body) == 0 {
		panic("entity: snake body must not be empty")
	}
	s := &Snake{
		body:      make([]types.Position, len(body)),
		index:     make(map[types.Position]int, len(body)),
		direction: dir,
		cellSize:  cellSize,
	}
	copy(s.body, body)
	for _, p := range body {
		s.index[p]++
	}
	return s
}

// Head returns the foremost segment
func (s *Snake) Head() types.Position {
	return s.body[0]
}

// Tail returns the last segment
func (s *Snake) Tail() types.Position {
	return s.body[len(s.body)-1]
}

// Length returns the number of segments
func (s *Snake) Length() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []types.Position {
	body := make([]types.Position, len(s.body))
	copy(body, s.body)
	return body
}

// Direction returns the heading used by the last move
func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Pending returns the direction queued for the next move, if any
func (s *Snake) Pending() (types.Direction, bool) {
	if s.pending == nil {
		return s.direction, false
	}
	return *s.pending, true
}

// Occupies reports whether any segment covers p
func (s *Snake) Occupies(p types.Position) bool {
	return s.index[p] > 0
}

// Len returns the number of distinct occupied cells
func (s *Snake) Len() int {
	return len(s.index)
}

// Count returns how many segments sit on p
func (s *Snake) Count(p types.Position) int {
	return s.index[p]
}

// ChangeDirection queues dir for the next move. The exact opposite of the
// current heading is rejected, and so is anything after the first accepted
// change of a tick.
func (s *Snake) ChangeDirection(dir types.Direction) bool {
	if s.pending != nil {
		return false
	}
	if dir == s.direction.Opposite() {
		return false
	}
	s.pending = &dir
	return true
}

// MoveForward advances the head one cell. Without grow the tail is dropped,
// keeping the length; with grow the tail stays and the body gains a segment.
func (s *Snake) MoveForward(grow bool) {
	if s.pending != nil {
		s.direction = *s.pending
		s.pending = nil
	}

	head := s.Head().Move(s.direction, s.cellSize)

	s.body = append(s.body, types.Position{})
	copy(s.body[1:], s.body)
	s.body[0] = head
	s.index[head]++

	if !grow {
		tail := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		if s.index[tail]--; s.index[tail] == 0 {
			delete(s.index, tail)
		}
	}
}
