package types

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// Position is a grid-aligned pixel coordinate, origin top-left
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a cardinal heading
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the 180° reverse of d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Step returns the offset of one cell in direction d
func (d Direction) Step(cell int) (dx, dy int) {
	switch d {
	case Up:
		return 0, -cell
	case Down:
		return 0, cell
	case Left:
		return -cell, 0
	case Right:
		return cell, 0
	default:
		return 0, 0
	}
}

// Move returns the position one cell away from p in direction d
func (p Position) Move(d Direction, cell int) Position {
	dx, dy := d.Step(cell)
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// NewRand returns a seeded generator, falling back to the clock when seed is 0
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// RandomDirection picks one of the four headings uniformly
func RandomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// RandomPosition picks a uniformly random cell from the grid's axis ranges.
// An empty range collapses to 0 on that axis.
func RandomPosition(grid Grid, rng *rand.Rand) Position {
	return Position{
		X: pick(grid.Columns(), rng),
		Y: pick(grid.Rows(), rng),
	}
}

func pick(coords []int, rng *rand.Rand) int {
	if len(coords) == 0 {
		return 0
	}
	return coords[rng.Intn(len(coords))]
}
