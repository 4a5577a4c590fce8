package types

import (
	"errors"
	"fmt"
	"time"
)

// Game defaults
const (
	DefaultCellSize = 9
	DefaultWidth    = 300
	DefaultHeight   = 300
	DefaultTickRate = 10 // Updates per second
)

var (
	ErrInvalidCellSize = errors.New("cell size must be positive")
	ErrGridTooSmall    = errors.New("grid smaller than one cell")
	ErrInvalidTickRate = errors.New("tick rate must be positive")
)

// Grid represents the board geometry in pixels
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Columns returns every valid x coordinate, left to right
func (g Grid) Columns() []int {
	return axis(g.Width, g.CellSize)
}

// Rows returns every valid y coordinate, top to bottom
func (g Grid) Rows() []int {
	return axis(g.Height, g.CellSize)
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return len(g.Columns()) * len(g.Rows())
}

// Contains reports whether pos lies inside [0,Width) x [0,Height)
func (g Grid) Contains(pos Position) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// Validate rejects geometries that would produce an empty board
func (g Grid) Validate() error {
	if g.CellSize <= 0 {
		return fmt.Errorf("cell size %d: %w", g.CellSize, ErrInvalidCellSize)
	}
	if g.Width < g.CellSize || g.Height < g.CellSize {
		return fmt.Errorf("%dx%d with cell size %d: %w", g.Width, g.Height, g.CellSize, ErrGridTooSmall)
	}
	return nil
}

// axis steps from 0 by size while the cell origin is still on the board. The
// last cell may extend past length when size does not divide it.
func axis(length, size int) []int {
	if size <= 0 || length < size {
		return nil
	}
	coords := make([]int, 0, length/size+1)
	for c := 0; c < length; c += size {
		coords = append(coords, c)
	}
	return coords
}

// Config holds everything a game needs at construction time
type Config struct {
	Grid     Grid
	TickRate int    // Updates per second
	Seed     uint64 // 0 picks a time-based seed

	// SeparateSpawn keeps the initial food off the snake's starting cell.
	// Off by default, which matches the classic placement.
	SeparateSpawn bool
}

// DefaultConfig returns the classic 300x300 board with 9px cells at 10 ticks/s
func DefaultConfig() Config {
	return Config{
		Grid: Grid{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			CellSize: DefaultCellSize,
		},
		TickRate: DefaultTickRate,
	}
}

// Validate checks grid geometry and tick rate
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate %d: %w", c.TickRate, ErrInvalidTickRate)
	}
	return nil
}

// TickInterval converts the tick rate into the period between updates
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TickRate)
}
