package entity

import (
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

const (
	// Above this occupied fraction sampling gives way to enumeration
	sampleMaxOccupancy = 0.5
	sampleAttempts     = 32
)

// Food is the single edible cell on the board
type Food struct {
	position types.Position
	rng      *rand.Rand
}

// NewFood places food on a uniformly random cell. The snake is not avoided.
func NewFood(grid types.Grid, rng *rand.Rand) *Food {
	return &Food{
		position: types.RandomPosition(grid, rng),
		rng:      rng,
	}
}

// NewFoodAt places food at pos
func NewFoodAt(pos types.Position, rng *rand.Rand) *Food {
	return &Food{position: pos, rng: rng}
}

func (f *Food) Position() types.Position {
	return f.position
}

func (f *Food) SetPosition(pos types.Position) {
	f.position = pos
}

// RefreshPosition picks a uniformly random cell of universe not in occupied.
// It returns false when occupied covers the whole universe. Neither argument
// is modified.
func (f *Food) RefreshPosition(universe *types.Universe, occupied types.Occupancy) (types.Position, bool) {
	total := universe.Len()
	if total == 0 {
		return types.Position{}, false
	}

	if float64(occupied.Len()) < float64(total)*sampleMaxOccupancy {
		for i := 0; i < sampleAttempts; i++ {
			p := universe.At(f.rng.Intn(total))
			if !occupied.Occupies(p) {
				return p, true
			}
		}
	}

	free := make([]types.Position, 0, total-min(occupied.Len(), total))
	universe.Each(func(p types.Position) bool {
		if !occupied.Occupies(p) {
			free = append(free, p)
		}
		return true
	})
	if len(free) == 0 {
		return types.Position{}, false
	}
	return free[f.rng.Intn(len(free))], true
}
