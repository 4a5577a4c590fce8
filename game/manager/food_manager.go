package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

type FoodManager struct {
	universe *types.Universe
	food     *entity.Food
}

// NewFoodManager places the initial food. With separate set, the food is kept
// off the snake's cells; otherwise it lands anywhere on the board.
func NewFoodManager(grid types.Grid, universe *types.Universe, collisionMgr *CollisionManager, rng *rand.Rand, snake *entity.Snake, separate bool) *FoodManager {
	fm := NewFoodManagerWith(universe, entity.NewFood(grid, rng))
	if separate && !collisionMgr.ValidateSpawnPosition(fm.food.Position(), snake) {
		if pos, ok := fm.food.RefreshPosition(universe, snake); ok {
			fm.food.SetPosition(pos)
		}
	}
	return fm
}

// NewFoodManagerWith wraps an already placed food
func NewFoodManagerWith(universe *types.Universe, food *entity.Food) *FoodManager {
	return &FoodManager{
		universe: universe,
		food:     food,
	}
}

func (fm *FoodManager) Food() types.Position {
	return fm.food.Position()
}

// IsFood reports whether pos holds the food
func (fm *FoodManager) IsFood(pos types.Position) bool {
	return pos == fm.food.Position()
}

// Replace moves the eaten food to a free cell. It returns false when the
// snake fills the board and no cell is left.
func (fm *FoodManager) Replace(occupied types.Occupancy) bool {
	pos, ok := fm.food.RefreshPosition(fm.universe, occupied)
	if !ok {
		return false
	}
	glog.V(2).Infof("New food: %v", pos)
	fm.food.SetPosition(pos)
	return true
}
