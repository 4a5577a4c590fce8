package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "unknown"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check evaluates the snake's head after a move
func (cm *CollisionManager) Check(snake *entity.Snake) CollisionType {
	head := snake.Head()

	if cm.isWallCollision(head) {
		return WallCollision
	}
	if cm.isSelfCollision(snake, head) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position lies outside the board
func (cm *CollisionManager) isWallCollision(pos types.Position) bool {
	return pos.X < 0 || pos.X >= cm.grid.Width || pos.Y < 0 || pos.Y >= cm.grid.Height
}

// isSelfCollision checks whether head is shared with any other segment.
// The head itself accounts for one entry in the index.
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake, head types.Position) bool {
	if snake.Length() <= 1 {
		return false
	}
	return snake.Count(head) > 1
}

// ValidateSpawnPosition checks if pos is on the board and free of the snake
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Position, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}
