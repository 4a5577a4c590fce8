package manager

import (
	"testing"

	"grid-snake/game/entity"
	"grid-snake/game/types"
)

var grid = types.Grid{Width: 300, Height: 300, CellSize: 9}

func TestWallCollision(t *testing.T) {
	cm := NewCollisionManager(grid)
	tests := []struct {
		head types.Position
		want CollisionType
	}{
		{types.Position{X: 0, Y: 0}, NoCollision},
		{types.Position{X: 297, Y: 297}, NoCollision},
		{types.Position{X: -9, Y: 0}, WallCollision},
		{types.Position{X: 0, Y: -9}, WallCollision},
		{types.Position{X: 306, Y: 0}, WallCollision},
		{types.Position{X: 0, Y: 306}, WallCollision},
		{types.Position{X: 300, Y: 0}, WallCollision},
	}
	for _, tt := range tests {
		s := entity.NewSnakeAt(tt.head, types.Up, grid.CellSize)
		if got := cm.Check(s); got != tt.want {
			t.Errorf("Check(head %v) = %v, want %v", tt.head, got, tt.want)
		}
	}
}

func TestSelfCollision(t *testing.T) {
	cm := NewCollisionManager(grid)

	// Head moved onto the second-to-last segment
	hit := entity.NewSnakeFromBody([]types.Position{
		{X: 9, Y: 9}, {X: 18, Y: 9}, {X: 18, Y: 18}, {X: 9, Y: 18}, {X: 9, Y: 9}, {X: 0, Y: 9},
	}, types.Left, grid.CellSize)
	if got := cm.Check(hit); got != SelfCollision {
		t.Errorf("expected self collision, got %v", got)
	}

	open := entity.NewSnakeFromBody([]types.Position{
		{X: 9, Y: 9}, {X: 18, Y: 9}, {X: 18, Y: 18}, {X: 9, Y: 18},
	}, types.Left, grid.CellSize)
	if got := cm.Check(open); got != NoCollision {
		t.Errorf("expected no collision, got %v", got)
	}
}

func TestSingleSegmentNeverSelfCollides(t *testing.T) {
	cm := NewCollisionManager(grid)
	s := entity.NewSnakeAt(types.Position{X: 45, Y: 45}, types.Right, grid.CellSize)
	if got := cm.Check(s); got != NoCollision {
		t.Errorf("single segment: got %v", got)
	}
}

func TestSelfCollisionAfterMove(t *testing.T) {
	cm := NewCollisionManager(grid)
	// Turning down from (18,0) lands on (18,9), which is still part of the body
	s := entity.NewSnakeFromBody([]types.Position{
		{X: 18, Y: 0}, {X: 9, Y: 0}, {X: 9, Y: 9}, {X: 18, Y: 9}, {X: 27, Y: 9},
	}, types.Right, grid.CellSize)
	s.ChangeDirection(types.Down)
	s.MoveForward(false)
	if got := cm.Check(s); got != SelfCollision {
		t.Errorf("expected self collision, got %v (head %v)", got, s.Head())
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(grid)
	s := entity.NewSnakeAt(types.Position{X: 45, Y: 45}, types.Right, grid.CellSize)

	if cm.ValidateSpawnPosition(types.Position{X: 45, Y: 45}, s) {
		t.Error("spawn on snake accepted")
	}
	if cm.ValidateSpawnPosition(types.Position{X: 300, Y: 0}, s) {
		t.Error("spawn off grid accepted")
	}
	if !cm.ValidateSpawnPosition(types.Position{X: 0, Y: 0}, s) {
		t.Error("free spawn rejected")
	}
	if !cm.ValidateSpawnPosition(types.Position{X: 0, Y: 0}, nil) {
		t.Error("free spawn without snake rejected")
	}
}
