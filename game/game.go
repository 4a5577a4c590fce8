package game

import (
	"fmt"
	"sync"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

// StepResult describes what happened during one Update
type StepResult struct {
	Tick      uint64
	Ate       bool
	Collision manager.CollisionType
	Won       bool
	Over      bool
}

// Game ties the snake, food and rules together. It has a single mutator;
// readers use Snapshot, which copies under the read lock.
type Game struct {
	ID     string
	Config types.Config

	mu           sync.RWMutex
	universe     *types.Universe
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame validates cfg and spawns the snake and food at random cells
func NewGame(cfg types.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rng := types.NewRand(cfg.Seed)
	universe := types.NewUniverse(cfg.Grid)
	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	snake := entity.NewSnake(cfg.Grid, rng)
	foodMgr := manager.NewFoodManager(cfg.Grid, universe, collisionMgr, rng, snake, cfg.SeparateSpawn)

	g := newGame(cfg, universe, collisionMgr, snake, foodMgr)
	glog.Infof("Game %s: %dx%d cell=%d tps=%d snake=%v heading %v food=%v",
		g.ID, cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize, cfg.TickRate,
		snake.Head(), snake.Direction(), foodMgr.Food())
	return g, nil
}

// NewGameWith builds a game around an existing snake and food
func NewGameWith(cfg types.Config, snake *entity.Snake, food *entity.Food) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	universe := types.NewUniverse(cfg.Grid)
	return newGame(cfg, universe, manager.NewCollisionManager(cfg.Grid), snake,
		manager.NewFoodManagerWith(universe, food)), nil
}

func newGame(cfg types.Config, universe *types.Universe, collisionMgr *manager.CollisionManager, snake *entity.Snake, foodMgr *manager.FoodManager) *Game {
	return &Game{
		ID:           uuid.New().String(),
		Config:       cfg,
		universe:     universe,
		snake:        snake,
		collisionMgr: collisionMgr,
		foodMgr:      foodMgr,
		stateMgr:     manager.NewStateManager(),
	}
}

// Update advances the game by one tick. It does nothing once the game is over.
func (g *Game) Update() StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stateMgr.IsOver() {
		return StepResult{Tick: g.stateMgr.Ticks(), Over: true}
	}

	g.stateMgr.Tick()
	result := StepResult{Tick: g.stateMgr.Ticks()}

	// Food under the head is eaten on this move
	grow := g.foodMgr.IsFood(g.snake.Head())
	g.snake.MoveForward(grow)

	if collision := g.collisionMgr.Check(g.snake); collision != manager.NoCollision {
		g.stateMgr.Finish(manager.Collided)
		glog.Infof("Game %s: %s collision at %v, score %d", g.ID, collision, g.snake.Head(), g.stateMgr.Score())
		result.Collision = collision
		result.Over = true
		return result
	}

	if grow {
		g.stateMgr.AddPoint()
		result.Ate = true
		glog.V(2).Infof("Ate food: %v, score %d, length %d", g.snake.Head(), g.stateMgr.Score(), g.snake.Length())

		if !g.foodMgr.Replace(g.snake) {
			g.stateMgr.Finish(manager.Won)
			glog.Infof("Game %s: board filled, score %d", g.ID, g.stateMgr.Score())
			result.Won = true
			result.Over = true
		}
	}

	return result
}

// HandleDirection queues a heading change for the next tick. Reversals,
// second changes within a tick and changes after game over are ignored.
func (g *Game) HandleDirection(dir types.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stateMgr.IsOver() {
		return false
	}
	accepted := g.snake.ChangeDirection(dir)
	glog.V(2).Infof("Direction %v accepted=%t", dir, accepted)
	return accepted
}

// Over reports whether the game has ended
func (g *Game) Over() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.stateMgr.IsOver()
}

// Score returns the number of food items eaten
func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.stateMgr.Score()
}

// Outcome returns why the game ended, or Undecided while it is running
func (g *Game) Outcome() manager.Outcome {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.stateMgr.Outcome()
}

// Quit ends a running game as a loss, as when the player closes the window
func (g *Game) Quit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stateMgr.Finish(manager.Quit) {
		glog.Infof("Game %s: quit, score %d", g.ID, g.stateMgr.Score())
	}
}

// Summary is the human readable end-of-game line
func (g *Game) Summary() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.stateMgr.Outcome() == manager.Won {
		return fmt.Sprintf("You won! Score: %d", g.stateMgr.Score())
	}
	return fmt.Sprintf("Game over! Score: %d", g.stateMgr.Score())
}
