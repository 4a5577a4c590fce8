// Package raylib is the windowed frontend: it owns the window, polls the
// keyboard and draws game snapshots.
package raylib

import (
	"context"
	"time"

	"grid-snake/clock"
	"grid-snake/game"
	"grid-snake/input"
	"grid-snake/sound"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowTitle = "Snake"
	targetFPS   = 60
)

// Polled in order, so simultaneous presses resolve deterministically
var keyBindings = []struct {
	code int32
	key  input.Key
}{
	{rl.KeyUp, input.KeyUp},
	{rl.KeyDown, input.KeyDown},
	{rl.KeyLeft, input.KeyLeft},
	{rl.KeyRight, input.KeyRight},
	{rl.KeyQ, input.KeyQuit},
	{rl.KeyEscape, input.KeyQuit},
}

// Window runs a game inside a native window
type Window struct {
	renderer *Renderer
	adapter  *input.Adapter
	fx       sound.Effects
}

func NewWindow(fx sound.Effects) *Window {
	return &Window{
		renderer: NewRenderer(),
		adapter:  input.NewAdapter(),
		fx:       fx,
	}
}

// Run blocks until the game ends, the window is closed or ctx is cancelled.
// The last frame stays on screen briefly after the game ends.
func (w *Window) Run(ctx context.Context, g *game.Game) error {
	snap := g.Snapshot()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(snap.Width), int32(snap.Height)+hudHeight, windowTitle)
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(targetFPS)

	scheduler := clock.NewScheduler(g.Config.TickInterval())
	scheduler.Start(time.Now())

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			g.Quit()
			return ctx.Err()
		}

		if !w.pollKeys(g) {
			g.Quit()
			return nil
		}

		scheduler.Step(time.Now(), func() bool {
			result := g.Update()
			sound.Notify(w.fx, result)
			return !result.Over
		})

		snap := g.Snapshot()
		w.renderer.Draw(snap)

		if snap.Over() {
			w.linger(ctx, snap)
			return nil
		}
	}

	g.Quit()
	return nil
}

// pollKeys forwards key presses; IsKeyPressed ignores repeats and releases
func (w *Window) pollKeys(g *game.Game) bool {
	for _, b := range keyBindings {
		if !rl.IsKeyPressed(b.code) {
			continue
		}
		if !w.adapter.Dispatch(input.Event{Key: b.key, Action: input.Press}, g) {
			return false
		}
	}
	return true
}

// linger keeps the final frame visible until a key, close or timeout
func (w *Window) linger(ctx context.Context, snap game.Snapshot) {
	deadline := time.Now().Add(2 * time.Second)
	for !rl.WindowShouldClose() && time.Now().Before(deadline) && ctx.Err() == nil {
		if rl.GetKeyPressed() != 0 {
			return
		}
		w.renderer.Draw(snap)
	}
}
