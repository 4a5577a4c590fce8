// Package terminal is the text frontend: it draws game snapshots with tcell
// and reads the keyboard from the controlling terminal.
package terminal

import (
	"context"
	"fmt"
	"time"

	"grid-snake/clock"
	"grid-snake/game"
	"grid-snake/input"
	"grid-snake/sound"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	lingerTimeout = 2 * time.Second
)

// Terminal runs a game on a tcell screen
type Terminal struct {
	screen   tcell.Screen
	renderer *Renderer
	adapter  *input.Adapter
	fx       sound.Effects
}

// Open initializes the controlling terminal
func Open(fx sound.Effects) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen, fx), nil
}

// New wraps an initialized screen
func New(screen tcell.Screen, fx sound.Effects) *Terminal {
	screen.HideCursor()
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen),
		adapter:  input.NewAdapter(),
		fx:       fx,
	}
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Run blocks until the game ends, the player quits or ctx is cancelled.
// Ticks are driven by the scheduler on each frame; after every tick the
// game-over flag is checked before any further input is read.
func (t *Terminal) Run(ctx context.Context, g *game.Game) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go t.pollEvents(events, quit)

	scheduler := clock.NewScheduler(g.Config.TickInterval())
	scheduler.Start(time.Now())

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	t.renderer.Draw(g.Snapshot())

	for {
		select {
		case <-ctx.Done():
			g.Quit()
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.adapter.Dispatch(translateKey(ev), g) {
					g.Quit()
					return nil
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}

		case now := <-frames.C:
			scheduler.Step(now, func() bool {
				result := g.Update()
				sound.Notify(t.fx, result)
				return !result.Over
			})

			snap := g.Snapshot()
			t.renderer.Draw(snap)
			if snap.Over() {
				t.linger(ctx, events)
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized
func (t *Terminal) pollEvents(events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// linger keeps the final frame up until a key press or timeout
func (t *Terminal) linger(ctx context.Context, events <-chan tcell.Event) {
	timer := time.NewTimer(lingerTimeout)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			return
		case ev := <-events:
			if _, ok := ev.(*tcell.EventKey); ok {
				glog.V(2).Infof("Key pressed after game over, leaving")
				return
			}
		}
	}
}
