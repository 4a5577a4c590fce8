package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/sound"
	"grid-snake/ui/raylib"
	"grid-snake/ui/terminal"

	"github.com/golang/glog"
)

func main() {
	defaults := types.DefaultConfig()

	width := flag.Int("width", defaults.Grid.Width, "Board width in pixels")
	height := flag.Int("height", defaults.Grid.Height, "Board height in pixels")
	cell := flag.Int("cell", defaults.Grid.CellSize, "Cell size in pixels")
	tps := flag.Int("tps", defaults.TickRate, "Game updates per second")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	separate := flag.Bool("separate-spawn", false, "Keep the first food off the snake's starting cell")
	frontend := flag.String("ui", "window", "Frontend: window, terminal")
	withSound := flag.Bool("sound", false, "Play sound effects")
	flag.Parse()
	defer glog.Flush()

	if *frontend != "window" && *frontend != "terminal" {
		fmt.Fprintf(os.Stderr, "snake: unknown -ui %q (want window or terminal)\n", *frontend)
		os.Exit(2)
	}

	cfg := types.Config{
		Grid: types.Grid{
			Width:    *width,
			Height:   *height,
			CellSize: *cell,
		},
		TickRate:      *tps,
		Seed:          *seed,
		SeparateSpawn: *separate,
	}

	// Configuration errors are reported before any window or terminal opens
	g, err := game.NewGame(cfg)
	if err != nil {
		glog.Errorf("Configuration: %v", err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		glog.Flush()
		os.Exit(2)
	}

	var fx sound.Effects = sound.Silent{}
	if *withSound {
		fx = sound.Open()
	}
	defer fx.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *frontend {
	case "window":
		err = raylib.NewWindow(fx).Run(ctx, g)
	case "terminal":
		err = runTerminal(ctx, g, fx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		glog.Errorf("Game %s: %v", g.ID, err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
	}

	fmt.Println(g.Summary())
}

func runTerminal(ctx context.Context, g *game.Game, fx sound.Effects) error {
	term, err := terminal.Open(fx)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	// Runs after term.Close, so the trace lands on a restored terminal
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			glog.Flush()
			os.Exit(1)
		}
	}()
	defer term.Close()

	return term.Run(ctx, g)
}
