package raylib

import (
	"fmt"

	"grid-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudHeight = 20 // Strip below the board for score text

var (
	backgroundColor = rl.White
	headColor       = rl.Red
	bodyColor       = rl.Blue
	foodColor       = rl.Green
	hudColor        = rl.DarkGray
)

// Renderer draws snapshots as squares, one pixel per board unit
type Renderer struct {
	fontSize int32
}

func NewRenderer() *Renderer {
	return &Renderer{fontSize: 10}
}

// Draw renders one frame. Must be called on the window thread.
func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	cell := int32(snap.CellSize)

	for _, seg := range snap.Segments {
		color := bodyColor
		if seg.Head {
			color = headColor
		}
		rl.DrawRectangle(int32(seg.Position.X), int32(seg.Position.Y), cell, cell, color)
	}

	rl.DrawRectangle(int32(snap.Food.X), int32(snap.Food.Y), cell, cell, foodColor)

	r.drawHUD(snap)
	rl.EndDrawing()
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	y := int32(snap.Height) + (hudHeight-r.fontSize)/2
	rl.DrawLine(0, int32(snap.Height), int32(snap.Width), int32(snap.Height), hudColor)
	rl.DrawText(hudText(snap), 4, y, r.fontSize, hudColor)
}

func hudText(snap game.Snapshot) string {
	if snap.Over() {
		return fmt.Sprintf("Score: %d - %s", snap.Score, snap.Outcome)
	}
	return fmt.Sprintf("Score: %d  Length: %d/%d", snap.Score, len(snap.Segments), snap.Cells)
}
