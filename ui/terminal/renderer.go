package terminal

import (
	"fmt"

	"grid-snake/game"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2 // Terminal columns per board cell, keeps cells roughly square

	segmentRune = '█'
	foodRune    = '●'
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer draws snapshots inside a bordered box in the top-left corner
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// boardSize returns the board dimensions in cells
func boardSize(snap game.Snapshot) (cols, rows int) {
	if snap.CellSize <= 0 || snap.Width < snap.CellSize || snap.Height < snap.CellSize {
		return 0, 0
	}
	return (snap.Width + snap.CellSize - 1) / snap.CellSize, (snap.Height + snap.CellSize - 1) / snap.CellSize
}

// CellOrigin returns the screen coordinate of the left column of the board
// cell holding a position with pixel coordinates x, y
func CellOrigin(snap game.Snapshot, x, y int) (sx, sy int) {
	return 1 + (x/snap.CellSize)*cellWidth, 1 + y/snap.CellSize
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(snap game.Snapshot) {
	r.screen.Clear()

	cols, rows := boardSize(snap)
	r.drawBorder(cols*cellWidth+2, rows+2)

	r.fillCell(snap, snap.Food.X, snap.Food.Y, foodRune, foodStyle)
	// Tail first so the head wins if segments ever overlap
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		style := bodyStyle
		if seg.Head {
			style = headStyle
		}
		r.fillCell(snap, seg.Position.X, seg.Position.Y, segmentRune, style)
	}

	r.drawHUD(snap, rows+2)
	r.screen.Show()
}

func (r *Renderer) fillCell(snap game.Snapshot, x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= snap.Width || y >= snap.Height {
		return
	}
	sx, sy := CellOrigin(snap, x, y)
	if ch == foodRune {
		r.screen.SetContent(sx, sy, ch, nil, style)
		r.screen.SetContent(sx+1, sy, ' ', nil, style)
		return
	}
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(sx+i, sy, ch, nil, style)
	}
}

func (r *Renderer) drawBorder(w, h int) {
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		r.screen.SetContent(x, h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		r.screen.SetContent(w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	r.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, borderStyle)
	r.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, borderStyle)
	r.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, borderStyle)
}

func (r *Renderer) drawHUD(snap game.Snapshot, y int) {
	text := fmt.Sprintf("Score: %d  Length: %d/%d  [arrows/hjkl/wasd, q quits]", snap.Score, len(snap.Segments), snap.Cells)
	style := hudStyle
	if snap.Over() {
		text = fmt.Sprintf("Score: %d - %s  [any key]", snap.Score, snap.Outcome)
		style = overStyle
	}
	drawText(r.screen, 0, y, style, text)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}
