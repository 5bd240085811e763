package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/tetris"
)

const (
	boardX = 2
	boardY = 1
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawSnapshot renders the well two columns per cell with the hold slot,
// the queue and the score beside it.
func drawSnapshot(screen tcell.Screen, cfg tetris.Config, snap tetris.Snapshot) {
	base := tcell.StyleDefault.Background(rgb(palette.Background)).Foreground(rgb(palette.Text))
	screen.SetStyle(base)
	screen.Clear()

	frame := base.Foreground(rgb(palette.Grid))
	for row := -1; row <= snap.Height; row++ {
		screen.SetContent(boardX-1, boardY+row, '│', nil, frame)
		screen.SetContent(boardX+snap.Width*2, boardY+row, '│', nil, frame)
	}
	for col := -1; col <= snap.Width*2; col++ {
		screen.SetContent(boardX+col, boardY+snap.Height, '─', nil, frame)
	}

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			x, y := boardX+col*2, boardY+row
			cell := snap.Cell(row, col)
			switch {
			case cell != tetris.Empty:
				style := base.Background(rgb(palette.Of(cell)))
				screen.SetContent(x, y, ' ', nil, style)
				screen.SetContent(x+1, y, ' ', nil, style)
			case snap.IsGhost(row, col):
				style := base.Foreground(rgb(palette.Of(snap.Active.Kind)))
				screen.SetContent(x, y, '[', nil, style)
				screen.SetContent(x+1, y, ']', nil, style)
			default:
				style := base.Foreground(rgb(palette.Grid))
				screen.SetContent(x, y, ' ', nil, style)
				screen.SetContent(x+1, y, '.', nil, style)
			}
		}
	}

	panelX := boardX + snap.Width*2 + 3
	y := boardY
	drawText(screen, panelX, y, base, "HOLD")
	if snap.Hold != tetris.Empty {
		clr := palette.Of(snap.Hold)
		if !snap.CanHold {
			clr = palette.Ghost(snap.Hold)
		}
		drawShape(screen, panelX, y+1, cfg.ShapeOf(snap.Hold), base.Background(rgb(clr)))
	}
	y += 4

	drawText(screen, panelX, y, base, "NEXT")
	y++
	for _, kind := range snap.Queue[:min(5, len(snap.Queue))] {
		shape := cfg.ShapeOf(kind)
		drawShape(screen, panelX, y, shape, base.Background(rgb(palette.Of(kind))))
		y += shape.Bottom() + 2
	}

	y++
	drawText(screen, panelX, y, base, fmt.Sprintf("SCORE %d", snap.Score))
	drawText(screen, panelX, y+1, base, fmt.Sprintf("LEVEL %d", snap.Level))
	drawText(screen, panelX, y+2, base, fmt.Sprintf("LINES %d", snap.Lines))

	mid := boardY + snap.Height/2
	switch {
	case snap.GameOver:
		drawText(screen, boardX+snap.Width-4, mid, base.Bold(true), "GAME OVER")
		drawText(screen, boardX+snap.Width-6, mid+1, base, "r to restart")
	case snap.Paused:
		drawText(screen, boardX+snap.Width-3, mid, base.Bold(true), "PAUSED")
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawShape(screen tcell.Screen, x, y int, shape tetris.Shape, style tcell.Style) {
	top := shape.Size()
	for _, p := range shape.Cells() {
		top = min(top, p.Y)
	}
	for _, p := range shape.Cells() {
		screen.SetContent(x+p.X*2, y+p.Y-top, ' ', nil, style)
		screen.SetContent(x+p.X*2+1, y+p.Y-top, ' ', nil, style)
	}
}
